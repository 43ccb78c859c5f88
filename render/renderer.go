// Package render draws game snapshots onto a tcell screen.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/MansourDch/jezzball-clone/board"
	"github.com/MansourDch/jezzball-clone/core"
	"github.com/MansourDch/jezzball-clone/engine"
	"github.com/MansourDch/jezzball-clone/events"
	"github.com/MansourDch/jezzball-clone/paddle"
)

// hudRows is the number of rows above the field border
const hudRows = 2

const (
	wallHelp   = "arrows/hjkl move  space rotate  enter/click split  p pause  m music  s share  r restart  q quit"
	paddleHelp = "←/→ a/d move  drag paddle  p pause  m music  s share  r restart  q quit"
)

// UI is adapter state drawn over a snapshot
type UI struct {
	Cursor    core.Point
	Dir       core.Direction
	Paused    bool
	ShowShare bool
	ShareText string
	ShareURL  string
}

// Renderer owns the screen drawing for one frame at a time
type Renderer struct {
	screen tcell.Screen
	vp     Viewport
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport returns the layout of the last drawn frame
func (r *Renderer) Viewport() Viewport {
	return r.vp
}

// Layout recomputes the viewport for world against the current screen size
func (r *Renderer) Layout(world core.Rect) Viewport {
	w, h := r.screen.Size()
	r.vp = Fit(world, w, h, hudRows)
	return r.vp
}

// DrawWall renders the wall-splitting game
func (r *Renderer) DrawWall(s engine.Snapshot, ui UI) {
	r.screen.Clear()
	r.Layout(s.Bounds)
	r.drawField(s.Regions)

	for _, l := range s.Lines {
		r.drawSegment(l, StyleLine)
	}
	if s.Growing {
		r.drawSegment(s.Active, StyleGrowing)
	}
	for _, b := range s.Balls {
		x, y := r.vp.ToCell(b.Pos)
		r.screen.SetContent(x, y, GlyphBall, nil, StyleBall)
	}

	cx, cy := r.vp.ToCell(ui.Cursor)
	glyph := GlyphCursorH
	if ui.Dir == core.Vertical {
		glyph = GlyphCursorV
	}
	r.screen.SetContent(cx, cy, glyph, nil, StyleCursor)

	p := s.Progress
	r.drawHUD(fmt.Sprintf("Level %d   Lives %d   Filled %d%%   Score %d", p.Level, p.Lives, p.Filled, p.Score), wallHelp)
	r.drawOverlays(s.LastGameOver, ui)
	r.screen.Show()
}

// DrawPaddle renders the paddle variant
func (r *Renderer) DrawPaddle(s paddle.Snapshot, ui UI) {
	r.screen.Clear()
	r.Layout(s.Bounds)
	r.drawField(nil)

	x0, y := r.vp.ToCell(core.Point{X: s.Paddle.X, Y: s.Paddle.Y})
	x1, _ := r.vp.ToCell(core.Point{X: s.Paddle.Right(), Y: s.Paddle.Y})
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y, GlyphPaddle, nil, StylePaddle)
	}
	bx, by := r.vp.ToCell(s.Ball.Pos)
	if s.Ball.Pos.Y <= s.Bounds.Bottom() {
		r.screen.SetContent(bx, by, GlyphBall, nil, StyleBall)
	}

	r.drawHUD(fmt.Sprintf("Score %d   Lives %d", s.Score, s.Lives), paddleHelp)
	r.drawOverlays(s.LastGameOver, ui)
	r.screen.Show()
}

// drawField paints background, claimed regions and the border
func (r *Renderer) drawField(regions []board.Region) {
	vp := r.vp
	for cy := vp.Y; cy < vp.Y+vp.Rows; cy++ {
		for cx := vp.X; cx < vp.X+vp.Cols; cx++ {
			p, _ := vp.ToWorld(cx, cy)
			if filledAt(regions, p) {
				r.screen.SetContent(cx, cy, GlyphFilled, nil, StyleFilled)
			} else {
				r.screen.SetContent(cx, cy, ' ', nil, StyleBackground)
			}
		}
	}

	left, right := vp.X-1, vp.X+vp.Cols
	top, bottom := vp.Y-1, vp.Y+vp.Rows
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '═', nil, StyleBorder)
		r.screen.SetContent(x, bottom, '═', nil, StyleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '║', nil, StyleBorder)
		r.screen.SetContent(right, y, '║', nil, StyleBorder)
	}
	r.screen.SetContent(left, top, '╔', nil, StyleBorder)
	r.screen.SetContent(right, top, '╗', nil, StyleBorder)
	r.screen.SetContent(left, bottom, '╚', nil, StyleBorder)
	r.screen.SetContent(right, bottom, '╝', nil, StyleBorder)
}

func filledAt(regions []board.Region, p core.Point) bool {
	for _, reg := range regions {
		if reg.Filled && reg.Rect.Contains(p) {
			return true
		}
	}
	return false
}

// drawSegment draws a line cell by cell, joining crossings
func (r *Renderer) drawSegment(seg core.Segment, style tcell.Style) {
	from, to := seg.Endpoints()
	x0, y0 := r.vp.ToCell(from)
	x1, y1 := r.vp.ToCell(to)

	glyph, other := GlyphHorizontal, GlyphVertical
	if seg.Dir == core.Vertical {
		glyph, other = GlyphVertical, GlyphHorizontal
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g := glyph
			if cur, _, _, _ := r.screen.GetContent(x, y); cur == other || cur == GlyphCross {
				g = GlyphCross
			}
			r.screen.SetContent(x, y, g, nil, style)
		}
	}
}

func (r *Renderer) drawHUD(status, help string) {
	drawText(r.screen, 1, 0, StyleHUD, status)
	w, _ := r.screen.Size()
	if len([]rune(help)) > w-2 {
		help = string([]rune(help)[:max(w-2, 0)])
	}
	drawText(r.screen, 1, 1, StyleHUDDim, help)
}

func (r *Renderer) drawOverlays(over *events.GameOverPayload, ui UI) {
	switch {
	case ui.ShowShare:
		lines := strings.Split(ui.ShareText, "\n")
		if ui.ShareURL != "" {
			lines = append(lines, "", ui.ShareURL)
		}
		lines = append(lines, "", "s / esc to close")
		r.drawBox("Share", lines)
	case over != nil:
		r.drawBox("Game Over", []string{
			fmt.Sprintf("Final score %d", over.FinalScore),
			fmt.Sprintf("Reached level %d", over.Level),
			"",
			"r to play again, s to share",
		})
	case ui.Paused:
		r.drawBox("Paused", []string{"p to resume"})
	}
}

// drawBox centers a titled box over the field, truncating to the screen
func (r *Renderer) drawBox(title string, lines []string) {
	sw, sh := r.screen.Size()
	inner := len([]rune(title)) + 2
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	inner = min(inner, max(sw-4, 1))
	height := min(len(lines), max(sh-2, 1))

	x0 := max((sw-inner-2)/2, 0)
	y0 := max((sh-height-2)/2, 0)

	for y := y0; y < y0+height+2; y++ {
		for x := x0; x < x0+inner+2; x++ {
			r.screen.SetContent(x, y, ' ', nil, StyleOverlay)
		}
	}
	drawText(r.screen, x0+1, y0, StyleOverlay.Bold(true), " "+title+" ")
	for i, l := range lines[:height] {
		rs := []rune(l)
		if len(rs) > inner {
			rs = rs[:inner]
		}
		drawText(r.screen, x0+1, y0+1+i, StyleOverlay, string(rs))
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}
