package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground  = tcell.NewRGBColor(26, 26, 46)    // Night blue field
	RgbBorder      = tcell.NewRGBColor(255, 215, 0)   // Gold frame
	RgbFilled      = tcell.NewRGBColor(52, 73, 120)   // Claimed area
	RgbLine        = tcell.NewRGBColor(200, 200, 220) // Completed split line
	RgbGrowing     = tcell.NewRGBColor(255, 120, 80)  // Line in progress
	RgbBall        = tcell.NewRGBColor(157, 109, 210) // Purple ball
	RgbPaddle      = tcell.NewRGBColor(255, 220, 163) // Sand paddle
	RgbCursor      = tcell.NewRGBColor(255, 165, 0)   // Orange cursor
	RgbHUDText     = tcell.NewRGBColor(255, 255, 255)
	RgbHUDDim      = tcell.NewRGBColor(150, 150, 160)
	RgbOverlayBg   = tcell.NewRGBColor(40, 40, 70)
	RgbOverlayText = tcell.NewRGBColor(255, 240, 200)
)

// Styles
var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUDText)
	StyleBorder     = StyleBackground.Foreground(RgbBorder)
	StyleFilled     = tcell.StyleDefault.Background(RgbFilled).Foreground(RgbFilled)
	StyleLine       = StyleBackground.Foreground(RgbLine)
	StyleGrowing    = StyleBackground.Foreground(RgbGrowing).Bold(true)
	StyleBall       = StyleBackground.Foreground(RgbBall).Bold(true)
	StylePaddle     = StyleBackground.Foreground(RgbPaddle)
	StyleCursor     = StyleBackground.Foreground(RgbCursor).Bold(true)
	StyleHUD        = tcell.StyleDefault.Foreground(RgbHUDText)
	StyleHUDDim     = tcell.StyleDefault.Foreground(RgbHUDDim)
	StyleOverlay    = tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayText)
)

// Glyphs
const (
	GlyphFilled     = '█'
	GlyphHorizontal = '─'
	GlyphVertical   = '│'
	GlyphCross      = '┼'
	GlyphBall       = '●'
	GlyphPaddle     = '▀'
	GlyphCursor     = '+'
	GlyphCursorH    = '↔'
	GlyphCursorV    = '↕'
)
