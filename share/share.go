// Package share builds the social-share message for a finished or running game.
// Nothing in the game core waits on it; the CLI prints the result.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MansourDch/jezzball-clone/config"
)

const (
	// DefaultMessage is used when the player leaves the message empty
	DefaultMessage = "I just played JezzBall - a nostalgic arcade game!"
	// ComposeBase is the Warpcast compose endpoint
	ComposeBase = "https://warpcast.com/~/compose"
)

var ErrBadBase = errors.New("invalid compose base url")

// Summary is the standing reported in a share
type Summary struct {
	Score   int
	Level   int
	Lives   int
	Filled  int
	Variant string
}

// Text formats the share body. Wall games report the claimed area; playURL is omitted when empty
func (s Summary) Text(message, playURL string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultMessage
	}

	var b strings.Builder
	b.WriteString(message)
	fmt.Fprintf(&b, "\n\nScore: %d\nLevel: %d\nLives: %d", s.Score, s.Level, s.Lives)
	if s.Variant == config.VariantWall {
		fmt.Fprintf(&b, "\nFilled: %d%%", s.Filled)
	}
	if playURL != "" {
		fmt.Fprintf(&b, "\n\nPlay now: %s", playURL)
	}
	return b.String()
}

// ComposeURL appends text as the query parameter of base, keeping any
// parameters base already carries
func ComposeURL(base, text string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadBase, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrBadBase, base)
	}
	q := u.Query()
	q.Set("text", text)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

// Card renders the summary as a bordered terminal block
func (s Summary) Card() string {
	row := func(label string, v any) string {
		return labelStyle.Render(fmt.Sprintf("%-8s", label)) + valueStyle.Render(fmt.Sprint(v))
	}
	rows := []string{
		row("Score", s.Score),
		row("Level", s.Level),
		row("Lives", s.Lives),
		row("Filled", fmt.Sprintf("%d%%", s.Filled)),
	}
	if s.Variant != "" {
		rows = append(rows, row("Mode", s.Variant))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
