package share

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MansourDch/jezzball-clone/config"
)

func TestText(t *testing.T) {
	s := Summary{Score: 420, Level: 3, Lives: 2}

	got := s.Text("  ", "https://example.com/play")
	assert.Equal(t, DefaultMessage+"\n\nScore: 420\nLevel: 3\nLives: 2\n\nPlay now: https://example.com/play", got)

	got = s.Text("beat that", "")
	assert.Equal(t, "beat that\n\nScore: 420\nLevel: 3\nLives: 2", got)
}

func TestTextReportsFillForWallGames(t *testing.T) {
	wall := Summary{Score: 90, Level: 2, Lives: 1, Filled: 43, Variant: config.VariantWall}
	assert.Equal(t, "gg\n\nScore: 90\nLevel: 2\nLives: 1\nFilled: 43%", wall.Text("gg", ""))

	pad := Summary{Score: 90, Level: 1, Lives: 1, Variant: config.VariantPaddle}
	assert.NotContains(t, pad.Text("gg", ""), "Filled")
}

func TestComposeURLRoundTripsText(t *testing.T) {
	text := Summary{Score: 10, Level: 1, Lives: 3}.Text("a & b?", "")
	raw, err := ComposeURL(ComposeBase, text)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, ComposeBase+"?text="))

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, text, u.Query().Get("text"))
}

func TestComposeURLKeepsExistingQuery(t *testing.T) {
	raw, err := ComposeURL("https://example.com/c?embed=1", "hi")
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "1", u.Query().Get("embed"))
	assert.Equal(t, "hi", u.Query().Get("text"))
}

func TestComposeURLRejectsRelative(t *testing.T) {
	_, err := ComposeURL("/compose", "x")
	assert.ErrorIs(t, err, ErrBadBase)
	_, err = ComposeURL("://bad", "x")
	assert.ErrorIs(t, err, ErrBadBase)
}

func TestCard(t *testing.T) {
	card := Summary{Score: 7, Level: 2, Lives: 1, Filled: 40, Variant: "wall"}.Card()
	for _, want := range []string{"Score", "7", "40%", "wall"} {
		assert.Contains(t, card, want)
	}
}
