package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func plain(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestPlace_Positions(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat("......\n", 5), "\n")

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "center",
			cfg:  Config{Width: 6, Height: 5, Position: Center},
			want: []string{"......", "..XX..", "..XX..", "......", "......"},
		},
		{
			name: "top with padding",
			cfg:  Config{Width: 6, Height: 5, Position: Top, PadY: 1},
			want: []string{"......", "..XX..", "..XX..", "......", "......"},
		},
		{
			name: "bottom",
			cfg:  Config{Width: 6, Height: 5, Position: Bottom},
			want: []string{"......", "......", "......", "..XX..", "..XX.."},
		},
		{
			name: "bottom right inset",
			cfg:  Config{Width: 6, Height: 5, Position: BottomRight, PadX: 1, PadY: 1},
			want: []string{"......", "......", "...XX.", "...XX.", "......"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, plain(Place(tt.cfg, "XX\nXX", bg)))
		})
	}
}

func TestPlace_PadsShortBackground(t *testing.T) {
	got := plain(Place(Config{Width: 4, Height: 3, Position: Bottom}, "ab", "...."))

	require.Len(t, got, 3)
	require.Equal(t, " ab ", got[2])
}

func TestPlace_ClipsWideForeground(t *testing.T) {
	got := plain(Place(Config{Width: 3, Height: 1, Position: Center}, "XXXXX", "..."))

	require.Equal(t, []string{"XXX"}, got)
}

func TestPlace_KeepsBackgroundStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("left") + " plain right"
	got := Place(Config{Width: 16, Height: 1, Position: Center}, "!!", styled)

	require.Equal(t, 16, ansi.StringWidth(got))
	require.Contains(t, ansi.Strip(got), "!!")
	require.True(t, strings.HasPrefix(ansi.Strip(got), "left "))
}

func TestPlace_WideRunes(t *testing.T) {
	got := plain(Place(Config{Width: 6, Height: 1, Position: Center}, "日", "abcdef"))

	require.Equal(t, []string{"ab日ef"}, got)
}
