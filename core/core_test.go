package core

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/slidecal/calendar"
)

func TestMatchMonth(t *testing.T) {
	loc := calendar.English()
	cases := []struct {
		query string
		month int
		ok    bool
	}{
		{"mar", 3, true},
		{"ju", 6, true},
		{"jul", 7, true},
		{"  DEC ", 12, true},
		{"febuary", 2, true},
		{"septmber", 9, true},
		{"", 0, false},
		{"zzzz", 0, false},
	}
	for _, tc := range cases {
		got, ok := MatchMonth(loc, tc.query)
		if ok != tc.ok || got != tc.month {
			t.Fatalf("MatchMonth(%q) = %d, %v; want %d, %v", tc.query, got, ok, tc.month, tc.ok)
		}
	}

	de, err := calendar.NewGregorian("de")
	require.NoError(t, err)
	got, ok := MatchMonth(de, "mär")
	require.True(t, ok)
	require.Equal(t, 3, got)
}

func TestSlideTickCmd(t *testing.T) {
	id := uuid.New()
	msg := SlideTickCmd(id, 0)()
	require.Equal(t, SlideDoneMsg{ID: id}, msg)

	start := time.Now()
	msg = SlideTickCmd(id, 10*time.Millisecond)()
	require.Equal(t, SlideDoneMsg{ID: id}, msg)
	require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestCommands(t *testing.T) {
	require.Equal(t, NavigateMsg{Direction: calendar.Previous}, NavigateCmd(calendar.Previous)())
	require.Equal(t, StatusMsg{Text: "ok"}, StatusCmd("ok")())
	require.Equal(t, StatusMsg{Text: "boom", IsErr: true}, ErrorCmd(errors.New("boom"))())
	require.Equal(t, StatusMsg{}, ErrorCmd(nil)())
}

func TestFooterAndStatusBar(t *testing.T) {
	styles := DefaultTheme().Styles()
	footer := ansi.Strip(RenderFooter(DefaultKeyBindings()[:2], styles, 40))
	require.Contains(t, footer, "q quit")
	require.Contains(t, footer, "tab next calendar")
	require.Equal(t, 40, ansi.StringWidth(footer))

	empty := ansi.Strip(RenderFooter(nil, styles, 20))
	require.Contains(t, empty, "No shortcuts")

	status := ansi.Strip(RenderStatusBar("", false, styles, 12))
	require.Equal(t, "Ready", strings.TrimSpace(status))
	status = ansi.Strip(RenderStatusBar("a very long error message", true, styles, 8))
	require.Equal(t, 8, ansi.StringWidth(status))
}

func TestThemeFallsBack(t *testing.T) {
	custom := Theme{Primary: "#112233"}.Styles()
	def := DefaultTheme().Styles()
	require.Equal(t, def.RangeBetween.GetBackground(), custom.RangeBetween.GetBackground())
	require.NotEqual(t, def.Selected.GetBackground(), custom.Selected.GetBackground())
}
