package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/slidecal/calendar"
	"github.com/jask/slidecal/selection"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SLIDECAL_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "en", cfg.Calendar.Locale)
	require.Equal(t, 400*time.Millisecond, cfg.Calendar.SlideDuration)
	require.Equal(t, []string{"2023-01-01", "2023-02-01"}, cfg.Calendar.Instances)
	require.Equal(t, "#0eca2d", cfg.Theme.Primary)
	require.Equal(t, selection.KindSingle, cfg.Calendar.SelectionKind())
	require.True(t, cfg.Calendar.HighlightWeekends)

	b, err := cfg.Calendar.Bounds()
	require.NoError(t, err)
	require.Nil(t, b.Minimum)
	require.Nil(t, b.Maximum)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[calendar]
locale = "de"
slide_duration = "250ms"
minimum_date = "2023-01-01"
maximum_date = "2023-12-31"
selection = "range"
instances = ["2023-03-01"]

[log]
level = "debug"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("SLIDECAL_CONFIG", path)
	t.Setenv("SLIDECAL_THEME_PRIMARY", "#112233")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "de", cfg.Calendar.Locale)
	require.Equal(t, 250*time.Millisecond, cfg.Calendar.SlideDuration)
	require.Equal(t, selection.KindRange, cfg.Calendar.SelectionKind())
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "#112233", cfg.Theme.Primary)

	b, err := cfg.Calendar.Bounds()
	require.NoError(t, err)
	require.Equal(t, calendar.Date(2023, 1, 1), *b.Minimum)
	require.Equal(t, calendar.Date(2023, 12, 31), *b.Maximum)

	dates, err := cfg.Calendar.ActiveDates()
	require.NoError(t, err)
	require.Len(t, dates, 1)
	require.Equal(t, calendar.Date(2023, 3, 1), *dates[0])

	loc, err := cfg.Calendar.NewLocale()
	require.NoError(t, err)
	require.Equal(t, "März", loc.MonthName(3))
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[calendar\nlocale = "), 0o644))
	t.Setenv("SLIDECAL_CONFIG", path)
	_, err := Load()
	require.Error(t, err)
}

func TestCalendarConfigValidation(t *testing.T) {
	_, err := CalendarConfig{MinimumDate: "2023-13-01"}.Bounds()
	require.Error(t, err)

	_, err = CalendarConfig{MinimumDate: "2023-06-01", MaximumDate: "2023-01-01"}.Bounds()
	require.Error(t, err)

	dates, err := CalendarConfig{Instances: []string{"", "2023-02-01"}}.ActiveDates()
	require.NoError(t, err)
	require.Nil(t, dates[0])
	require.NotNil(t, dates[1])

	dates, err = CalendarConfig{}.ActiveDates()
	require.NoError(t, err)
	require.Len(t, dates, 1)

	_, err = CalendarConfig{Instances: []string{"soon"}}.ActiveDates()
	require.Error(t, err)

	days, err := CalendarConfig{DisabledDays: []string{"2023-01-05"}}.Disabled()
	require.NoError(t, err)
	require.Equal(t, []calendar.CalendarDate{calendar.Date(2023, 1, 5)}, days)

	require.Equal(t, selection.KindMulti, CalendarConfig{Selection: "Multiple"}.SelectionKind())

	_, err = CalendarConfig{Locale: "en", Timezone: "Nowhere/Special"}.NewLocale()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("SLIDECAL_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Calendar.Locale = "fr"
	cfg.Calendar.SlideDuration = time.Second
	cfg.Calendar.HighlightWeekends = false
	require.NoError(t, Save(cfg))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, "fr", again.Calendar.Locale)
	require.Equal(t, time.Second, again.Calendar.SlideDuration)
	require.False(t, again.Calendar.HighlightWeekends)
}
