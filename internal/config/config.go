package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/slidecal/calendar"
	"github.com/jask/slidecal/selection"
)

// Config holds playground configuration.
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Log      LogConfig      `mapstructure:"log"`
	// Keys overrides key bindings by action name.
	Keys map[string][]string `mapstructure:"keys"`
}

// CalendarConfig holds the settings every calendar instance shares, plus
// per-instance active dates.
type CalendarConfig struct {
	Locale               string        `mapstructure:"locale"`
	Timezone             string        `mapstructure:"timezone"`
	SlideDuration        time.Duration `mapstructure:"slide_duration"`
	MinimumDate          string        `mapstructure:"minimum_date"`
	MaximumDate          string        `mapstructure:"maximum_date"`
	SelectorStartingYear int           `mapstructure:"selector_starting_year"`
	SelectorEndingYear   int           `mapstructure:"selector_ending_year"`
	Selection            string        `mapstructure:"selection"`
	DisabledDays         []string      `mapstructure:"disabled_days"`
	HighlightWeekends    bool          `mapstructure:"highlight_weekends"`
	// Instances lists one active date per calendar; "" derives it from the
	// selection.
	Instances []string `mapstructure:"instances"`
}

// ThemeConfig holds colours.
type ThemeConfig struct {
	Primary      string `mapstructure:"primary"`
	PrimaryLight string `mapstructure:"primary_light"`
}

// LogConfig holds slog settings. An empty path discards logs.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix SLIDECAL_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SLIDECAL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "slidecal"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SLIDECAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine; a broken one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.locale", "en")
	v.SetDefault("calendar.timezone", "Local")
	v.SetDefault("calendar.slide_duration", "400ms")
	v.SetDefault("calendar.minimum_date", "")
	v.SetDefault("calendar.maximum_date", "")
	v.SetDefault("calendar.selector_starting_year", 0)
	v.SetDefault("calendar.selector_ending_year", 0)
	v.SetDefault("calendar.selection", "single")
	v.SetDefault("calendar.disabled_days", []string{})
	v.SetDefault("calendar.highlight_weekends", true)
	v.SetDefault("calendar.instances", []string{"2023-01-01", "2023-02-01"})
	v.SetDefault("theme.primary", "#0eca2d")
	v.SetDefault("theme.primary_light", "#cff4d5")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("SLIDECAL_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "slidecal", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("calendar.locale", cfg.Calendar.Locale)
	v.Set("calendar.timezone", cfg.Calendar.Timezone)
	v.Set("calendar.slide_duration", cfg.Calendar.SlideDuration.String())
	v.Set("calendar.minimum_date", cfg.Calendar.MinimumDate)
	v.Set("calendar.maximum_date", cfg.Calendar.MaximumDate)
	v.Set("calendar.selector_starting_year", cfg.Calendar.SelectorStartingYear)
	v.Set("calendar.selector_ending_year", cfg.Calendar.SelectorEndingYear)
	v.Set("calendar.selection", cfg.Calendar.Selection)
	v.Set("calendar.disabled_days", cfg.Calendar.DisabledDays)
	v.Set("calendar.highlight_weekends", cfg.Calendar.HighlightWeekends)
	v.Set("calendar.instances", cfg.Calendar.Instances)
	v.Set("theme.primary", cfg.Theme.Primary)
	v.Set("theme.primary_light", cfg.Theme.PrimaryLight)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Bounds parses the minimum and maximum dates. Empty values leave that side
// open.
func (c CalendarConfig) Bounds() (calendar.Bounds, error) {
	var b calendar.Bounds
	if s := strings.TrimSpace(c.MinimumDate); s != "" {
		d, err := calendar.ParseDate(s)
		if err != nil {
			return calendar.Bounds{}, fmt.Errorf("minimum_date: %w", err)
		}
		b.Minimum = &d
	}
	if s := strings.TrimSpace(c.MaximumDate); s != "" {
		d, err := calendar.ParseDate(s)
		if err != nil {
			return calendar.Bounds{}, fmt.Errorf("maximum_date: %w", err)
		}
		b.Maximum = &d
	}
	if b.Minimum != nil && b.Maximum != nil && calendar.IsBeforeDate(*b.Maximum, *b.Minimum) {
		return calendar.Bounds{}, fmt.Errorf("maximum_date %s is before minimum_date %s", b.Maximum, b.Minimum)
	}
	return b, nil
}

// ActiveDates parses one override per instance. Entries left empty are nil.
// At least one instance is always returned.
func (c CalendarConfig) ActiveDates() ([]*calendar.CalendarDate, error) {
	if len(c.Instances) == 0 {
		return []*calendar.CalendarDate{nil}, nil
	}
	out := make([]*calendar.CalendarDate, 0, len(c.Instances))
	for i, raw := range c.Instances {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			out = append(out, nil)
			continue
		}
		d, err := calendar.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("instances[%d]: %w", i, err)
		}
		out = append(out, &d)
	}
	return out, nil
}

// Disabled parses disabled_days.
func (c CalendarConfig) Disabled() ([]calendar.CalendarDate, error) {
	out := make([]calendar.CalendarDate, 0, len(c.DisabledDays))
	for i, raw := range c.DisabledDays {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("disabled_days[%d]: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// SelectionKind maps the selection setting to a variant. Unknown names
// select a single date.
func (c CalendarConfig) SelectionKind() selection.Kind {
	switch strings.ToLower(strings.TrimSpace(c.Selection)) {
	case "multi", "multiple":
		return selection.KindMulti
	case "range":
		return selection.KindRange
	}
	return selection.KindSingle
}

// NewLocale builds the configured Gregorian locale in the configured zone.
func (c CalendarConfig) NewLocale() (*calendar.Gregorian, error) {
	loc := time.Local
	if tz := strings.TrimSpace(c.Timezone); tz != "" && tz != "Local" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("timezone %q: %w", tz, err)
		}
		loc = l
	}
	return calendar.NewGregorian(c.Locale, calendar.WithLocation(loc))
}
