package app

import (
	"fmt"
	"log/slog"

	"github.com/jask/slidecal/core"
	"github.com/jask/slidecal/internal/config"
	"github.com/jask/slidecal/navigation"
	"github.com/jask/slidecal/screens"
)

// Options holds everything New needs.
type Options struct {
	Calendars []screens.CalendarConfig
	Keys      *core.KeyRegistry
	Theme     core.Theme
	Logger    *slog.Logger
}

// FromConfig builds one calendar per configured instance. Every instance
// shares the locale, bounds and selection mode.
func FromConfig(cfg config.Config, logger *slog.Logger) (Options, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	loc, err := cfg.Calendar.NewLocale()
	if err != nil {
		return Options{}, fmt.Errorf("locale: %w", err)
	}
	bounds, err := cfg.Calendar.Bounds()
	if err != nil {
		return Options{}, err
	}
	actives, err := cfg.Calendar.ActiveDates()
	if err != nil {
		return Options{}, err
	}
	disabled, err := cfg.Calendar.Disabled()
	if err != nil {
		return Options{}, err
	}

	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys)
	keys := core.NewKeyRegistry(bindings)
	theme := core.Theme{Primary: cfg.Theme.Primary, PrimaryLight: cfg.Theme.PrimaryLight}
	styles := theme.Styles()

	opts := Options{Keys: keys, Theme: theme, Logger: logger}
	for i, active := range actives {
		instance := i + 1
		opts.Calendars = append(opts.Calendars, screens.CalendarConfig{
			Locale:               loc,
			Kind:                 cfg.Calendar.SelectionKind(),
			Bounds:               bounds,
			ActiveDate:           active,
			SelectorStartingYear: cfg.Calendar.SelectorStartingYear,
			SelectorEndingYear:   cfg.Calendar.SelectorEndingYear,
			DisabledDays:         disabled,
			SlideDuration:        cfg.Calendar.SlideDuration,
			Keys:                 keys,
			Styles:               styles,
			Logger:               logger,
			HighlightWeekends:    cfg.Calendar.HighlightWeekends,
			Footer: func(st navigation.State) string {
				return fmt.Sprintf("#%d %s", instance, st.ActiveDate)
			},
			Navigation: navigation.NavigationConfig{
				OnPrevClick: func() { logger.Debug("previous clicked", "instance", instance) },
				OnNextClick: func() { logger.Debug("next clicked", "instance", instance) },
			},
		})
	}
	return opts, nil
}
