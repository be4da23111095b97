package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/slidecal/app"
	"github.com/jask/slidecal/internal/config"
	"github.com/jask/slidecal/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	opts, err := app.FromConfig(cfg, logger)
	if err != nil {
		log.Fatalf("calendar: %v", err)
	}
	logger.Info("starting playground", "calendars", len(opts.Calendars), "locale", cfg.Calendar.Locale)

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
