package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/urepair/console/internal/client"
	"github.com/urepair/console/internal/config"
	"github.com/urepair/console/internal/service/auth"
	"github.com/urepair/console/internal/service/directory"
	"github.com/urepair/console/internal/service/equipment"
	"github.com/urepair/console/internal/service/issue"
	"github.com/urepair/console/internal/service/user"
	"github.com/urepair/console/internal/tui"
	"github.com/urepair/console/pkg/logger"
	"github.com/urepair/console/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI; logs go to a file when
	// configured, otherwise they are dropped.
	log := logger.Discard()
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		log = logger.NewLogger(&logger.Config{
			Level:      logger.ParseLevel(cfg.Log.Level),
			TimeFormat: time.RFC3339,
			Output:     file,
		})
	}

	m := metrics.New("urepair_console")
	if err := m.Register(prometheus.DefaultRegisterer); err != nil {
		log.Warn("metrics registration failed", "error", err)
	}

	apiClient, err := client.New(cfg.API, log, m)
	if err != nil {
		log.Fatal(err, "failed to build API client")
	}

	deps := tui.Deps{
		Issues:    issue.NewService(apiClient, log),
		Equipment: equipment.NewService(apiClient, log),
		Users:     user.NewService(apiClient, log),
		Directory: directory.NewService(apiClient, cfg.Directory, log),
		Auth:      auth.NewService(apiClient, log),
		Logger:    log,
	}

	program := tea.NewProgram(tui.New(deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatal(err, "console crashed")
	}
}
