package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"nexustrader/config"
	"nexustrader/logger"
	"nexustrader/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout; diagnostics go to a rotating file.
	if err := logger.Setup(cfg.LogFile, cfg.LogMaxSizeMB, cfg.LogMaxBackups); err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}

	model, err := models.NewAppModel(cfg)
	if err != nil {
		fmt.Printf("Error initializing dashboard: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
