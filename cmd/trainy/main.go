package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitroutine/trainy/internal/storage"
	"github.com/fitroutine/trainy/internal/update"
	"github.com/fitroutine/trainy/internal/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trainy failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.LoadRuntimeConfig()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return err
	}
	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var api *weather.Client
	if cfg.ProxyURL != "" {
		api = weather.NewClient(cfg.ProxyURL, nil)
	}

	model := update.NewModelWithDeps(store, api, weather.Location(cfg.Location))
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
