package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-front/internal/config"
	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/service"
	"github.com/MKhiriev/go-shop-front/internal/state"
	"github.com/MKhiriev/go-shop-front/internal/tui"
	"github.com/MKhiriev/go-shop-front/internal/workers"
)

type App struct {
	state    *state.State
	services *service.Services
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(st *state.State, services *service.Services, ui *tui.TUI, cfg config.Workers, log *logger.Logger) (*App, error) {
	autosave := workers.NewAutosave(st, cfg.AutosaveInterval, log)

	return &App{
		state:    st,
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(autosave),
		logger:   log,
	}, nil
}

// Run hydrates the state from the durable store, starts the background
// workers and blocks in the terminal UI until the user quits. Stopping the
// workers performs the final state flush.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	if err := a.state.Hydrate(ctx); err != nil {
		return fmt.Errorf("hydrate state: %w", err)
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
