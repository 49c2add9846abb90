// Package tui is the terminal storefront. It renders the catalog, cart,
// checkout, orders, support, account and admin screens, and delegates
// every screen change to the navigation router so access gates apply
// uniformly.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/nav"
	"github.com/MKhiriev/go-shop-front/internal/service"
)

type TUI struct {
	services *service.Services
	router   *nav.Router
	notifier *QueueNotifier
	logger   *logger.Logger
}

func New(services *service.Services, router *nav.Router, notifier *QueueNotifier, log *logger.Logger) *TUI {
	return &TUI{services: services, router: router, notifier: notifier, logger: log}
}

// Run blocks until the user quits the storefront.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.router, t.notifier)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Error().Err(err).Str("func", "Run").Msg("terminal ui stopped with error")
		return err
	}
	return nil
}
