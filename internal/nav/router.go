package nav

import (
	"context"

	"github.com/MKhiriev/go-shop-front/internal/logger"
)

// Router owns the active view and enforces access gates on every
// transition. Profile and orders require a logged-in session, admin
// requires the admin role. A rejected transition redirects and emits a
// notification instead of failing.
type Router struct {
	gate     Gatekeeper
	notifier Notifier
	logger   *logger.Logger

	current View
	hooks   map[View][]Hook
}

func NewRouter(gate Gatekeeper, notifier Notifier, log *logger.Logger) *Router {
	return &Router{
		gate:     gate,
		notifier: notifier,
		logger:   log,
		current:  ViewHome,
		hooks:    make(map[View][]Hook),
	}
}

// Current returns the active view.
func (r *Router) Current() View {
	return r.current
}

// OnEnter registers a hook that fires every time the view is entered,
// including redirected entries.
func (r *Router) OnEnter(view View, hook Hook) {
	r.hooks[view] = append(r.hooks[view], hook)
}

// Navigate switches to the requested view, applying access gates first.
// It returns the view actually shown, which differs from the request when
// a gate redirects.
func (r *Router) Navigate(ctx context.Context, view View) View {
	log := logger.FromContext(ctx)

	if _, ok := knownViews[view]; !ok {
		log.Warn().Str("func", "Navigate").Str("view", string(view)).Msg("unknown view requested")
		view = ViewHome
	}

	if target, ok := r.applyGates(ctx, view); !ok {
		log.Debug().Str("func", "Navigate").
			Str("requested", string(view)).
			Str("redirected", string(target)).
			Msg("access gate redirected navigation")
		view = target
	}

	r.current = view
	for _, hook := range r.hooks[view] {
		hook(ctx, view)
	}
	return view
}

// HandleFragment resolves a location fragment and navigates to it. When
// the fragment already names the active view the call is a no-op, so a
// fragment update caused by Navigate itself does not loop.
func (r *Router) HandleFragment(ctx context.Context, fragment string) View {
	view, ok := ParseView(fragment)
	if !ok {
		view = ViewHome
	}

	if view == r.current {
		return r.current
	}
	return r.Navigate(ctx, view)
}

// applyGates reports whether the view is reachable with the current
// session. When it is not, the second return carries the redirect target.
func (r *Router) applyGates(ctx context.Context, view View) (View, bool) {
	switch view {
	case ViewProfile, ViewOrders:
		if !r.gate.IsLoggedIn(ctx) {
			r.notifier.Notify(ctx, LevelError, "Please login to access this page")
			return ViewAuth, false
		}
	case ViewAdmin:
		if !r.gate.IsAdmin(ctx) {
			r.notifier.Notify(ctx, LevelError, "Admin access required")
			if r.gate.IsLoggedIn(ctx) {
				return ViewHome, false
			}
			return ViewAuth, false
		}
	}
	return view, true
}
