package nav

import "context"

// Level classifies a user-facing notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Notifier delivers transient user-facing messages. The presentation layer
// decides how they are rendered and how long they stay visible.
type Notifier interface {
	Notify(ctx context.Context, level Level, message string)
}

// Gatekeeper answers the session questions the router's access gates need.
// service.AuthService satisfies it.
type Gatekeeper interface {
	IsLoggedIn(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
}

// Hook runs after a view has been entered. Screens register hooks to
// refresh their data on entry.
type Hook func(ctx context.Context, view View)
