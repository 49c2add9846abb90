package tui

import (
	"context"

	"github.com/MKhiriev/go-shop-front/internal/nav"
)

type notification struct {
	level nav.Level
	text  string
}

// QueueNotifier collects notifications emitted synchronously during a
// router transition so the update loop can render them afterwards. It is
// only touched from the bubbletea goroutine and needs no locking.
type QueueNotifier struct {
	pending []notification
}

func NewQueueNotifier() *QueueNotifier {
	return &QueueNotifier{}
}

// Notify implements nav.Notifier.
func (n *QueueNotifier) Notify(_ context.Context, level nav.Level, message string) {
	n.pending = append(n.pending, notification{level: level, text: message})
}

func (n *QueueNotifier) drain() []notification {
	out := n.pending
	n.pending = nil
	return out
}
