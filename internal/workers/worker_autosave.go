package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-front/internal/logger"
)

const defaultAutosaveInterval = 30 * time.Second

// Autosave periodically flushes the in-memory application state to the
// durable store, so a crash loses at most one interval of changes. The
// worker is idle until Run is called.
type Autosave struct {
	state    Persister
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutosave creates an Autosave worker flushing every interval. If
// interval is zero or negative it defaults to 30 seconds.
func NewAutosave(state Persister, interval time.Duration, log *logger.Logger) *Autosave {
	if interval <= 0 {
		interval = defaultAutosaveInterval
	}
	return &Autosave{state: state, interval: interval, logger: log}
}

// Run implements Worker. It stops any previously running flush loop, then
// launches a background goroutine that persists the state every interval.
// The goroutine exits when ctx is cancelled or Stop is called.
func (a *Autosave) Run(ctx context.Context) {
	a.stop()

	a.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		t := time.NewTicker(a.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				a.flush(jobCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the flush loop, blocks until the
// goroutine has exited and performs one final flush so the latest changes
// are not lost. Safe to call when the worker is not running.
func (a *Autosave) Stop() {
	a.stop()
	a.flush(context.Background())
}

func (a *Autosave) stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.wg.Wait()
}

func (a *Autosave) flush(ctx context.Context) {
	a.state.Lock()
	defer a.state.Unlock()

	if err := a.state.Persist(ctx); err != nil {
		a.logger.Error().Err(err).Str("func", "flush").Msg("autosave flush failed")
	}
}
