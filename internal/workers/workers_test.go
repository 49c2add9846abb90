package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-front/internal/logger"
)

// countingPersister tracks Persist calls and checks the lock is held.
type countingPersister struct {
	mu       sync.Mutex
	locked   bool
	persists int
	err      error
}

func (p *countingPersister) Lock()   { p.mu.Lock(); p.locked = true }
func (p *countingPersister) Unlock() { p.locked = false; p.mu.Unlock() }

func (p *countingPersister) Persist(context.Context) error {
	if !p.locked {
		panic("Persist called without the lock held")
	}
	p.persists++
	return p.err
}

func (p *countingPersister) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.persists
}

func TestAutosave_FlushesPeriodically(t *testing.T) {
	p := &countingPersister{}
	a := NewAutosave(p, 10*time.Millisecond, logger.Nop())

	a.Run(context.Background())
	time.Sleep(55 * time.Millisecond)
	a.Stop()

	assert.GreaterOrEqual(t, p.count(), 3)
}

func TestAutosave_StopPerformsFinalFlush(t *testing.T) {
	p := &countingPersister{}
	a := NewAutosave(p, time.Hour, logger.Nop())

	a.Run(context.Background())
	a.Stop()

	// The interval never elapsed, so the single flush came from Stop.
	assert.Equal(t, 1, p.count())
}

func TestAutosave_StopBeforeRun(t *testing.T) {
	p := &countingPersister{}
	a := NewAutosave(p, time.Hour, logger.Nop())

	a.Stop()
	assert.Equal(t, 1, p.count())
}

func TestAutosave_DoubleStop(t *testing.T) {
	p := &countingPersister{}
	a := NewAutosave(p, time.Hour, logger.Nop())

	a.Run(context.Background())
	a.Stop()
	a.Stop()

	assert.Equal(t, 2, p.count())
}

func TestAutosave_ContextCancelStopsLoop(t *testing.T) {
	p := &countingPersister{}
	a := NewAutosave(p, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	a.Run(ctx)
	cancel()
	time.Sleep(20 * time.Millisecond)

	before := p.count()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, before, p.count())
}

func TestAutosave_PersistErrorDoesNotStopLoop(t *testing.T) {
	p := &countingPersister{err: assert.AnError}
	a := NewAutosave(p, 10*time.Millisecond, logger.Nop())

	a.Run(context.Background())
	time.Sleep(35 * time.Millisecond)
	a.Stop()

	assert.GreaterOrEqual(t, p.count(), 2)
}

func TestAutosave_DefaultInterval(t *testing.T) {
	a := NewAutosave(&countingPersister{}, 0, logger.Nop())
	assert.Equal(t, defaultAutosaveInterval, a.interval)

	a = NewAutosave(&countingPersister{}, -time.Second, logger.Nop())
	assert.Equal(t, defaultAutosaveInterval, a.interval)
}

// recordingWorker tracks Run and Stop calls for the aggregate tests.
type recordingWorker struct {
	id    int
	runs  *[]int
	stops *[]int
}

func (w *recordingWorker) Run(context.Context) { *w.runs = append(*w.runs, w.id) }
func (w *recordingWorker) Stop()               { *w.stops = append(*w.stops, w.id) }

func TestWorkers_RunAndStopOrder(t *testing.T) {
	var runs, stops []int
	ws := NewWorkers(
		&recordingWorker{id: 1, runs: &runs, stops: &stops},
		&recordingWorker{id: 2, runs: &runs, stops: &stops},
		&recordingWorker{id: 3, runs: &runs, stops: &stops},
	)

	ws.Run(context.Background())
	ws.Stop()

	require.Equal(t, []int{1, 2, 3}, runs)
	assert.Equal(t, []int{3, 2, 1}, stops)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	ws.Run(context.Background())
	ws.Stop()
}
