package autosave

import (
	"context"
	"sync"
	"time"

	"soyco-intake/internal/form"
	"soyco-intake/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Saver is the slice of the draft store the autosaver needs.
type Saver interface {
	SaveDraft(ctx context.Context, rec *form.OrderRecord) error
}

// Autosaver coalesces rapid edits into fewer saves. It sits upstream of
// the draft store: every Notify overwrites the pending snapshot and
// re-arms the debounce timer, so only the latest state of a burst is
// saved. A rate limiter additionally caps how often flushes may hit the
// store, whatever the debounce interval is tuned to.
type Autosaver struct {
	saver    Saver
	debounce time.Duration
	limiter  *rate.Limiter

	mu      sync.Mutex
	pending *form.OrderRecord
	timer   *time.Timer
	closed  bool
	wg      sync.WaitGroup
}

func New(saver Saver, debounce time.Duration, limiter *rate.Limiter) *Autosaver {
	if debounce <= 0 {
		debounce = 30 * time.Second
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(5*time.Second), 1)
	}
	return &Autosaver{
		saver:    saver,
		debounce: debounce,
		limiter:  limiter,
	}
}

// Notify records the latest draft state and (re)starts the debounce
// window. Safe to call from the editing flow on every change.
func (a *Autosaver) Notify(rec *form.OrderRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.pending = rec.Clone()
	if a.timer == nil {
		a.timer = time.AfterFunc(a.debounce, a.fire)
	} else {
		a.timer.Reset(a.debounce)
	}
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.wg.Add(1)
	a.mu.Unlock()

	defer a.wg.Done()
	a.flush(context.Background())
}

func (a *Autosaver) flush(ctx context.Context) {
	a.mu.Lock()
	rec := a.pending
	a.pending = nil
	a.mu.Unlock()

	if rec == nil {
		return
	}
	if err := a.limiter.Wait(ctx); err != nil {
		return
	}
	if err := a.saver.SaveDraft(ctx, rec); err != nil {
		// the store keeps the error; the next burst retries anyway
		logger.FromCtx(ctx).Warn("autosave failed", zap.Error(err))
	}
}

// Close stops the timer and synchronously flushes any pending snapshot.
func (a *Autosaver) Close(ctx context.Context) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()

	a.wg.Wait()
	a.flush(ctx)
}
