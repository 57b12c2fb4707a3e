package draft

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"soyco-intake/internal/form"
	"soyco-intake/internal/logger"

	"go.uber.org/zap"
)

// Gateway is the upstream order API the store persists drafts to and
// submits orders through. SubmitOrder takes a client-generated order ID so
// the upstream can deduplicate retries.
type Gateway interface {
	SaveDraft(ctx context.Context, rec *form.OrderRecord) error
	SubmitOrder(ctx context.Context, orderID string, rec *form.OrderRecord) error
}

// SimConfig tunes the simulated gateway. Zero values fall back to the
// defaults below; a negative failure rate disables failures entirely.
type SimConfig struct {
	SaveLatency       time.Duration
	SubmitLatency     time.Duration
	SaveFailureRate   float64
	SubmitFailureRate float64
	Seed              int64
}

const (
	defaultSaveLatency       = 1000 * time.Millisecond
	defaultSubmitLatency     = 1500 * time.Millisecond
	defaultSaveFailureRate   = 0.10
	defaultSubmitFailureRate = 0.05
)

var errUpstream = errors.New("upstream rejected the request")

// simGateway stands in for the real order API: it sleeps for the
// configured latency and fails with a fixed probability.
type simGateway struct {
	cfg SimConfig

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedGateway(cfg SimConfig) Gateway {
	if cfg.SaveLatency == 0 {
		cfg.SaveLatency = defaultSaveLatency
	}
	if cfg.SubmitLatency == 0 {
		cfg.SubmitLatency = defaultSubmitLatency
	}
	if cfg.SaveFailureRate == 0 {
		cfg.SaveFailureRate = defaultSaveFailureRate
	}
	if cfg.SubmitFailureRate == 0 {
		cfg.SubmitFailureRate = defaultSubmitFailureRate
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &simGateway{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *simGateway) SaveDraft(ctx context.Context, rec *form.OrderRecord) error {
	return g.call(ctx, g.cfg.SaveLatency, g.cfg.SaveFailureRate)
}

func (g *simGateway) SubmitOrder(ctx context.Context, orderID string, rec *form.OrderRecord) error {
	logger.FromCtx(ctx).Debug("simulated submit",
		zap.String("order_id", orderID),
		zap.Int("line_items", len(rec.OrderDetails)),
	)
	return g.call(ctx, g.cfg.SubmitLatency, g.cfg.SubmitFailureRate)
}

func (g *simGateway) call(ctx context.Context, latency time.Duration, failureRate float64) error {
	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	g.mu.Lock()
	roll := g.rng.Float64()
	g.mu.Unlock()

	if failureRate > 0 && roll < failureRate {
		return errUpstream
	}
	return nil
}
