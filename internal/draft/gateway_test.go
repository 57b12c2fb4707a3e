package draft

import (
	"context"
	"testing"
	"time"

	"soyco-intake/internal/form"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedGateway(t *testing.T) {
	rec := form.NewOrderRecord()

	t.Run("SuccessAfterLatency", func(t *testing.T) {
		gw := NewSimulatedGateway(SimConfig{
			SaveLatency:     20 * time.Millisecond,
			SaveFailureRate: -1,
		})

		start := time.Now()
		err := gw.SaveDraft(context.Background(), rec)

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("AlwaysFails", func(t *testing.T) {
		gw := NewSimulatedGateway(SimConfig{
			SaveLatency:     time.Millisecond,
			SaveFailureRate: 1.0,
		})

		assert.Error(t, gw.SaveDraft(context.Background(), rec))
	})

	t.Run("DeterministicSeed", func(t *testing.T) {
		run := func() []bool {
			gw := NewSimulatedGateway(SimConfig{
				SaveLatency:     time.Millisecond,
				SaveFailureRate: 0.5,
				Seed:            42,
			})
			var outcomes []bool
			for i := 0; i < 10; i++ {
				outcomes = append(outcomes, gw.SaveDraft(context.Background(), rec) == nil)
			}
			return outcomes
		}

		assert.Equal(t, run(), run())
	})

	t.Run("CancellationShortCircuits", func(t *testing.T) {
		gw := NewSimulatedGateway(SimConfig{
			SubmitLatency:     time.Second,
			SubmitFailureRate: -1,
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := gw.SubmitOrder(ctx, "order-1", rec)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})
}
