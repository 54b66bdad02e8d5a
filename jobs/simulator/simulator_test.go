package simulator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"tickermatch/domain/book"
	"tickermatch/infra/metrics"
	"tickermatch/infra/sequence"
	"tickermatch/service"
)

func TestSimulatorStaysWithinCapacity(t *testing.T) {
	const capacity = 64

	svc := service.NewOrderService(
		book.NewRegistry(16, capacity),
		sequence.New(0),
		metrics.New(),
		nil,
		zap.NewNop(),
	)

	sim := New(svc, 4, 500, []string{"AAPL", "GOOG"}, zap.NewNop())
	sim.Run(context.Background())

	recorded, dropped := svc.Stats()
	assert.Positive(t, recorded)
	// Two tickers, two sides, capacity per side bounds what sticks.
	assert.LessOrEqual(t, recorded, int64(2*2*capacity))
	assert.Equal(t, int64(4*500), recorded+dropped)
}

func TestSimulatorHonorsCancellation(t *testing.T) {
	svc := service.NewOrderService(
		book.NewRegistry(16, 1024),
		sequence.New(0),
		metrics.New(),
		nil,
		zap.NewNop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(svc, 2, 1<<20, nil, zap.NewNop())

	done := make(chan struct{})
	go func() {
		sim.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("simulator did not stop on canceled context")
	}
}

func TestDefaultTickersApplied(t *testing.T) {
	svc := service.NewOrderService(
		book.NewRegistry(16, 16),
		sequence.New(0),
		metrics.New(),
		nil,
		zap.NewNop(),
	)

	sim := New(svc, 1, 1, nil, zap.NewNop())
	assert.Equal(t, DefaultTickers, sim.tickers)
}
