package simulator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"tickermatch/domain/book"
	"tickermatch/service"
)

// DefaultTickers is the instrument set used when none is configured.
var DefaultTickers = []string{
	"AAPL", "GOOG", "MSFT", "AMZN", "FB", "TSLA", "NFLX", "NVDA",
}

// Simulator generates random order flow against the engine.
type Simulator struct {
	svc       *service.OrderService
	workers   int
	perWorker int
	tickers   []string
	log       *zap.Logger
}

func New(
	svc *service.OrderService,
	workers, perWorker int,
	tickers []string,
	log *zap.Logger,
) *Simulator {
	if len(tickers) == 0 {
		tickers = DefaultTickers
	}
	return &Simulator{
		svc:       svc,
		workers:   workers,
		perWorker: perWorker,
		tickers:   tickers,
		log:       log,
	}
}

// Run launches the worker pool and blocks until every worker has
// finished its iterations or the context is canceled.
func (s *Simulator) Run(ctx context.Context) {
	s.log.Info("simulation started",
		zap.Int("workers", s.workers),
		zap.Int("orders_per_worker", s.perWorker),
		zap.Int("tickers", len(s.tickers)),
	)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		seed := time.Now().UnixNano() + int64(w)
		go func(seed int64) {
			defer wg.Done()
			s.work(ctx, rand.New(rand.NewSource(seed)))
		}(seed)
	}
	wg.Wait()
}

// work is one worker's loop: submit a random order, then immediately
// try to match that ticker. Quantities are 1..1000 and prices 10..500.
func (s *Simulator) work(ctx context.Context, rng *rand.Rand) {
	for i := 0; i < s.perWorker; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		side := book.Buy
		if rng.Intn(2) == 1 {
			side = book.Sell
		}
		ticker := s.tickers[rng.Intn(len(s.tickers))]
		qty := int64(rng.Intn(1000) + 1)
		price := int64(rng.Intn(491) + 10)

		s.svc.Submit(side, ticker, qty, price)
		s.svc.Match(ticker)
	}
}
