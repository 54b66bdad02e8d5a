package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"tickermatch/domain/book"
	"tickermatch/infra/metrics"
	"tickermatch/infra/sequence"
)

// TradeEvent is the wire form of a match notification.
type TradeEvent struct {
	V         int    `json:"v"`
	Type      string `json:"type"`
	Seq       uint64 `json:"seq"`
	Symbol    string `json:"symbol"`
	Qty       int64  `json:"qty"`
	BuyPrice  int64  `json:"buy_price"`
	SellPrice int64  `json:"sell_price"`
	Ts        int64  `json:"ts"`
}

// TradeSink receives every matched trade. Publish must not block the
// matching path; implementations drop rather than stall.
type TradeSink interface {
	Publish(ev TradeEvent)
}

// OrderService is the single write entry point into the engine.
type OrderService struct {
	books *book.Registry
	seq   *sequence.Sequencer
	mtr   *metrics.Set
	sink  TradeSink
	log   *zap.Logger
}

// NewOrderService wires all dependencies. sink may be nil, in which
// case trades surface only as log lines and metrics.
func NewOrderService(
	books *book.Registry,
	seq *sequence.Sequencer,
	mtr *metrics.Set,
	sink TradeSink,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		books: books,
		seq:   seq,
		mtr:   mtr,
		sink:  sink,
		log:   log,
	}
}

// -------------------- Commands --------------------

// Submit records a new order. Fire-and-forget: capacity overflow and
// unknown sides drop the order without signaling the caller.
func (s *OrderService) Submit(side book.Side, symbol string, qty, price int64) {
	if s.books.Submit(side, symbol, qty, price) {
		s.mtr.OrdersSubmitted.WithLabelValues(side.String()).Inc()
		return
	}
	s.mtr.OrdersDropped.Inc()
}

// Match applies at most one trade on the symbol's book. A trade is
// assigned a sequence number, logged in the notification format, and
// handed to the sink.
func (s *OrderService) Match(symbol string) (book.Trade, bool) {
	t, ok := s.books.MatchOnce(symbol)
	if !ok {
		return book.Trade{}, false
	}

	seq := s.seq.Next()

	s.log.Info(
		fmt.Sprintf("matched %d shares for %s (buy @ %d vs sell @ %d)",
			t.Qty, t.Symbol, t.BuyPrice, t.SellPrice),
		zap.Uint64("seq", seq),
	)

	s.mtr.TradesMatched.Inc()
	s.mtr.SharesTraded.Add(float64(t.Qty))

	if s.sink != nil {
		s.sink.Publish(TradeEvent{
			V:         1,
			Type:      "match",
			Seq:       seq,
			Symbol:    t.Symbol,
			Qty:       t.Qty,
			BuyPrice:  t.BuyPrice,
			SellPrice: t.SellPrice,
			Ts:        time.Now().UnixNano(),
		})
	}

	return t, true
}

// -------------------- Queries --------------------

// Stats reports recorded and dropped order totals across all books.
func (s *OrderService) Stats() (recorded, dropped int64) {
	return s.books.Stats()
}

// Trades returns the number of trades emitted so far.
func (s *OrderService) Trades() uint64 {
	return s.seq.Current()
}
