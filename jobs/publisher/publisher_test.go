package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tickermatch/service"
)

type stubProducer struct {
	sent    chan []byte
	sendErr error
}

func newStubProducer() *stubProducer {
	return &stubProducer{sent: make(chan []byte, 16)}
}

func (s *stubProducer) Send(key, value []byte) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent <- value
	return nil
}

func (s *stubProducer) Close() error { return nil }

func TestPublisherShipsEncodedEvents(t *testing.T) {
	producer := newStubProducer()
	p := New(producer, 8, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	p.Publish(service.TradeEvent{
		V: 1, Type: "match", Seq: 7,
		Symbol: "AAPL", Qty: 60, BuyPrice: 50, SellPrice: 45,
	})

	select {
	case raw := <-producer.sent:
		var ev service.TradeEvent
		require.NoError(t, json.Unmarshal(raw, &ev))
		assert.Equal(t, uint64(7), ev.Seq)
		assert.Equal(t, "AAPL", ev.Symbol)
		assert.Equal(t, int64(60), ev.Qty)
	case <-time.After(2 * time.Second):
		t.Fatal("event never reached the producer")
	}
}

func TestPublishDropsOnFullBuffer(t *testing.T) {
	// No Run loop: the buffer never drains.
	p := New(newStubProducer(), 1, zap.NewNop())

	p.Publish(service.TradeEvent{Seq: 1})
	p.Publish(service.TradeEvent{Seq: 2})
	p.Publish(service.TradeEvent{Seq: 3})

	assert.Equal(t, uint64(2), p.Dropped())
}

func TestSendFailureIsNonFatal(t *testing.T) {
	producer := newStubProducer()
	producer.sendErr = errors.New("broker down")
	p := New(producer, 4, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	p.Publish(service.TradeEvent{Seq: 1})
	cancel()

	// Run drains on cancel; the failed send must not panic or block.
	p.Run(ctx)
}
