package publisher

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"go.uber.org/zap"

	"tickermatch/service"
)

// EventProducer sends one encoded event to the external sink.
type EventProducer interface {
	Send(key, value []byte) error
	Close() error
}

// Publisher buffers trade events and ships them from a single
// background goroutine, keeping the matching path free of IO.
type Publisher struct {
	producer EventProducer
	events   chan service.TradeEvent
	log      *zap.Logger
	dropped  atomic.Uint64
}

func New(producer EventProducer, buffer int, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		events:   make(chan service.TradeEvent, buffer),
		log:      log,
	}
}

// Publish enqueues an event without blocking. When the buffer is full
// the event is dropped; the engine's notification contract is
// best-effort, same as its insertion path.
func (p *Publisher) Publish(ev service.TradeEvent) {
	select {
	case p.events <- ev:
	default:
		p.dropped.Add(1)
	}
}

// Run ships buffered events until the context is canceled.
func (p *Publisher) Run(ctx context.Context) {
	p.log.Info("publisher started")

	for {
		select {
		case <-ctx.Done():
			p.drain()
			return
		case ev := <-p.events:
			p.send(ev)
		}
	}
}

// Dropped returns how many events were discarded on a full buffer.
func (p *Publisher) Dropped() uint64 {
	return p.dropped.Load()
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

func (p *Publisher) send(ev service.TradeEvent) {
	value, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("encode trade event", zap.Error(err))
		return
	}
	if err := p.producer.Send([]byte(ev.Symbol), value); err != nil {
		p.log.Warn("publish trade event",
			zap.Uint64("seq", ev.Seq),
			zap.Error(err),
		)
	}
}

func (p *Publisher) drain() {
	for {
		select {
		case ev := <-p.events:
			p.send(ev)
		default:
			return
		}
	}
}
