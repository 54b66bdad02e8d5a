package book

import "sync/atomic"

type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// Order is one slot in a side arena. A slot is reserved exclusively
// for a single order and is never reused.
//
// active doubles as the publish flag: the insertion path writes the
// plain fields first and stores active last, so a concurrent scan
// that observes active==true observes a fully formed order. After
// publication active moves only true -> false, flipped by the
// matching path the instant its own decrement returns exactly zero.
type Order struct {
	active atomic.Bool
	qty    atomic.Int64

	side  Side
	price int64
}

// Active reports whether the order is published and not fully filled.
func (o *Order) Active() bool {
	return o.active.Load()
}

// Remaining returns the unmatched quantity. Under concurrent matchers
// this can be driven below zero; callers must not assume it is clamped.
func (o *Order) Remaining() int64 {
	return o.qty.Load()
}

func (o *Order) Side() Side {
	return o.side
}

func (o *Order) Price() int64 {
	return o.price
}
