package book

import "sync/atomic"

// Book holds the outstanding interest for one instrument slot:
// a fixed-capacity arena per side plus the next-free-index counters.
// The counters only grow; indices [0, counter) are the only slots
// ever written, and nothing is ever removed or compacted.
type Book struct {
	buys  []Order
	sells []Order

	buyCount  atomic.Int64
	sellCount atomic.Int64
}

// NewBook preallocates both side arenas at the given per-side capacity.
func NewBook(capacity int) *Book {
	return &Book{
		buys:  make([]Order, capacity),
		sells: make([]Order, capacity),
	}
}

// Submit reserves the next slot on the given side and publishes the
// order into it. The fetch-and-add on the side counter is the only
// synchronization between concurrent producers: each caller gets a
// distinct index, nothing more.
//
// Orders that overflow the side arena are dropped, and unknown side
// values are ignored; both outcomes are silent and reported only via
// the return value, which callers are free to discard.
func (b *Book) Submit(side Side, qty, price int64) bool {
	var arena []Order
	var counter *atomic.Int64

	switch side {
	case Buy:
		arena, counter = b.buys, &b.buyCount
	case Sell:
		arena, counter = b.sells, &b.sellCount
	default:
		return false
	}

	pos := counter.Add(1) - 1
	if pos >= int64(len(arena)) {
		// Side arena is full; the order is dropped.
		return false
	}

	slot := &arena[pos]
	slot.side = side
	slot.price = price
	slot.qty.Store(qty)
	slot.active.Store(true) // publish last
	return true
}

// Len returns the number of orders recorded on a side. The raw
// counter can run past the arena when submissions overflowed.
func (b *Book) Len(side Side) int {
	arena := b.buys
	if side == Sell {
		arena = b.sells
	}
	return int(min(b.Reserved(side), int64(len(arena))))
}

// Reserved returns the raw reservation counter for a side, including
// reservations that overflowed and were dropped.
func (b *Book) Reserved(side Side) int64 {
	if side == Sell {
		return b.sellCount.Load()
	}
	return b.buyCount.Load()
}

// Trade is the outcome of one successful match call.
type Trade struct {
	Symbol    string
	Qty       int64
	BuyPrice  int64
	SellPrice int64
}

// MatchOnce scans both sides for the best crossable pair and applies
// at most one trade. Best buy is the strictly greatest price among
// active orders with positive quantity, best sell the strictly least;
// ties go to the lowest index, i.e. the earliest reservation. If
// either side has no candidate, or best buy < best sell, no state
// changes and ok is false.
//
// On a trade, both quantities are decremented by min of the two
// remainings, and each side whose own decrement came back exactly
// zero is deactivated. Two racing calls can select the same slot and
// push its quantity below zero; that residue is left as is.
func (b *Book) MatchOnce() (t Trade, ok bool) {
	var bestBuy, bestSell *Order
	var bestBuyPrice, bestSellPrice int64

	n := min(b.buyCount.Load(), int64(len(b.buys)))
	for i := int64(0); i < n; i++ {
		o := &b.buys[i]
		if !o.active.Load() || o.qty.Load() <= 0 {
			continue
		}
		if bestBuy == nil || o.price > bestBuyPrice {
			bestBuy, bestBuyPrice = o, o.price
		}
	}

	n = min(b.sellCount.Load(), int64(len(b.sells)))
	for i := int64(0); i < n; i++ {
		o := &b.sells[i]
		if !o.active.Load() || o.qty.Load() <= 0 {
			continue
		}
		if bestSell == nil || o.price < bestSellPrice {
			bestSell, bestSellPrice = o, o.price
		}
	}

	if bestBuy == nil || bestSell == nil || bestBuyPrice < bestSellPrice {
		return Trade{}, false
	}

	traded := min(bestBuy.qty.Load(), bestSell.qty.Load())

	if bestBuy.qty.Add(-traded) == 0 {
		bestBuy.active.Store(false)
	}
	if bestSell.qty.Add(-traded) == 0 {
		bestSell.active.Store(false)
	}

	return Trade{
		Qty:       traded,
		BuyPrice:  bestBuyPrice,
		SellPrice: bestSellPrice,
	}, true
}
