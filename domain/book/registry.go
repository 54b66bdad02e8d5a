package book

// Registry is the instrument index: a fixed array of book slots,
// addressed by a deterministic hash of the symbol. It is built once
// before any concurrent access begins and passed by handle into every
// operation; there is no global state.
//
// Distinct symbols may alias to the same slot. Collisions are neither
// detected nor surfaced: colliding symbols simply trade against the
// same book. This is an accepted approximation of the design, not a
// defect to repair.
type Registry struct {
	books []*Book
}

// NewRegistry allocates slots book slots, each with the given
// per-side order capacity.
func NewRegistry(slots, ordersPerSide int) *Registry {
	books := make([]*Book, slots)
	for i := range books {
		books[i] = NewBook(ordersPerSide)
	}
	return &Registry{books: books}
}

// Lookup resolves a symbol to its book slot.
func (r *Registry) Lookup(symbol string) *Book {
	return r.books[r.resolveSlot(symbol)]
}

// resolveSlot reduces a base-31 polynomial hash of the symbol's bytes
// modulo the slot count. Pure and deterministic.
func (r *Registry) resolveSlot(symbol string) int {
	var h uint32
	for i := 0; i < len(symbol); i++ {
		h = h*31 + uint32(symbol[i])
	}
	return int(h % uint32(len(r.books)))
}

// Submit records a new order for the symbol. See Book.Submit for the
// overflow and unknown-side contract.
func (r *Registry) Submit(side Side, symbol string, qty, price int64) bool {
	return r.Lookup(symbol).Submit(side, qty, price)
}

// MatchOnce applies at most one trade on the symbol's book.
func (r *Registry) MatchOnce(symbol string) (Trade, bool) {
	t, ok := r.Lookup(symbol).MatchOnce()
	if ok {
		t.Symbol = symbol
	}
	return t, ok
}

// Stats sums recorded and dropped order counts across every book
// slot. Dropped counts come from reservation counters that ran past
// their arenas.
func (r *Registry) Stats() (recorded, dropped int64) {
	for _, b := range r.books {
		for _, side := range []Side{Buy, Sell} {
			rec := int64(b.Len(side))
			recorded += rec
			dropped += b.Reserved(side) - rec
		}
	}
	return recorded, dropped
}
