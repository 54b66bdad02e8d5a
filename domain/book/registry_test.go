package book

import "testing"

func TestResolveSlotDeterministic(t *testing.T) {
	r := NewRegistry(1024, 8)

	for _, sym := range []string{"AAPL", "GOOG", "MSFT", "AMZN", "FB", "TSLA", "NFLX", "NVDA"} {
		first := r.resolveSlot(sym)
		if first < 0 || first >= 1024 {
			t.Fatalf("slot %d for %q out of range", first, sym)
		}
		for i := 0; i < 10; i++ {
			if got := r.resolveSlot(sym); got != first {
				t.Fatalf("resolveSlot(%q) not deterministic: %d vs %d", sym, got, first)
			}
		}
	}
}

func TestResolveSlotBase31(t *testing.T) {
	r := NewRegistry(1024, 8)

	// "AB" hashes to 'A'*31 + 'B' = 65*31 + 66 = 2081; 2081 % 1024 = 33.
	if got := r.resolveSlot("AB"); got != 33 {
		t.Errorf("resolveSlot(AB) = %d, want 33", got)
	}
	if got := r.resolveSlot(""); got != 0 {
		t.Errorf("resolveSlot(empty) = %d, want 0", got)
	}
}

func TestCollidingSymbolsShareABook(t *testing.T) {
	// One slot forces every symbol onto the same book.
	r := NewRegistry(1, 8)

	if r.Lookup("AAPL") != r.Lookup("GOOG") {
		t.Fatal("expected aliased symbols to share a book")
	}

	r.Submit(Buy, "AAPL", 10, 50)
	r.Submit(Sell, "GOOG", 10, 45)

	// Colliding symbols trade against each other; this is accepted
	// behavior, not a defect.
	tr, ok := r.MatchOnce("AAPL")
	if !ok || tr.Qty != 10 {
		t.Errorf("expected cross-symbol trade on shared book, got %+v ok=%v", tr, ok)
	}
}

func TestRegistryStats(t *testing.T) {
	r := NewRegistry(4, 2)

	for i := 0; i < 5; i++ {
		r.Submit(Buy, "AAPL", 1, 10)
	}
	r.Submit(Sell, "AAPL", 1, 10)

	recorded, dropped := r.Stats()
	if recorded != 3 {
		t.Errorf("recorded = %d, want 3", recorded)
	}
	if dropped != 3 {
		t.Errorf("dropped = %d, want 3", dropped)
	}
}
