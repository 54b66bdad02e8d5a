package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Set holds the engine counters. Each Set owns its own registry so
// tests can construct as many as they like.
type Set struct {
	OrdersSubmitted *prometheus.CounterVec
	OrdersDropped   prometheus.Counter
	TradesMatched   prometheus.Counter
	SharesTraded    prometheus.Counter

	registry *prometheus.Registry
}

func New() *Set {
	s := &Set{
		OrdersSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tickermatch_orders_submitted_total",
			Help: "Orders accepted into a book arena, by side.",
		}, []string{"side"}),
		OrdersDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tickermatch_orders_dropped_total",
			Help: "Orders silently dropped on side-capacity overflow or unknown side.",
		}),
		TradesMatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tickermatch_trades_matched_total",
			Help: "Trades applied by the matching path.",
		}),
		SharesTraded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tickermatch_shares_traded_total",
			Help: "Total quantity crossed by matched trades.",
		}),
		registry: prometheus.NewRegistry(),
	}

	s.registry.MustRegister(
		s.OrdersSubmitted,
		s.OrdersDropped,
		s.TradesMatched,
		s.SharesTraded,
	)
	return s
}

// Handler exposes the set for scraping.
func (s *Set) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
