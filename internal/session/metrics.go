package session

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the poll loop's counters.
type Metrics struct {
	Cycles        prometheus.Counter
	Notifications prometheus.Counter
	FetchErrors   *prometheus.CounterVec
}

// NewMetrics builds and registers the session metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "centinela_poll_cycles_total",
			Help: "Poll cycles started.",
		}),
		Notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "centinela_notifications_total",
			Help: "Notifications presented for newly seen events.",
		}),
		FetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "centinela_fetch_errors_total",
			Help: "Background fetch failures by resource.",
		}, []string{"resource"}),
	}

	reg.MustRegister(m.Cycles, m.Notifications, m.FetchErrors)
	return m
}
