package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	ChargesInitiated    = prometheus.NewCounter(prometheus.CounterOpts{Name: "payments_charges_initiated_total", Help: "Checkout charges created against the gateway"})
	ReconcileApplied    = prometheus.NewCounter(prometheus.CounterOpts{Name: "payments_reconcile_applied_total", Help: "Settlement events applied to payments"})
	ReconcileDuplicates = prometheus.NewCounter(prometheus.CounterOpts{Name: "payments_reconcile_duplicate_total", Help: "Gateway events dropped as duplicate deliveries"})
	RefundsIssued       = prometheus.NewCounter(prometheus.CounterOpts{Name: "payments_refunds_total", Help: "Refunds issued by admins"})
)

// Handler exposes the /metrics HTTP handler with a singleton registry.
func Handler() http.Handler {
	once.Do(func() {
		prometheus.MustRegister(
			ChargesInitiated,
			ReconcileApplied,
			ReconcileDuplicates,
			RefundsIssued,
		)
	})
	return promhttp.Handler()
}
