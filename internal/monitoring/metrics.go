package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the counters the reconciliation flows emit. A single
// instance is built at startup and shared through DI.
type Metrics struct {
	PurchasesTotal           *prometheus.CounterVec
	CallbacksTotal           *prometheus.CounterVec
	CallbackAnomaliesTotal   *prometheus.CounterVec
	TicketsIssuedTotal       prometheus.Counter
	ReservationsExpiredTotal prometheus.Counter
	GatewayRequestDuration   prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PurchasesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tickethub_purchases_total",
			Help: "Purchase attempts by result.",
		}, []string{"result"}),
		CallbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tickethub_payment_callbacks_total",
			Help: "Verified payment callbacks by outcome.",
		}, []string{"outcome"}),
		CallbackAnomaliesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tickethub_callback_anomalies_total",
			Help: "Callbacks that could not be applied cleanly, by kind.",
		}, []string{"kind"}),
		TicketsIssuedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tickethub_tickets_issued_total",
			Help: "Tickets issued for confirmed reservations.",
		}),
		ReservationsExpiredTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tickethub_reservations_expired_total",
			Help: "Pending reservations expired by the sweep.",
		}),
		GatewayRequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tickethub_gateway_request_duration_seconds",
			Help:    "Latency of create-payment calls against the gateway.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Anomaly kinds recorded by the callback flow.
const (
	AnomalyUnknownHandle      = "unknown_handle"
	AnomalyAmountMismatch     = "amount_mismatch"
	AnomalyConflictingOutcome = "conflicting_outcome"
)
