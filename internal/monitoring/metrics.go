package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	purchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchases_total",
			Help: "Total purchase attempts by outcome",
		},
		[]string{"status"},
	)

	ticketsSoldTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Total tickets sold across all events",
		},
	)

	conflictRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conflict_rejections_total",
			Help: "Event bookings rejected for scheduling conflicts",
		},
		[]string{"dimension"},
	)

	purchaseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "purchase_duration_seconds",
			Help:    "Duration of the purchase transaction",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		},
	)
)

func TrackPurchase(status string, quantity int, duration time.Duration) {
	purchasesTotal.WithLabelValues(status).Inc()
	purchaseDuration.Observe(duration.Seconds())
	if status == "completed" {
		ticketsSoldTotal.Add(float64(quantity))
	}
}

func TrackConflictRejection(dimension string) {
	conflictRejectionsTotal.WithLabelValues(dimension).Inc()
}
