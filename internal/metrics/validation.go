package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "validation",
		Name:      "checks_total",
		Help:      "Count of header and block validation stages run.",
	}, []string{"stage", "network", "status"})
	validationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "validation",
		Name:      "check_duration_seconds",
		Help:      "Duration of header and block validation stages.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"stage", "network", "status"})
)

// Validation tracks validator outcomes.
type Validation struct {
	network string
}

func NewValidation(network string) *Validation {
	return &Validation{network: orUnknown(network)}
}

// ObserveValidation records one validation stage.
func (m Validation) ObserveValidation(stage string, err error, started time.Time) {
	s := status(err)
	validationTotal.WithLabelValues(stage, m.network, s).Inc()
	validationDuration.WithLabelValues(stage, m.network, s).Observe(time.Since(started).Seconds())
}
