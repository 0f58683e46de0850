package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "bolt_repository",
		Name:      "operations_total",
		Help:      "Count of chain store operations.",
	}, []string{"operation", "network", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "bolt_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chain store operations.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "network", "status"})
	repositoryAddBlockResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "bolt_repository",
		Name:      "add_block_results_total",
		Help:      "Outcomes of blocks offered to the chain store.",
	}, []string{"network", "result"})
)

// Repository tracks metrics for chain store operations.
type Repository struct {
	network string
}

func NewRepository(network string) *Repository {
	return &Repository{network: orUnknown(network)}
}

// Observe records duration and status of a store operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	s := status(err)
	repositoryRequestsTotal.WithLabelValues(operation, m.network, s).Inc()
	repositoryRequestDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveAddBlockResult counts how an accepted block changed the chain.
func (m Repository) ObserveAddBlockResult(result string) {
	repositoryAddBlockResults.WithLabelValues(m.network, result).Inc()
}
