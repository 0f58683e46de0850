package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	peerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "peer_client",
		Name:      "requests_total",
		Help:      "Count of requests sent to sync peers.",
	}, []string{"operation", "network", "status"})
	peerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "peer_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of requests sent to sync peers.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// PeerClient tracks metrics for requests to remote peers.
type PeerClient struct {
	network string
}

func NewPeerClient(network string) *PeerClient {
	return &PeerClient{network: orUnknown(network)}
}

// Observe records a single peer request outcome and duration.
func (m PeerClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	peerRequestsTotal.WithLabelValues(operation, m.network, s).Inc()
	peerRequestDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}
