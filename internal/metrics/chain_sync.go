package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainSyncEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_sync",
		Name:      "events_total",
		Help:      "Count of events produced by each sync state.",
	}, []string{"network", "state", "event"})

	chainSyncStateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_sync",
		Name:      "state_duration_seconds",
		Help:      "Time spent in a sync state before it produced an event.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
	}, []string{"network", "state"})

	chainSyncHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chain_sync",
		Name:      "height",
		Help:      "Best known height of the local chain and of the network.",
	}, []string{"network", "chain"})

	chainSyncHeaderChunkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_sync",
		Name:      "header_chunks_total",
		Help:      "Count of header chunks fetched and validated.",
	}, []string{"network", "status"})

	chainSyncHeaderChunkSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_sync",
		Name:      "header_chunk_size",
		Help:      "Number of headers per fetched chunk.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	chainSyncBlockBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_sync",
		Name:      "block_batches_total",
		Help:      "Count of block batches fetched, validated and committed.",
	}, []string{"network", "status"})

	chainSyncBlockBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_sync",
		Name:      "block_batch_duration_seconds",
		Help:      "Duration of fetching, validating and committing a block batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	chainSyncBlocksCommitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_sync",
		Name:      "blocks_committed_total",
		Help:      "Count of synced blocks committed to the chain store.",
	}, []string{"network"})

	chainSyncBadBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_sync",
		Name:      "bad_blocks_total",
		Help:      "Count of blocks or headers rejected by validation during sync.",
	}, []string{"network"})
)

// ChainSync tracks metrics for the sync state machine.
type ChainSync struct {
	network string
}

func NewChainSync(network string) *ChainSync {
	return &ChainSync{network: orUnknown(network)}
}

// ObserveEvent records the event a state produced and how long the state ran.
func (m ChainSync) ObserveEvent(state, event string, started time.Time) {
	chainSyncEventsTotal.WithLabelValues(m.network, state, event).Inc()
	chainSyncStateDuration.WithLabelValues(m.network, state).Observe(time.Since(started).Seconds())
}

// SetHeights publishes the local and network tip heights.
func (m ChainSync) SetHeights(local, network uint64) {
	chainSyncHeight.WithLabelValues(m.network, "local").Set(float64(local))
	chainSyncHeight.WithLabelValues(m.network, "network").Set(float64(network))
}

// ObserveHeaderChunk records a fetched header chunk.
func (m ChainSync) ObserveHeaderChunk(err error, headers int) {
	chainSyncHeaderChunkTotal.WithLabelValues(m.network, status(err)).Inc()
	chainSyncHeaderChunkSize.WithLabelValues(m.network).Observe(float64(headers))
}

// ObserveBlockBatch records a block batch and the number of blocks it committed.
func (m ChainSync) ObserveBlockBatch(err error, committed int, started time.Time) {
	s := status(err)
	chainSyncBlockBatchTotal.WithLabelValues(m.network, s).Inc()
	chainSyncBlockBatchDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	chainSyncBlocksCommitted.WithLabelValues(m.network).Add(float64(committed))
}

// ObserveBadBlock counts a rejected candidate.
func (m ChainSync) ObserveBadBlock() {
	chainSyncBadBlocks.WithLabelValues(m.network).Inc()
}
