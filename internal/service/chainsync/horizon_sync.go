package chainsync

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/pkg/safe"
)

// horizonSync brings a node that fell behind the network's pruning horizon up to just past
// that horizon. Header sync then continues to the network tip.
func (m *StateMachine) horizonSync(ctx context.Context) StateEvent {
	local, err := m.localMetadata(ctx)
	if err != nil {
		return m.failure(ctx, "horizon sync", err)
	}
	target := HorizonSyncHeight(local, m.network.Height(), m.cfg.HorizonSyncHeightOffset)
	m.logger.Info("horizon sync started",
		zap.Uint64("height", local.Height()),
		zap.Uint64("target", target),
		zap.Uint64("network_tip", m.network.Height()),
	)

	for local.Height() < target {
		if err := m.syncHeaderChunk(ctx, local, target); err != nil {
			return m.failure(ctx, "horizon sync", err)
		}
		if err := m.commitPending(ctx); err != nil {
			return m.failure(ctx, "horizon sync", err)
		}
		if local, err = m.localMetadata(ctx); err != nil {
			return m.failure(ctx, "horizon sync", err)
		}
		m.metrics.SetHeights(local.Height(), m.network.Height())
	}
	m.logger.Info("horizon sync finished",
		zap.Uint64("height", local.Height()),
		zap.Uint64("pruned_height", local.EffectivePrunedHeight()),
	)
	return HorizonStateSynchronized()
}

// HorizonSyncHeight is the height horizon sync stops at: offset blocks past the local horizon
// block for the network tip, never beyond the tip itself.
func HorizonSyncHeight(local model.ChainMetadata, tip, offset uint64) uint64 {
	target, err := safe.AddUint64(local.HorizonBlock(tip), offset)
	if err != nil {
		return tip
	}
	return min(target, tip)
}
