package chainsync

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsync/internal/model"
)

// listen polls peers until the network moves ahead of the local chain.
func (m *StateMachine) listen(ctx context.Context) StateEvent {
	for {
		if err := m.sleep(ctx, m.cfg.ListeningInterval); err != nil {
			return UserQuit()
		}

		local, err := m.localMetadata(ctx)
		if err != nil {
			return m.failure(ctx, "listening", err)
		}
		peers, err := m.comms.GetMetadata(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return UserQuit()
			}
			m.logger.Warn("chain metadata request failed while listening", zap.Error(err))
			continue
		}
		if len(peers) == 0 {
			continue
		}

		network := SummarizeNetwork(peers)
		m.metrics.SetHeights(local.Height(), max(local.Height(), network.Height()))
		if status := DetermineSyncMode(local, network); status != model.SyncStatusUpToDate {
			m.logger.Info("fell behind the network",
				zap.Stringer("status", status),
				zap.Stringer("local", local),
				zap.Stringer("network", network),
			)
			return FallenBehind(status, network)
		}
	}
}

func (m *StateMachine) wait(ctx context.Context) StateEvent {
	if err := m.sleep(ctx, m.cfg.WaitingInterval); err != nil {
		return UserQuit()
	}
	return Initialized()
}
