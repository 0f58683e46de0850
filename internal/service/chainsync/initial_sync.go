package chainsync

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsync/internal/backoff"
	"github.com/goodnatureofminers/chainsync/internal/chain"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

func (m *StateMachine) initialSync(ctx context.Context) StateEvent {
	local, err := m.localMetadata(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return UserQuit()
		}
		return FatalError("unable to read local chain metadata: %v", err)
	}

	bo := backoff.New(
		m.cfg.MaxMetadataAttempts,
		m.cfg.MetadataBaseDelay,
		m.cfg.MetadataMultiplier,
		backoff.WithMaxDelay(m.cfg.MetadataMaxDelay),
		backoff.WithSleep(m.sleep),
	)
	var lastErr error
	for {
		peers, err := m.comms.GetMetadata(ctx)
		if err == nil {
			bo.Stop()
			event := EvaluateData(local, peers)
			m.metrics.SetHeights(local.Height(), max(local.Height(), event.Network.Height()))
			m.logger.Info("chain metadata evaluated",
				zap.Int("peers", len(peers)),
				zap.Stringer("local", local),
				zap.Stringer("event", event),
			)
			return event
		}
		if ctx.Err() != nil {
			return UserQuit()
		}
		if !chain.IsRetryableCommsError(err) {
			return FatalError("chain metadata request failed: %v", err)
		}

		lastErr = err
		if errors.Is(err, chain.ErrNoBootstrapNodesConfigured) {
			m.logger.Warn("no bootstrap nodes configured, waiting for peers",
				zap.Int("attempt", bo.Attempts()+1),
				zap.Int("max_attempts", bo.MaxAttempts()),
			)
		} else {
			m.logger.Warn("chain metadata request failed",
				zap.Int("attempt", bo.Attempts()+1),
				zap.Int("max_attempts", bo.MaxAttempts()),
				zap.Bool("timed_out", errors.Is(err, chain.ErrRequestTimedOut)),
				zap.Error(err),
			)
		}

		if bo.Attempts()+1 >= bo.MaxAttempts() {
			return FatalError("too many chain metadata attempts failed (%d of %d): %v",
				bo.Attempts()+1, bo.MaxAttempts(), lastErr)
		}
		if err := bo.Wait(ctx); err != nil {
			return UserQuit()
		}
	}
}

// EvaluateData decides what to do with the chain metadata peers reported. No answers at all
// means the node is alone and therefore up to date.
func EvaluateData(local model.ChainMetadata, peers []model.ChainMetadata) StateEvent {
	if len(peers) == 0 {
		return BlocksSynchronized()
	}
	network := SummarizeNetwork(peers)
	status := DetermineSyncMode(local, network)
	if status == model.SyncStatusUpToDate {
		return BlocksSynchronized()
	}
	return MetadataSynced(status, network)
}

// SummarizeNetwork picks the metadata claiming the greatest height. The first of equally
// high candidates wins. A single peer lying about its height is believed.
func SummarizeNetwork(peers []model.ChainMetadata) model.ChainMetadata {
	best := model.EmptyChainMetadata()
	for _, p := range peers {
		if p.HeightOfLongestChain.IsNone() {
			continue
		}
		if best.HeightOfLongestChain.IsNone() || p.Height() > best.Height() {
			best = p
		}
	}
	return best
}

// DetermineSyncMode compares the local chain with the network summary.
func DetermineSyncMode(local, network model.ChainMetadata) model.SyncStatus {
	if network.HeightOfLongestChain.IsNone() {
		return model.SyncStatusUpToDate
	}
	tip := network.Height()
	height := local.Height()
	switch {
	case height < local.HorizonBlock(tip):
		return model.SyncStatusBehindHorizon
	case height < tip:
		return model.SyncStatusLagging
	default:
		return model.SyncStatusUpToDate
	}
}
