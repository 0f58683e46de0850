package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainsync/pkg/safe"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// ChainMetadata summarizes a node's view of its best chain.
type ChainMetadata struct {
	// HeightOfLongestChain is None for a node that has no chain yet.
	HeightOfLongestChain fn.Option[uint64]
	BestBlock            fn.Option[chainhash.Hash]
	// PruningHorizon is the number of blocks with full bodies kept behind the tip. Zero means archival.
	PruningHorizon        uint64
	PrunedHeight          uint64
	AccumulatedDifficulty AccumulatedDifficulty
}

// EmptyChainMetadata describes a node with no chain at all.
func EmptyChainMetadata() ChainMetadata {
	return ChainMetadata{
		HeightOfLongestChain: fn.None[uint64](),
		BestBlock:            fn.None[chainhash.Hash](),
	}
}

// NewChainMetadata builds metadata for a chain with a known tip.
func NewChainMetadata(
	height uint64,
	best chainhash.Hash,
	pruningHorizon uint64,
	prunedHeight uint64,
	accumulated AccumulatedDifficulty,
) ChainMetadata {
	return ChainMetadata{
		HeightOfLongestChain:  fn.Some(height),
		BestBlock:             fn.Some(best),
		PruningHorizon:        pruningHorizon,
		PrunedHeight:          prunedHeight,
		AccumulatedDifficulty: accumulated,
	}
}

// IsArchival reports whether the node keeps every block body.
func (m ChainMetadata) IsArchival() bool {
	return m.PruningHorizon == 0
}

// HorizonBlock is the lowest height with a full body for a node whose tip is at tip.
func (m ChainMetadata) HorizonBlock(tip uint64) uint64 {
	if m.IsArchival() {
		return 0
	}
	return safe.SaturatingSubUint64(tip, m.PruningHorizon)
}

// EffectivePrunedHeight is the lowest height the node still holds a full body for. Archival
// nodes hold every body.
func (m ChainMetadata) EffectivePrunedHeight() uint64 {
	if m.IsArchival() {
		return 0
	}
	return m.PrunedHeight
}

// Height returns the tip height, treating an empty chain as zero.
func (m ChainMetadata) Height() uint64 {
	return m.HeightOfLongestChain.UnwrapOr(0)
}

func (m ChainMetadata) String() string {
	height := fn.MapOptionZ(m.HeightOfLongestChain, func(h uint64) string {
		return fmt.Sprintf("%d", h)
	})
	if height == "" {
		height = "<none>"
	}
	best := fn.MapOptionZ(m.BestBlock, func(h chainhash.Hash) string {
		return h.String()
	})
	if best == "" {
		best = "<none>"
	}
	return fmt.Sprintf(
		"height=%s best=%s accumulated_difficulty=%s pruning_horizon=%d pruned_height=%d",
		height, best, m.AccumulatedDifficulty, m.PruningHorizon, m.PrunedHeight,
	)
}

// SyncStatus is the outcome of comparing local and network chain state.
type SyncStatus uint8

const (
	// SyncStatusUpToDate means the local chain is at or ahead of the network tip.
	SyncStatusUpToDate SyncStatus = iota
	// SyncStatusLagging means the local chain is behind but within the pruning horizon.
	SyncStatusLagging
	// SyncStatusBehindHorizon means the local chain is behind the network's pruning horizon.
	SyncStatusBehindHorizon
)

func (s SyncStatus) String() string {
	switch s {
	case SyncStatusUpToDate:
		return "up_to_date"
	case SyncStatusLagging:
		return "lagging"
	case SyncStatusBehindHorizon:
		return "behind_horizon"
	default:
		return "unknown"
	}
}
