package chainsync

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsync/internal/chain"
	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/internal/validation"
	"github.com/goodnatureofminers/chainsync/pkg/workerpool"
)

func (m *StateMachine) blockSync(ctx context.Context) StateEvent {
	if err := m.commitPending(ctx); err != nil {
		return m.failure(ctx, "block sync", err)
	}
	local, err := m.localMetadata(ctx)
	if err != nil {
		return m.failure(ctx, "block sync", err)
	}
	m.metrics.SetHeights(local.Height(), max(local.Height(), m.target))

	event := BlocksSynchronized()
	event.More = local.Height() < m.target
	return event
}

// commitPending fetches the bodies of the pending headers from the peer that served them,
// validates them and commits them in height order. Blocks of a fork are parked as a side
// chain until they carry more work than the best chain, which then reorganizes onto them.
func (m *StateMachine) commitPending(ctx context.Context) (err error) {
	pending, fork, peer := m.pending, m.pendingFork, m.syncPeer
	m.pending, m.pendingFork, m.syncPeer = nil, false, nil
	if len(pending) == 0 {
		return nil
	}

	started := time.Now()
	committed := 0
	defer func() {
		m.metrics.ObserveBlockBatch(err, committed, started)
	}()

	blocks, err := m.fetchBodies(ctx, peer, pending)
	if err != nil {
		if ctx.Err() == nil {
			m.exclude(peer)
		}
		return err
	}

	rejections := make([]error, len(blocks))
	indexes := make([]int, len(blocks))
	for i := range indexes {
		indexes[i] = i
	}
	err = workerpool.Process(ctx, m.cfg.BlockFetchConcurrency, indexes, func(_ context.Context, i int) error {
		rejections[i] = m.validator.ValidateBodyInIsolation(&blocks[i])
		return nil
	}, nil)
	if err != nil {
		return err
	}

	onTip := !fork
	for i := range blocks {
		if err = ctx.Err(); err != nil {
			return err
		}
		block := &blocks[i]
		reason := rejections[i]
		if reason == nil {
			// Side chain inputs are checked against their own history when the chain is applied.
			if onTip {
				reason = m.validator.ValidateBodyInContext(ctx, m.db, block)
			} else {
				reason = m.validator.ValidateInternalConsistency(block)
			}
		}
		if reason != nil {
			if !validation.IsValidationError(reason) {
				err = fmt.Errorf("validate block %d: %w", block.Header.Height, reason)
				return err
			}
			if err = m.rejectCandidate(ctx, block.Hash(), block.Header.Height, reason); err != nil {
				return err
			}
			m.exclude(peer)
			err = fmt.Errorf("block %d from %s: %w", block.Header.Height, peer.ID(), reason)
			return err
		}

		result, addErr := m.db.AddBlock(ctx, block, pending[i].pow)
		if addErr != nil {
			if !chain.IsStorageError(addErr) {
				m.exclude(peer)
			}
			err = fmt.Errorf("add block %d: %w", block.Header.Height, addErr)
			return err
		}
		switch {
		case result == model.BlockAddOk:
			committed++
		case result == model.ChainReorg:
			committed++
			onTip = true
			m.logger.Info("best chain reorganized onto synced fork",
				zap.String("peer", peer.ID()),
				zap.Uint64("height", block.Header.Height),
				zap.Stringer("hash", block.Hash()),
			)
		case result == model.OrphanBlock && !onTip:
			committed++
		case result == model.BlockExists:
		default:
			err = fmt.Errorf("block %d was not appended to the best chain: %s", block.Header.Height, result)
			return err
		}
	}

	m.logger.Info("blocks committed",
		zap.String("peer", peer.ID()),
		zap.Uint64("from", pending[0].header.Height),
		zap.Uint64("to", pending[len(pending)-1].header.Height),
		zap.Int("committed", committed),
		zap.Bool("on_tip", onTip),
	)
	return nil
}

// fetchBodies downloads the blocks of pending in rate limited batches. Blocks come back in
// the order of pending.
func (m *StateMachine) fetchBodies(ctx context.Context, peer chain.SyncPeer, pending []pendingHeader) ([]model.Block, error) {
	hashes := make([]chainhash.Hash, 0, len(pending))
	for i := range pending {
		hashes = append(hashes, pending[i].header.Hash())
	}
	batches := slices.Collect(slices.Chunk(hashes, m.cfg.BlockFetchBatchSize))

	results, err := workerpool.Map(ctx, m.cfg.BlockFetchConcurrency, batches, func(ctx context.Context, batch []chainhash.Hash) ([]model.Block, error) {
		m.limiter.Take()
		blocks, err := peer.FetchBlocks(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("fetch %d blocks from %s: %w", len(batch), peer.ID(), err)
		}
		if len(blocks) != len(batch) {
			return nil, fmt.Errorf("%w: asked %s for %d blocks, got %d", errIncorrectResponse, peer.ID(), len(batch), len(blocks))
		}
		for i := range blocks {
			if hash := blocks[i].Hash(); hash != batch[i] {
				return nil, fmt.Errorf("%w: %s sent %s instead of %s", errIncorrectResponse, peer.ID(), hash, batch[i])
			}
		}
		return blocks, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Concat(results...), nil
}
