package chainsync

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/fn/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsync/internal/chain"
	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/internal/validation"
)

var (
	errNoSyncPeers       = errors.New("no sync peers available")
	errEmptyResponse     = errors.New("peer sent an empty response")
	errIncorrectResponse = errors.New("peer sent an incorrect response")
)

func (m *StateMachine) headerSync(ctx context.Context) StateEvent {
	local, err := m.localMetadata(ctx)
	if err != nil {
		return m.failure(ctx, "header sync", err)
	}
	if local.Height() >= m.target {
		m.logger.Debug("headers already synchronized", zap.Uint64("height", local.Height()), zap.Uint64("target", m.target))
		return BlocksSynchronized()
	}
	if err := m.syncHeaderChunk(ctx, local, m.target); err != nil {
		return m.failure(ctx, "header sync", err)
	}
	return HeadersSynchronized()
}

// headerChunk is a run of validated headers. fork is set when the run does not start on the
// local best chain tip.
type headerChunk struct {
	headers []pendingHeader
	fork    bool
}

// syncHeaderChunk validates the next chunk of headers of the best peer chain towards target,
// and keeps them as pending. Peers are tried best first until one serves a valid chunk.
func (m *StateMachine) syncHeaderChunk(ctx context.Context, local model.ChainMetadata, target uint64) error {
	height := local.Height()
	tip, err := m.db.FetchHeader(ctx, height)
	if err != nil {
		return chain.NewStorageError("fetch tip header", err)
	}
	if tip == nil {
		return chain.NewStorageError("fetch tip header", fmt.Errorf("header %d missing", height))
	}

	peers, err := m.syncPeers(ctx)
	if err != nil {
		return err
	}
	for _, peer := range peers {
		chunk, err := m.fetchHeaders(ctx, peer, tip, target)
		m.metrics.ObserveHeaderChunk(err, len(chunk.headers))
		if err == nil {
			m.pending = chunk.headers
			m.pendingFork = chunk.fork
			m.syncPeer = peer
			m.logger.Info("header chunk validated",
				zap.String("peer", peer.ID()),
				zap.Uint64("from", chunk.headers[0].header.Height),
				zap.Int("headers", len(chunk.headers)),
				zap.Bool("fork", chunk.fork),
				zap.Uint64("target", target),
			)
			return nil
		}
		if ctx.Err() != nil || chain.IsStorageError(err) {
			return err
		}
		m.logger.Warn("peer did not serve a valid header chunk",
			zap.String("peer", peer.ID()),
			zap.Uint64("height", height),
			zap.Uint64("target", target),
			zap.Error(err),
		)
		m.exclude(peer)
	}
	return fmt.Errorf("%w: none of %d peers served headers above %d", errNoSyncPeers, len(peers), height)
}

// fetchHeaders finds where the peer chain leaves the local chain and validates the first
// chunk of headers past that point that are not stored yet.
func (m *StateMachine) fetchHeaders(
	ctx context.Context,
	peer chain.SyncPeer,
	tip *model.BlockHeader,
	target uint64,
) (headerChunk, error) {
	start := tip
	headers, err := m.requestHeaders(ctx, peer, start.Height+1, min(m.cfg.HeaderChunkSize, target-start.Height))
	if err != nil {
		return headerChunk{}, err
	}
	if headers[0].PrevHash != start.Hash() {
		if start, err = m.findChainSplit(ctx, peer, tip.Height); err != nil {
			return headerChunk{}, err
		}
		m.logger.Info("peer chain splits from the local chain",
			zap.String("peer", peer.ID()),
			zap.Uint64("split_height", start.Height),
			zap.Stringer("split_hash", start.Hash()),
			zap.Uint64("local_height", tip.Height),
		)
		headers, err = m.requestHeaders(ctx, peer, start.Height+1, min(m.cfg.HeaderChunkSize, target-start.Height))
		if err != nil {
			return headerChunk{}, err
		}
	}

	for {
		unknown, last, err := m.skipKnownHeaders(ctx, start, headers)
		if err != nil {
			return headerChunk{}, err
		}
		if len(unknown) > 0 {
			pending, err := m.validateHeaders(ctx, last, unknown)
			if err != nil {
				return headerChunk{}, err
			}
			return headerChunk{headers: pending, fork: last.Hash() != tip.Hash()}, nil
		}
		if last.Height >= target {
			return headerChunk{}, fmt.Errorf("%w: every header up to %d is already stored", errIncorrectResponse, last.Height)
		}
		start = last
		headers, err = m.requestHeaders(ctx, peer, start.Height+1, min(m.cfg.HeaderChunkSize, target-start.Height))
		if err != nil {
			return headerChunk{}, err
		}
	}
}

// requestHeaders asks peer for up to count headers from height from. The answer must start
// at from and hold consecutive heights.
func (m *StateMachine) requestHeaders(ctx context.Context, peer chain.SyncPeer, from, count uint64) ([]model.BlockHeader, error) {
	headers, err := peer.FetchHeaders(ctx, from, count)
	if err != nil {
		return nil, fmt.Errorf("fetch headers: %w", err)
	}
	if len(headers) == 0 {
		return nil, errEmptyResponse
	}
	if uint64(len(headers)) > count {
		return nil, fmt.Errorf("%w: asked for %d headers, got %d", errIncorrectResponse, count, len(headers))
	}
	for i := range headers {
		if want := from + uint64(i); headers[i].Height != want {
			return nil, fmt.Errorf("%w: header %d has height %d", errIncorrectResponse, want, headers[i].Height)
		}
	}
	return headers, nil
}

// findChainSplit walks back from height, a window of HeaderChunkSize headers at a time,
// until the peer serves a header that is already stored. The highest such header is the
// split point.
func (m *StateMachine) findChainSplit(ctx context.Context, peer chain.SyncPeer, height uint64) (*model.BlockHeader, error) {
	end := height
	for {
		from := end + 1 - min(end+1, m.cfg.HeaderChunkSize)
		headers, err := m.requestHeaders(ctx, peer, from, end-from+1)
		if err != nil {
			return nil, fmt.Errorf("find chain split: %w", err)
		}
		for i := len(headers) - 1; i >= 0; i-- {
			known, err := m.isStored(ctx, &headers[i])
			if err != nil {
				return nil, err
			}
			if known {
				return &headers[i], nil
			}
		}
		if from == 0 {
			return nil, fmt.Errorf("%w: no common ancestor below %d", errIncorrectResponse, height)
		}
		end = from - 1
	}
}

// skipKnownHeaders drops the leading headers that are already stored. It returns the rest
// and the parent of the first of them.
func (m *StateMachine) skipKnownHeaders(
	ctx context.Context,
	start *model.BlockHeader,
	headers []model.BlockHeader,
) ([]model.BlockHeader, *model.BlockHeader, error) {
	last := start
	for i := range headers {
		header := &headers[i]
		if header.PrevHash != last.Hash() {
			return nil, nil, fmt.Errorf("%w: header %d does not link to %d", errIncorrectResponse, header.Height, last.Height)
		}
		known, err := m.isStored(ctx, header)
		if err != nil {
			return nil, nil, err
		}
		if !known {
			return headers[i:], last, nil
		}
		last = header
	}
	return nil, last, nil
}

func (m *StateMachine) isStored(ctx context.Context, header *model.BlockHeader) (bool, error) {
	data, err := m.db.FetchHeaderAccumulatedData(ctx, header.Hash())
	if err != nil {
		return false, chain.NewStorageError("fetch accumulated data", err)
	}
	return data != nil, nil
}

// validateHeaders validates headers on top of the stored header prev, which may sit on a
// side chain.
func (m *StateMachine) validateHeaders(ctx context.Context, prev *model.BlockHeader, headers []model.BlockHeader) ([]pendingHeader, error) {
	prevData, err := m.db.FetchHeaderAccumulatedData(ctx, prev.Hash())
	if err != nil {
		return nil, chain.NewStorageError("fetch accumulated data", err)
	}
	if prevData == nil {
		return nil, chain.NewStorageError("fetch accumulated data", fmt.Errorf("no accumulated data for %s", prev.Hash()))
	}
	overlay := newPendingChain(m.db)
	if err := overlay.seedFork(ctx, prev); err != nil {
		return nil, err
	}

	pending := make([]pendingHeader, 0, len(headers))
	for i := range headers {
		header := &headers[i]
		if header.PrevHash != prev.Hash() {
			return nil, fmt.Errorf("%w: header %d does not link to %d", errIncorrectResponse, header.Height, prev.Height)
		}
		constants := m.rules.ConsensusConstants(header.Height)
		timestamps, err := overlay.timestamps(ctx, header.Height, constants.MedianTimestampCount)
		if err != nil {
			return nil, err
		}

		hash := header.Hash()
		pow, err := m.validator.ValidateHeader(ctx, overlay, header, prev, timestamps, fn.None[model.Difficulty]())
		if err != nil {
			if validation.IsValidationError(err) {
				if rerr := m.rejectCandidate(ctx, hash, header.Height, err); rerr != nil {
					return nil, rerr
				}
			}
			return nil, fmt.Errorf("header %d: %w", header.Height, err)
		}
		data, err := prevData.Next(hash, pow)
		if err != nil {
			return nil, fmt.Errorf("header %d: %w", header.Height, err)
		}

		overlay.push(header, &data)
		pending = append(pending, pendingHeader{header: *header, pow: pow})
		prev, prevData = header, &data
	}
	return pending, nil
}

// syncPeers lists the peers to sync from, leaving out those that misbehaved during this
// sync. Once every peer was left out the exclusions are forgotten.
func (m *StateMachine) syncPeers(ctx context.Context) ([]chain.SyncPeer, error) {
	all, err := m.peers.SyncPeers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sync peers: %w", err)
	}
	peers := make([]chain.SyncPeer, 0, len(all))
	for _, p := range all {
		if _, ok := m.excluded[p.ID()]; !ok {
			peers = append(peers, p)
		}
	}
	if len(peers) == 0 && len(all) > 0 {
		m.logger.Info("every sync peer was excluded, trying all of them again", zap.Int("peers", len(all)))
		clear(m.excluded)
		peers = all
	}
	if len(peers) == 0 {
		return nil, errNoSyncPeers
	}
	return peers, nil
}

func (m *StateMachine) exclude(peer chain.SyncPeer) {
	m.excluded[peer.ID()] = struct{}{}
}

// rejectCandidate records a header or block that failed validation so it is never
// considered again. Candidates that only failed against the local chain or clock are not
// recorded.
func (m *StateMachine) rejectCandidate(ctx context.Context, hash chainhash.Hash, height uint64, reason error) error {
	if validation.IsContextualError(reason) {
		m.logger.Info("sync candidate does not fit the local chain",
			zap.Stringer("hash", hash),
			zap.Uint64("height", height),
			zap.Error(reason),
		)
		return nil
	}
	m.metrics.ObserveBadBlock()
	m.logger.Warn("rejected sync candidate",
		zap.Stringer("hash", hash),
		zap.Uint64("height", height),
		zap.Error(reason),
	)
	if err := m.db.InsertBadBlock(ctx, hash, height, reason.Error()); err != nil {
		return chain.NewStorageError("insert bad block", err)
	}
	return nil
}
