package comms

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsync/internal/chain"
	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/pkg/workerpool"
)

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultConcurrency    = 8
)

// MetadataAggregator fans chain metadata requests out to every registered peer and hands out
// sync peers ordered by the work they last reported.
type MetadataAggregator struct {
	mu       sync.RWMutex
	peers    []PeerClient
	reported map[string]model.ChainMetadata

	timeout     time.Duration
	concurrency int
	logger      *zap.Logger
}

var (
	_ chain.Comms            = (*MetadataAggregator)(nil)
	_ chain.SyncPeerProvider = (*MetadataAggregator)(nil)
)

func NewMetadataAggregator(timeout time.Duration, concurrency int, logger *zap.Logger) *MetadataAggregator {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &MetadataAggregator{
		reported:    make(map[string]model.ChainMetadata),
		timeout:     timeout,
		concurrency: concurrency,
		logger:      logger,
	}
}

// AddPeer registers a peer. A peer with an already registered ID replaces it.
func (a *MetadataAggregator) AddPeer(peer PeerClient) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.peers = slices.DeleteFunc(a.peers, func(p PeerClient) bool { return p.ID() == peer.ID() })
	a.peers = append(a.peers, peer)
}

// RemovePeer forgets the peer with id.
func (a *MetadataAggregator) RemovePeer(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.peers = slices.DeleteFunc(a.peers, func(p PeerClient) bool { return p.ID() == id })
	delete(a.reported, id)
}

func (a *MetadataAggregator) snapshot() []PeerClient {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.peers)
}

type metadataReply struct {
	metadata model.ChainMetadata
	ok       bool
	timedOut bool
}

// GetMetadata asks every peer for its chain metadata and returns the answers that arrived
// within the request timeout. Peers that fail are logged and left out.
func (a *MetadataAggregator) GetMetadata(ctx context.Context) ([]model.ChainMetadata, error) {
	peers := a.snapshot()
	if len(peers) == 0 {
		return nil, chain.ErrNoBootstrapNodesConfigured
	}

	replies, err := workerpool.Map(ctx, a.concurrency, peers, func(ctx context.Context, peer PeerClient) (metadataReply, error) {
		reqCtx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		metadata, err := peer.GetChainMetadata(reqCtx)
		if err == nil {
			return metadataReply{metadata: metadata, ok: true}, nil
		}
		if ctx.Err() != nil {
			return metadataReply{}, ctx.Err()
		}
		timedOut := errors.Is(err, context.DeadlineExceeded) || errors.Is(err, chain.ErrRequestTimedOut)
		a.logger.Warn("peer did not return chain metadata",
			zap.String("peer", peer.ID()),
			zap.Bool("timed_out", timedOut),
			zap.Error(err),
		)
		return metadataReply{timedOut: timedOut}, nil
	})
	if err != nil {
		return nil, err
	}

	var (
		answered = make([]model.ChainMetadata, 0, len(replies))
		timeouts int
	)
	a.mu.Lock()
	for i, reply := range replies {
		if reply.timedOut {
			timeouts++
		}
		if !reply.ok {
			continue
		}
		a.reported[peers[i].ID()] = reply.metadata
		answered = append(answered, reply.metadata)
	}
	a.mu.Unlock()

	if timeouts == len(peers) {
		return nil, fmt.Errorf("%w: none of %d peers answered within %s", chain.ErrRequestTimedOut, len(peers), a.timeout)
	}
	return answered, nil
}

// SyncPeers returns registered peers, most reported accumulated difficulty first. Peers that
// never answered a metadata request come last in registration order.
func (a *MetadataAggregator) SyncPeers(_ context.Context) ([]chain.SyncPeer, error) {
	peers := a.snapshot()
	if len(peers) == 0 {
		return nil, chain.ErrNoBootstrapNodesConfigured
	}

	a.mu.RLock()
	reported := maps.Clone(a.reported)
	a.mu.RUnlock()

	slices.SortStableFunc(peers, func(x, y PeerClient) int {
		mx, okx := reported[x.ID()]
		my, oky := reported[y.ID()]
		switch {
		case okx && !oky:
			return -1
		case !okx && oky:
			return 1
		case !okx && !oky:
			return 0
		}
		return my.AccumulatedDifficulty.Cmp(mx.AccumulatedDifficulty)
	})

	out := make([]chain.SyncPeer, 0, len(peers))
	for _, p := range peers {
		out = append(out, p)
	}
	return out, nil
}
