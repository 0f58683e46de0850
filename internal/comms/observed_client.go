package comms

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

// ObservedPeerClient records metrics for every request sent through the wrapped client.
type ObservedPeerClient struct {
	client  PeerClient
	metrics PeerMetrics
}

func NewObservedPeerClient(client PeerClient, metrics PeerMetrics) *ObservedPeerClient {
	return &ObservedPeerClient{
		client:  client,
		metrics: metrics,
	}
}

func (c *ObservedPeerClient) ID() string {
	return c.client.ID()
}

func (c *ObservedPeerClient) GetChainMetadata(ctx context.Context) (metadata model.ChainMetadata, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_chain_metadata", err, started)
	}()
	return c.client.GetChainMetadata(ctx)
}

func (c *ObservedPeerClient) FetchHeaders(ctx context.Context, from uint64, count uint64) (headers []model.BlockHeader, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_headers", err, started)
	}()
	return c.client.FetchHeaders(ctx, from, count)
}

func (c *ObservedPeerClient) FetchBlocks(ctx context.Context, hashes []chainhash.Hash) (blocks []model.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_blocks", err, started)
	}()
	return c.client.FetchBlocks(ctx, hashes)
}
