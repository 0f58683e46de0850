// Package comms talks to remote base nodes on behalf of the sync state machine.
package comms

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PeerClient is a connection to one remote base node.
	PeerClient interface {
		ID() string
		GetChainMetadata(ctx context.Context) (model.ChainMetadata, error)
		FetchHeaders(ctx context.Context, from uint64, count uint64) ([]model.BlockHeader, error)
		FetchBlocks(ctx context.Context, hashes []chainhash.Hash) ([]model.Block, error)
	}
	PeerMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
