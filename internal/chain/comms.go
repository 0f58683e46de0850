package chain

import (
	"context"
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

var (
	ErrRequestTimedOut            = errors.New("request timed out")
	ErrTransportChannel           = errors.New("transport channel error")
	ErrPeerChainStorage           = errors.New("peer chain storage error")
	ErrUnexpectedAPIResponse      = errors.New("unexpected api response")
	ErrOutboundMessageService     = errors.New("outbound message service error")
	ErrNoBootstrapNodesConfigured = errors.New("no bootstrap nodes configured")
)

// IsRetryableCommsError reports whether a metadata request that failed with err may be
// attempted again.
func IsRetryableCommsError(err error) bool {
	switch {
	case errors.Is(err, ErrRequestTimedOut),
		errors.Is(err, ErrTransportChannel),
		errors.Is(err, ErrPeerChainStorage),
		errors.Is(err, ErrUnexpectedAPIResponse),
		errors.Is(err, ErrOutboundMessageService),
		errors.Is(err, ErrNoBootstrapNodesConfigured):
		return true
	default:
		return false
	}
}

// Comms asks connected peers for their chain metadata. An empty result means no peer answered.
type Comms interface {
	GetMetadata(ctx context.Context) ([]model.ChainMetadata, error)
}

// SyncPeer serves headers and blocks during synchronization.
type SyncPeer interface {
	ID() string
	// FetchHeaders returns up to count consecutive headers starting at height from.
	FetchHeaders(ctx context.Context, from uint64, count uint64) ([]model.BlockHeader, error)
	// FetchBlocks returns the blocks with the given hashes in the requested order.
	FetchBlocks(ctx context.Context, hashes []chainhash.Hash) ([]model.Block, error)
}

// SyncPeerProvider lists the peers that may be synced from, best first.
type SyncPeerProvider interface {
	SyncPeers(ctx context.Context) ([]SyncPeer, error)
}
