package chainsync

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/goodnatureofminers/chainsync/internal/chain"
	"github.com/goodnatureofminers/chainsync/internal/consensus"
	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/internal/validation"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Database interface {
		GetMetadata(ctx context.Context) (model.ChainMetadata, error)
		FetchHeader(ctx context.Context, height uint64) (*model.BlockHeader, error)
		FetchHeaderByBlockHash(ctx context.Context, hash chainhash.Hash) (*model.BlockHeader, error)
		FetchHeaderAccumulatedData(ctx context.Context, hash chainhash.Hash) (*model.BlockHeaderAccumulatedData, error)
		AddBlock(ctx context.Context, block *model.Block, pow model.AchievedTargetDifficulty) (model.BlockAddResult, error)
		BadBlockExists(ctx context.Context, hash chainhash.Hash) (bool, error)
		InsertBadBlock(ctx context.Context, hash chainhash.Hash, height uint64, reason string) error
		FetchPowSeedFirstSeenHeight(ctx context.Context, seed []byte) (uint64, error)
		FetchUnspentOutputHashByCommitment(ctx context.Context, commitment model.Commitment) (*chainhash.Hash, error)
		FetchOutput(ctx context.Context, hash chainhash.Hash) (*model.TransactionOutput, error)
	}
	Comms interface {
		GetMetadata(ctx context.Context) ([]model.ChainMetadata, error)
	}
	SyncPeerProvider interface {
		SyncPeers(ctx context.Context) ([]chain.SyncPeer, error)
	}
	// SyncPeer mirrors chain.SyncPeer so tests can mock it.
	SyncPeer interface {
		ID() string
		FetchHeaders(ctx context.Context, from uint64, count uint64) ([]model.BlockHeader, error)
		FetchBlocks(ctx context.Context, hashes []chainhash.Hash) ([]model.Block, error)
	}
	BlockValidator interface {
		ValidateHeader(
			ctx context.Context,
			db validation.HeaderChainReader,
			header *model.BlockHeader,
			prev *model.BlockHeader,
			timestamps []uint64,
			target fn.Option[model.Difficulty],
		) (model.AchievedTargetDifficulty, error)
		ValidateBodyInIsolation(block *model.Block) error
		ValidateBodyInContext(ctx context.Context, db validation.UTXOReader, block *model.Block) error
		ValidateInternalConsistency(block *model.Block) error
	}
	Rules interface {
		ConsensusConstants(height uint64) *consensus.Constants
	}
	Metrics interface {
		ObserveEvent(state, event string, started time.Time)
		SetHeights(local, network uint64)
		ObserveHeaderChunk(err error, headers int)
		ObserveBlockBatch(err error, committed int, started time.Time)
		ObserveBadBlock()
	}
)
