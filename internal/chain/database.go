// Package chain defines the storage and networking contracts shared by the sync components.
package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

// ErrStorage marks failures of the local chain store.
var ErrStorage = errors.New("chain storage error")

// StorageError wraps a failure of the local chain store. Storage errors are never a
// property of the data being validated.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err for operation op. A nil err yields nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStorage) hold for every StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// IsStorageError reports whether err came from the local chain store.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}

// Database is the persistent chain store. Lookups of rows that do not exist return nil
// without an error.
type Database interface {
	GetMetadata(ctx context.Context) (model.ChainMetadata, error)
	FetchHeader(ctx context.Context, height uint64) (*model.BlockHeader, error)
	FetchHeaderByBlockHash(ctx context.Context, hash chainhash.Hash) (*model.BlockHeader, error)
	FetchHeaderAccumulatedData(ctx context.Context, hash chainhash.Hash) (*model.BlockHeaderAccumulatedData, error)
	FetchBlock(ctx context.Context, height uint64, withBody bool) (*model.HistoricalBlock, error)
	AddBlock(ctx context.Context, block *model.Block, pow model.AchievedTargetDifficulty) (model.BlockAddResult, error)
	BadBlockExists(ctx context.Context, hash chainhash.Hash) (bool, error)
	InsertBadBlock(ctx context.Context, hash chainhash.Hash, height uint64, reason string) error
	// FetchPowSeedFirstSeenHeight returns 0 for a seed that was never seen.
	FetchPowSeedFirstSeenHeight(ctx context.Context, seed []byte) (uint64, error)
	FetchUnspentOutputHashByCommitment(ctx context.Context, commitment model.Commitment) (*chainhash.Hash, error)
	FetchOutput(ctx context.Context, hash chainhash.Hash) (*model.TransactionOutput, error)
}
