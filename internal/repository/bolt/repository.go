// Package bolt is the bbolt backed chain store.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/lru"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/goodnatureofminers/chainsync/internal/chain"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveAddBlockResult(result string)
	}
)

var (
	bucketHeaders     = []byte("headers")
	bucketHeightIndex = []byte("height_by_hash")
	bucketAccumulated = []byte("accumulated_data")
	bucketBodies      = []byte("bodies")
	bucketUTXOs       = []byte("utxos")
	bucketOutputs     = []byte("outputs")
	bucketSpent       = []byte("spent_outputs")
	bucketBadBlocks   = []byte("bad_blocks")
	bucketPowSeeds    = []byte("pow_seeds")
	bucketOrphans     = []byte("orphans")
	bucketMetadata    = []byte("metadata")

	keyBestBlock    = []byte("best_block")
	keyPrunedHeight = []byte("pruned_height")

	allBuckets = [][]byte{
		bucketHeaders,
		bucketHeightIndex,
		bucketAccumulated,
		bucketBodies,
		bucketUTXOs,
		bucketOutputs,
		bucketSpent,
		bucketBadBlocks,
		bucketPowSeeds,
		bucketOrphans,
		bucketMetadata,
	}
)

var (
	// ErrInconsistentChain is returned when a block cannot be applied to the chain it extends.
	ErrInconsistentChain = errors.New("block inconsistent with stored chain")
	// ErrReorgBeyondPrunedHeight is returned when a stronger fork starts below the pruned height.
	ErrReorgBeyondPrunedHeight = errors.New("reorg beyond pruned height")
)

// Config tunes the store.
type Config struct {
	Path string
	// PruningHorizon is reported in the chain metadata. Zero means archival.
	PruningHorizon uint64
	// MaxConcurrentReads bounds the number of read transactions in flight.
	MaxConcurrentReads int64
	BadBlockCacheSize  uint
	OpenTimeout        time.Duration
}

// Repository implements chain.Database on a bbolt file. Writes are serialized and each
// block is committed in a single transaction.
type Repository struct {
	db             *bbolt.DB
	reads          *semaphore.Weighted
	writes         *semaphore.Weighted
	badBlocks      lru.Cache
	pruningHorizon uint64
	metrics        Metrics
	logger         *zap.Logger
}

var _ chain.Database = (*Repository)(nil)

// Open opens or creates the store at cfg.Path and writes genesis into an empty store.
func Open(cfg Config, genesis model.Block, genesisPow model.AchievedTargetDifficulty, metrics Metrics, logger *zap.Logger) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("bolt path is required")
	}
	if cfg.MaxConcurrentReads <= 0 {
		cfg.MaxConcurrentReads = 16
	}
	if cfg.BadBlockCacheSize == 0 {
		cfg.BadBlockCacheSize = 1024
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 5 * time.Second
	}

	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		return nil, storageError("open", err)
	}
	r := &Repository{
		db:             db,
		reads:          semaphore.NewWeighted(cfg.MaxConcurrentReads),
		writes:         semaphore.NewWeighted(1),
		badBlocks:      lru.NewCache(cfg.BadBlockCacheSize),
		pruningHorizon: cfg.PruningHorizon,
		metrics:        metrics,
		logger:         logger,
	}
	if err := r.init(genesis, genesisPow); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repository) init(genesis model.Block, genesisPow model.AchievedTargetDifficulty) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		if tx.Bucket(bucketMetadata).Get(keyBestBlock) != nil {
			return nil
		}
		hash := genesis.Hash()
		acc := model.GenesisAccumulatedData(hash, genesisPow)
		if err := r.applyBlock(tx, &genesis, &acc); err != nil {
			return fmt.Errorf("write genesis: %w", err)
		}
		r.logger.Info("initialized chain store with genesis block", zap.Stringer("hash", hash))
		return nil
	})
	return storageError("init", err)
}

// Close releases the database file.
func (r *Repository) Close() error {
	return storageError("close", r.db.Close())
}

// storageError marks err as a store failure. Cancellation passes through unchanged.
func storageError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return chain.NewStorageError(op, err)
}

func (r *Repository) view(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if err := r.reads.Acquire(ctx, 1); err != nil {
		return err
	}
	defer r.reads.Release(1)
	return r.db.View(fn)
}

func (r *Repository) update(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if err := r.writes.Acquire(ctx, 1); err != nil {
		return err
	}
	defer r.writes.Release(1)
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(fn)
}

func bestBlock(tx *bbolt.Tx) (chainhash.Hash, uint64, error) {
	raw := tx.Bucket(bucketMetadata).Get(keyBestBlock)
	if raw == nil {
		return chainhash.Hash{}, 0, fmt.Errorf("%w: no best block", errCorruptRecord)
	}
	hash, err := hashFromBytes(raw)
	if err != nil {
		return chainhash.Hash{}, 0, err
	}
	height, err := heightOf(tx, hash)
	if err != nil {
		return chainhash.Hash{}, 0, err
	}
	if height == nil {
		return chainhash.Hash{}, 0, fmt.Errorf("%w: best block %s not indexed", errCorruptRecord, hash)
	}
	return hash, *height, nil
}

// heightOf returns the best chain height of hash, or nil when hash is not on the best chain.
func heightOf(tx *bbolt.Tx, hash chainhash.Hash) (*uint64, error) {
	raw := tx.Bucket(bucketHeightIndex).Get(hash[:])
	if raw == nil {
		return nil, nil
	}
	height, err := parseHeightKey(raw)
	if err != nil {
		return nil, err
	}
	return &height, nil
}

func prunedHeight(tx *bbolt.Tx) (uint64, error) {
	raw := tx.Bucket(bucketMetadata).Get(keyPrunedHeight)
	if raw == nil {
		return 0, nil
	}
	return parseHeightKey(raw)
}

func headerAt(tx *bbolt.Tx, height uint64) (*model.BlockHeader, error) {
	raw := tx.Bucket(bucketHeaders).Get(heightKey(height))
	if raw == nil {
		return nil, nil
	}
	return decodeHeader(raw)
}

func accumulatedOf(tx *bbolt.Tx, hash chainhash.Hash) (*model.BlockHeaderAccumulatedData, error) {
	raw := tx.Bucket(bucketAccumulated).Get(hash[:])
	if raw == nil {
		return nil, nil
	}
	return decodeAccumulatedData(raw)
}

func orphanOf(tx *bbolt.Tx, hash chainhash.Hash) (*storedBlock, error) {
	raw := tx.Bucket(bucketOrphans).Get(hash[:])
	if raw == nil {
		return nil, nil
	}
	return decodeStoredBlock(raw)
}
