package bolt

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.etcd.io/bbolt"
)

// BadBlockExists reports whether hash was recorded as invalid.
func (r *Repository) BadBlockExists(ctx context.Context, hash chainhash.Hash) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("bad_block_exists", err, start)
	}()

	if r.badBlocks.Contains(hash) {
		return true, nil
	}

	var exists bool
	err = r.view(ctx, func(tx *bbolt.Tx) error {
		exists = tx.Bucket(bucketBadBlocks).Get(hash[:]) != nil
		return nil
	})
	if err != nil {
		err = storageError("bad_block_exists", err)
		return false, err
	}
	if exists {
		r.badBlocks.Add(hash)
	}
	return exists, nil
}

// InsertBadBlock records hash as invalid. Recording the same hash again keeps the first reason.
func (r *Repository) InsertBadBlock(ctx context.Context, hash chainhash.Hash, height uint64, reason string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_bad_block", err, start)
	}()

	err = r.update(ctx, func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBadBlocks)
		if bucket.Get(hash[:]) != nil {
			return nil
		}
		value, err := encodeBadBlock(&badBlock{height: height, reason: reason})
		if err != nil {
			return err
		}
		return bucket.Put(hash[:], value)
	})
	if err != nil {
		err = storageError("insert_bad_block", err)
		return err
	}
	r.badBlocks.Add(hash)
	return nil
}
