package bolt

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.etcd.io/bbolt"

	"github.com/goodnatureofminers/chainsync/internal/model"
)

// FetchHeader returns the best chain header at height.
func (r *Repository) FetchHeader(ctx context.Context, height uint64) (*model.BlockHeader, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("fetch_header", err, start)
	}()

	var header *model.BlockHeader
	err = r.view(ctx, func(tx *bbolt.Tx) error {
		var err error
		header, err = headerAt(tx, height)
		return err
	})
	if err != nil {
		err = storageError("fetch_header", err)
		return nil, err
	}
	return header, nil
}

// FetchHeaderByBlockHash returns the header of any stored block with the given hash, on the
// best chain or parked as a side chain or orphan block.
func (r *Repository) FetchHeaderByBlockHash(ctx context.Context, hash chainhash.Hash) (*model.BlockHeader, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("fetch_header_by_block_hash", err, start)
	}()

	var header *model.BlockHeader
	err = r.view(ctx, func(tx *bbolt.Tx) error {
		height, err := heightOf(tx, hash)
		if err != nil {
			return err
		}
		if height != nil {
			header, err = headerAt(tx, *height)
			return err
		}
		parked, err := orphanOf(tx, hash)
		if err != nil || parked == nil {
			return err
		}
		header = &parked.block.Header
		return nil
	})
	if err != nil {
		err = storageError("fetch_header_by_block_hash", err)
		return nil, err
	}
	return header, nil
}

// FetchHeaderAccumulatedData returns the accumulated data of any connected block, including
// blocks on side chains.
func (r *Repository) FetchHeaderAccumulatedData(ctx context.Context, hash chainhash.Hash) (*model.BlockHeaderAccumulatedData, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("fetch_header_accumulated_data", err, start)
	}()

	var data *model.BlockHeaderAccumulatedData
	err = r.view(ctx, func(tx *bbolt.Tx) error {
		var err error
		data, err = accumulatedOf(tx, hash)
		return err
	})
	if err != nil {
		err = storageError("fetch_header_accumulated_data", err)
		return nil, err
	}
	return data, nil
}
