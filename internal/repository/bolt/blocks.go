package bolt

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/goodnatureofminers/chainsync/internal/model"
)

// FetchBlock returns the best chain block at height. The body is left empty and Pruned set
// when withBody is false or the body was pruned.
func (r *Repository) FetchBlock(ctx context.Context, height uint64, withBody bool) (*model.HistoricalBlock, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("fetch_block", err, start)
	}()

	var block *model.HistoricalBlock
	err = r.view(ctx, func(tx *bbolt.Tx) error {
		header, err := headerAt(tx, height)
		if err != nil || header == nil {
			return err
		}
		hash := header.Hash()
		acc, err := accumulatedOf(tx, hash)
		if err != nil {
			return err
		}
		if acc == nil {
			return fmt.Errorf("%w: no accumulated data for %s", errCorruptRecord, hash)
		}
		_, tip, err := bestBlock(tx)
		if err != nil {
			return err
		}

		block = &model.HistoricalBlock{
			Block:           model.Block{Header: *header},
			AccumulatedData: *acc,
			Confirmations:   tip - height + 1,
			Pruned:          true,
		}
		if !withBody {
			return nil
		}
		raw := tx.Bucket(bucketBodies).Get(hash[:])
		if raw == nil {
			return nil
		}
		body, err := decodeBody(raw)
		if err != nil {
			return err
		}
		block.Block.Body = *body
		block.Pruned = false
		return nil
	})
	if err != nil {
		err = storageError("fetch_block", err)
		return nil, err
	}
	return block, nil
}
