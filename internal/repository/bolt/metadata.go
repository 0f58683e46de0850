package bolt

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/goodnatureofminers/chainsync/internal/model"
)

// GetMetadata describes the current best chain.
func (r *Repository) GetMetadata(ctx context.Context) (model.ChainMetadata, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_metadata", err, start)
	}()

	var metadata model.ChainMetadata
	err = r.view(ctx, func(tx *bbolt.Tx) error {
		hash, height, err := bestBlock(tx)
		if err != nil {
			return err
		}
		acc, err := accumulatedOf(tx, hash)
		if err != nil {
			return err
		}
		if acc == nil {
			return fmt.Errorf("%w: no accumulated data for best block %s", errCorruptRecord, hash)
		}
		pruned, err := prunedHeight(tx)
		if err != nil {
			return err
		}
		metadata = model.NewChainMetadata(height, hash, r.pruningHorizon, pruned, acc.TotalAccumulatedDifficulty)
		return nil
	})
	if err != nil {
		err = storageError("get_metadata", err)
		return model.ChainMetadata{}, err
	}
	return metadata, nil
}
