package bolt

import (
	"context"
	"time"

	"go.etcd.io/bbolt"

	"github.com/goodnatureofminers/chainsync/internal/difficulty"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

// FetchPowSeedFirstSeenHeight returns the height of the first best chain block mined with
// seed, or 0 when no such block exists.
func (r *Repository) FetchPowSeedFirstSeenHeight(ctx context.Context, seed []byte) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("fetch_pow_seed_first_seen_height", err, start)
	}()

	var height uint64
	err = r.view(ctx, func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketPowSeeds).Get(seed)
		if raw == nil {
			return nil
		}
		var err error
		height, err = parseHeightKey(raw)
		return err
	})
	if err != nil {
		err = storageError("fetch_pow_seed_first_seen_height", err)
		return 0, err
	}
	return height, nil
}

// mergeMinedSeed returns the seed of a merge mined header, or nil for other algorithms.
func mergeMinedSeed(header *model.BlockHeader) ([]byte, error) {
	if header.Pow.Algorithm != model.PowAlgorithmMergeMined {
		return nil, nil
	}
	data, err := difficulty.ParseMergeMinedPowData(header.Pow.Data)
	if err != nil {
		return nil, err
	}
	return data.Seed, nil
}
