package bolt

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.etcd.io/bbolt"

	"github.com/goodnatureofminers/chainsync/internal/model"
)

// FetchUnspentOutputHashByCommitment returns the hash of the unspent output with commitment.
func (r *Repository) FetchUnspentOutputHashByCommitment(ctx context.Context, commitment model.Commitment) (*chainhash.Hash, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("fetch_unspent_output_hash_by_commitment", err, start)
	}()

	var hash *chainhash.Hash
	err = r.view(ctx, func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketUTXOs).Get(commitment[:])
		if raw == nil {
			return nil
		}
		h, err := hashFromBytes(raw)
		if err != nil {
			return err
		}
		hash = &h
		return nil
	})
	if err != nil {
		err = storageError("fetch_unspent_output_hash_by_commitment", err)
		return nil, err
	}
	return hash, nil
}

// FetchOutput returns any output created on the best chain, spent or not.
func (r *Repository) FetchOutput(ctx context.Context, hash chainhash.Hash) (*model.TransactionOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("fetch_output", err, start)
	}()

	var output *model.TransactionOutput
	err = r.view(ctx, func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketOutputs).Get(hash[:])
		if raw == nil {
			return nil
		}
		var err error
		output, err = decodeOutput(raw)
		return err
	})
	if err != nil {
		err = storageError("fetch_output", err)
		return nil, err
	}
	return output, nil
}
