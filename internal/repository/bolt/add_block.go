package bolt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsync/internal/model"
)

// AddBlock stores a block whose proof of work was already checked. The block is committed in
// a single transaction: it extends the tip, parks as an orphan or side chain block, or
// triggers a reorg onto a fork with more accumulated difficulty.
func (r *Repository) AddBlock(ctx context.Context, block *model.Block, pow model.AchievedTargetDifficulty) (model.BlockAddResult, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("add_block", err, start)
	}()

	var result model.BlockAddResult
	err = r.update(ctx, func(tx *bbolt.Tx) error {
		var err error
		result, err = r.addBlock(tx, block, pow)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInconsistentChain) || errors.Is(err, ErrReorgBeyondPrunedHeight) {
			err = fmt.Errorf("add block %s: %w", block.Hash(), err)
			return 0, err
		}
		err = storageError("add_block", err)
		return 0, err
	}
	r.metrics.ObserveAddBlockResult(result.String())
	return result, nil
}

func (r *Repository) addBlock(tx *bbolt.Tx, block *model.Block, pow model.AchievedTargetDifficulty) (model.BlockAddResult, error) {
	hash := block.Hash()
	// Connected blocks, main chain or side chain, have accumulated data. Orphans do not.
	if tx.Bucket(bucketAccumulated).Get(hash[:]) != nil {
		return model.BlockExists, nil
	}

	parent, err := accumulatedOf(tx, block.Header.PrevHash)
	if err != nil {
		return 0, err
	}
	if parent == nil {
		if err := putOrphan(tx, &storedBlock{block: *block, pow: pow}); err != nil {
			return 0, err
		}
		return model.OrphanBlock, nil
	}
	acc, err := parent.Next(hash, pow)
	if err != nil {
		return 0, err
	}

	tipHash, tipHeight, err := bestBlock(tx)
	if err != nil {
		return 0, err
	}
	if block.Header.PrevHash == tipHash {
		if block.Header.Height != tipHeight+1 {
			return 0, fmt.Errorf("%w: height %d on tip %d", ErrInconsistentChain, block.Header.Height, tipHeight)
		}
		if err := tx.Bucket(bucketOrphans).Delete(hash[:]); err != nil {
			return 0, err
		}
		if err := r.applyBlock(tx, block, &acc); err != nil {
			return 0, err
		}
		return model.BlockAddOk, nil
	}

	// Side chain. Its accumulated data is kept so descendants can connect to it.
	if err := putOrphan(tx, &storedBlock{block: *block, pow: pow}); err != nil {
		return 0, err
	}
	if err := putAccumulated(tx, &acc); err != nil {
		return 0, err
	}
	tipAcc, err := accumulatedOf(tx, tipHash)
	if err != nil {
		return 0, err
	}
	if tipAcc == nil {
		return 0, fmt.Errorf("%w: no accumulated data for best block %s", errCorruptRecord, tipHash)
	}
	if acc.TotalAccumulatedDifficulty.Cmp(tipAcc.TotalAccumulatedDifficulty) <= 0 {
		return model.OrphanBlock, nil
	}
	if err := r.reorg(tx, hash); err != nil {
		return 0, err
	}
	return model.ChainReorg, nil
}

// reorg makes the side chain ending at hash the best chain.
func (r *Repository) reorg(tx *bbolt.Tx, hash chainhash.Hash) error {
	var fork []*storedBlock
	cursor := hash
	for {
		height, err := heightOf(tx, cursor)
		if err != nil {
			return err
		}
		if height != nil {
			break
		}
		orphan, err := orphanOf(tx, cursor)
		if err != nil {
			return err
		}
		if orphan == nil {
			return fmt.Errorf("%w: side chain block %s missing", errCorruptRecord, cursor)
		}
		fork = append(fork, orphan)
		cursor = orphan.block.Header.PrevHash
	}
	slices.Reverse(fork)

	forkHeight := fork[0].block.Header.Height - 1
	pruned, err := prunedHeight(tx)
	if err != nil {
		return err
	}
	if forkHeight+1 < pruned {
		return fmt.Errorf("%w: fork at %d, pruned to %d", ErrReorgBeyondPrunedHeight, forkHeight, pruned)
	}

	_, tipHeight, err := bestBlock(tx)
	if err != nil {
		return err
	}
	for h := tipHeight; h > forkHeight; h-- {
		if err := rewindBlock(tx, h); err != nil {
			return fmt.Errorf("rewind %d: %w", h, err)
		}
	}
	for _, s := range fork {
		blockHash := s.block.Hash()
		acc, err := accumulatedOf(tx, blockHash)
		if err != nil {
			return err
		}
		if acc == nil {
			return fmt.Errorf("%w: no accumulated data for side chain block %s", errCorruptRecord, blockHash)
		}
		if err := tx.Bucket(bucketOrphans).Delete(blockHash[:]); err != nil {
			return err
		}
		if err := r.applyBlock(tx, &s.block, acc); err != nil {
			return fmt.Errorf("apply %s: %w", blockHash, err)
		}
	}
	r.logger.Info("chain reorganized",
		zap.Uint64("fork_height", forkHeight),
		zap.Uint64("old_tip_height", tipHeight),
		zap.Uint64("new_tip_height", fork[len(fork)-1].block.Header.Height),
		zap.Stringer("new_tip", hash),
	)
	return nil
}

// applyBlock appends block to the best chain and updates the output set.
func (r *Repository) applyBlock(tx *bbolt.Tx, block *model.Block, acc *model.BlockHeaderAccumulatedData) error {
	hash := block.Hash()
	height := block.Header.Height
	key := heightKey(height)

	header, err := encodeHeader(&block.Header)
	if err != nil {
		return err
	}
	body, err := encodeBody(&block.Body)
	if err != nil {
		return err
	}
	if err := tx.Bucket(bucketHeaders).Put(key, header); err != nil {
		return err
	}
	if err := tx.Bucket(bucketHeightIndex).Put(hash[:], key); err != nil {
		return err
	}
	if err := putAccumulated(tx, acc); err != nil {
		return err
	}
	if err := tx.Bucket(bucketBodies).Put(hash[:], body); err != nil {
		return err
	}

	utxos := tx.Bucket(bucketUTXOs)
	outputs := tx.Bucket(bucketOutputs)
	spent := tx.Bucket(bucketSpent)
	for i := range block.Body.Outputs {
		output := &block.Body.Outputs[i]
		outputHash := output.Hash()
		value, err := encodeOutput(output)
		if err != nil {
			return err
		}
		if err := outputs.Put(outputHash[:], value); err != nil {
			return err
		}
		if err := utxos.Put(output.Commitment[:], outputHash[:]); err != nil {
			return err
		}
	}
	for i := range block.Body.Inputs {
		input := &block.Body.Inputs[i]
		unspent := utxos.Get(input.Commitment[:])
		if unspent == nil || !bytes.Equal(unspent, input.OutputHash[:]) {
			return fmt.Errorf("%w: input %s does not spend an unspent output", ErrInconsistentChain, input.Commitment)
		}
		if err := utxos.Delete(input.Commitment[:]); err != nil {
			return err
		}
		if err := spent.Put(input.OutputHash[:], hash[:]); err != nil {
			return err
		}
	}

	seed, err := mergeMinedSeed(&block.Header)
	if err != nil {
		return err
	}
	if len(seed) > 0 {
		seeds := tx.Bucket(bucketPowSeeds)
		if seeds.Get(seed) == nil {
			if err := seeds.Put(seed, key); err != nil {
				return err
			}
		}
	}

	if err := tx.Bucket(bucketMetadata).Put(keyBestBlock, hash[:]); err != nil {
		return err
	}
	return r.prune(tx, height)
}

// rewindBlock removes the tip at height from the best chain and parks it as a side chain
// block. Its accumulated data is kept.
func rewindBlock(tx *bbolt.Tx, height uint64) error {
	header, err := headerAt(tx, height)
	if err != nil {
		return err
	}
	if header == nil {
		return fmt.Errorf("%w: no header at %d", errCorruptRecord, height)
	}
	hash := header.Hash()
	raw := tx.Bucket(bucketBodies).Get(hash[:])
	if raw == nil {
		return fmt.Errorf("%w: body of %s pruned", ErrReorgBeyondPrunedHeight, hash)
	}
	body, err := decodeBody(raw)
	if err != nil {
		return err
	}
	acc, err := accumulatedOf(tx, hash)
	if err != nil {
		return err
	}
	if acc == nil {
		return fmt.Errorf("%w: no accumulated data for %s", errCorruptRecord, hash)
	}

	utxos := tx.Bucket(bucketUTXOs)
	outputs := tx.Bucket(bucketOutputs)
	spent := tx.Bucket(bucketSpent)
	for i := range body.Inputs {
		input := &body.Inputs[i]
		if by := spent.Get(input.OutputHash[:]); !bytes.Equal(by, hash[:]) {
			return fmt.Errorf("%w: output %s not spent by %s", errCorruptRecord, input.OutputHash, hash)
		}
		if err := spent.Delete(input.OutputHash[:]); err != nil {
			return err
		}
		if err := utxos.Put(input.Commitment[:], input.OutputHash[:]); err != nil {
			return err
		}
	}
	for i := range body.Outputs {
		output := &body.Outputs[i]
		outputHash := output.Hash()
		if err := utxos.Delete(output.Commitment[:]); err != nil {
			return err
		}
		if err := outputs.Delete(outputHash[:]); err != nil {
			return err
		}
	}

	seed, err := mergeMinedSeed(header)
	if err != nil {
		return err
	}
	if len(seed) > 0 {
		seeds := tx.Bucket(bucketPowSeeds)
		if bytes.Equal(seeds.Get(seed), heightKey(height)) {
			if err := seeds.Delete(seed); err != nil {
				return err
			}
		}
	}

	if err := tx.Bucket(bucketHeaders).Delete(heightKey(height)); err != nil {
		return err
	}
	if err := tx.Bucket(bucketHeightIndex).Delete(hash[:]); err != nil {
		return err
	}
	if err := tx.Bucket(bucketBodies).Delete(hash[:]); err != nil {
		return err
	}
	pow := model.AchievedTargetDifficulty{
		Algorithm: header.Pow.Algorithm,
		Achieved:  acc.AchievedDifficulty,
		Target:    acc.TargetDifficulty,
	}
	if err := putOrphan(tx, &storedBlock{block: model.Block{Header: *header, Body: *body}, pow: pow}); err != nil {
		return err
	}
	return tx.Bucket(bucketMetadata).Put(keyBestBlock, header.PrevHash[:])
}

// prune drops bodies that fell behind the pruning horizon of a chain whose tip is at tip.
func (r *Repository) prune(tx *bbolt.Tx, tip uint64) error {
	if r.pruningHorizon == 0 {
		return nil
	}
	target := model.ChainMetadata{PruningHorizon: r.pruningHorizon}.HorizonBlock(tip)
	current, err := prunedHeight(tx)
	if err != nil {
		return err
	}
	if target <= current {
		return nil
	}
	bodies := tx.Bucket(bucketBodies)
	for h := current; h < target; h++ {
		header, err := headerAt(tx, h)
		if err != nil {
			return err
		}
		if header == nil {
			continue
		}
		hash := header.Hash()
		if err := bodies.Delete(hash[:]); err != nil {
			return err
		}
	}
	return tx.Bucket(bucketMetadata).Put(keyPrunedHeight, heightKey(target))
}

func putOrphan(tx *bbolt.Tx, s *storedBlock) error {
	value, err := encodeStoredBlock(s)
	if err != nil {
		return err
	}
	hash := s.block.Hash()
	return tx.Bucket(bucketOrphans).Put(hash[:], value)
}

func putAccumulated(tx *bbolt.Tx, acc *model.BlockHeaderAccumulatedData) error {
	value, err := encodeAccumulatedData(acc)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketAccumulated).Put(acc.Hash[:], value)
}
