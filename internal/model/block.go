package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Block is a header plus its transaction body.
type Block struct {
	Header BlockHeader
	Body   AggregateBody
}

// Hash is the hash of the block header.
func (b *Block) Hash() chainhash.Hash {
	return b.Header.Hash()
}

// BlockHeaderAccumulatedData is derived chain state stored alongside each header.
type BlockHeaderAccumulatedData struct {
	Hash                            chainhash.Hash
	AchievedDifficulty              Difficulty
	TargetDifficulty                Difficulty
	TotalAccumulatedDifficulty      AccumulatedDifficulty
	AccumulatedMergeMinedDifficulty AccumulatedDifficulty
	AccumulatedSha3xDifficulty      AccumulatedDifficulty
}

// GenesisAccumulatedData seeds the accumulated data of the first block.
func GenesisAccumulatedData(hash chainhash.Hash, pow AchievedTargetDifficulty) BlockHeaderAccumulatedData {
	data := BlockHeaderAccumulatedData{
		Hash:                       hash,
		AchievedDifficulty:         pow.Achieved,
		TargetDifficulty:           pow.Target,
		TotalAccumulatedDifficulty: NewAccumulatedDifficulty(pow.Achieved),
	}
	switch pow.Algorithm {
	case PowAlgorithmMergeMined:
		data.AccumulatedMergeMinedDifficulty = NewAccumulatedDifficulty(pow.Achieved)
	case PowAlgorithmSha3x:
		data.AccumulatedSha3xDifficulty = NewAccumulatedDifficulty(pow.Achieved)
	}
	return data
}

// Next derives the accumulated data for a child with the given proof of work.
func (d BlockHeaderAccumulatedData) Next(hash chainhash.Hash, pow AchievedTargetDifficulty) (BlockHeaderAccumulatedData, error) {
	total, err := d.TotalAccumulatedDifficulty.CheckedAddDifficulty(pow.Achieved).
		UnwrapOrErr(fmt.Errorf("total accumulated difficulty overflow at %s", hash))
	if err != nil {
		return BlockHeaderAccumulatedData{}, err
	}
	next := BlockHeaderAccumulatedData{
		Hash:                            hash,
		AchievedDifficulty:              pow.Achieved,
		TargetDifficulty:                pow.Target,
		TotalAccumulatedDifficulty:      total,
		AccumulatedMergeMinedDifficulty: d.AccumulatedMergeMinedDifficulty,
		AccumulatedSha3xDifficulty:      d.AccumulatedSha3xDifficulty,
	}
	perAlgo := &next.AccumulatedSha3xDifficulty
	if pow.Algorithm == PowAlgorithmMergeMined {
		perAlgo = &next.AccumulatedMergeMinedDifficulty
	}
	updated, err := perAlgo.CheckedAddDifficulty(pow.Achieved).
		UnwrapOrErr(fmt.Errorf("%s accumulated difficulty overflow at %s", pow.Algorithm, hash))
	if err != nil {
		return BlockHeaderAccumulatedData{}, err
	}
	*perAlgo = updated
	return next, nil
}

// HistoricalBlock is a stored block with its derived data.
type HistoricalBlock struct {
	Block           Block
	AccumulatedData BlockHeaderAccumulatedData
	Confirmations   uint64
	// Pruned is set when the body was not requested or is no longer kept.
	Pruned bool
}

// BlockAddResult describes what happened to a block handed to the store.
type BlockAddResult uint8

const (
	// BlockAddOk means the block extended the best chain.
	BlockAddOk BlockAddResult = iota
	// BlockExists means the block was already known.
	BlockExists
	// OrphanBlock means the parent is unknown and the block was parked.
	OrphanBlock
	// ChainReorg means the block completed a stronger fork that is now the best chain.
	ChainReorg
)

func (r BlockAddResult) String() string {
	switch r {
	case BlockAddOk:
		return "ok"
	case BlockExists:
		return "block_exists"
	case OrphanBlock:
		return "orphan_block"
	case ChainReorg:
		return "chain_reorg"
	default:
		return "unknown"
	}
}
