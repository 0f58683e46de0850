package difficulty

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainsync/internal/consensus"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

// ErrAchievedDifficultyTooLow is matched by every AchievedDifficultyTooLowError.
var ErrAchievedDifficultyTooLow = errors.New("achieved difficulty below target")

// AchievedDifficultyTooLowError reports a header whose work is below its target.
type AchievedDifficultyTooLowError struct {
	Achieved model.Difficulty
	Target   model.Difficulty
}

func (e *AchievedDifficultyTooLowError) Error() string {
	return fmt.Sprintf("%s: achieved %s, target %s", ErrAchievedDifficultyTooLow, e.Achieved, e.Target)
}

func (e *AchievedDifficultyTooLowError) Is(target error) bool {
	return target == ErrAchievedDifficultyTooLow
}

// ChainReader is the read-only chain access the calculator needs.
type ChainReader interface {
	FetchHeader(ctx context.Context, height uint64) (*model.BlockHeader, error)
	FetchHeaderAccumulatedData(ctx context.Context, hash chainhash.Hash) (*model.BlockHeaderAccumulatedData, error)
}

// Calculator derives target difficulties from chain history and checks achieved work.
type Calculator struct {
	rules   *consensus.Manager
	hashers PowHasherFactory
}

func NewCalculator(rules *consensus.Manager, hashers PowHasherFactory) *Calculator {
	return &Calculator{rules: rules, hashers: hashers}
}

// TargetDifficultyWindow returns an empty retarget window for algo at height.
func (c *Calculator) TargetDifficultyWindow(algo model.PowAlgorithm, height uint64) (*TargetDifficultyWindow, error) {
	constants := c.rules.ConsensusConstants(height)
	pow, ok := constants.PowConstants(algo)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported algorithm %s", ErrInvalidPowData, algo)
	}
	return NewTargetDifficultyWindow(constants.DifficultyBlockWindow, pow), nil
}

// TargetDifficulty is the target for a block of algo at height. Only ancestors mined with
// the same algorithm contribute to the window.
func (c *Calculator) TargetDifficulty(ctx context.Context, db ChainReader, algo model.PowAlgorithm, height uint64) (model.Difficulty, error) {
	window, err := c.TargetDifficultyWindow(algo, height)
	if err != nil {
		return 0, err
	}
	for h := height; h > 0 && !window.IsFull(); h-- {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		header, err := db.FetchHeader(ctx, h-1)
		if err != nil {
			return 0, fmt.Errorf("fetch header %d: %w", h-1, err)
		}
		if header == nil {
			return 0, fmt.Errorf("header %d missing from difficulty window", h-1)
		}
		if header.Pow.Algorithm != algo {
			continue
		}
		data, err := db.FetchHeaderAccumulatedData(ctx, header.Hash())
		if err != nil {
			return 0, fmt.Errorf("fetch accumulated data %d: %w", h-1, err)
		}
		if data == nil {
			return 0, fmt.Errorf("accumulated data %d missing from difficulty window", h-1)
		}
		window.AddFront(header.Timestamp, data.TargetDifficulty)
	}
	return window.CalculateTarget(), nil
}

// AchievedDifficulty is the work proven by header.
func (c *Calculator) AchievedDifficulty(header *model.BlockHeader) (model.Difficulty, error) {
	switch header.Pow.Algorithm {
	case model.PowAlgorithmSha3x:
		return Sha3xDifficulty(header)
	case model.PowAlgorithmMergeMined:
		return MergeMinedDifficulty(header, c.hashers)
	default:
		return 0, fmt.Errorf("%w: unsupported algorithm %s", ErrInvalidPowData, header.Pow.Algorithm)
	}
}

// CheckAchievedDifficulty compares header's work against a known target.
func (c *Calculator) CheckAchievedDifficulty(header *model.BlockHeader, target model.Difficulty) (model.AchievedTargetDifficulty, error) {
	achieved, err := c.AchievedDifficulty(header)
	if err != nil {
		return model.AchievedTargetDifficulty{}, err
	}
	return model.TryConstructAchievedTarget(header.Pow.Algorithm, target, achieved).
		UnwrapOrErr(&AchievedDifficultyTooLowError{Achieved: achieved, Target: target})
}

// CheckAchievedAndTargetDifficulty computes header's target from history and checks its work
// against it.
func (c *Calculator) CheckAchievedAndTargetDifficulty(ctx context.Context, db ChainReader, header *model.BlockHeader) (model.AchievedTargetDifficulty, error) {
	target, err := c.TargetDifficulty(ctx, db, header.Pow.Algorithm, header.Height)
	if err != nil {
		return model.AchievedTargetDifficulty{}, err
	}
	return c.CheckAchievedDifficulty(header, target)
}
