package validation

import (
	"context"
	"fmt"
	"slices"

	"github.com/goodnatureofminers/chainsync/internal/consensus"
	"github.com/goodnatureofminers/chainsync/internal/difficulty"
	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/pkg/safe"
	"github.com/lightningnetwork/lnd/clock"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// HeaderValidator checks a candidate header against its predecessor and recent history.
// It holds no per-call state and may be shared.
type HeaderValidator struct {
	rules *consensus.Manager
	calc  DifficultyCalculator
	clock clock.Clock
}

func NewHeaderValidator(rules *consensus.Manager, calc DifficultyCalculator, clk clock.Clock) *HeaderValidator {
	return &HeaderValidator{rules: rules, calc: calc, clock: clk}
}

// ValidateHeader runs the contextual header rules in order and returns the proven work.
//
// timestamps are the timestamps of the blocks preceding header, oldest first. When target
// is set it is used instead of computing the target from chain history.
func (v *HeaderValidator) ValidateHeader(
	ctx context.Context,
	db HeaderChainReader,
	header *model.BlockHeader,
	prev *model.BlockHeader,
	timestamps []uint64,
	target fn.Option[model.Difficulty],
) (model.AchievedTargetDifficulty, error) {
	constants := v.rules.ConsensusConstants(header.Height)

	if !constants.IsValidVersion(header.Version) {
		return model.AchievedTargetDifficulty{}, fmt.Errorf("%w: %d", ErrInvalidBlockchainVersion, header.Version)
	}
	if err := checkTimestamps(constants, header, timestamps); err != nil {
		return model.AchievedTargetDifficulty{}, err
	}
	if header.Height != prev.Height+1 {
		return model.AchievedTargetDifficulty{}, fmt.Errorf("%w: expected %d, got %d", ErrInvalidHeight, prev.Height+1, header.Height)
	}
	if expected := prev.Hash(); header.PrevHash != expected {
		return model.AchievedTargetDifficulty{}, fmt.Errorf("%w: expected %s, got %s", ErrInvalidPreviousHash, expected, header.PrevHash)
	}
	if ftl := constants.FTL(v.clock.Now()); header.Timestamp > ftl {
		return model.AchievedTargetDifficulty{}, fmt.Errorf("%w: %d > %d", ErrInvalidTimestampFutureTimeLimit, header.Timestamp, ftl)
	}

	hash := header.Hash()
	bad, err := db.BadBlockExists(ctx, hash)
	if err != nil {
		return model.AchievedTargetDifficulty{}, fmt.Errorf("check bad block %s: %w", hash, err)
	}
	if bad {
		return model.AchievedTargetDifficulty{}, fmt.Errorf("%w: %s", ErrBadBlockFound, hash)
	}

	if err := checkPowData(ctx, db, constants, header); err != nil {
		return model.AchievedTargetDifficulty{}, err
	}

	if target.IsSome() {
		return v.calc.CheckAchievedDifficulty(header, target.UnwrapOr(model.MinDifficulty))
	}
	return v.calc.CheckAchievedAndTargetDifficulty(ctx, db, header)
}

func checkTimestamps(constants *consensus.Constants, header *model.BlockHeader, timestamps []uint64) error {
	expected := constants.MedianTimestampCount
	if header.Height < uint64(expected) {
		expected = int(header.Height)
	}
	if len(timestamps) < expected {
		return &NotEnoughTimestampsError{Actual: len(timestamps), Expected: expected}
	}
	if len(timestamps) == 0 {
		return nil
	}
	window := timestamps
	if len(window) > constants.MedianTimestampCount {
		window = window[len(window)-constants.MedianTimestampCount:]
	}
	median := Median(window)
	if header.Timestamp <= median {
		return fmt.Errorf("%w: %d <= median %d", ErrInvalidTimestamp, header.Timestamp, median)
	}
	return nil
}

func checkPowData(ctx context.Context, db HeaderChainReader, constants *consensus.Constants, header *model.BlockHeader) error {
	switch header.Pow.Algorithm {
	case model.PowAlgorithmSha3x:
		if len(header.Pow.Data) != 0 {
			return fmt.Errorf("%w: native proof of work carries %d bytes of data", difficulty.ErrInvalidPowData, len(header.Pow.Data))
		}
		return nil
	case model.PowAlgorithmMergeMined:
		data, err := difficulty.ParseMergeMinedPowData(header.Pow.Data)
		if err != nil {
			return err
		}
		seedHeight, err := db.FetchPowSeedFirstSeenHeight(ctx, data.Seed)
		if err != nil {
			return fmt.Errorf("fetch seed height: %w", err)
		}
		if seedHeight != 0 && safe.SaturatingSubUint64(header.Height, seedHeight) > constants.MaxRandomXSeedHeight {
			return fmt.Errorf("%w: first seen at %d, header at %d", ErrOldSeedHash, seedHeight, header.Height)
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported algorithm %s", difficulty.ErrInvalidPowData, header.Pow.Algorithm)
	}
}

// Median of a non-empty set of timestamps. An even count averages the two middle values.
func Median(timestamps []uint64) uint64 {
	sorted := slices.Clone(timestamps)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	lo, hi := sorted[mid-1], sorted[mid]
	return lo + (hi-lo)/2
}
