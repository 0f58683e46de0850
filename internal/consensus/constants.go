// Package consensus holds per-network consensus parameters.
package consensus

import (
	"math"
	"time"

	"github.com/goodnatureofminers/chainsync/internal/model"
)

// PowAlgorithmConstants are the retarget parameters of a single algorithm.
type PowAlgorithmConstants struct {
	// TargetTime is the desired spacing, in seconds, between two blocks of this algorithm.
	TargetTime    uint64
	MaxBlockTime  uint64
	MinDifficulty model.Difficulty
	MaxDifficulty model.Difficulty
}

// Constants are the rules in force from EffectiveFromHeight onwards.
type Constants struct {
	EffectiveFromHeight  uint64
	MinBlockchainVersion uint16
	MaxBlockchainVersion uint16
	// FutureTimeLimit is how far, in seconds, a header timestamp may run ahead of local time.
	FutureTimeLimit       uint64
	MedianTimestampCount  int
	DifficultyBlockWindow uint64
	MaxRandomXSeedHeight  uint64
	CoinbaseLockHeight    uint64
	PowAlgos              map[model.PowAlgorithm]PowAlgorithmConstants

	EmissionInitial model.MicroTari
	EmissionDecay   []uint64
	EmissionTail    model.MicroTari
}

// IsValidVersion reports whether v is accepted at these rules.
func (c *Constants) IsValidVersion(v uint16) bool {
	return v >= c.MinBlockchainVersion && v <= c.MaxBlockchainVersion
}

// FTL is the latest acceptable header timestamp given the local time.
func (c *Constants) FTL(now time.Time) uint64 {
	unix := now.Unix()
	if unix < 0 {
		unix = 0
	}
	return uint64(unix) + c.FutureTimeLimit
}

// PowConstants returns the retarget parameters of algo.
func (c *Constants) PowConstants(algo model.PowAlgorithm) (PowAlgorithmConstants, bool) {
	pc, ok := c.PowAlgos[algo]
	return pc, ok
}

func mainnetConstants() []Constants {
	return []Constants{{
		EffectiveFromHeight:   0,
		MinBlockchainVersion:  1,
		MaxBlockchainVersion:  1,
		FutureTimeLimit:       540,
		MedianTimestampCount:  11,
		DifficultyBlockWindow: 90,
		MaxRandomXSeedHeight:  math.MaxUint64,
		CoinbaseLockHeight:    720,
		PowAlgos: map[model.PowAlgorithm]PowAlgorithmConstants{
			model.PowAlgorithmMergeMined: {
				TargetTime:    240,
				MaxBlockTime:  1440,
				MinDifficulty: 1_200_000,
				MaxDifficulty: model.MaxDifficulty,
			},
			model.PowAlgorithmSha3x: {
				TargetTime:    240,
				MaxBlockTime:  1440,
				MinDifficulty: 1_200_000_000,
				MaxDifficulty: model.MaxDifficulty,
			},
		},
		EmissionInitial: 13_952_877_666,
		EmissionDecay:   []uint64{21, 22, 23, 25, 26, 37, 38, 40},
		EmissionTail:    800_000_000,
	}}
}

func testnetConstants() []Constants {
	c := mainnetConstants()[0]
	c.CoinbaseLockHeight = 6
	c.MaxRandomXSeedHeight = 2880
	c.PowAlgos = map[model.PowAlgorithm]PowAlgorithmConstants{
		model.PowAlgorithmMergeMined: {TargetTime: 240, MaxBlockTime: 1440, MinDifficulty: 60_000, MaxDifficulty: model.MaxDifficulty},
		model.PowAlgorithmSha3x:      {TargetTime: 240, MaxBlockTime: 1440, MinDifficulty: 60_000, MaxDifficulty: model.MaxDifficulty},
	}
	return []Constants{c}
}

func localnetConstants() []Constants {
	return []Constants{{
		EffectiveFromHeight:   0,
		MinBlockchainVersion:  0,
		MaxBlockchainVersion:  1,
		FutureTimeLimit:       540,
		MedianTimestampCount:  11,
		DifficultyBlockWindow: 90,
		MaxRandomXSeedHeight:  1000,
		CoinbaseLockHeight:    1,
		PowAlgos: map[model.PowAlgorithm]PowAlgorithmConstants{
			model.PowAlgorithmMergeMined: {TargetTime: 120, MaxBlockTime: 720, MinDifficulty: 1, MaxDifficulty: model.MaxDifficulty},
			model.PowAlgorithmSha3x:      {TargetTime: 120, MaxBlockTime: 720, MinDifficulty: 1, MaxDifficulty: model.MaxDifficulty},
		},
		EmissionInitial: 5_000_000_000,
		EmissionDecay:   []uint64{10},
		EmissionTail:    100_000_000,
	}}
}
