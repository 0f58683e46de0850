package model

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// PowAlgorithm identifies the proof-of-work scheme used to mine a block.
type PowAlgorithm uint8

const (
	// PowAlgorithmMergeMined is the RandomX style algorithm mined through a parent chain.
	PowAlgorithmMergeMined PowAlgorithm = 0
	// PowAlgorithmSha3x is the native triple SHA3-256 algorithm.
	PowAlgorithmSha3x PowAlgorithm = 1
)

// PowAlgorithms lists every supported algorithm.
var PowAlgorithms = []PowAlgorithm{PowAlgorithmMergeMined, PowAlgorithmSha3x}

func (a PowAlgorithm) String() string {
	switch a {
	case PowAlgorithmMergeMined:
		return "merge_mined"
	case PowAlgorithmSha3x:
		return "sha3x"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// IsValid reports whether a is a known algorithm.
func (a PowAlgorithm) IsValid() bool {
	return a == PowAlgorithmMergeMined || a == PowAlgorithmSha3x
}

// ProofOfWork carries the algorithm and its auxiliary data. Native Sha3x blocks carry no data.
type ProofOfWork struct {
	Algorithm PowAlgorithm
	Data      []byte
}

// AchievedTargetDifficulty is a proof that a header met its target.
type AchievedTargetDifficulty struct {
	Algorithm PowAlgorithm
	Achieved  Difficulty
	Target    Difficulty
}

// TryConstructAchievedTarget returns the pair only when achieved >= target.
func TryConstructAchievedTarget(algo PowAlgorithm, target, achieved Difficulty) fn.Option[AchievedTargetDifficulty] {
	if achieved < target {
		return fn.None[AchievedTargetDifficulty]()
	}
	return fn.Some(AchievedTargetDifficulty{
		Algorithm: algo,
		Achieved:  achieved,
		Target:    target,
	})
}
