package difficulty

import (
	"github.com/goodnatureofminers/chainsync/internal/consensus"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

// TargetDifficultyWindow clamps the LWMA result into an algorithm's difficulty bounds.
type TargetDifficultyWindow struct {
	lwma          *LinearWeightedMovingAverage
	minDifficulty model.Difficulty
	maxDifficulty model.Difficulty
}

// NewTargetDifficultyWindow builds an empty window for one algorithm.
func NewTargetDifficultyWindow(blockWindow uint64, pow consensus.PowAlgorithmConstants) *TargetDifficultyWindow {
	return &TargetDifficultyWindow{
		lwma:          NewLinearWeightedMovingAverage(int(blockWindow), pow.TargetTime, pow.MaxBlockTime),
		minDifficulty: pow.MinDifficulty,
		maxDifficulty: pow.MaxDifficulty,
	}
}

func (w *TargetDifficultyWindow) AddFront(timestamp uint64, d model.Difficulty) {
	w.lwma.AddFront(timestamp, d)
}

func (w *TargetDifficultyWindow) AddBack(timestamp uint64, d model.Difficulty) {
	w.lwma.AddBack(timestamp, d)
}

func (w *TargetDifficultyWindow) IsFull() bool {
	return w.lwma.IsFull()
}

func (w *TargetDifficultyWindow) Len() int {
	return w.lwma.Len()
}

// CalculateTarget returns the clamped target, falling back to the minimum difficulty while
// the window holds fewer than two samples.
func (w *TargetDifficultyWindow) CalculateTarget() model.Difficulty {
	target := w.lwma.Difficulty().UnwrapOr(w.minDifficulty)
	if target < w.minDifficulty {
		return w.minDifficulty
	}
	if target > w.maxDifficulty {
		return w.maxDifficulty
	}
	return target
}
