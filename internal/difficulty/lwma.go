// Package difficulty computes achieved and target proof-of-work difficulties.
package difficulty

import (
	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/holiman/uint256"
	"github.com/lightningnetwork/lnd/fn/v2"
)

type sample struct {
	timestamp  uint64
	difficulty model.Difficulty
}

// LinearWeightedMovingAverage is the LWMA-1 retarget over a bounded window of blocks of one
// algorithm. Samples are ordered oldest first.
type LinearWeightedMovingAverage struct {
	samples      []sample
	capacity     int
	targetTime   uint64
	maxBlockTime uint64
}

// NewLinearWeightedMovingAverage keeps blockWindow solve times, i.e. blockWindow+1 samples.
func NewLinearWeightedMovingAverage(blockWindow int, targetTime, maxBlockTime uint64) *LinearWeightedMovingAverage {
	return &LinearWeightedMovingAverage{
		samples:      make([]sample, 0, blockWindow+1),
		capacity:     blockWindow + 1,
		targetTime:   targetTime,
		maxBlockTime: maxBlockTime,
	}
}

// AddFront inserts an older sample. It is ignored once the window is full.
func (l *LinearWeightedMovingAverage) AddFront(timestamp uint64, d model.Difficulty) {
	if l.IsFull() {
		return
	}
	l.samples = append(l.samples, sample{})
	copy(l.samples[1:], l.samples)
	l.samples[0] = sample{timestamp: timestamp, difficulty: d}
}

// AddBack appends the newest sample, evicting the oldest when full.
func (l *LinearWeightedMovingAverage) AddBack(timestamp uint64, d model.Difficulty) {
	if l.IsFull() {
		copy(l.samples, l.samples[1:])
		l.samples = l.samples[:len(l.samples)-1]
	}
	l.samples = append(l.samples, sample{timestamp: timestamp, difficulty: d})
}

// IsFull reports whether the window holds blockWindow+1 samples.
func (l *LinearWeightedMovingAverage) IsFull() bool {
	return len(l.samples) >= l.capacity
}

// Len is the number of samples held.
func (l *LinearWeightedMovingAverage) Len() int {
	return len(l.samples)
}

// Difficulty returns the next target, or None with fewer than two samples.
func (l *LinearWeightedMovingAverage) Difficulty() fn.Option[model.Difficulty] {
	if len(l.samples) <= 1 {
		return fn.None[model.Difficulty]()
	}
	n := uint64(len(l.samples) - 1)

	var (
		weightedTimes uint64
		sum           = new(uint256.Int)
		prev          = l.samples[0].timestamp
	)
	for i := 1; i < len(l.samples); i++ {
		ts := l.samples[i].timestamp
		if ts <= prev {
			ts = prev + 1
		}
		solve := min(ts-prev, l.maxBlockTime)
		prev = ts
		weightedTimes += solve * uint64(i)
		sum.Add(sum, uint256.NewInt(uint64(l.samples[i].difficulty)))
	}
	if weightedTimes == 0 {
		return fn.None[model.Difficulty]()
	}

	avg := new(uint256.Int).Div(sum, uint256.NewInt(n))
	// k = n(n+1)/2 * targetTime is the weighted solve time of a perfectly paced window.
	k := new(uint256.Int).Mul(uint256.NewInt(n), uint256.NewInt(n+1))
	k.Rsh(k, 1)
	k.Mul(k, uint256.NewInt(l.targetTime))

	target := new(uint256.Int).Mul(avg, k)
	target.Div(target, uint256.NewInt(weightedTimes))
	if !target.IsUint64() {
		return fn.Some(model.MaxDifficulty)
	}
	return fn.Some(model.Difficulty(target.Uint64()))
}
