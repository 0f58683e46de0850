// Package model defines the chain domain types shared by validation, storage and sync.
package model

import (
	"errors"
	"math"
	"strconv"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainsync/pkg/safe"
	"github.com/holiman/uint256"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// ErrZeroHashDifficulty is returned when a difficulty is requested for an all-zero hash.
var ErrZeroHashDifficulty = errors.New("difficulty of a zero hash is undefined")

// Difficulty is the work represented by a single proof of work.
type Difficulty uint64

// MinDifficulty is the smallest difficulty a block may be mined at.
const MinDifficulty Difficulty = 1

// MaxDifficulty is the largest representable difficulty.
const MaxDifficulty Difficulty = math.MaxUint64

// NewDifficulty wraps a raw u64 value.
func NewDifficulty(v uint64) Difficulty {
	return Difficulty(v)
}

// Uint64 returns the raw value.
func (d Difficulty) Uint64() uint64 {
	return uint64(d)
}

// CheckedAdd returns d+o, or None on overflow.
func (d Difficulty) CheckedAdd(o Difficulty) fn.Option[Difficulty] {
	sum, err := safe.AddUint64(uint64(d), uint64(o))
	if err != nil {
		return fn.None[Difficulty]()
	}
	return fn.Some(Difficulty(sum))
}

// CheckedSub returns d-o, or None on underflow.
func (d Difficulty) CheckedSub(o Difficulty) fn.Option[Difficulty] {
	diff, err := safe.SubUint64(uint64(d), uint64(o))
	if err != nil {
		return fn.None[Difficulty]()
	}
	return fn.Some(Difficulty(diff))
}

// Ratio returns the truncated quotient d/o. Division by zero saturates.
func (d Difficulty) Ratio(o Difficulty) uint64 {
	if o == 0 {
		return math.MaxUint64
	}
	return uint64(d) / uint64(o)
}

func (d Difficulty) String() string {
	return strconv.FormatUint(uint64(d), 10)
}

// BigEndianDifficulty computes MAX_U256 / hash for a hash read as a big-endian integer.
// The result saturates at MaxDifficulty.
func BigEndianDifficulty(hash []byte) (Difficulty, error) {
	if len(hash) > 32 {
		return 0, errors.New("hash longer than 32 bytes")
	}
	return difficultyOf(new(uint256.Int).SetBytes(hash))
}

// LittleEndianDifficulty computes MAX_U256 / hash for a hash read as a little-endian integer.
func LittleEndianDifficulty(hash chainhash.Hash) (Difficulty, error) {
	scalar, overflow := uint256.FromBig(blockchain.HashToBig(&hash))
	if overflow {
		return 0, errors.New("hash does not fit in 256 bits")
	}
	return difficultyOf(scalar)
}

func difficultyOf(scalar *uint256.Int) (Difficulty, error) {
	if scalar.IsZero() {
		return 0, ErrZeroHashDifficulty
	}
	ceiling := new(uint256.Int).SetAllOne()
	result := new(uint256.Int).Div(ceiling, scalar)
	if !result.IsUint64() {
		return MaxDifficulty, nil
	}
	return Difficulty(result.Uint64()), nil
}

// accumulatedBits is the width of the accumulated difficulty counter.
const accumulatedBits = 128

// AccumulatedDifficulty is the 128-bit running sum of difficulties along a chain.
type AccumulatedDifficulty struct {
	v uint256.Int
}

// NewAccumulatedDifficulty starts a sum at d.
func NewAccumulatedDifficulty(d Difficulty) AccumulatedDifficulty {
	var a AccumulatedDifficulty
	a.v.SetUint64(uint64(d))
	return a
}

// AccumulatedDifficultyFromBytes decodes the 16-byte big-endian form produced by Bytes.
func AccumulatedDifficultyFromBytes(b [16]byte) AccumulatedDifficulty {
	var a AccumulatedDifficulty
	a.v.SetBytes(b[:])
	return a
}

// CheckedAddDifficulty returns a+d, or None when the sum does not fit in 128 bits.
func (a AccumulatedDifficulty) CheckedAddDifficulty(d Difficulty) fn.Option[AccumulatedDifficulty] {
	var res AccumulatedDifficulty
	if _, overflow := res.v.AddOverflow(&a.v, uint256.NewInt(uint64(d))); overflow {
		return fn.None[AccumulatedDifficulty]()
	}
	if res.v.BitLen() > accumulatedBits {
		return fn.None[AccumulatedDifficulty]()
	}
	return fn.Some(res)
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or greater than b.
func (a AccumulatedDifficulty) Cmp(b AccumulatedDifficulty) int {
	return a.v.Cmp(&b.v)
}

// IsZero reports whether no work has been accumulated.
func (a AccumulatedDifficulty) IsZero() bool {
	return a.v.IsZero()
}

// Bytes returns the 16-byte big-endian encoding.
func (a AccumulatedDifficulty) Bytes() [16]byte {
	full := a.v.Bytes32()
	var out [16]byte
	copy(out[:], full[16:])
	return out
}

func (a AccumulatedDifficulty) String() string {
	return a.v.Dec()
}
