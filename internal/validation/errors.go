package validation

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/chainsync/internal/difficulty"
)

var (
	ErrInvalidBlockchainVersion        = errors.New("invalid blockchain version")
	ErrNotEnoughTimestamps             = errors.New("not enough timestamps")
	ErrInvalidTimestamp                = errors.New("timestamp not after median of previous blocks")
	ErrInvalidTimestampFutureTimeLimit = errors.New("timestamp beyond future time limit")
	ErrInvalidHeight                   = errors.New("invalid height")
	ErrInvalidPreviousHash             = errors.New("invalid previous hash")
	ErrBadBlockFound                   = errors.New("bad block found")
	ErrOldSeedHash                     = errors.New("proof of work seed too old")

	ErrUnsortedOrDuplicateInputs  = errors.New("inputs not sorted or contain duplicates")
	ErrUnsortedOrDuplicateOutputs = errors.New("outputs not sorted or contain duplicates")
	ErrUnsortedOrDuplicateKernels = errors.New("kernels not sorted or contain duplicates")
	ErrInvalidInput               = errors.New("invalid input")
	ErrUnknownInput               = errors.New("input spends an unknown output")
	ErrContainsSTXO               = errors.New("input spends an already spent output")
	ErrInvalidKernel              = errors.New("invalid kernel")
	ErrInvalidCoinbase            = errors.New("invalid coinbase")
	ErrCryptoVerification         = errors.New("cryptographic verification failed")
	ErrMaturity                   = errors.New("lock height or maturity not reached")
	ErrAccountingBalance          = errors.New("block does not balance")
)

// NotEnoughTimestampsError reports a header validated without enough history for the
// median rule.
type NotEnoughTimestampsError struct {
	Actual   int
	Expected int
}

func (e *NotEnoughTimestampsError) Error() string {
	return fmt.Sprintf("%s: got %d, expected %d", ErrNotEnoughTimestamps, e.Actual, e.Expected)
}

func (e *NotEnoughTimestampsError) Is(target error) bool {
	return target == ErrNotEnoughTimestamps
}

var validationErrors = []error{
	ErrInvalidBlockchainVersion,
	ErrNotEnoughTimestamps,
	ErrInvalidTimestamp,
	ErrInvalidTimestampFutureTimeLimit,
	ErrInvalidHeight,
	ErrInvalidPreviousHash,
	ErrBadBlockFound,
	ErrOldSeedHash,
	ErrUnsortedOrDuplicateInputs,
	ErrUnsortedOrDuplicateOutputs,
	ErrUnsortedOrDuplicateKernels,
	ErrInvalidInput,
	ErrUnknownInput,
	ErrContainsSTXO,
	ErrInvalidKernel,
	ErrInvalidCoinbase,
	ErrCryptoVerification,
	ErrMaturity,
	ErrAccountingBalance,
	difficulty.ErrAchievedDifficultyTooLow,
	difficulty.ErrInvalidPowData,
}

// IsValidationError reports whether err rejects the candidate itself, as opposed to a
// failure of storage or of the caller's context.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var contextualErrors = []error{
	ErrInvalidTimestampFutureTimeLimit,
	ErrNotEnoughTimestamps,
	ErrInvalidHeight,
	ErrInvalidPreviousHash,
	ErrBadBlockFound,
}

// IsContextualError reports whether err rejects a candidate only relative to the chain or
// the clock it was checked against. Such a candidate may still be valid elsewhere and must not
// be recorded as a bad block.
func IsContextualError(err error) bool {
	for _, target := range contextualErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
