package validation

import (
	"fmt"

	"github.com/goodnatureofminers/chainsync/internal/consensus"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

// InternalConsistencyValidator checks that a block is self-consistent: kernel lock heights
// are reached and commitments balance against the block reward.
type InternalConsistencyValidator struct {
	rules  *consensus.Manager
	crypto CryptoVerifier
}

func NewInternalConsistencyValidator(rules *consensus.Manager, crypto CryptoVerifier) *InternalConsistencyValidator {
	return &InternalConsistencyValidator{rules: rules, crypto: crypto}
}

func (v *InternalConsistencyValidator) ValidateInternalConsistency(block *model.Block) error {
	height := block.Header.Height
	if height == 0 {
		return nil
	}
	body := &block.Body
	for i := range body.Kernels {
		if body.Kernels[i].LockHeight > height {
			return fmt.Errorf("%w: kernel %d locked until %d, block at %d", ErrMaturity, i, body.Kernels[i].LockHeight, height)
		}
	}

	terms, err := v.balanceTerms(block)
	if err != nil {
		return err
	}
	if err := v.crypto.VerifyBalance(terms); err != nil {
		return fmt.Errorf("%w: %w", ErrAccountingBalance, err)
	}
	return nil
}

func (v *InternalConsistencyValidator) balanceTerms(block *model.Block) (model.BalanceTerms, error) {
	body := &block.Body
	fees, err := body.TotalFees()
	if err != nil {
		return model.BalanceTerms{}, fmt.Errorf("%w: %w", ErrAccountingBalance, err)
	}
	coinbase, err := v.rules.CalculateCoinbaseAndFees(block.Header.Height, body.Kernels)
	if err != nil {
		return model.BalanceTerms{}, fmt.Errorf("%w: %w", ErrAccountingBalance, err)
	}

	terms := model.BalanceTerms{
		Inputs:        make([]model.Commitment, 0, len(body.Inputs)),
		Outputs:       make([]model.Commitment, 0, len(body.Outputs)),
		Excesses:      make([]model.Commitment, 0, len(body.Kernels)),
		TotalFees:     fees,
		Offset:        block.Header.TotalKernelOffset,
		TotalCoinbase: coinbase,
	}
	for i := range body.Inputs {
		terms.Inputs = append(terms.Inputs, body.Inputs[i].Commitment)
	}
	for i := range body.Outputs {
		terms.Outputs = append(terms.Outputs, body.Outputs[i].Commitment)
	}
	for i := range body.Kernels {
		terms.Excesses = append(terms.Excesses, body.Kernels[i].Excess)
	}
	return terms, nil
}
