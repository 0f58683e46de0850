package validation

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainsync/internal/consensus"
	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/pkg/safe"
)

// BodyValidator checks a block body. Checks in isolation need no chain access and may run
// concurrently for many blocks; checks in context read the output set.
type BodyValidator struct {
	rules  *consensus.Manager
	crypto CryptoVerifier
}

func NewBodyValidator(rules *consensus.Manager, crypto CryptoVerifier) *BodyValidator {
	return &BodyValidator{rules: rules, crypto: crypto}
}

// ValidateBodyInIsolation checks ordering, structure, coinbase rules, kernel signatures and
// range proofs.
func (v *BodyValidator) ValidateBodyInIsolation(block *model.Block) error {
	body := &block.Body
	if err := checkSorting(body); err != nil {
		return err
	}
	if block.Header.Height == 0 {
		return nil
	}
	if err := checkCutThrough(body); err != nil {
		return err
	}
	for i := range body.Kernels {
		if err := checkKernelStructure(&body.Kernels[i]); err != nil {
			return fmt.Errorf("kernel %d: %w", i, err)
		}
	}
	if err := v.checkCoinbase(block); err != nil {
		return err
	}
	for i := range body.Kernels {
		if err := v.crypto.VerifyKernelSignature(&body.Kernels[i]); err != nil {
			return fmt.Errorf("%w: kernel %d: %w", ErrCryptoVerification, i, err)
		}
	}
	for i := range body.Outputs {
		if err := v.crypto.VerifyRangeProof(&body.Outputs[i]); err != nil {
			return fmt.Errorf("%w: output %d: %w", ErrCryptoVerification, i, err)
		}
	}
	return nil
}

// ValidateBodyInContext checks that every input spends a mature unspent output.
func (v *BodyValidator) ValidateBodyInContext(ctx context.Context, db UTXOReader, block *model.Block) error {
	height := block.Header.Height
	for i := range block.Body.Inputs {
		input := &block.Body.Inputs[i]
		unspent, err := db.FetchUnspentOutputHashByCommitment(ctx, input.Commitment)
		if err != nil {
			return fmt.Errorf("fetch unspent output %s: %w", input.Commitment, err)
		}
		if unspent == nil {
			spent, err := db.FetchOutput(ctx, input.OutputHash)
			if err != nil {
				return fmt.Errorf("fetch output %s: %w", input.OutputHash, err)
			}
			if spent != nil {
				return fmt.Errorf("%w: input %d spends %s", ErrContainsSTXO, i, input.OutputHash)
			}
			return fmt.Errorf("%w: input %d spends %s", ErrUnknownInput, i, input.OutputHash)
		}
		if *unspent != input.OutputHash {
			return fmt.Errorf("%w: input %d output hash %s does not match unspent %s", ErrInvalidInput, i, input.OutputHash, *unspent)
		}
		output, err := db.FetchOutput(ctx, *unspent)
		if err != nil {
			return fmt.Errorf("fetch output %s: %w", *unspent, err)
		}
		if output == nil {
			return fmt.Errorf("%w: input %d: unspent output %s has no body", ErrUnknownInput, i, *unspent)
		}
		if output.Features.Maturity > height {
			return fmt.Errorf("%w: input %d matures at %d, block at %d", ErrMaturity, i, output.Features.Maturity, height)
		}
	}
	return nil
}

func checkSorting(body *model.AggregateBody) error {
	for i := 1; i < len(body.Inputs); i++ {
		if body.Inputs[i-1].Commitment.Compare(body.Inputs[i].Commitment) >= 0 {
			return fmt.Errorf("%w: at %d", ErrUnsortedOrDuplicateInputs, i)
		}
	}
	for i := 1; i < len(body.Outputs); i++ {
		if body.Outputs[i-1].Commitment.Compare(body.Outputs[i].Commitment) >= 0 {
			return fmt.Errorf("%w: at %d", ErrUnsortedOrDuplicateOutputs, i)
		}
	}
	for i := 1; i < len(body.Kernels); i++ {
		if body.Kernels[i-1].Excess.Compare(body.Kernels[i].Excess) >= 0 {
			return fmt.Errorf("%w: at %d", ErrUnsortedOrDuplicateKernels, i)
		}
	}
	return nil
}

// checkCutThrough rejects bodies where an input spends an output of the same block.
func checkCutThrough(body *model.AggregateBody) error {
	created := make(map[chainhash.Hash]struct{}, len(body.Outputs))
	for i := range body.Outputs {
		created[body.Outputs[i].Hash()] = struct{}{}
	}
	for i := range body.Inputs {
		if _, ok := created[body.Inputs[i].OutputHash]; ok {
			return fmt.Errorf("%w: input %d spends an output of the same block", ErrInvalidInput, i)
		}
	}
	return nil
}

func checkKernelStructure(k *model.TransactionKernel) error {
	if k.Excess == (model.Commitment{}) {
		return fmt.Errorf("%w: empty excess", ErrInvalidKernel)
	}
	if len(k.ExcessSig) != schnorr.SignatureSize {
		return fmt.Errorf("%w: signature length %d", ErrInvalidKernel, len(k.ExcessSig))
	}
	if k.IsCoinbase() && k.Fee != 0 {
		return fmt.Errorf("%w: coinbase kernel pays a fee", ErrInvalidKernel)
	}
	return nil
}

func (v *BodyValidator) checkCoinbase(block *model.Block) error {
	height := block.Header.Height
	lock := v.rules.ConsensusConstants(height).CoinbaseLockHeight
	minMaturity, err := safe.AddUint64(height, lock)
	if err != nil {
		return fmt.Errorf("%w: maturity overflow", ErrInvalidCoinbase)
	}

	outputs := 0
	for i := range block.Body.Outputs {
		out := &block.Body.Outputs[i]
		if !out.IsCoinbase() {
			continue
		}
		outputs++
		if out.Features.Maturity < minMaturity {
			return fmt.Errorf("%w: maturity %d below %d", ErrInvalidCoinbase, out.Features.Maturity, minMaturity)
		}
	}
	if outputs != 1 {
		return fmt.Errorf("%w: %d coinbase outputs", ErrInvalidCoinbase, outputs)
	}

	kernels := 0
	for i := range block.Body.Kernels {
		if block.Body.Kernels[i].IsCoinbase() {
			kernels++
		}
	}
	if kernels != 1 {
		return fmt.Errorf("%w: %d coinbase kernels", ErrInvalidCoinbase, kernels)
	}
	return nil
}
