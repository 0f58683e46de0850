package model

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainsync/pkg/safe"
)

// MicroTari is the smallest currency unit.
type MicroTari uint64

// CommitmentSize is the length of a compressed commitment point.
const CommitmentSize = 33

// Commitment is a Pedersen commitment in compressed point form.
type Commitment [CommitmentSize]byte

// Compare orders commitments lexicographically.
func (c Commitment) Compare(o Commitment) int {
	return bytes.Compare(c[:], o[:])
}

func (c Commitment) String() string {
	return fmt.Sprintf("%x", c[:])
}

// OutputFlags marks special outputs.
type OutputFlags uint8

const (
	// OutputFlagCoinbase marks the block reward output.
	OutputFlagCoinbase OutputFlags = 1 << iota
)

// OutputFeatures are the consensus relevant attributes of an output.
type OutputFeatures struct {
	Flags    OutputFlags
	Maturity uint64
}

// TransactionOutput is a newly created coin.
type TransactionOutput struct {
	Features   OutputFeatures
	Commitment Commitment
	RangeProof []byte
}

// IsCoinbase reports whether the output is a block reward.
func (o *TransactionOutput) IsCoinbase() bool {
	return o.Features.Flags&OutputFlagCoinbase != 0
}

// Hash identifies the output.
func (o *TransactionOutput) Hash() chainhash.Hash {
	hasher := newBlake2b()
	hasher.Write([]byte{byte(o.Features.Flags)})
	writeUint64(hasher, o.Features.Maturity)
	hasher.Write(o.Commitment[:])
	return sum(hasher)
}

// TransactionInput spends a previously created output.
type TransactionInput struct {
	Commitment Commitment
	// OutputHash is the hash of the output being spent.
	OutputHash chainhash.Hash
}

// KernelFeatures marks special kernels.
type KernelFeatures uint8

const (
	// KernelFeatureCoinbase marks the kernel of the block reward.
	KernelFeatureCoinbase KernelFeatures = 1 << iota
)

// TransactionKernel proves a transaction balances and carries its fee and lock height.
type TransactionKernel struct {
	Features   KernelFeatures
	Fee        MicroTari
	LockHeight uint64
	Excess     Commitment
	ExcessSig  []byte
}

// IsCoinbase reports whether the kernel belongs to the block reward.
func (k *TransactionKernel) IsCoinbase() bool {
	return k.Features&KernelFeatureCoinbase != 0
}

// SignatureMessage is the digest the excess signature commits to.
func (k *TransactionKernel) SignatureMessage() chainhash.Hash {
	hasher := newBlake2b()
	hasher.Write([]byte{byte(k.Features)})
	writeUint64(hasher, uint64(k.Fee))
	writeUint64(hasher, k.LockHeight)
	hasher.Write(k.Excess[:])
	return sum(hasher)
}

// Hash identifies the kernel.
func (k *TransactionKernel) Hash() chainhash.Hash {
	msg := k.SignatureMessage()
	hasher := newBlake2b()
	hasher.Write(msg[:])
	hasher.Write(k.ExcessSig)
	return sum(hasher)
}

// AggregateBody is the cut-through transaction set of a block.
type AggregateBody struct {
	Inputs  []TransactionInput
	Outputs []TransactionOutput
	Kernels []TransactionKernel
}

// TotalFees sums every kernel fee.
func (b *AggregateBody) TotalFees() (MicroTari, error) {
	var total uint64
	for i := range b.Kernels {
		next, err := safe.AddUint64(total, uint64(b.Kernels[i].Fee))
		if err != nil {
			return 0, fmt.Errorf("sum kernel fees: %w", err)
		}
		total = next
	}
	return MicroTari(total), nil
}

// IsEmpty reports whether the body has no inputs, outputs or kernels.
func (b *AggregateBody) IsEmpty() bool {
	return len(b.Inputs) == 0 && len(b.Outputs) == 0 && len(b.Kernels) == 0
}

// BalanceTerms are the commitment sums a block must balance.
type BalanceTerms struct {
	Inputs        []Commitment
	Outputs       []Commitment
	Excesses      []Commitment
	TotalFees     MicroTari
	Offset        BlindingFactor
	TotalCoinbase MicroTari
}
