// Package pedersen verifies Pedersen commitments and kernel signatures over secp256k1.
package pedersen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/goodnatureofminers/chainsync/internal/model"
	"golang.org/x/crypto/blake2b"
)

var (
	ErrInvalidCommitment = errors.New("invalid commitment")
	ErrInvalidBlinding   = errors.New("blinding factor out of range")
	ErrInvalidSignature  = errors.New("invalid kernel signature")
	ErrInvalidRangeProof = errors.New("invalid range proof")
	ErrUnbalanced        = errors.New("commitments do not balance")
)

// MaxRangeProofSize bounds the size of an output's range proof.
const MaxRangeProofSize = 1024

var valueGenerator = sync.OnceValue(deriveValueGenerator)

// deriveValueGenerator hashes G to a curve point H whose discrete log is unknown.
func deriveValueGenerator() btcec.JacobianPoint {
	var g btcec.JacobianPoint
	one := new(btcec.ModNScalar).SetInt(1)
	btcec.ScalarBaseMultNonConst(one, &g)
	g.ToAffine()
	gBytes := btcec.NewPublicKey(&g.X, &g.Y).SerializeCompressed()

	for counter := uint32(0); ; counter++ {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], counter)
		x := blake2b.Sum256(append(append([]byte("chainsync/pedersen/H"), gBytes...), buf[:]...))
		pk, err := btcec.ParsePubKey(append([]byte{0x02}, x[:]...))
		if err != nil {
			continue
		}
		var h btcec.JacobianPoint
		pk.AsJacobian(&h)
		return h
	}
}

// Commit returns blinding·G + value·H.
func Commit(value uint64, blinding model.BlindingFactor) (model.Commitment, error) {
	r, err := blindingScalar(blinding)
	if err != nil {
		return model.Commitment{}, err
	}
	var rG, vH, sum btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(r, &rG)
	valueTimesH(value, &vH)
	btcec.AddNonConst(&rG, &vH, &sum)
	return encode(&sum)
}

// SignKernel sets the kernel excess to blinding·G and signs the kernel with it.
func SignKernel(kernel *model.TransactionKernel, blinding model.BlindingFactor) error {
	excess, err := Commit(0, blinding)
	if err != nil {
		return err
	}
	kernel.Excess = excess
	priv, _ := btcec.PrivKeyFromBytes(blinding[:])
	msg := kernel.SignatureMessage()
	sig, err := schnorr.Sign(priv, msg[:])
	if err != nil {
		return fmt.Errorf("sign kernel: %w", err)
	}
	kernel.ExcessSig = sig.Serialize()
	return nil
}

// Verifier checks the cryptographic parts of a block body.
type Verifier struct{}

func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyKernelSignature checks the Schnorr signature of the kernel against its excess.
func (v *Verifier) VerifyKernelSignature(kernel *model.TransactionKernel) error {
	pk, err := btcec.ParsePubKey(kernel.Excess[:])
	if err != nil {
		return fmt.Errorf("%w: excess: %v", ErrInvalidSignature, err)
	}
	sig, err := schnorr.ParseSignature(kernel.ExcessSig)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	msg := kernel.SignatureMessage()
	if !sig.Verify(msg[:], pk) {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyRangeProof checks that an output carries a bounded, well-formed range proof and a
// valid commitment point.
func (v *Verifier) VerifyRangeProof(output *model.TransactionOutput) error {
	if len(output.RangeProof) == 0 || len(output.RangeProof) > MaxRangeProofSize {
		return fmt.Errorf("%w: size %d", ErrInvalidRangeProof, len(output.RangeProof))
	}
	if _, err := btcec.ParsePubKey(output.Commitment[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCommitment, err)
	}
	return nil
}

// VerifyBalance checks Σoutputs - Σinputs + fees·H == Σexcess + offset·G + coinbase·H.
func (v *Verifier) VerifyBalance(terms model.BalanceTerms) error {
	var lhs, rhs btcec.JacobianPoint

	for _, c := range terms.Outputs {
		if err := addCommitment(&lhs, c, false); err != nil {
			return err
		}
	}
	for _, c := range terms.Inputs {
		if err := addCommitment(&lhs, c, true); err != nil {
			return err
		}
	}
	var fees btcec.JacobianPoint
	valueTimesH(uint64(terms.TotalFees), &fees)
	addPoint(&lhs, &fees)

	for _, c := range terms.Excesses {
		if err := addCommitment(&rhs, c, false); err != nil {
			return err
		}
	}
	offset, err := blindingScalar(terms.Offset)
	if err != nil {
		return err
	}
	var offsetG, coinbase btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(offset, &offsetG)
	addPoint(&rhs, &offsetG)
	valueTimesH(uint64(terms.TotalCoinbase), &coinbase)
	addPoint(&rhs, &coinbase)

	if !equal(&lhs, &rhs) {
		return ErrUnbalanced
	}
	return nil
}

func blindingScalar(b model.BlindingFactor) (*btcec.ModNScalar, error) {
	s := new(btcec.ModNScalar)
	if overflow := s.SetByteSlice(b[:]); overflow {
		return nil, ErrInvalidBlinding
	}
	return s, nil
}

func valueTimesH(value uint64, result *btcec.JacobianPoint) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], value)
	s := new(btcec.ModNScalar)
	s.SetByteSlice(buf[:])
	h := valueGenerator()
	btcec.ScalarMultNonConst(s, &h, result)
}

func addCommitment(acc *btcec.JacobianPoint, c model.Commitment, negate bool) error {
	pk, err := btcec.ParsePubKey(c[:])
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCommitment, c, err)
	}
	var p btcec.JacobianPoint
	pk.AsJacobian(&p)
	if negate {
		p.Y.Normalize()
		p.Y.Negate(1)
		p.Y.Normalize()
	}
	addPoint(acc, &p)
	return nil
}

func addPoint(acc, p *btcec.JacobianPoint) {
	var sum btcec.JacobianPoint
	btcec.AddNonConst(acc, p, &sum)
	*acc = sum
}

func isInfinity(p *btcec.JacobianPoint) bool {
	return p.X.IsZero() && p.Y.IsZero()
}

func equal(a, b *btcec.JacobianPoint) bool {
	a.ToAffine()
	b.ToAffine()
	a.X.Normalize()
	a.Y.Normalize()
	b.X.Normalize()
	b.Y.Normalize()
	if isInfinity(a) || isInfinity(b) {
		return isInfinity(a) && isInfinity(b)
	}
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

func encode(p *btcec.JacobianPoint) (model.Commitment, error) {
	p.ToAffine()
	p.X.Normalize()
	p.Y.Normalize()
	if isInfinity(p) {
		return model.Commitment{}, fmt.Errorf("%w: point at infinity", ErrInvalidCommitment)
	}
	var c model.Commitment
	copy(c[:], btcec.NewPublicKey(&p.X, &p.Y).SerializeCompressed())
	return c, nil
}
