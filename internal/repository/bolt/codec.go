package bolt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/pkg/safe"
)

const (
	// Records use protocol version 0 of the wire varint encoding.
	pver = 0

	maxPowData     = 1 << 16
	maxRangeProof  = 1 << 16
	maxSignature   = 256
	maxReason      = 1 << 12
	maxBodyEntries = 1 << 20
)

var errCorruptRecord = errors.New("corrupt record")

func heightKey(height uint64) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], height)
	return key[:]
}

func parseHeightKey(key []byte) (uint64, error) {
	if len(key) != 8 {
		return 0, fmt.Errorf("%w: height key of %d bytes", errCorruptRecord, len(key))
	}
	return binary.BigEndian.Uint64(key), nil
}

// encoder writes a record and keeps the first error.
type encoder struct {
	buf bytes.Buffer
	err error
}

func (e *encoder) varint(v uint64) {
	if e.err == nil {
		e.err = wire.WriteVarInt(&e.buf, pver, v)
	}
}

func (e *encoder) count(n int) {
	v, err := safe.Uint64(n)
	if err != nil && e.err == nil {
		e.err = err
	}
	e.varint(v)
}

func (e *encoder) raw(b []byte) {
	if e.err == nil {
		_, e.err = e.buf.Write(b)
	}
}

func (e *encoder) varBytes(b []byte) {
	if e.err == nil {
		e.err = wire.WriteVarBytes(&e.buf, pver, b)
	}
}

func (e *encoder) result() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.buf.Bytes(), nil
}

// decoder reads a record and keeps the first error.
type decoder struct {
	r   *bytes.Reader
	err error
}

func newDecoder(b []byte) *decoder {
	return &decoder{r: bytes.NewReader(b)}
}

func (d *decoder) varint() uint64 {
	if d.err != nil {
		return 0
	}
	v, err := wire.ReadVarInt(d.r, pver)
	d.err = err
	return v
}

func (d *decoder) count(limit int) int {
	n, err := safe.Int(d.varint())
	if d.err != nil {
		return 0
	}
	if err != nil || n > limit {
		d.err = fmt.Errorf("%w: %d entries", errCorruptRecord, n)
		return 0
	}
	return n
}

func (d *decoder) raw(dst []byte) {
	if d.err == nil {
		_, d.err = io.ReadFull(d.r, dst)
	}
}

func (d *decoder) varBytes(limit int, field string) []byte {
	if d.err != nil {
		return nil
	}
	maxAllowed, err := safe.Uint32(limit)
	if err != nil {
		d.err = err
		return nil
	}
	b, err := wire.ReadVarBytes(d.r, pver, maxAllowed, field)
	d.err = err
	if len(b) == 0 {
		return nil
	}
	return b
}

func (d *decoder) u8() byte {
	var b [1]byte
	d.raw(b[:])
	return b[0]
}

func (d *decoder) finish() error {
	if d.err != nil {
		return fmt.Errorf("%w: %w", errCorruptRecord, d.err)
	}
	if d.r.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", errCorruptRecord, d.r.Len())
	}
	return nil
}

func writeHeader(e *encoder, h *model.BlockHeader) {
	e.varint(uint64(h.Version))
	e.varint(h.Height)
	e.raw(h.PrevHash[:])
	e.varint(h.Timestamp)
	e.raw(h.OutputMR[:])
	e.raw(h.KernelMR[:])
	e.varint(h.OutputMMRSize)
	e.varint(h.KernelMMRSize)
	e.raw(h.TotalKernelOffset[:])
	e.varint(h.Nonce)
	e.raw([]byte{byte(h.Pow.Algorithm)})
	e.varBytes(h.Pow.Data)
}

func readHeader(d *decoder) model.BlockHeader {
	var h model.BlockHeader
	version := d.varint()
	if version > math.MaxUint16 && d.err == nil {
		d.err = fmt.Errorf("version %d out of range", version)
	}
	h.Version = uint16(version)
	h.Height = d.varint()
	d.raw(h.PrevHash[:])
	h.Timestamp = d.varint()
	d.raw(h.OutputMR[:])
	d.raw(h.KernelMR[:])
	h.OutputMMRSize = d.varint()
	h.KernelMMRSize = d.varint()
	d.raw(h.TotalKernelOffset[:])
	h.Nonce = d.varint()
	h.Pow.Algorithm = model.PowAlgorithm(d.u8())
	h.Pow.Data = d.varBytes(maxPowData, "pow data")
	return h
}

func encodeHeader(h *model.BlockHeader) ([]byte, error) {
	var e encoder
	writeHeader(&e, h)
	return e.result()
}

func decodeHeader(b []byte) (*model.BlockHeader, error) {
	d := newDecoder(b)
	h := readHeader(d)
	if err := d.finish(); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	return &h, nil
}

func writeOutput(e *encoder, o *model.TransactionOutput) {
	e.raw([]byte{byte(o.Features.Flags)})
	e.varint(o.Features.Maturity)
	e.raw(o.Commitment[:])
	e.varBytes(o.RangeProof)
}

func readOutput(d *decoder) model.TransactionOutput {
	var o model.TransactionOutput
	o.Features.Flags = model.OutputFlags(d.u8())
	o.Features.Maturity = d.varint()
	d.raw(o.Commitment[:])
	o.RangeProof = d.varBytes(maxRangeProof, "range proof")
	return o
}

func encodeOutput(o *model.TransactionOutput) ([]byte, error) {
	var e encoder
	writeOutput(&e, o)
	return e.result()
}

func decodeOutput(b []byte) (*model.TransactionOutput, error) {
	d := newDecoder(b)
	o := readOutput(d)
	if err := d.finish(); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return &o, nil
}

func writeBody(e *encoder, body *model.AggregateBody) {
	e.count(len(body.Inputs))
	for i := range body.Inputs {
		e.raw(body.Inputs[i].Commitment[:])
		e.raw(body.Inputs[i].OutputHash[:])
	}
	e.count(len(body.Outputs))
	for i := range body.Outputs {
		writeOutput(e, &body.Outputs[i])
	}
	e.count(len(body.Kernels))
	for i := range body.Kernels {
		k := &body.Kernels[i]
		e.raw([]byte{byte(k.Features)})
		e.varint(uint64(k.Fee))
		e.varint(k.LockHeight)
		e.raw(k.Excess[:])
		e.varBytes(k.ExcessSig)
	}
}

func readBody(d *decoder) model.AggregateBody {
	var body model.AggregateBody
	if n := d.count(maxBodyEntries); n > 0 {
		body.Inputs = make([]model.TransactionInput, n)
		for i := range body.Inputs {
			d.raw(body.Inputs[i].Commitment[:])
			d.raw(body.Inputs[i].OutputHash[:])
		}
	}
	if n := d.count(maxBodyEntries); n > 0 {
		body.Outputs = make([]model.TransactionOutput, n)
		for i := range body.Outputs {
			body.Outputs[i] = readOutput(d)
		}
	}
	if n := d.count(maxBodyEntries); n > 0 {
		body.Kernels = make([]model.TransactionKernel, n)
		for i := range body.Kernels {
			k := &body.Kernels[i]
			k.Features = model.KernelFeatures(d.u8())
			k.Fee = model.MicroTari(d.varint())
			k.LockHeight = d.varint()
			d.raw(k.Excess[:])
			k.ExcessSig = d.varBytes(maxSignature, "excess signature")
		}
	}
	return body
}

func encodeBody(body *model.AggregateBody) ([]byte, error) {
	var e encoder
	writeBody(&e, body)
	return e.result()
}

func decodeBody(b []byte) (*model.AggregateBody, error) {
	d := newDecoder(b)
	body := readBody(d)
	if err := d.finish(); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return &body, nil
}

func encodeAccumulatedData(a *model.BlockHeaderAccumulatedData) ([]byte, error) {
	var e encoder
	e.raw(a.Hash[:])
	e.varint(a.AchievedDifficulty.Uint64())
	e.varint(a.TargetDifficulty.Uint64())
	total := a.TotalAccumulatedDifficulty.Bytes()
	mergeMined := a.AccumulatedMergeMinedDifficulty.Bytes()
	sha3x := a.AccumulatedSha3xDifficulty.Bytes()
	e.raw(total[:])
	e.raw(mergeMined[:])
	e.raw(sha3x[:])
	return e.result()
}

func decodeAccumulatedData(b []byte) (*model.BlockHeaderAccumulatedData, error) {
	d := newDecoder(b)
	var (
		a                        model.BlockHeaderAccumulatedData
		total, mergeMined, sha3x [16]byte
	)
	d.raw(a.Hash[:])
	a.AchievedDifficulty = model.NewDifficulty(d.varint())
	a.TargetDifficulty = model.NewDifficulty(d.varint())
	d.raw(total[:])
	d.raw(mergeMined[:])
	d.raw(sha3x[:])
	if err := d.finish(); err != nil {
		return nil, fmt.Errorf("decode accumulated data: %w", err)
	}
	a.TotalAccumulatedDifficulty = model.AccumulatedDifficultyFromBytes(total)
	a.AccumulatedMergeMinedDifficulty = model.AccumulatedDifficultyFromBytes(mergeMined)
	a.AccumulatedSha3xDifficulty = model.AccumulatedDifficultyFromBytes(sha3x)
	return &a, nil
}

// storedBlock is a block kept off the best chain together with the work it proved.
type storedBlock struct {
	block model.Block
	pow   model.AchievedTargetDifficulty
}

func encodeStoredBlock(s *storedBlock) ([]byte, error) {
	var e encoder
	writeHeader(&e, &s.block.Header)
	writeBody(&e, &s.block.Body)
	e.raw([]byte{byte(s.pow.Algorithm)})
	e.varint(s.pow.Achieved.Uint64())
	e.varint(s.pow.Target.Uint64())
	return e.result()
}

func decodeStoredBlock(b []byte) (*storedBlock, error) {
	d := newDecoder(b)
	var s storedBlock
	s.block.Header = readHeader(d)
	s.block.Body = readBody(d)
	s.pow.Algorithm = model.PowAlgorithm(d.u8())
	s.pow.Achieved = model.NewDifficulty(d.varint())
	s.pow.Target = model.NewDifficulty(d.varint())
	if err := d.finish(); err != nil {
		return nil, fmt.Errorf("decode stored block: %w", err)
	}
	return &s, nil
}

// badBlock is the value of the bad block bucket.
type badBlock struct {
	height uint64
	reason string
}

func encodeBadBlock(b *badBlock) ([]byte, error) {
	var e encoder
	e.varint(b.height)
	reason := b.reason
	if len(reason) > maxReason {
		reason = reason[:maxReason]
	}
	e.varBytes([]byte(reason))
	return e.result()
}

func decodeBadBlock(raw []byte) (*badBlock, error) {
	d := newDecoder(raw)
	var b badBlock
	b.height = d.varint()
	b.reason = string(d.varBytes(maxReason, "reason"))
	if err := d.finish(); err != nil {
		return nil, fmt.Errorf("decode bad block: %w", err)
	}
	return &b, nil
}

func hashFromBytes(b []byte) (chainhash.Hash, error) {
	var h chainhash.Hash
	if len(b) != chainhash.HashSize {
		return h, fmt.Errorf("%w: hash of %d bytes", errCorruptRecord, len(b))
	}
	copy(h[:], b)
	return h, nil
}
