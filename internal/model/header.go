package model

import (
	"encoding/binary"
	"hash"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/blake2b"
)

// BlindingFactor is a 32-byte secp256k1 scalar.
type BlindingFactor [32]byte

// BlockHeader is the proof-of-work protected part of a block.
type BlockHeader struct {
	Version           uint16
	Height            uint64
	PrevHash          chainhash.Hash
	Timestamp         uint64
	OutputMR          chainhash.Hash
	KernelMR          chainhash.Hash
	OutputMMRSize     uint64
	KernelMMRSize     uint64
	TotalKernelOffset BlindingFactor
	Nonce             uint64
	Pow               ProofOfWork
}

// MiningHash commits to every header field except the nonce and the proof of work.
func (h *BlockHeader) MiningHash() chainhash.Hash {
	hasher := newBlake2b()
	writeUint64(hasher, uint64(h.Version))
	writeUint64(hasher, h.Height)
	hasher.Write(h.PrevHash[:])
	writeUint64(hasher, h.Timestamp)
	hasher.Write(h.OutputMR[:])
	hasher.Write(h.KernelMR[:])
	writeUint64(hasher, h.OutputMMRSize)
	writeUint64(hasher, h.KernelMMRSize)
	hasher.Write(h.TotalKernelOffset[:])
	return sum(hasher)
}

// Hash is the block hash.
func (h *BlockHeader) Hash() chainhash.Hash {
	mining := h.MiningHash()
	hasher := newBlake2b()
	hasher.Write(mining[:])
	writeUint64(hasher, h.Nonce)
	hasher.Write([]byte{byte(h.Pow.Algorithm)})
	writeUint64(hasher, uint64(len(h.Pow.Data)))
	hasher.Write(h.Pow.Data)
	return sum(hasher)
}

func newBlake2b() hash.Hash {
	// New256 only fails for keys longer than 64 bytes.
	hasher, _ := blake2b.New256(nil)
	return hasher
}

func writeUint64(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

func sum(h hash.Hash) chainhash.Hash {
	var out chainhash.Hash
	copy(out[:], h.Sum(nil))
	return out
}
