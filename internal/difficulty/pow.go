package difficulty

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/lru"
	"github.com/goodnatureofminers/chainsync/internal/model"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidPowData is returned when the proof-of-work auxiliary data is malformed.
	ErrInvalidPowData = errors.New("invalid proof of work data")
	// ErrMergeMiningTagMismatch is returned when the parent blob does not commit to the header.
	ErrMergeMiningTagMismatch = errors.New("merge mining tag does not commit to header")
)

// MaxSeedLength bounds the merge-mining seed key.
const MaxSeedLength = 63

// MergeMinedPowData is the decoded auxiliary data of a merge-mined header.
type MergeMinedPowData struct {
	Seed []byte
	// Blob is the parent chain hashing blob. It must embed the header's mining hash.
	Blob []byte
}

// ParseMergeMinedPowData decodes seed_len(1 byte) || seed || blob.
func ParseMergeMinedPowData(data []byte) (MergeMinedPowData, error) {
	if len(data) == 0 {
		return MergeMinedPowData{}, fmt.Errorf("%w: empty", ErrInvalidPowData)
	}
	seedLen := int(data[0])
	if seedLen == 0 || seedLen > MaxSeedLength {
		return MergeMinedPowData{}, fmt.Errorf("%w: seed length %d", ErrInvalidPowData, seedLen)
	}
	if len(data) <= 1+seedLen {
		return MergeMinedPowData{}, fmt.Errorf("%w: missing hashing blob", ErrInvalidPowData)
	}
	return MergeMinedPowData{
		Seed: append([]byte(nil), data[1:1+seedLen]...),
		Blob: append([]byte(nil), data[1+seedLen:]...),
	}, nil
}

// Encode is the inverse of ParseMergeMinedPowData.
func (d MergeMinedPowData) Encode() []byte {
	out := make([]byte, 0, 1+len(d.Seed)+len(d.Blob))
	out = append(out, byte(len(d.Seed)))
	out = append(out, d.Seed...)
	return append(out, d.Blob...)
}

// PowHasher hashes a parent chain blob under a fixed seed key. Implementations must be safe
// for concurrent use.
type PowHasher interface {
	Hash(blob []byte) (chainhash.Hash, error)
}

// PowHasherFactory returns the hasher for a seed key.
type PowHasherFactory interface {
	Hasher(seed []byte) (PowHasher, error)
}

// Sha3xDifficulty is the achieved difficulty of a native header.
func Sha3xDifficulty(header *model.BlockHeader) (model.Difficulty, error) {
	hash := Sha3xHash(header)
	return model.BigEndianDifficulty(hash[:])
}

// Sha3xHash is SHA3-256 applied three times to nonce || mining hash || algorithm.
func Sha3xHash(header *model.BlockHeader) [32]byte {
	mining := header.MiningHash()
	input := make([]byte, 0, 8+chainhash.HashSize+1)
	input = binary.LittleEndian.AppendUint64(input, header.Nonce)
	input = append(input, mining[:]...)
	input = append(input, byte(model.PowAlgorithmSha3x))
	first := sha3.Sum256(input)
	second := sha3.Sum256(first[:])
	return sha3.Sum256(second[:])
}

// MergeMinedDifficulty is the achieved difficulty of a merge-mined header.
func MergeMinedDifficulty(header *model.BlockHeader, hashers PowHasherFactory) (model.Difficulty, error) {
	data, err := ParseMergeMinedPowData(header.Pow.Data)
	if err != nil {
		return 0, err
	}
	mining := header.MiningHash()
	if !bytes.Contains(data.Blob, mining[:]) {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPowData, ErrMergeMiningTagMismatch)
	}
	hasher, err := hashers.Hasher(data.Seed)
	if err != nil {
		return 0, fmt.Errorf("create merge mining hasher: %w", err)
	}
	hash, err := hasher.Hash(data.Blob)
	if err != nil {
		return 0, fmt.Errorf("hash merge mining blob: %w", err)
	}
	return model.LittleEndianDifficulty(hash)
}

// KeyedBlake2bHasherFactory hashes parent blobs with Blake2b-256 keyed by the seed. It
// stands in where no parent chain hasher is linked in.
type KeyedBlake2bHasherFactory struct{}

func (KeyedBlake2bHasherFactory) Hasher(seed []byte) (PowHasher, error) {
	if len(seed) == 0 || len(seed) > MaxSeedLength {
		return nil, fmt.Errorf("%w: seed length %d", ErrInvalidPowData, len(seed))
	}
	return keyedBlake2bHasher{key: append([]byte(nil), seed...)}, nil
}

type keyedBlake2bHasher struct {
	key []byte
}

func (h keyedBlake2bHasher) Hash(blob []byte) (chainhash.Hash, error) {
	hasher, err := blake2b.New256(h.key)
	if err != nil {
		return chainhash.Hash{}, err
	}
	hasher.Write(blob)
	var out chainhash.Hash
	copy(out[:], hasher.Sum(nil))
	return out, nil
}

// CachingHasherFactory reuses hashers per seed, keeping the most recently used ones.
type CachingHasherFactory struct {
	inner   PowHasherFactory
	hashers lru.KVCache
}

func NewCachingHasherFactory(inner PowHasherFactory, limit uint) *CachingHasherFactory {
	return &CachingHasherFactory{
		inner:   inner,
		hashers: lru.NewKVCache(limit),
	}
}

func (f *CachingHasherFactory) Hasher(seed []byte) (PowHasher, error) {
	key := string(seed)
	if h, ok := f.hashers.Lookup(key); ok {
		return h.(PowHasher), nil
	}
	h, err := f.inner.Hasher(seed)
	if err != nil {
		return nil, err
	}
	f.hashers.Add(key, h)
	return h, nil
}
