package consensus

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/pkg/safe"
)

// ErrUnknownNetwork is returned for a network without consensus rules.
var ErrUnknownNetwork = errors.New("unknown network")

// Network names a chain.
type Network string

const (
	Mainnet  Network = "mainnet"
	Testnet  Network = "testnet"
	Localnet Network = "localnet"
)

// Manager resolves the consensus rules for a network at any height.
type Manager struct {
	network   Network
	constants []Constants
	emission  *EmissionSchedule
	genesis   model.Block
}

// NewManager builds the rule set for network.
func NewManager(network Network) (*Manager, error) {
	var (
		constants []Constants
		timestamp uint64
	)
	switch network {
	case Mainnet:
		constants, timestamp = mainnetConstants(), 1_714_521_600
	case Testnet:
		constants, timestamp = testnetConstants(), 1_709_251_200
	case Localnet:
		constants, timestamp = localnetConstants(), 1_600_000_000
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
	return NewManagerWithConstants(network, constants, timestamp)
}

// NewManagerWithConstants builds a manager from explicit rules. Rules must be sorted by
// EffectiveFromHeight and the first entry must start at height zero.
func NewManagerWithConstants(network Network, constants []Constants, genesisTimestamp uint64) (*Manager, error) {
	if len(constants) == 0 || constants[0].EffectiveFromHeight != 0 {
		return nil, errors.New("consensus constants must start at height 0")
	}
	for i := 1; i < len(constants); i++ {
		if constants[i].EffectiveFromHeight <= constants[i-1].EffectiveFromHeight {
			return nil, errors.New("consensus constants must be strictly ordered by height")
		}
	}
	first := constants[0]
	return &Manager{
		network:   network,
		constants: constants,
		emission:  NewEmissionSchedule(first.EmissionInitial, first.EmissionDecay, first.EmissionTail),
		genesis: model.Block{
			Header: model.BlockHeader{
				Version:   first.MaxBlockchainVersion,
				Height:    0,
				Timestamp: genesisTimestamp,
				Pow:       model.ProofOfWork{Algorithm: model.PowAlgorithmSha3x},
			},
		},
	}, nil
}

// Network returns the network name.
func (m *Manager) Network() Network {
	return m.network
}

// ConsensusConstants returns the rules in force at height.
func (m *Manager) ConsensusConstants(height uint64) *Constants {
	c := &m.constants[0]
	for i := range m.constants {
		if m.constants[i].EffectiveFromHeight > height {
			break
		}
		c = &m.constants[i]
	}
	return c
}

// EmissionSchedule returns the reward curve.
func (m *Manager) EmissionSchedule() *EmissionSchedule {
	return m.emission
}

// GenesisBlock returns a copy of the genesis block.
func (m *Manager) GenesisBlock() model.Block {
	return m.genesis
}

// GenesisPow is the proof of work credited to the genesis block.
func (m *Manager) GenesisPow() model.AchievedTargetDifficulty {
	algo := m.genesis.Header.Pow.Algorithm
	floor := model.MinDifficulty
	if pc, ok := m.constants[0].PowConstants(algo); ok {
		floor = pc.MinDifficulty
	}
	return model.AchievedTargetDifficulty{Algorithm: algo, Achieved: floor, Target: floor}
}

// CalculateCoinbaseAndFees is the value the coinbase of a block at height may claim.
func (m *Manager) CalculateCoinbaseAndFees(height uint64, kernels []model.TransactionKernel) (model.MicroTari, error) {
	total := uint64(m.emission.BlockReward(height))
	for i := range kernels {
		next, err := safe.AddUint64(total, uint64(kernels[i].Fee))
		if err != nil {
			return 0, fmt.Errorf("coinbase and fees at height %d: %w", height, err)
		}
		total = next
	}
	return model.MicroTari(total), nil
}
