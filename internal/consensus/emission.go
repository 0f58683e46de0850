package consensus

import (
	"fmt"
	"sync"

	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/pkg/safe"
)

// EmissionSchedule produces the block reward curve.
//
// The reward at height 1 is the initial reward. Every following block subtracts
// reward>>k for each k in decay and never falls below the tail emission.
type EmissionSchedule struct {
	initial model.MicroTari
	decay   []uint64
	tail    model.MicroTari

	mu     sync.Mutex
	cursor emissionPoint
}

type emissionPoint struct {
	height uint64
	reward model.MicroTari
	supply model.MicroTari
}

// NewEmissionSchedule panics when a decay shift is 64 or larger.
func NewEmissionSchedule(initial model.MicroTari, decay []uint64, tail model.MicroTari) *EmissionSchedule {
	for _, k := range decay {
		if k >= 64 {
			panic(fmt.Sprintf("emission decay shift %d out of range", k))
		}
	}
	return &EmissionSchedule{
		initial: initial,
		decay:   append([]uint64(nil), decay...),
		tail:    tail,
	}
}

// BlockReward is the coinbase reward, excluding fees, at height.
func (e *EmissionSchedule) BlockReward(height uint64) model.MicroTari {
	p, _ := e.at(height)
	return p.reward
}

// SupplyAtBlock is the total emitted supply up to and including height.
func (e *EmissionSchedule) SupplyAtBlock(height uint64) (model.MicroTari, error) {
	p, err := e.at(height)
	if err != nil {
		return 0, err
	}
	return p.supply, nil
}

func (e *EmissionSchedule) at(height uint64) (emissionPoint, error) {
	if height == 0 {
		return emissionPoint{}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.cursor
	if p.height == 0 || p.height > height {
		p = emissionPoint{height: 1, reward: e.initial, supply: e.initial}
	}
	for p.height < height {
		reward := e.next(p.reward)
		supply, err := safe.AddUint64(uint64(p.supply), uint64(reward))
		if err != nil {
			return emissionPoint{}, fmt.Errorf("supply at height %d: %w", p.height+1, err)
		}
		p = emissionPoint{height: p.height + 1, reward: reward, supply: model.MicroTari(supply)}
	}
	e.cursor = p
	return p, nil
}

func (e *EmissionSchedule) next(reward model.MicroTari) model.MicroTari {
	r := uint64(reward)
	var cut uint64
	for _, k := range e.decay {
		cut += r >> k
	}
	next := safe.SaturatingSubUint64(r, cut)
	if next < uint64(e.tail) {
		return e.tail
	}
	return model.MicroTari(next)
}
