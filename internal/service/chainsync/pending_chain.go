package chainsync

import (
	"context"
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/chainsync/internal/chain"
	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/goodnatureofminers/chainsync/internal/validation"
)

// pendingHeader is a validated header whose block is not committed yet.
type pendingHeader struct {
	header model.BlockHeader
	pow    model.AchievedTargetDifficulty
}

// pendingChain layers headers validated in the current chunk over the committed chain, so
// the next header of the chunk sees them as its history.
type pendingChain struct {
	db          Database
	byHeight    map[uint64]*model.BlockHeader
	accumulated map[chainhash.Hash]*model.BlockHeaderAccumulatedData

	// window holds the timestamps of the blocks up to windowTip, oldest first.
	window    []uint64
	windowTip uint64
	limit     int
}

var _ validation.HeaderChainReader = (*pendingChain)(nil)

func newPendingChain(db Database) *pendingChain {
	return &pendingChain{
		db:          db,
		byHeight:    make(map[uint64]*model.BlockHeader),
		accumulated: make(map[chainhash.Hash]*model.BlockHeaderAccumulatedData),
	}
}

func (c *pendingChain) push(header *model.BlockHeader, data *model.BlockHeaderAccumulatedData) {
	c.byHeight[header.Height] = header
	c.accumulated[data.Hash] = data
	if len(c.window) == 0 || c.windowTip+1 != header.Height {
		return
	}
	c.window = append(c.window, header.Timestamp)
	c.windowTip = header.Height
	if len(c.window) > c.limit {
		c.window = slices.Delete(c.window, 0, len(c.window)-c.limit)
	}
}

// seedFork makes the side chain ending at tip visible by height, down to where it joins the
// best chain.
func (c *pendingChain) seedFork(ctx context.Context, tip *model.BlockHeader) error {
	header := tip
	for {
		best, err := c.db.FetchHeader(ctx, header.Height)
		if err != nil {
			return chain.NewStorageError("fetch header", err)
		}
		if best != nil && best.Hash() == header.Hash() {
			return nil
		}
		c.byHeight[header.Height] = header
		if header.Height == 0 {
			return chain.NewStorageError("seed fork", fmt.Errorf("side chain of %s does not join the best chain", tip.Hash()))
		}
		parent, err := c.db.FetchHeaderByBlockHash(ctx, header.PrevHash)
		if err != nil {
			return chain.NewStorageError("fetch header by hash", err)
		}
		if parent == nil {
			return chain.NewStorageError("seed fork", fmt.Errorf("side chain block %s missing", header.PrevHash))
		}
		header = parent
	}
}

// timestamps returns the timestamps of the count blocks below height, fewer near genesis.
func (c *pendingChain) timestamps(ctx context.Context, height uint64, count int) ([]uint64, error) {
	want := min(uint64(count), height)
	c.limit = max(c.limit, count)
	if uint64(len(c.window)) < want || c.windowTip+1 != height {
		window := make([]uint64, 0, want)
		for h := height - want; h < height; h++ {
			header, err := c.FetchHeader(ctx, h)
			if err != nil {
				return nil, err
			}
			if header == nil {
				return nil, chain.NewStorageError("timestamp window", fmt.Errorf("header %d missing", h))
			}
			window = append(window, header.Timestamp)
		}
		c.window = window
		c.windowTip = height - 1
	}
	return slices.Clone(c.window[uint64(len(c.window))-want:]), nil
}

func (c *pendingChain) FetchHeader(ctx context.Context, height uint64) (*model.BlockHeader, error) {
	if header, ok := c.byHeight[height]; ok {
		return header, nil
	}
	return c.db.FetchHeader(ctx, height)
}

func (c *pendingChain) FetchHeaderAccumulatedData(ctx context.Context, hash chainhash.Hash) (*model.BlockHeaderAccumulatedData, error) {
	if data, ok := c.accumulated[hash]; ok {
		return data, nil
	}
	return c.db.FetchHeaderAccumulatedData(ctx, hash)
}

func (c *pendingChain) BadBlockExists(ctx context.Context, hash chainhash.Hash) (bool, error) {
	return c.db.BadBlockExists(ctx, hash)
}

func (c *pendingChain) FetchPowSeedFirstSeenHeight(ctx context.Context, seed []byte) (uint64, error) {
	return c.db.FetchPowSeedFirstSeenHeight(ctx, seed)
}
