package validation

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainsync/internal/model"
	"github.com/lightningnetwork/lnd/fn/v2"
)

const (
	stageHeader              = "header"
	stageBodyIsolation       = "body_isolation"
	stageBodyContext         = "body_context"
	stageInternalConsistency = "internal_consistency"
)

// BlockValidator runs the header, body and internal consistency validators in order.
type BlockValidator struct {
	header      *HeaderValidator
	body        *BodyValidator
	consistency *InternalConsistencyValidator
	metrics     Metrics
	// bypassConsistency skips the internal consistency check. Only for recovery tooling.
	bypassConsistency bool
}

func NewBlockValidator(
	header *HeaderValidator,
	body *BodyValidator,
	consistency *InternalConsistencyValidator,
	metrics Metrics,
	bypassConsistency bool,
) *BlockValidator {
	return &BlockValidator{
		header:            header,
		body:              body,
		consistency:       consistency,
		metrics:           metrics,
		bypassConsistency: bypassConsistency,
	}
}

// ValidateHeader validates header against prev. See HeaderValidator.ValidateHeader.
func (v *BlockValidator) ValidateHeader(
	ctx context.Context,
	db HeaderChainReader,
	header *model.BlockHeader,
	prev *model.BlockHeader,
	timestamps []uint64,
	target fn.Option[model.Difficulty],
) (pow model.AchievedTargetDifficulty, err error) {
	started := time.Now()
	defer func() {
		v.metrics.ObserveValidation(stageHeader, err, started)
	}()
	return v.header.ValidateHeader(ctx, db, header, prev, timestamps, target)
}

func (v *BlockValidator) ValidateBodyInIsolation(block *model.Block) (err error) {
	started := time.Now()
	defer func() {
		v.metrics.ObserveValidation(stageBodyIsolation, err, started)
	}()
	return v.body.ValidateBodyInIsolation(block)
}

// ValidateBodyInContext checks inputs against the output set, then internal consistency
// unless bypassed.
func (v *BlockValidator) ValidateBodyInContext(ctx context.Context, db UTXOReader, block *model.Block) error {
	if err := v.observe(stageBodyContext, func() error {
		return v.body.ValidateBodyInContext(ctx, db, block)
	}); err != nil {
		return err
	}
	return v.ValidateInternalConsistency(block)
}

// ValidateInternalConsistency checks that block balances on its own, unless bypassed.
func (v *BlockValidator) ValidateInternalConsistency(block *model.Block) error {
	if v.bypassConsistency {
		return nil
	}
	return v.observe(stageInternalConsistency, func() error {
		return v.consistency.ValidateInternalConsistency(block)
	})
}

// ValidateBlock fully validates a block whose predecessor is prev.
func (v *BlockValidator) ValidateBlock(
	ctx context.Context,
	db BlockChainReader,
	block *model.Block,
	prev *model.BlockHeader,
	timestamps []uint64,
) (model.AchievedTargetDifficulty, error) {
	pow, err := v.ValidateHeader(ctx, db, &block.Header, prev, timestamps, fn.None[model.Difficulty]())
	if err != nil {
		return model.AchievedTargetDifficulty{}, err
	}
	if err := v.ValidateBodyInIsolation(block); err != nil {
		return model.AchievedTargetDifficulty{}, err
	}
	if err := v.ValidateBodyInContext(ctx, db, block); err != nil {
		return model.AchievedTargetDifficulty{}, err
	}
	return pow, nil
}

func (v *BlockValidator) observe(stage string, fn func() error) error {
	started := time.Now()
	err := fn()
	v.metrics.ObserveValidation(stage, err, started)
	return err
}
