// Package chainsync drives a node from its local chain to the best chain reported by peers.
package chainsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsync/internal/chain"
	"github.com/goodnatureofminers/chainsync/internal/clock"
	"github.com/goodnatureofminers/chainsync/internal/model"
)

// ErrFatal is returned by Run when a state gave up with FatalError.
var ErrFatal = errors.New("chain sync stopped")

// StateMachine is owned by a single goroutine. NextEvent and Run must not be called
// concurrently.
type StateMachine struct {
	db        Database
	comms     Comms
	peers     SyncPeerProvider
	validator BlockValidator
	rules     Rules
	metrics   Metrics
	logger    *zap.Logger
	limiter   ratelimit.Limiter
	sleep     func(context.Context, time.Duration) error
	cfg       Config

	state   State
	network model.ChainMetadata
	// target is the height header and block sync work towards.
	target  uint64
	pending []pendingHeader
	// pendingFork is set when pending does not extend the best chain tip.
	pendingFork bool
	syncPeer    chain.SyncPeer
	excluded    map[string]struct{}
}

func NewStateMachine(
	db Database,
	comms Comms,
	peers SyncPeerProvider,
	validator BlockValidator,
	rules Rules,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) *StateMachine {
	cfg = cfg.withDefaults()
	limiter := ratelimit.NewUnlimited()
	if cfg.BlockRequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.BlockRequestsPerSecond)
	}
	return &StateMachine{
		db:        db,
		comms:     comms,
		peers:     peers,
		validator: validator,
		rules:     rules,
		metrics:   metrics,
		logger:    logger,
		limiter:   limiter,
		sleep:     clock.SleepWithContext,
		cfg:       cfg,
		state:     StateStarting,
		network:   model.EmptyChainMetadata(),
		excluded:  make(map[string]struct{}),
	}
}

// State returns the state the next call to NextEvent runs.
func (m *StateMachine) State() State {
	return m.state
}

// NextEvent runs the current state once and moves to the state its event leads to.
func (m *StateMachine) NextEvent(ctx context.Context) StateEvent {
	from := m.state
	if from == StateShutdown {
		return UserQuit()
	}

	started := time.Now()
	var event StateEvent
	switch from {
	case StateStarting:
		event = Initialized()
	case StateInitialSync:
		event = m.initialSync(ctx)
	case StateHeaderSync:
		event = m.headerSync(ctx)
	case StateBlockSync:
		event = m.blockSync(ctx)
	case StateHorizonSync:
		event = m.horizonSync(ctx)
	case StateListening:
		event = m.listen(ctx)
	case StateWaiting:
		event = m.wait(ctx)
	}
	m.metrics.ObserveEvent(from.String(), event.Kind.String(), started)

	to := Transition(from, event)
	switch event.Kind {
	case EventMetadataSynced, EventFallenBehind:
		m.network = event.Network
		m.target = event.Network.Height()
	}
	if to == StateListening || to == StateWaiting {
		m.pending = nil
		m.pendingFork = false
		m.syncPeer = nil
	}
	if to == StateListening {
		clear(m.excluded)
	}

	if to == from && from != StateBlockSync {
		m.logger.Debug("no state transition", zap.Stringer("state", from), zap.Stringer("event", event))
	} else {
		m.logger.Info("state transition",
			zap.Stringer("from", from),
			zap.Stringer("event", event),
			zap.Stringer("to", to),
		)
	}
	m.state = to
	return event
}

// Run pumps states until Shutdown. It returns an error wrapping ErrFatal when the machine
// stopped on FatalError and nil when it was asked to quit.
func (m *StateMachine) Run(ctx context.Context) error {
	for {
		event := m.NextEvent(ctx)
		if m.state != StateShutdown {
			continue
		}
		if event.Kind == EventFatalError {
			return fmt.Errorf("%w: %s", ErrFatal, event.Message)
		}
		return nil
	}
}

// failure maps an error that ended a sync phase to the event the phase produces.
func (m *StateMachine) failure(ctx context.Context, op string, err error) StateEvent {
	switch {
	case ctx.Err() != nil:
		return UserQuit()
	case chain.IsStorageError(err):
		m.logger.Error("chain storage failed during sync", zap.String("op", op), zap.Error(err))
		return FatalError("%s: %v", op, err)
	default:
		m.logger.Warn("sync phase failed", zap.String("op", op), zap.Error(err))
		return SyncFailed()
	}
}

func (m *StateMachine) localMetadata(ctx context.Context) (model.ChainMetadata, error) {
	local, err := m.db.GetMetadata(ctx)
	if err != nil {
		return model.ChainMetadata{}, chain.NewStorageError("get metadata", err)
	}
	return local, nil
}
