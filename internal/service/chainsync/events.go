package chainsync

import (
	"fmt"

	"github.com/goodnatureofminers/chainsync/internal/model"
)

// State is a phase of the sync state machine.
type State uint8

const (
	StateStarting State = iota
	StateInitialSync
	StateHeaderSync
	StateBlockSync
	StateHorizonSync
	StateListening
	StateWaiting
	StateShutdown
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateInitialSync:
		return "initial_sync"
	case StateHeaderSync:
		return "header_sync"
	case StateBlockSync:
		return "block_sync"
	case StateHorizonSync:
		return "horizon_sync"
	case StateListening:
		return "listening"
	case StateWaiting:
		return "waiting"
	case StateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// EventKind is the outcome of running one state.
type EventKind uint8

const (
	EventInitialized EventKind = iota
	EventMetadataSynced
	EventHeadersSynchronized
	EventBlocksSynchronized
	EventHorizonStateSynchronized
	EventFallenBehind
	EventSyncFailed
	EventFatalError
	EventUserQuit
)

func (k EventKind) String() string {
	switch k {
	case EventInitialized:
		return "initialized"
	case EventMetadataSynced:
		return "metadata_synced"
	case EventHeadersSynchronized:
		return "headers_synchronized"
	case EventBlocksSynchronized:
		return "blocks_synchronized"
	case EventHorizonStateSynchronized:
		return "horizon_state_synchronized"
	case EventFallenBehind:
		return "fallen_behind"
	case EventSyncFailed:
		return "sync_failed"
	case EventFatalError:
		return "fatal_error"
	case EventUserQuit:
		return "user_quit"
	default:
		return "unknown"
	}
}

// StateEvent is what NextEvent returns. Status and Network are set for MetadataSynced and
// FallenBehind, Message for FatalError.
type StateEvent struct {
	Kind    EventKind
	Status  model.SyncStatus
	Network model.ChainMetadata
	Message string
	// More is set on BlocksSynchronized while the sync target has not been reached.
	More bool
}

func Initialized() StateEvent {
	return StateEvent{Kind: EventInitialized}
}

func MetadataSynced(status model.SyncStatus, network model.ChainMetadata) StateEvent {
	return StateEvent{Kind: EventMetadataSynced, Status: status, Network: network}
}

func HeadersSynchronized() StateEvent {
	return StateEvent{Kind: EventHeadersSynchronized}
}

func BlocksSynchronized() StateEvent {
	return StateEvent{Kind: EventBlocksSynchronized}
}

func HorizonStateSynchronized() StateEvent {
	return StateEvent{Kind: EventHorizonStateSynchronized}
}

func FallenBehind(status model.SyncStatus, network model.ChainMetadata) StateEvent {
	return StateEvent{Kind: EventFallenBehind, Status: status, Network: network}
}

func SyncFailed() StateEvent {
	return StateEvent{Kind: EventSyncFailed}
}

func FatalError(format string, args ...any) StateEvent {
	return StateEvent{Kind: EventFatalError, Message: fmt.Sprintf(format, args...)}
}

func UserQuit() StateEvent {
	return StateEvent{Kind: EventUserQuit}
}

func (e StateEvent) String() string {
	switch e.Kind {
	case EventMetadataSynced, EventFallenBehind:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Status)
	case EventFatalError:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Message)
	default:
		return e.Kind.String()
	}
}

// Transition returns the state entered when state from produces e. Combinations without
// a rule leave the state unchanged.
func Transition(from State, e StateEvent) State {
	switch e.Kind {
	case EventFatalError, EventUserQuit:
		return StateShutdown
	case EventSyncFailed:
		return StateWaiting
	}

	switch from {
	case StateStarting:
		if e.Kind == EventInitialized {
			return StateInitialSync
		}
	case StateInitialSync:
		switch e.Kind {
		case EventMetadataSynced:
			return syncStateFor(e.Status, from)
		case EventBlocksSynchronized:
			return StateListening
		}
	case StateHorizonSync:
		if e.Kind == EventHorizonStateSynchronized {
			return StateHeaderSync
		}
	case StateHeaderSync:
		switch e.Kind {
		case EventHeadersSynchronized:
			return StateBlockSync
		case EventBlocksSynchronized:
			return StateListening
		}
	case StateBlockSync:
		if e.Kind == EventBlocksSynchronized {
			if e.More {
				return StateHeaderSync
			}
			return StateListening
		}
	case StateListening:
		if e.Kind == EventFallenBehind {
			return syncStateFor(e.Status, from)
		}
	case StateWaiting:
		if e.Kind == EventInitialized {
			return StateInitialSync
		}
	}
	return from
}

func syncStateFor(status model.SyncStatus, from State) State {
	switch status {
	case model.SyncStatusLagging:
		return StateHeaderSync
	case model.SyncStatusBehindHorizon:
		return StateHorizonSync
	case model.SyncStatusUpToDate:
		return StateListening
	default:
		return from
	}
}
