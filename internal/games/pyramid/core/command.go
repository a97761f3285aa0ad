package core

// Command is an abstract input accepted by the engine.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdRotate
	CmdSoftDrop
	CmdHardDrop
	CmdDiscard // throw the falling piece away without locking it
	CmdPause
	CmdResume
	CmdStart
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdRotate:
		return "rotate"
	case CmdSoftDrop:
		return "soft-drop"
	case CmdHardDrop:
		return "hard-drop"
	case CmdDiscard:
		return "discard"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdStart:
		return "start"
	default:
		return "unknown"
	}
}

// State is the session lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event tags the most notable thing that happened during the last operation.
type Event int

const (
	EventNone Event = iota
	EventStarted
	EventPerfectFit
	EventMisfit
	EventRejected
	EventPyramidComplete
	EventDiscarded
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventStarted:
		return "started"
	case EventPerfectFit:
		return "perfect_fit"
	case EventMisfit:
		return "misfit"
	case EventRejected:
		return "rejected"
	case EventPyramidComplete:
		return "pyramid_complete"
	case EventDiscarded:
		return "discarded"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
