package core

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Stats counts what happened during a session.
type Stats struct {
	PiecesLocked  int
	PerfectFits   int
	Misfits       int
	Rejected      int
	Discards      int
	Pyramids      int
	BlocksSettled int
}

// Engine runs one puzzle session. It is not safe for concurrent use:
// callers serialize Apply and Tick, and each call runs to completion.
type Engine struct {
	rules  Rules
	rng    Rand
	logger *log.Logger
	gen    *Generator

	board *Board
	slots *SlotSet

	current Piece
	next    Piece

	state     State
	score     int
	level     int
	stability int
	stats     Stats

	event      Event
	message    string
	placement  *Placement
	lastSettle SettleResult
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine in the NotStarted state.
func NewEngine(rules Rules, rng Rand, opts ...Option) *Engine {
	e := &Engine{
		rules:     rules,
		rng:       rng,
		logger:    log.New(io.Discard),
		gen:       NewGenerator(rules, rng),
		board:     NewBoard(rules.Width, rules.Height, rules.BaseRows),
		state:     StateNotStarted,
		level:     1,
		stability: MaxStability,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.slots = BuildSlots(e.board, rules, e.level)
	return e
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Rules returns the rules the engine was created with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// FallInterval returns the current gravity period.
func (e *Engine) FallInterval() time.Duration {
	return e.rules.FallPeriod(e.level)
}

// Apply executes one command and returns the resulting snapshot.
// Commands that do not apply to the current state are ignored.
// GameOver is terminal: a new session needs a new Engine.
func (e *Engine) Apply(cmd Command) Snapshot {
	e.clearEvent()

	switch e.state {
	case StateNotStarted:
		if cmd == CmdStart {
			e.start()
		}
	case StateGameOver:
	case StatePaused:
		if cmd == CmdResume {
			e.state = StateRunning
		}
	case StateRunning:
		e.applyRunning(cmd)
	}

	return e.Snapshot()
}

// Tick advances gravity by one row, locking the piece if it cannot descend.
// It does nothing unless the session is running.
func (e *Engine) Tick() Snapshot {
	e.clearEvent()
	if e.state == StateRunning {
		e.descend()
	}
	return e.Snapshot()
}

func (e *Engine) applyRunning(cmd Command) {
	switch cmd {
	case CmdMoveLeft:
		e.shift(-1)
	case CmdMoveRight:
		e.shift(1)
	case CmdRotate:
		if rotated, ok := TryRotate(e.current, e.board); ok {
			e.current = rotated
		}
	case CmdSoftDrop:
		e.descend()
	case CmdHardDrop:
		e.hardDrop()
	case CmdDiscard:
		e.discard()
	case CmdPause:
		e.state = StatePaused
	}
}

func (e *Engine) start() {
	e.score = 0
	e.level = 1
	e.stability = MaxStability
	e.stats = Stats{}
	e.placement = nil
	e.lastSettle = SettleResult{}
	e.state = StateRunning
	e.resetBoard()
	e.dealPair()
	e.setEvent(EventStarted, "Build the pyramid!")
	e.logger.Debug("session started", "width", e.board.W, "height", e.board.H, "tiers", e.slots.Tiers())
}

func (e *Engine) resetBoard() {
	e.board.Clear()
	e.slots = BuildSlots(e.board, e.rules, e.level)
}

// dealPair generates a fresh current and next piece and spawns the current one.
func (e *Engine) dealPair() {
	e.next = e.newPiece()
	e.spawn(e.next)
	if e.state == StateRunning {
		e.next = e.newPiece()
	}
}

func (e *Engine) newPiece() Piece {
	id := e.gen.Next(e.board, e.slots, e.score)
	return NewPiece(id, 0, 0)
}

// spawn places p centred at the top of the board. If it collides the session ends.
func (e *Engine) spawn(p Piece) {
	p.X = (e.board.W - p.Width()) / 2
	p.Y = 0
	e.current = p
	if Collides(p.Cells, p.X, p.Y, e.board) {
		e.state = StateGameOver
		e.setEvent(EventGameOver, "The pyramid is buried. Game over")
		e.logger.Debug("game over", "score", e.score, "level", e.level)
	}
}

func (e *Engine) spawnNext() {
	e.spawn(e.next)
	if e.state == StateRunning {
		e.next = e.newPiece()
	}
}

func (e *Engine) shift(dx int) {
	p := e.current
	if !Collides(p.Cells, p.X+dx, p.Y, e.board) {
		e.current.X += dx
	}
}

func (e *Engine) descend() {
	p := e.current
	if !Collides(p.Cells, p.X, p.Y+1, e.board) {
		e.current.Y++
		return
	}
	e.lock()
}

func (e *Engine) hardDrop() {
	for i := 0; i < e.board.H; i++ {
		p := e.current
		if Collides(p.Cells, p.X, p.Y+1, e.board) {
			break
		}
		e.current.Y++
	}
	e.lock()
}

func (e *Engine) discard() {
	e.stats.Discards++
	e.score -= e.rules.DiscardScoreCost
	e.adjustStability(-e.rules.DiscardStabilityCost)
	e.setEvent(EventDiscarded, "Piece discarded")
	e.spawnNext()
}

// lock validates the falling piece, writes it to the board and applies
// scoring, stability, settling and the completion check.
func (e *Engine) lock() {
	pl := ValidatePlacement(e.board, e.slots, e.current)
	e.placement = &pl
	e.lastSettle = SettleResult{}

	if pl.OutOfBounds {
		e.stats.Rejected++
		e.adjustStability(-e.rules.MisfitPenalty)
		e.setEvent(EventRejected, "Piece rejected: out of bounds")
		e.logger.Debug("placement rejected", "x", pl.LandingX, "y", pl.LandingY)
		e.spawnNext()
		return
	}

	for _, c := range pl.Cells {
		e.board.Set(c.Row, c.Col, e.current.Color)
	}
	e.stats.PiecesLocked++
	e.score += e.rules.PerCellScore * len(pl.Cells)

	if pl.Perfect {
		e.stats.PerfectFits++
		e.score += e.rules.PerfectFitBonus
		e.adjustStability(e.rules.PerfectFitStability)
		for _, c := range pl.Cells {
			e.slots.MarkFilled(c.Row, c.Col)
		}
		e.setEvent(EventPerfectFit, "Perfect fit!")
	} else {
		e.stats.Misfits++
		e.adjustStability(-e.rules.MisfitPenalty)
		for _, c := range pl.Cells {
			if c.OnOpenSlot {
				e.slots.MarkFilled(c.Row, c.Col)
			}
		}
		e.settle()
		e.setEvent(EventMisfit, "Misfit! The structure shifts")
	}
	e.logger.Debug("piece locked",
		"shape", e.current.Shape,
		"perfect", pl.Perfect,
		"matched", pl.Matched(),
		"score", e.score,
		"stability", e.stability,
	)

	if e.slots.Complete() {
		e.completePyramid()
		return
	}
	e.spawnNext()
}

func (e *Engine) settle() {
	res := Settle(e.board, e.slots, e.rules.SettleMaxPasses, e.rng, e.logger)
	for _, moved := range res.Moves {
		e.adjustStability(-e.rules.SettlePenaltyPerMove * moved)
	}
	e.stats.BlocksSettled += res.TotalMoves
	e.lastSettle = res
}

func (e *Engine) completePyramid() {
	e.stats.Pyramids++
	e.score += e.rules.PyramidBonus
	e.level++
	e.stability = MaxStability
	e.resetBoard()
	e.logger.Debug("pyramid complete", "level", e.level, "score", e.score, "tiers", e.slots.Tiers())
	e.dealPair()
	if e.state == StateRunning {
		e.setEvent(EventPyramidComplete, "Pyramid complete!")
	}
}

func (e *Engine) adjustStability(delta int) {
	e.stability += delta
	if e.stability > MaxStability {
		e.stability = MaxStability
	}
	if e.stability < 0 {
		e.stability = 0
	}
}

func (e *Engine) setEvent(ev Event, msg string) {
	e.event = ev
	e.message = msg
}

func (e *Engine) clearEvent() {
	e.event = EventNone
	e.message = ""
}
