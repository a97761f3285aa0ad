// Package pyramid adapts the pyramid puzzle engine to the arcade platform:
// it maps input frames to engine commands, drives gravity from the fixed
// tick loop and draws snapshots into a Screen.
package pyramid

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pyramid-arcade/internal/config"
	"github.com/vovakirdan/pyramid-arcade/internal/core"
	engine "github.com/vovakirdan/pyramid-arcade/internal/games/pyramid/core"
	"github.com/vovakirdan/pyramid-arcade/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // pieces fall on their own
	ModeZen     Mode = "zen"     // no gravity; the player drops every piece
)

// messageTTL is how long an engine message stays on screen.
const messageTTL = 1500 * time.Millisecond

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger sets the logger handed to every engine created from now on.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game for the pyramid builder.
type Game struct {
	mode Mode

	runtime    core.RuntimeConfig
	rules      engine.Rules
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	eng        *engine.Engine
	snap       engine.Snapshot

	tick       uint64
	fallTicker int

	message      string
	messageEvent engine.Event
	messageTicks int
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a zen mode game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("pyramid", func() registry.Game {
		return New()
	})
	registry.Register("pyramid_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "pyramid_zen"
	}
	return "pyramid"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Pyramid Builder (Zen)"
	}
	return "Pyramid Builder"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	cfg = cfg.Normalized()
	g.runtime = cfg

	pc, err := config.LoadPyramid(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "error", err)
		pc = config.DefaultPyramidConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPyramidPreset(&pc, difficultyPreset)
	}

	rules, err := RulesFromConfig(pc)
	if err != nil {
		logger.Warn("invalid rules, using defaults", "error", err)
		rules = engine.DefaultRules()
	}
	g.rules = rules
	g.difficulty = config.NewDifficultyManager(pc.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.newSession()
}

// newSession replaces the engine and starts it. The engine's random source
// is derived from the game RNG so restarts stay reproducible.
func (g *Game) newSession() {
	src := rand.New(rand.NewSource(g.rng.Int63()))
	g.eng = engine.NewEngine(g.rules, src, engine.WithLogger(logger))
	g.tick = 0
	g.fallTicker = 0
	g.message = ""
	g.messageTicks = 0
	g.observe(g.eng.Apply(engine.CmdStart))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.snap.State == engine.StateGameOver {
		g.newSession()
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Ordered() {
		if cmd, ok := g.command(a); ok {
			g.observe(g.eng.Apply(cmd))
		}
	}

	if g.mode == ModeClassic && g.snap.State == engine.StateRunning {
		g.fallTicker++
		if g.fallTicker >= g.fallFrames() {
			g.fallTicker = 0
			g.observe(g.eng.Tick())
		}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	return core.StepResult{State: g.State()}
}

// command maps an action to the engine command it triggers in the current state.
func (g *Game) command(a core.Action) (engine.Command, bool) {
	switch a {
	case core.ActionLeft:
		return engine.CmdMoveLeft, true
	case core.ActionRight:
		return engine.CmdMoveRight, true
	case core.ActionUp, core.ActionRotate:
		return engine.CmdRotate, true
	case core.ActionDown:
		return engine.CmdSoftDrop, true
	case core.ActionDrop:
		return engine.CmdHardDrop, true
	case core.ActionDiscard:
		return engine.CmdDiscard, true
	case core.ActionPause:
		if g.snap.State == engine.StatePaused {
			return engine.CmdResume, true
		}
		return engine.CmdPause, true
	}
	return engine.CmdNone, false
}

// fallFrames converts the current gravity period to a number of ticks.
func (g *Game) fallFrames() int {
	period := g.difficulty.FallPeriod(g.eng.FallInterval(), g.rules.MinFallPeriod, g.snap.Score, int(g.tick))
	frames := int(period * time.Duration(g.runtime.TickRate) / time.Second)
	return max(1, frames)
}

// observe stores a snapshot and latches its message for display.
func (g *Game) observe(s engine.Snapshot) {
	g.snap = s
	if s.Message != "" {
		g.message = s.Message
		g.messageEvent = s.Event
		g.messageTicks = max(1, int(messageTTL*time.Duration(g.runtime.TickRate)/time.Second))
	}
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Level:    g.snap.Level,
		Pyramids: g.snap.Stats.Pyramids,
		GameOver: g.snap.State == engine.StateGameOver,
		Paused:   g.snap.State == engine.StatePaused,
	}
}

// Snapshot returns the latest engine snapshot.
func (g *Game) Snapshot() engine.Snapshot {
	return g.snap
}

// Message returns the message currently on display, if any.
func (g *Game) Message() string {
	return g.message
}
