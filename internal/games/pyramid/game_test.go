package pyramid

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/pyramid-arcade/internal/config"
	"github.com/vovakirdan/pyramid-arcade/internal/core"
	engine "github.com/vovakirdan/pyramid-arcade/internal/games/pyramid/core"
	"github.com/vovakirdan/pyramid-arcade/internal/registry"
)

// isolate keeps user config files out of the test and optionally points
// the loader at a custom YAML file.
func isolate(t *testing.T, yaml string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	if yaml != "" {
		path := filepath.Join(dir, "pyramid.yaml")
		if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)
	}
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func startGame(t *testing.T, g *Game, seed int64) {
	t.Helper()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{"pyramid", "pyramid_zen"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		if !strings.HasPrefix(g.Title(), "Pyramid Builder") {
			t.Errorf("unexpected title %q", g.Title())
		}
	}
}

func TestDeterminism(t *testing.T) {
	isolate(t, "")

	g1, g2 := New(), New()
	startGame(t, g1, 12345)
	startGame(t, g2, 12345)

	for i := range 600 {
		var actions []core.Action
		switch i % 40 {
		case 5:
			actions = append(actions, core.ActionLeft)
		case 9:
			actions = append(actions, core.ActionRotate)
		case 13:
			actions = append(actions, core.ActionRight, core.ActionRight)
		case 30:
			actions = append(actions, core.ActionDrop)
		}
		press(g1, actions...)
		press(g2, actions...)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
	if g1.Snapshot().Stats.PiecesLocked == 0 {
		t.Error("expected some pieces to lock during the run")
	}
}

func TestClassicGravity(t *testing.T) {
	isolate(t, "")
	g := New()
	startGame(t, g, 1)

	// 800ms at 60 ticks per second
	for range 47 {
		press(g)
	}
	if y := g.Snapshot().Current.Y; y != 0 {
		t.Fatalf("piece fell early, y = %d", y)
	}
	press(g)
	if y := g.Snapshot().Current.Y; y != 1 {
		t.Errorf("expected piece at row 1 after one gravity period, got %d", y)
	}
}

func TestZenHasNoGravity(t *testing.T) {
	isolate(t, "")
	g := NewZen()
	startGame(t, g, 1)

	for range 600 {
		press(g)
	}
	if y := g.Snapshot().Current.Y; y != 0 {
		t.Errorf("zen piece should not fall on its own, y = %d", y)
	}

	press(g, core.ActionDown)
	if y := g.Snapshot().Current.Y; y != 1 {
		t.Errorf("soft drop should move the piece down, y = %d", y)
	}
}

func TestActionsMapToCommands(t *testing.T) {
	isolate(t, "")
	g := NewZen()
	startGame(t, g, 7)

	x := g.Snapshot().Current.X
	press(g, core.ActionLeft)
	if got := g.Snapshot().Current.X; got != x-1 {
		t.Errorf("left: x = %d, expected %d", got, x-1)
	}
	press(g, core.ActionRight, core.ActionRight)
	if got := g.Snapshot().Current.X; got != x+1 {
		t.Errorf("right twice: x = %d, expected %d", got, x+1)
	}

	res := press(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("expected the game to pause")
	}
	press(g, core.ActionLeft)
	if got := g.Snapshot().Current.X; got != x+1 {
		t.Error("input should be ignored while paused")
	}
	res = press(g, core.ActionPause)
	if res.State.Paused {
		t.Fatal("expected the game to resume")
	}

	res = press(g, core.ActionDrop)
	if res.State.Score == 0 {
		t.Error("hard drop should lock the piece and score its cells")
	}
	if g.Snapshot().Stats.PiecesLocked != 1 {
		t.Errorf("expected 1 locked piece, got %d", g.Snapshot().Stats.PiecesLocked)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	// A single column of vertical triples buries the spawn point after six drops.
	isolate(t, "generator:\n  shape_pool: [triple-v]\n")
	g := NewZen()
	startGame(t, g, 3)

	// Restart is ignored while running
	press(g, core.ActionRestart)
	if g.Snapshot().State != engine.StateRunning {
		t.Fatal("restart should not interrupt a running game")
	}

	var res core.StepResult
	for range 6 {
		res = press(g, core.ActionDrop)
	}
	if !res.State.GameOver {
		t.Fatalf("expected game over after six drops, state %v", g.Snapshot().State)
	}
	if res.State.Score != 180 {
		t.Errorf("score = %d, expected 180", res.State.Score)
	}
	if res.State.Level != 1 {
		t.Errorf("level = %d, expected 1", res.State.Level)
	}

	// Commands after game over change nothing
	before := g.Snapshot()
	press(g, core.ActionDrop, core.ActionLeft)
	if g.Snapshot().Score != before.Score || g.Snapshot().State != engine.StateGameOver {
		t.Error("game over should be terminal for gameplay commands")
	}

	res = press(g, core.ActionRestart)
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("restart should start a fresh session, got %+v", res.State)
	}
	if g.Snapshot().Stats != (engine.Stats{}) {
		t.Errorf("stats should be reset, got %+v", g.Snapshot().Stats)
	}
}

func TestMessageExpires(t *testing.T) {
	isolate(t, "")
	g := NewZen()
	startGame(t, g, 1)

	if g.Message() == "" {
		t.Fatal("expected a start message")
	}
	for range 89 {
		press(g)
	}
	if g.Message() == "" {
		t.Fatal("message expired too early")
	}
	press(g)
	if g.Message() != "" {
		t.Errorf("message should expire after 1.5s, got %q", g.Message())
	}
}

func TestCustomConfigAndPreset(t *testing.T) {
	isolate(t, "board:\n  width: 12\n")
	SetDifficultyPreset("hard")

	g := New()
	startGame(t, g, 1)
	if w := g.Snapshot().Width; w != 12 {
		t.Errorf("board width = %d, expected 12 from the custom config", w)
	}
	if g.rules.BaseFallPeriod.Milliseconds() != 600 {
		t.Errorf("hard preset fall period = %v", g.rules.BaseFallPeriod)
	}
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	isolate(t, "generator:\n  shape_pool: [hexagon]\n")

	g := New()
	startGame(t, g, 1)
	if !reflect.DeepEqual(g.rules, engine.DefaultRules()) {
		t.Errorf("expected default rules, got %+v", g.rules)
	}
}

func TestRulesFromConfig(t *testing.T) {
	rules, err := RulesFromConfig(config.DefaultPyramidConfig())
	if err != nil {
		t.Fatalf("RulesFromConfig: %v", err)
	}
	if !reflect.DeepEqual(rules, engine.DefaultRules()) {
		t.Errorf("default config and default rules differ:\n%+v\n%+v", rules, engine.DefaultRules())
	}

	cfg := config.DefaultPyramidConfig()
	cfg.Generator.ShapePool = []string{"Single", "O"}
	rules, err = RulesFromConfig(cfg)
	if err != nil {
		t.Fatalf("RulesFromConfig: %v", err)
	}
	if !reflect.DeepEqual(rules.ShapePool, []engine.ShapeID{engine.ShapeSingle, engine.ShapeO}) {
		t.Errorf("shape pool = %v", rules.ShapePool)
	}

	cfg.Generator.ShapePool = []string{"hexagon"}
	if _, err := RulesFromConfig(cfg); err == nil {
		t.Error("expected an error for an unknown shape")
	}

	cfg = config.DefaultPyramidConfig()
	cfg.Board.Width = 1
	if _, err := RulesFromConfig(cfg); err == nil {
		t.Error("expected a validation error")
	}
}

func TestRender(t *testing.T) {
	isolate(t, "")
	g := New()
	startGame(t, g, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Pyramid Builder", "NEXT", "Score", "Stability", "▓▓", "··", "██"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q", want)
		}
	}

	press(g, core.ActionPause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("expected the pause overlay")
	}

	small := core.NewScreen(30, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("expected the too-small message")
	}
}

func TestRenderGameOver(t *testing.T) {
	isolate(t, "generator:\n  shape_pool: [triple-v]\n")
	g := NewZen()
	startGame(t, g, 3)
	for range 6 {
		press(g, core.ActionDrop)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Game Over") || !strings.Contains(out, "Press R to restart") {
		t.Errorf("expected the game over overlay:\n%s", out)
	}
}

func TestStabilityBar(t *testing.T) {
	tests := []struct {
		value int
		bar   string
		color core.Color
	}{
		{100, "[██████████]", core.ColorGreen},
		{50, "[█████░░░░░]", core.ColorYellow},
		{30, "[███░░░░░░░]", core.ColorRed},
		{0, "[░░░░░░░░░░]", core.ColorRed},
	}
	for _, tc := range tests {
		bar, c := stabilityBar(tc.value)
		if bar != tc.bar || c != tc.color {
			t.Errorf("stabilityBar(%d) = %q %v, expected %q %v", tc.value, bar, c, tc.bar, tc.color)
		}
	}
}

func TestWrap(t *testing.T) {
	got := wrap("The pyramid is buried. Game over", 24)
	want := []string{"The pyramid is buried.", "Game over"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrap = %q, expected %q", got, want)
	}
	if wrap("", 10) != nil {
		t.Error("empty text should produce no lines")
	}
}
