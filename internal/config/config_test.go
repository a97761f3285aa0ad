package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parsePyramid(GetDefaultYAML("pyramid"))
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if len(cfg.Generator.ShapePool) != 0 {
		t.Errorf("default shape pool should be empty, got %v", cfg.Generator.ShapePool)
	}
	cfg.Generator.ShapePool = nil

	if !reflect.DeepEqual(cfg, DefaultPyramidConfig()) {
		t.Errorf("embedded YAML and DefaultPyramidConfig differ:\n%+v\n%+v", cfg, DefaultPyramidConfig())
	}
	if err := DefaultPyramidConfig().Validate(); err != nil {
		t.Errorf("hard-coded default is invalid: %v", err)
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("tetris") != nil {
		t.Error("expected nil for an unknown game")
	}
	if GetDefaultYAML("pyramid_zen") == nil {
		t.Error("zen mode should share the pyramid defaults")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPyramidCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  width: 12\ngenerator:\n  shape_pool: [single, domino]\n")

	cfg, err := LoadPyramid(path)
	if err != nil {
		t.Fatalf("LoadPyramid: %v", err)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("width = %d, expected 12", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("height = %d, expected default 20", cfg.Board.Height)
	}
	if !reflect.DeepEqual(cfg.Generator.ShapePool, []string{"single", "domino"}) {
		t.Errorf("shape pool = %v", cfg.Generator.ShapePool)
	}
}

func TestLoadPyramidCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPyramid(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "board: [not, a, map")
	if _, err := LoadPyramid(broken); err == nil {
		t.Error("expected a parse error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "generator:\n  fit_bias: 1.5\n")
	_, err := LoadPyramid(bad)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	if verr.Code != "BAD_FIT_BIAS" {
		t.Errorf("code = %s, expected BAD_FIT_BIAS", verr.Code)
	}
}

func TestLoadPyramidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	userPath := filepath.Join(home, ".arcade", "configs", "pyramid.yaml")

	writeFile(t, userPath, "board:\n  width: 14\n")
	cfg, err := LoadPyramid("")
	if err != nil {
		t.Fatalf("LoadPyramid: %v", err)
	}
	if cfg.Board.Width != 14 {
		t.Errorf("width = %d, expected user override 14", cfg.Board.Width)
	}

	// An invalid user file is skipped in favour of the embedded default
	writeFile(t, userPath, "board:\n  width: 1\n")
	cfg, err = LoadPyramid("")
	if err != nil {
		t.Fatalf("LoadPyramid: %v", err)
	}
	if cfg.Board.Width != 10 {
		t.Errorf("width = %d, expected embedded default 10", cfg.Board.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*PyramidConfig)
		code   string
	}{
		{"default", func(*PyramidConfig) {}, ""},
		{"narrow board", func(c *PyramidConfig) { c.Board.Width = 2 }, "BOARD_TOO_NARROW"},
		{"no base", func(c *PyramidConfig) { c.Board.BaseRows = 0 }, "NO_BASE"},
		{"no spawn room", func(c *PyramidConfig) { c.Pyramid.SpawnClearance = 0 }, "NO_SPAWN_ROOM"},
		{"short board", func(c *PyramidConfig) { c.Board.Height = 6 }, "BOARD_TOO_SHORT"},
		{"no tiers", func(c *PyramidConfig) { c.Pyramid.Tiers = 0 }, "NO_TIERS"},
		{"negative growth", func(c *PyramidConfig) { c.Pyramid.TierGrowthEvery = -1 }, "NEGATIVE_GROWTH"},
		{"negative bonus", func(c *PyramidConfig) { c.Scoring.PerfectFitBonus = -5 }, "NEGATIVE_AMOUNT"},
		{"negative penalty", func(c *PyramidConfig) { c.Stability.MisfitPenalty = -1 }, "NEGATIVE_AMOUNT"},
		{"no settle passes", func(c *PyramidConfig) { c.Physics.SettleMaxPasses = 0 }, "NO_SETTLE_PASSES"},
		{"bias below zero", func(c *PyramidConfig) { c.Generator.FitBias = -0.1 }, "BAD_FIT_BIAS"},
		{"negative onboarding", func(c *PyramidConfig) { c.Generator.OnboardingScore = -1 }, "NEGATIVE_AMOUNT"},
		{"zero gravity floor", func(c *PyramidConfig) { c.Gravity.MinFallMs = 0 }, "BAD_GRAVITY"},
		{"base below floor", func(c *PyramidConfig) { c.Gravity.BaseFallMs = 50 }, "BAD_GRAVITY"},
		{"bad progression", func(c *PyramidConfig) { c.Difficulty.Progression.Type = "lines" }, "BAD_DIFFICULTY"},
		{"bad initial level", func(c *PyramidConfig) { c.Difficulty.InitialLevel = 2 }, "BAD_DIFFICULTY"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPyramidConfig()
			tc.modify(&cfg)
			err := cfg.Validate()

			if tc.code == "" {
				if err != nil {
					t.Errorf("expected valid config, got %v", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError %s, got %v", tc.code, err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, expected %s (%s)", verr.Code, tc.code, verr.Message)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPyramidPreset(t *testing.T) {
	easy := DefaultPyramidConfig()
	ApplyPyramidPreset(&easy, DifficultyEasy)
	if easy.Generator.FitBias <= 0.8 || easy.Gravity.BaseFallMs <= 800 {
		t.Errorf("easy preset should be gentler: %+v %+v", easy.Generator, easy.Gravity)
	}

	hard := DefaultPyramidConfig()
	ApplyPyramidPreset(&hard, DifficultyHard)
	if hard.Stability.MisfitPenalty != 15 || hard.Generator.OnboardingScore != 0 {
		t.Errorf("hard preset: %+v %+v", hard.Stability, hard.Generator)
	}
	if hard.Difficulty.InitialLevel != 0.7 || !hard.Difficulty.Enabled {
		t.Errorf("hard preset difficulty: %+v", hard.Difficulty)
	}

	fixed := DefaultPyramidConfig()
	ApplyPyramidPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	for _, cfg := range []PyramidConfig{easy, hard, fixed} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced an invalid config: %v", err)
		}
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	d.SetEnabled(false)
	if d.IsEnabled() || d.Level(1000, 0) != 0.2 {
		t.Error("disabled manager should stay at the initial level")
	}
}

func TestDifficultyManagerFallPeriod(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.FallPeriod(800*time.Millisecond, 100*time.Millisecond, 0, 0); got != 800*time.Millisecond {
		t.Errorf("FallPeriod at start = %v, expected 800ms", got)
	}
	if got := d.FallPeriod(800*time.Millisecond, 100*time.Millisecond, 0, 100); got != 400*time.Millisecond {
		t.Errorf("FallPeriod at max = %v, expected 400ms", got)
	}
	if got := d.FallPeriod(150*time.Millisecond, 100*time.Millisecond, 0, 100); got != 100*time.Millisecond {
		t.Errorf("FallPeriod should not drop below the floor, got %v", got)
	}

	d.SetInitialLevel(5)
	if d.Level(0, 0) != 1.0 {
		t.Error("SetInitialLevel should clamp to 1.0")
	}
}
