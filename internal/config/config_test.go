package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultGameConfig())
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	data := []byte(`
monster:
  interval: 250ms
  policy: chase
bomb:
  fuse: 2s
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Monster.Interval != 250*time.Millisecond {
		t.Errorf("Monster.Interval = %v, expected 250ms", cfg.Monster.Interval)
	}
	if cfg.Monster.Policy != PolicyChase {
		t.Errorf("Monster.Policy = %q, expected chase", cfg.Monster.Policy)
	}
	if cfg.Bomb.Fuse != 2*time.Second {
		t.Errorf("Bomb.Fuse = %v, expected 2s", cfg.Bomb.Fuse)
	}
	if cfg.Player.Lives != DefaultGameConfig().Player.Lives {
		t.Errorf("untouched keys should keep defaults, lives = %d", cfg.Player.Lives)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero lives", func(c *GameConfig) { c.Player.Lives = 0 }},
		{"zero bombs", func(c *GameConfig) { c.Player.Bombs = 0 }},
		{"zero range", func(c *GameConfig) { c.Player.Range = 0 }},
		{"negative cooldown", func(c *GameConfig) { c.Player.MoveCooldown = -time.Second }},
		{"zero monster interval", func(c *GameConfig) { c.Monster.Interval = 0 }},
		{"zero fuse", func(c *GameConfig) { c.Bomb.Fuse = 0 }},
		{"materialize after fuse", func(c *GameConfig) { c.Bomb.MaterializeAfter = c.Bomb.Fuse + time.Second }},
		{"unknown policy", func(c *GameConfig) { c.Monster.Policy = "teleport" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultGameConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Lives != 9 {
		t.Errorf("Player.Lives = %d, expected 9", cfg.Player.Lives)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("player: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("broken custom config should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("expected embedded default, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "bomber.yaml"), []byte("player:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Player.Lives != 4 {
		t.Errorf("local config should be used, lives = %d", cfg.Player.Lives)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".bomber", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "bomber.yaml"), []byte("player:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Player.Lives != 7 {
		t.Errorf("user config should win, lives = %d", cfg.Player.Lives)
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultGameConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Player.Lives != 5 || easy.Monster.Policy != PolicyRandom {
		t.Errorf("easy preset = %+v", easy)
	}

	hard := DefaultGameConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Player.Lives != 2 || hard.Monster.Policy != PolicyChase {
		t.Errorf("hard preset = %+v", hard)
	}
	if hard.Monster.Interval >= DefaultGameConfig().Monster.Interval {
		t.Error("hard monsters should move faster")
	}

	normal := DefaultGameConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultGameConfig() {
		t.Error("normal preset should keep loaded values")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}
