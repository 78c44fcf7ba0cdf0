package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(fileName, defaultYAML)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded yaml = %+v\nwant %+v", cfg, Default())
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
tps = 30
seed = 42

[audio]
enabled = false
volume = 0.5

[keys]
bomb = ["X", "Space"]
`)
	cfg, err := Parse("custom.toml", data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TPS != 30 || cfg.Seed != 42 {
		t.Errorf("tps = %d, seed = %d", cfg.TPS, cfg.Seed)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 0.5 {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if !reflect.DeepEqual(cfg.Keys.Bomb, []string{"X", "Space"}) {
		t.Errorf("bomb keys = %v", cfg.Keys.Bomb)
	}
	// 未出现的字段保留默认值
	if cfg.Window.Title != "Bomberman" || !reflect.DeepEqual(cfg.Keys.Up, Default().Keys.Up) {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseYAMLPartial(t *testing.T) {
	cfg, err := Parse("x.yaml", []byte("log:\n  level: debug\nbot:\n  preset: reckless\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "debug" || cfg.Bot.Preset != "reckless" || cfg.TPS != 60 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("bad.yaml", []byte("tps: [1, 2")); err == nil {
		t.Error("broken yaml accepted")
	}
	if _, err := Parse("bad.toml", []byte("tps = ")); err == nil {
		t.Error("broken toml accepted")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tps", func(c *Config) { c.TPS = 0 }, "tps"},
		{"scale", func(c *Config) { c.Window.Scale = -1 }, "window.scale"},
		{"volume", func(c *Config) { c.Audio.Volume = 1.5 }, "audio.volume"},
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, "audio.sample_rate"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"preset", func(c *Config) { c.Bot.Preset = "genius" }, "bot.preset"},
		{"unknown key", func(c *Config) { c.Keys.Bomb = []string{"F13"} }, `unknown key "F13"`},
		{"unbound", func(c *Config) { c.Keys.Pause = nil }, "keys.pause"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my.toml")
	if err := os.WriteFile(path, []byte("tps = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TPS != 20 || source != path {
		t.Errorf("tps = %d, source = %s", cfg.TPS, source)
	}

	_, _, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	_, source, err := Load("")
	if err != nil || source != "embedded" {
		t.Fatalf("source = %s, err = %v, want embedded", source, err)
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", fileName), []byte("tps: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, _ := Load("")
	if cfg.TPS != 25 || source != filepath.Join("configs", fileName) {
		t.Fatalf("local: tps = %d, source = %s", cfg.TPS, source)
	}

	userDir := filepath.Join(home, ".bomberman", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, fileName), []byte("tps: 35\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, _ = Load("")
	if cfg.TPS != 35 {
		t.Errorf("user config not preferred: tps = %d", cfg.TPS)
	}
}
