package config

import (
	_ "embed"
)

//go:embed defaults/bomberman.yaml
var defaultYAML []byte

// Default 内置默认配置，与 defaults/bomberman.yaml 保持一致
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title: "Bomberman",
			Scale: 1.0,
		},
		TPS:  60,
		Seed: 0,
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     1.0,
			SampleRate: 44100,
		},
		Log: LogConfig{
			Level: "info",
		},
		Keys: KeysConfig{
			Up:      []string{"W", "ArrowUp"},
			Down:    []string{"S", "ArrowDown"},
			Left:    []string{"A", "ArrowLeft"},
			Right:   []string{"D", "ArrowRight"},
			Bomb:    []string{"Space"},
			Confirm: []string{"Enter"},
			Pause:   []string{"P"},
			Resume:  []string{"R"},
			Cancel:  []string{"Escape"},
		},
		Bot: BotConfig{
			Preset: "calm",
		},
	}
}
