// Package config 前端配置（窗口、音频、日志、按键、机器人）
//
// 游戏规则相关的数值固定在 pkg/core 中，不可配置。
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Config 完整配置
type Config struct {
	Window WindowConfig `yaml:"window" toml:"window"`
	TPS    int          `yaml:"tps" toml:"tps"`   // 每秒模拟次数
	Seed   uint64       `yaml:"seed" toml:"seed"` // 0 表示按时间生成
	Audio  AudioConfig  `yaml:"audio" toml:"audio"`
	Log    LogConfig    `yaml:"log" toml:"log"`
	Keys   KeysConfig   `yaml:"keys" toml:"keys"`
	Bot    BotConfig    `yaml:"bot" toml:"bot"`
}

// WindowConfig 窗口参数
type WindowConfig struct {
	Title string  `yaml:"title" toml:"title"`
	Scale float64 `yaml:"scale" toml:"scale"`
}

// AudioConfig 音效参数
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Volume     float64 `yaml:"volume" toml:"volume"` // 主音量 0~1
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
}

// LogConfig 日志参数
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// KeysConfig 按键绑定，每个动作可以绑定多个键
type KeysConfig struct {
	Up      []string `yaml:"up" toml:"up"`
	Down    []string `yaml:"down" toml:"down"`
	Left    []string `yaml:"left" toml:"left"`
	Right   []string `yaml:"right" toml:"right"`
	Bomb    []string `yaml:"bomb" toml:"bomb"`
	Confirm []string `yaml:"confirm" toml:"confirm"`
	Pause   []string `yaml:"pause" toml:"pause"`
	Resume  []string `yaml:"resume" toml:"resume"`
	Cancel  []string `yaml:"cancel" toml:"cancel"`
}

// BotConfig 自动驾驶参数
type BotConfig struct {
	Preset string `yaml:"preset" toml:"preset"` // calm / reckless
}

// KnownKeys 可以在配置中使用的按键名
var KnownKeys = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
	"Space", "Enter", "Escape", "Backspace", "Tab",
}

// Bindings 按动作名返回按键绑定
func (k KeysConfig) Bindings() map[string][]string {
	return map[string][]string{
		"up":      k.Up,
		"down":    k.Down,
		"left":    k.Left,
		"right":   k.Right,
		"bomb":    k.Bomb,
		"confirm": k.Confirm,
		"pause":   k.Pause,
		"resume":  k.Resume,
		"cancel":  k.Cancel,
	}
}

// Validate 检查配置是否合法，返回所有问题
func (c Config) Validate() error {
	var errs []error
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0,1], got %v", c.Audio.Volume))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Bot.Preset {
	case "calm", "reckless":
	default:
		errs = append(errs, fmt.Errorf("bot.preset must be calm or reckless, got %q", c.Bot.Preset))
	}

	for action, keys := range c.Keys.Bindings() {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: no key bound", action))
		}
		for _, key := range keys {
			if !isKnownKey(key) {
				errs = append(errs, fmt.Errorf("keys.%s: unknown key %q", action, key))
			}
		}
	}
	return errors.Join(errs...)
}

func isKnownKey(name string) bool {
	for _, k := range KnownKeys {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}
