// Package term 终端前端：bubbletea 驱动模拟，lipgloss 绘制棋盘
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bomberman-classic/internal/config"
	"bomberman-classic/pkg/core"
)

// teaKeyNames 配置按键名到 bubbletea 按键字符串
var teaKeyNames = map[string]string{
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
	"space":      " ",
	"enter":      "enter",
	"escape":     "esc",
	"backspace":  "backspace",
	"tab":        "tab",
}

// TeaKey 配置按键名转换为 bubbletea 的按键字符串
func TeaKey(name string) (string, error) {
	lower := strings.ToLower(name)
	if k, ok := teaKeyNames[lower]; ok {
		return k, nil
	}
	if len(lower) == 1 && lower[0] >= 'a' && lower[0] <= 'z' {
		return lower, nil
	}
	return "", fmt.Errorf("unknown key %q", name)
}

// KeyMap 终端按键绑定
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Bomb    key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Resume  key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

// ShortHelp 简短帮助中显示的按键
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Bomb, k.Pause, k.Quit}
}

// FullHelp 完整帮助中显示的按键
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Bomb, k.Confirm},
		{k.Pause, k.Resume, k.Cancel, k.Quit},
	}
}

// NewKeyMap 根据配置创建按键绑定，ctrl+c 固定为退出
func NewKeyMap(cfg config.KeysConfig) (KeyMap, error) {
	bind := func(field string, names []string, desc string) (key.Binding, error) {
		keys := make([]string, 0, len(names))
		labels := make([]string, 0, len(names))
		for _, n := range names {
			k, err := TeaKey(n)
			if err != nil {
				return key.Binding{}, fmt.Errorf("keys.%s: %w", field, err)
			}
			keys = append(keys, k)
			labels = append(labels, label(k))
		}
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(labels, "/"), desc),
		), nil
	}

	var km KeyMap
	fields := []struct {
		dst   *key.Binding
		field string
		names []string
		desc  string
	}{
		{&km.Up, "up", cfg.Up, "up"},
		{&km.Down, "down", cfg.Down, "down"},
		{&km.Left, "left", cfg.Left, "left"},
		{&km.Right, "right", cfg.Right, "right"},
		{&km.Bomb, "bomb", cfg.Bomb, "bomb"},
		{&km.Confirm, "confirm", cfg.Confirm, "start"},
		{&km.Pause, "pause", cfg.Pause, "pause"},
		{&km.Resume, "resume", cfg.Resume, "resume"},
		{&km.Cancel, "cancel", cfg.Cancel, "menu"},
	}
	for _, f := range fields {
		b, err := bind(f.field, f.names, f.desc)
		if err != nil {
			return KeyMap{}, err
		}
		*f.dst = b
	}
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	)
	return km, nil
}

func label(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// direction 按键对应的移动方向
func (k KeyMap) direction(msg tea.KeyMsg) (core.GridPos, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.DirUp, true
	case key.Matches(msg, k.Down):
		return core.DirDown, true
	case key.Matches(msg, k.Left):
		return core.DirLeft, true
	case key.Matches(msg, k.Right):
		return core.DirRight, true
	}
	return core.GridPos{}, false
}

// action 按键对应的离散动作
func (k KeyMap) action(msg tea.KeyMsg) (core.Action, bool) {
	switch {
	case key.Matches(msg, k.Bomb):
		return core.ActionPlaceBomb, true
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, true
	case key.Matches(msg, k.Pause):
		return core.ActionPause, true
	case key.Matches(msg, k.Resume):
		return core.ActionResume, true
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel, true
	}
	return 0, false
}
