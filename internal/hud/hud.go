// Package hud 生成界面上叠加显示的文字，窗口前端和终端前端共用
package hud

import (
	"fmt"
	"strings"
	"time"

	"bomberman-classic/internal/config"
	"bomberman-classic/pkg/core"
)

// Style 文字样式，由前端映射为具体颜色和字号
type Style int

const (
	StyleNormal Style = iota
	StyleTitle
	StyleGood
	StyleBad
	StyleHint
)

// Line 一行叠加文字
type Line struct {
	Text  string
	Style Style
}

// Keys 叠加文字中显示的按键名
type Keys struct {
	Move    string
	Bomb    string
	Confirm string
	Pause   string
	Resume  string
	Cancel  string
}

// keyLabels 配置按键名在提示中的写法
var keyLabels = map[string]string{
	"space":      "SPACE",
	"enter":      "ENTER",
	"escape":     "ESC",
	"backspace":  "BACKSPACE",
	"tab":        "TAB",
	"arrowup":    "UP",
	"arrowdown":  "DOWN",
	"arrowleft":  "LEFT",
	"arrowright": "RIGHT",
}

func keyLabel(name string) string {
	if l, ok := keyLabels[strings.ToLower(name)]; ok {
		return l
	}
	return strings.ToUpper(name)
}

func joinLabels(names []string) string {
	labels := make([]string, 0, len(names))
	for _, n := range names {
		labels = append(labels, keyLabel(n))
	}
	return strings.Join(labels, " / ")
}

// moveLabel 四个方向按绑定顺序分组，如 "WASD / Arrow Keys"
func moveLabel(k config.KeysConfig) string {
	dirs := [][]string{k.Up, k.Left, k.Down, k.Right}
	n := 0
	for _, d := range dirs {
		n = max(n, len(d))
	}

	var groups []string
	for i := 0; i < n; i++ {
		var names []string
		for _, d := range dirs {
			if i < len(d) {
				names = append(names, d[i])
			}
		}
		groups = append(groups, groupLabel(names))
	}
	return strings.Join(groups, " / ")
}

func groupLabel(names []string) string {
	letters, arrows := true, true
	for _, n := range names {
		letters = letters && len(n) == 1
		arrows = arrows && strings.HasPrefix(strings.ToLower(n), "arrow")
	}
	switch {
	case len(names) == 4 && arrows:
		return "Arrow Keys"
	case letters:
		return strings.ToUpper(strings.Join(names, ""))
	}
	labels := make([]string, 0, len(names))
	for _, n := range names {
		labels = append(labels, keyLabel(n))
	}
	return strings.Join(labels, "/")
}

// KeysFrom 根据按键配置生成提示文字
func KeysFrom(k config.KeysConfig) Keys {
	return Keys{
		Move:    moveLabel(k),
		Bomb:    joinLabels(k.Bomb),
		Confirm: joinLabels(k.Confirm),
		Pause:   joinLabels(k.Pause),
		Resume:  joinLabels(k.Resume),
		Cancel:  joinLabels(k.Cancel),
	}
}

// Overlay 当前界面需要显示的文字，正常游戏中返回 nil
func Overlay(snap core.Snapshot, keys Keys) []Line {
	switch snap.State {
	case core.StateWelcome:
		return []Line{
			{"BOMBERMAN", StyleTitle},
			{"", StyleNormal},
			{"CONTROLS:", StyleNormal},
			{keys.Move + " - Move", StyleNormal},
			{keys.Bomb + " - Place Bomb", StyleNormal},
			{keys.Pause + " - Pause Game", StyleNormal},
			{"", StyleNormal},
			{"Press " + keys.Confirm + " to Start", StyleHint},
		}
	case core.StateInGame:
		if !snap.Paused {
			return nil
		}
		return []Line{
			{"PAUSED", StyleTitle},
			{"", StyleNormal},
			{keys.Resume + " - Resume Game", StyleGood},
			{keys.Cancel + " - Back to Menu", StyleBad},
		}
	case core.StateGameOver:
		return []Line{
			{"GAME OVER!", StyleTitle},
			{"", StyleNormal},
			{"You did not survive", StyleNormal},
			{"", StyleNormal},
			{keys.Confirm + " - Try Again", StyleHint},
		}
	case core.StateVictory:
		return []Line{
			{"VICTORY!", StyleTitle},
			{"", StyleNormal},
			{"All enemies defeated", StyleNormal},
			{"", StyleNormal},
			{keys.Confirm + " - Play Again", StyleHint},
		}
	}
	return nil
}

// Status 游戏中的状态栏文字
func Status(snap core.Snapshot) string {
	if snap.State != core.StateInGame {
		return ""
	}
	round := snap.Round
	if len(round) > 8 {
		round = round[:8]
	}
	line := fmt.Sprintf("round %s  enemies %d  bombs %d",
		round, len(snap.Of(core.KindEnemy)), len(snap.Of(core.KindBomb)))
	if snap.PendingEnd != nil {
		line += fmt.Sprintf("  %s in %s", snap.PendingEnd.Target, Countdown(snap.PendingEnd.Remaining))
	}
	return line
}

// Countdown 把剩余时间格式化为一位小数的秒数，负数按 0 处理
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
