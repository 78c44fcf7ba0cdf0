package client

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bomberman-classic/internal/config"
	"bomberman-classic/pkg/core"
)

// keyNames 配置中的按键名到 ebiten 按键
var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"arrowup":    ebiten.KeyArrowUp,
	"arrowdown":  ebiten.KeyArrowDown,
	"arrowleft":  ebiten.KeyArrowLeft,
	"arrowright": ebiten.KeyArrowRight,
	"space":      ebiten.KeySpace,
	"enter":      ebiten.KeyEnter,
	"escape":     ebiten.KeyEscape,
	"backspace":  ebiten.KeyBackspace,
	"tab":        ebiten.KeyTab,
}

// ParseKey 按键名（不区分大小写）转换为 ebiten 按键
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// actionBinding 一个离散动作及其按键
type actionBinding struct {
	action core.Action
	keys   []ebiten.Key
}

// Keymap 键盘到 core.Input 的映射
type Keymap struct {
	up, down, left, right []ebiten.Key
	actions               []actionBinding
}

// NewKeymap 根据配置创建按键映射
func NewKeymap(cfg config.KeysConfig) (*Keymap, error) {
	parse := func(field string, names []string) ([]ebiten.Key, error) {
		keys := make([]ebiten.Key, 0, len(names))
		for _, n := range names {
			k, err := ParseKey(n)
			if err != nil {
				return nil, fmt.Errorf("keys.%s: %w", field, err)
			}
			keys = append(keys, k)
		}
		return keys, nil
	}

	km := &Keymap{}
	var err error
	if km.up, err = parse("up", cfg.Up); err != nil {
		return nil, err
	}
	if km.down, err = parse("down", cfg.Down); err != nil {
		return nil, err
	}
	if km.left, err = parse("left", cfg.Left); err != nil {
		return nil, err
	}
	if km.right, err = parse("right", cfg.Right); err != nil {
		return nil, err
	}

	discrete := []struct {
		field string
		names []string
	}{
		{"confirm", cfg.Confirm},
		{"bomb", cfg.Bomb},
		{"pause", cfg.Pause},
		{"resume", cfg.Resume},
		{"cancel", cfg.Cancel},
	}
	for _, d := range discrete {
		action, ok := core.ParseAction(d.field)
		if !ok {
			return nil, fmt.Errorf("keys.%s: no such action", d.field)
		}
		keys, err := parse(d.field, d.names)
		if err != nil {
			return nil, err
		}
		km.actions = append(km.actions, actionBinding{action: action, keys: keys})
	}
	return km, nil
}

// Poll 读取本帧的键盘状态
func (k *Keymap) Poll() core.Input {
	return k.poll(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// poll 方向键取按住状态，动作键取按下的那一帧
func (k *Keymap) poll(pressed, justPressed func(ebiten.Key) bool) core.Input {
	held := func(keys []ebiten.Key, f func(ebiten.Key) bool) bool {
		for _, key := range keys {
			if f(key) {
				return true
			}
		}
		return false
	}

	in := core.Input{
		Up:    held(k.up, pressed),
		Down:  held(k.down, pressed),
		Left:  held(k.left, pressed),
		Right: held(k.right, pressed),
	}
	for _, b := range k.actions {
		if held(b.keys, justPressed) {
			in.Actions = in.Actions.With(b.action)
		}
	}
	return in
}
