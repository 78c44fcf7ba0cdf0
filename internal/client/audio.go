package client

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"bomberman-classic/internal/config"
	"bomberman-classic/internal/sfx"
	"bomberman-classic/pkg/core"
)

// Audio 根据游戏事件播放音效
type Audio struct {
	ctx     *audio.Context
	bank    *sfx.Bank
	playing []*audio.Player
	logger  *log.Logger
}

// NewAudio 渲染音效并创建 ebiten 音频上下文
func NewAudio(cfg config.AudioConfig, logger *log.Logger) (*Audio, error) {
	bank, err := sfx.NewBank(cfg.SampleRate, cfg.Volume)
	if err != nil {
		return nil, fmt.Errorf("render sounds: %w", err)
	}

	// 一个进程只能有一个音频上下文
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(bank.SampleRate())
	} else if ctx.SampleRate() != bank.SampleRate() {
		return nil, fmt.Errorf("audio context already running at %d Hz, want %d Hz", ctx.SampleRate(), bank.SampleRate())
	}

	return &Audio{ctx: ctx, bank: bank, logger: logger}, nil
}

// Play 播放一个 tick 内产生的事件对应的音效
func (a *Audio) Play(events []core.Event) {
	a.prune()
	for _, e := range events {
		s, ok := sfx.ForEvent(e.Kind)
		if !ok {
			continue
		}
		p := a.ctx.NewPlayerFromBytes(a.bank.PCM(s))
		p.Play()
		a.playing = append(a.playing, p)
		a.logger.Debug("sound", "sound", s, "event", e.Kind)
	}
}

// prune 关闭已经播放完的播放器
func (a *Audio) prune() {
	alive := a.playing[:0]
	for _, p := range a.playing {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		if err := p.Close(); err != nil {
			a.logger.Warn("close audio player", "err", err)
		}
	}
	clear(a.playing[len(alive):])
	a.playing = alive
}
