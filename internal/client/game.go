// Package client ebiten 窗口前端：键盘输入、绘制和音效
package client

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"bomberman-classic/internal/config"
	"bomberman-classic/internal/hud"
	"bomberman-classic/pkg/ai"
	"bomberman-classic/pkg/core"
)

// Options 窗口前端参数
type Options struct {
	Config    config.Config
	Seed      uint64
	Logger    *log.Logger
	Autopilot bool // 由机器人控制玩家，键盘仍可暂停和退出
}

// Game 游戏主结构（Ebiten 游戏循环）
type Game struct {
	core     *core.Game
	keys     *Keymap
	hints    hud.Keys
	bot      *ai.Bot
	audio    *Audio
	smoother *Smoother
	logger   *log.Logger

	dt   time.Duration
	snap core.Snapshot
}

// NewGame 创建窗口前端，音频初始化失败只记录警告
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	keys, err := NewKeymap(opts.Config.Keys)
	if err != nil {
		return nil, err
	}

	g := &Game{
		core: core.NewGame(core.Options{
			Seed:   opts.Seed,
			Logger: logger,
		}),
		keys:     keys,
		hints:    hud.KeysFrom(opts.Config.Keys),
		smoother: NewSmoother(),
		logger:   logger,
		dt:       time.Second / time.Duration(opts.Config.TPS),
	}

	if opts.Autopilot {
		preset, ok := ai.Preset(opts.Config.Bot.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown bot preset %q", opts.Config.Bot.Preset)
		}
		g.bot = ai.NewBot(preset, opts.Seed)
		logger.Info("autopilot enabled", "preset", opts.Config.Bot.Preset)
	}

	if opts.Config.Audio.Enabled {
		a, err := NewAudio(opts.Config.Audio, logger)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			g.audio = a
		}
	}

	g.snap = g.core.Snapshot()
	return g, nil
}

// Update 推进一个固定时长的 tick
func (g *Game) Update() error {
	in := g.keys.Poll()

	// 欢迎界面按取消键退出
	if g.snap.State == core.StateWelcome && in.Actions.Has(core.ActionCancel) {
		return ebiten.Termination
	}

	if g.bot != nil {
		botIn := g.bot.Decide(g.core, g.dt)
		botIn.Actions = botIn.Actions.Union(in.Actions)
		in = botIn
	}

	res := g.core.Step(in, g.dt)
	if g.audio != nil {
		g.audio.Play(res.Events)
	}

	round := g.snap.Round
	g.snap = g.core.Snapshot()
	// 新的一局不沿用上一局的插值轨迹
	if g.snap.Round != round {
		g.smoother.Reset()
	}
	g.smoother.Update(g.snap.Sprites, g.dt.Seconds())
	return nil
}

// Draw 按 Z 顺序绘制快照
func (g *Game) Draw(screen *ebiten.Image) {
	drawGround(screen)

	for _, sp := range g.snap.Sprites {
		switch sp.Kind {
		case core.KindWall:
			drawWall(screen, sp)
		case core.KindBreakableWall:
			drawBrick(screen, sp)
		case core.KindBomb:
			drawBomb(screen, sp)
		case core.KindExplosion:
			drawExplosion(screen, sp)
		case core.KindPlayer, core.KindEnemy:
			drawActor(screen, sp, g.smoother.track(sp.ID))
		}
	}

	drawStatus(screen, g.snap)
	drawOverlay(screen, g.snap, g.hints)
}

// Layout 设置屏幕布局
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.WindowWidth, core.WindowHeight
}

// Run 打开窗口并运行游戏，直到窗口关闭
func Run(g *Game, cfg config.Config) error {
	ebiten.SetWindowSize(int(core.WindowWidth*cfg.Window.Scale), int(core.WindowHeight*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
