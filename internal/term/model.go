package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"bomberman-classic/internal/config"
	"bomberman-classic/internal/hud"
	"bomberman-classic/pkg/ai"
	"bomberman-classic/pkg/core"
)

// HoldWindow 终端没有松键事件，方向键按下后视为持续按住这么久，键盘自动重复会不断续期
const HoldWindow = 250 * time.Millisecond

// TickMsg 触发一次模拟 tick
type TickMsg time.Time

// tickCmd 按固定间隔发送 TickMsg
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Options 终端前端参数
type Options struct {
	Config    config.Config
	Seed      uint64
	Logger    *log.Logger
	Autopilot bool
}

// Model 驱动一局游戏的 bubbletea 模型
type Model struct {
	game   *core.Game
	keys   KeyMap
	hints  hud.Keys
	help   help.Model
	bot    *ai.Bot
	logger *log.Logger

	dt       time.Duration
	held     core.GridPos
	holdLeft time.Duration
	pending  core.ActionSet
	quitting bool
}

// NewModel 创建终端前端模型
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keys, err := NewKeyMap(opts.Config.Keys)
	if err != nil {
		return Model{}, err
	}
	if opts.Config.TPS <= 0 {
		return Model{}, fmt.Errorf("tps must be positive, got %d", opts.Config.TPS)
	}

	m := Model{
		game: core.NewGame(core.Options{
			Seed:   opts.Seed,
			Logger: logger,
		}),
		keys:   keys,
		hints:  hud.KeysFrom(opts.Config.Keys),
		help:   help.New(),
		logger: logger,
		dt:     time.Second / time.Duration(opts.Config.TPS),
	}
	if opts.Autopilot {
		preset, ok := ai.Preset(opts.Config.Bot.Preset)
		if !ok {
			return Model{}, fmt.Errorf("unknown bot preset %q", opts.Config.Bot.Preset)
		}
		m.bot = ai.NewBot(preset, opts.Seed)
	}
	return m, nil
}

// Init 启动 tick 循环
func (m Model) Init() tea.Cmd {
	return tickCmd(m.dt)
}

// Update 处理按键、窗口尺寸和 tick 消息
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.step()
		return m, tickCmd(m.dt)
	}
	return m, nil
}

// handleKey 方向键刷新按住窗口，动作键排队到下一个 tick
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := m.keys.direction(msg); ok {
		m.held = dir
		m.holdLeft = HoldWindow
		return m, nil
	}

	if action, ok := m.keys.action(msg); ok {
		// 欢迎界面按取消键退出
		if action == core.ActionCancel && m.game.State() == core.StateWelcome {
			m.quitting = true
			return m, tea.Quit
		}
		m.pending = m.pending.With(action)
	}
	return m, nil
}

// input 由按住的方向和排队的动作组成本 tick 的输入
func (m Model) input() core.Input {
	in := core.Input{Actions: m.pending}
	if m.holdLeft > 0 {
		switch m.held {
		case core.DirUp:
			in.Up = true
		case core.DirDown:
			in.Down = true
		case core.DirLeft:
			in.Left = true
		case core.DirRight:
			in.Right = true
		}
	}
	return in
}

// step 推进一个 tick
func (m *Model) step() {
	in := m.input()
	if m.bot != nil {
		botIn := m.bot.Decide(m.game, m.dt)
		botIn.Actions = botIn.Actions.Union(m.pending)
		in = botIn
	}

	res := m.game.Step(in, m.dt)
	for _, e := range res.Events {
		m.logger.Debug("event", "kind", e.Kind, "pos", e.Pos)
	}

	m.pending = 0
	m.holdLeft -= m.dt
	if m.holdLeft <= 0 {
		m.holdLeft = 0
		m.held = core.GridPos{}
	}
}

// View 绘制棋盘、状态栏和按键帮助
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return Render(m.game.Snapshot(), m.hints) + "\n" + m.help.View(m.keys)
}

// Run 启动终端前端，直到用户退出
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
