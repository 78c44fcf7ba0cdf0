package core

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"
)

// ErrInvariant 内部不变量被破坏（程序错误，而不是可恢复的运行时错误）
var ErrInvariant = errors.New("core: invariant violated")

// Options 游戏参数
type Options struct {
	Seed   uint64      // 随机种子（敌人方向）
	Logger *log.Logger // 为 nil 时不输出日志
	Strict bool        // 每个 tick 结束后检查不变量，失败时 panic
}

// Game 游戏状态（纯逻辑，不包含渲染）
// 只能由一个 goroutine 驱动
type Game struct {
	opts   Options
	store  *Store
	rng    *rand.Rand
	logger *log.Logger

	state      GameState
	paused     bool
	pendingEnd *endDelay
	nextState  *GameState

	round  string
	ticks  uint64
	events []Event
}

// NewGame 创建新游戏，初始状态为欢迎界面
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		opts:   opts,
		store:  NewStore(),
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		logger: logger,
		state:  StateWelcome,
	}
}

// State 当前状态
func (g *Game) State() GameState { return g.state }

// Paused 是否暂停
func (g *Game) Paused() bool { return g.paused }

// Round 当前局的 ID（未开始时为空）
func (g *Game) Round() string { return g.round }

// Ticks 已执行的 tick 数
func (g *Game) Ticks() uint64 { return g.ticks }

// Step 推进一个 tick
//
// 顺序：离散输入 → 移动 → 火焰寿命、炸弹引信与爆炸 → 碰撞 → 结束延迟与胜负判定 → 状态切换
func (g *Game) Step(in Input, dt time.Duration) StepResult {
	g.events = nil
	g.ticks++

	g.handleActions(in.Actions)

	// 已排队切换（如暂停菜单返回）时本 tick 不再推进游戏
	if g.state == StateInGame && g.nextState == nil {
		if !g.paused {
			g.movePlayer(in, dt)
			g.moveEnemies(dt)
			g.tickExplosions(dt)
			g.tickBombs(dt)
		}
		g.checkCollisions()
		g.tickEndDelay(dt)
		g.evaluateOutcome()
	}

	g.applyTransition()

	if g.opts.Strict {
		if err := g.CheckInvariants(); err != nil {
			g.logger.Error("invariant check failed", "err", err, "tick", g.ticks)
			panic(err)
		}
	}
	return StepResult{Events: g.events}
}

// handleActions 处理离散输入
func (g *Game) handleActions(actions ActionSet) {
	if actions.Empty() {
		return
	}

	switch g.state {
	case StateWelcome, StateVictory, StateGameOver:
		if actions.Has(ActionConfirm) {
			g.requestState(StateInGame)
		}
	case StateInGame:
		if actions.Has(ActionPause) {
			g.paused = !g.paused
			g.logger.Debug("pause toggled", "paused", g.paused)
		}
		if actions.Has(ActionResume) {
			g.paused = false
		}
		if actions.Has(ActionCancel) && g.paused {
			g.paused = false
			g.requestState(StateWelcome)
		}
		if actions.Has(ActionPlaceBomb) && g.nextState == nil {
			g.placeBomb()
		}
	}
}

// requestState 排队一个状态切换，在本 tick 结束时生效；同一 tick 内后到的请求覆盖先到的
func (g *Game) requestState(s GameState) {
	g.nextState = &s
}

// applyTransition 执行排队的状态切换及其进入/退出效果
func (g *Game) applyTransition() {
	if g.nextState == nil {
		return
	}
	to := *g.nextState
	g.nextState = nil
	from := g.state

	// 离开游戏中或进入任何状态时都完全重置
	g.reset()
	g.state = to

	switch to {
	case StateInGame:
		g.startRound()
	case StateVictory:
		g.emit(Event{Kind: EventVictory})
	case StateGameOver:
		g.emit(Event{Kind: EventGameOver})
	}

	g.emit(Event{Kind: EventStateChanged, From: from, To: to})
	g.logger.Info("state changed", "from", from, "to", to, "round", g.round)
}

// reset 清除所有游戏实体和附属状态
func (g *Game) reset() {
	g.store.Clear()
	g.paused = false
	g.pendingEnd = nil
}

// startRound 生成地图、玩家和敌人
func (g *Game) startRound() {
	g.round = ksuid.New().String()
	g.spawnMap()
	g.spawnPlayer(PlayerStart)
	for _, pos := range EnemyStarts {
		g.spawnEnemy(pos)
	}
	g.logger.Info("round started", "round", g.round, "enemies", len(EnemyStarts))
}

// tickEndDelay 推进延迟切换，不受暂停影响；不覆盖已排队的切换
func (g *Game) tickEndDelay(dt time.Duration) {
	if g.pendingEnd == nil || g.nextState != nil {
		return
	}
	g.pendingEnd.remaining -= dt
	if g.pendingEnd.remaining <= 0 {
		target := g.pendingEnd.target
		g.pendingEnd = nil
		g.requestState(target)
	}
}

// evaluateOutcome 胜负判定
// 玩家死亡与敌人全灭同时成立时，失败优先
func (g *Game) evaluateOutcome() {
	if g.pendingEnd != nil || g.nextState != nil {
		return
	}
	switch {
	case g.store.Count(KindPlayer) == 0:
		g.armEnd(StateGameOver)
	case g.store.Count(KindEnemy) == 0:
		g.armEnd(StateVictory)
	}
}

// armEnd 设置延迟切换，同一时间只能有一个
func (g *Game) armEnd(target GameState) {
	if g.pendingEnd != nil {
		panic(fmt.Errorf("%w: end delay to %s already pending, cannot arm %s",
			ErrInvariant, g.pendingEnd.target, target))
	}
	g.pendingEnd = &endDelay{remaining: EndDelay, target: target}
	g.logger.Debug("end delay armed", "target", target, "delay", EndDelay)
}

// PendingEnd 当前的延迟切换
func (g *Game) PendingEnd() (PendingEnd, bool) {
	if g.pendingEnd == nil {
		return PendingEnd{}, false
	}
	return PendingEnd{Remaining: g.pendingEnd.remaining, Target: g.pendingEnd.target}, true
}

// CheckInvariants 检查内部不变量
func (g *Game) CheckInvariants() error {
	if n := g.store.Count(KindPlayer); n > 1 {
		return fmt.Errorf("%w: %d players alive", ErrInvariant, n)
	}

	bombs := make(map[GridPos]int)
	for _, b := range g.store.OfKind(KindBomb) {
		bombs[b.Pos]++
		if bombs[b.Pos] > 1 {
			return fmt.Errorf("%w: %d bombs on tile %s", ErrInvariant, bombs[b.Pos], b.Pos)
		}
	}

	if g.state == StatePaused {
		return fmt.Errorf("%w: paused is a flag, not a state", ErrInvariant)
	}
	if g.paused && g.state != StateInGame {
		return fmt.Errorf("%w: paused while %s", ErrInvariant, g.state)
	}
	return nil
}
