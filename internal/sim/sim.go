// Package sim 无界面运行：机器人控制玩家，按固定步长推进若干局
package sim

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"bomberman-classic/pkg/ai"
	"bomberman-classic/pkg/core"
)

// ErrNoRounds 局数必须为正
var ErrNoRounds = errors.New("rounds must be positive")

// DefaultMaxRound 未指定时每局的最长模拟时间
const DefaultMaxRound = 5 * time.Minute

// Options 运行参数
type Options struct {
	Seed     uint64
	Rounds   int
	TPS      int
	MaxRound time.Duration // 每局最长模拟时间，超时记为未分胜负，0 使用 DefaultMaxRound；不足一个 tick 的零头不执行
	Bot      ai.Config
	Logger   *log.Logger
}

// RoundResult 一局的结果
type RoundResult struct {
	Round    string
	Outcome  core.GameState // Victory、GameOver，超时为 InGame
	Duration time.Duration  // 模拟时间
	Bombs    int
	Kills    int
}

// Report 全部局的汇总
type Report struct {
	Rounds    []RoundResult
	Victories int
	Defeats   int
	Timeouts  int
}

// Run 按参数运行，每局都从确认开始到结算界面结束
func Run(opts Options) (Report, error) {
	if opts.Rounds <= 0 {
		return Report{}, ErrNoRounds
	}
	if opts.TPS <= 0 {
		return Report{}, fmt.Errorf("tps must be positive, got %d", opts.TPS)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	limit := opts.MaxRound
	if limit <= 0 {
		limit = DefaultMaxRound
	}

	dt := time.Second / time.Duration(opts.TPS)
	game := core.NewGame(core.Options{Seed: opts.Seed, Logger: logger, Strict: true})
	bot := ai.NewBot(opts.Bot, opts.Seed)

	var report Report
	for i := 0; i < opts.Rounds; i++ {
		res := playRound(game, bot, dt, limit)
		report.Rounds = append(report.Rounds, res)
		switch res.Outcome {
		case core.StateVictory:
			report.Victories++
		case core.StateGameOver:
			report.Defeats++
		default:
			report.Timeouts++
		}
		logger.Info("round finished", "round", res.Round, "outcome", res.Outcome, "duration", res.Duration)
	}
	return report, nil
}

// playRound 从当前界面确认进入新一局，推进到结算或超时
func playRound(game *core.Game, bot *ai.Bot, dt, limit time.Duration) RoundResult {
	game.Step(core.Input{Actions: core.NewActionSet(core.ActionConfirm)}, dt)
	res := RoundResult{Round: game.Round(), Outcome: core.StateInGame}

	// 只执行完整落在时限内的 tick
	for res.Duration+dt <= limit {
		step := game.Step(bot.Decide(game, dt), dt)
		res.Duration += dt
		res.Bombs += step.Count(core.EventBombPlaced)
		res.Kills += step.Count(core.EventEnemyKilled)

		if s := game.State(); s == core.StateVictory || s == core.StateGameOver {
			res.Outcome = s
			return res
		}
	}

	// 超时后经暂停菜单回到欢迎界面，下一局重新开始
	game.Step(core.Input{Actions: core.NewActionSet(core.ActionPause)}, dt)
	game.Step(core.Input{Actions: core.NewActionSet(core.ActionCancel)}, dt)
	return res
}
