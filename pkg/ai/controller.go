// Package ai 随机游走的自动驾驶机器人，会躲避即将爆炸的炸弹和敌人
package ai

import (
	"math/rand/v2"
	"time"

	"bomberman-classic/pkg/ai/bt"
	"bomberman-classic/pkg/core"
)

// Bot 代替玩家产生输入
type Bot struct {
	rng    *rand.Rand
	config *Config

	untilThink  time.Duration
	cachedInput core.Input

	lastInDanger bool
	lastBombs    int

	blackboard Blackboard
	tree       bt.Node[*Blackboard]
	danger     DangerField
}

// NewBot 创建机器人，相同种子与相同观察得到相同输入
func NewBot(config Config, seed uint64) *Bot {
	rng := rand.New(rand.NewPCG(seed, seed+1))

	b := &Bot{
		rng:    rng,
		config: &config,
	}
	b.blackboard = Blackboard{
		RNG:    rng,
		Danger: &b.danger,
		Config: b.config,
	}

	type node = bt.Node[*Blackboard]
	b.tree = &bt.Selector[*Blackboard]{Children: []node{
		&bt.Sequence[*Blackboard]{Children: []node{
			&bt.Condition[*Blackboard]{Check: condInDanger},
			&bt.Action[*Blackboard]{Do: actFlee},
		}},
		&bt.Sequence[*Blackboard]{Children: []node{
			&bt.Condition[*Blackboard]{Check: condMayBomb},
			&bt.Action[*Blackboard]{Do: actPreCheckEscape},
			&bt.Action[*Blackboard]{Do: actPlaceBomb},
			&bt.Action[*Blackboard]{Do: actWander},
		}},
		&bt.Action[*Blackboard]{Do: actWander},
	}}
	return b
}

// Decide 根据当前局面产生本 tick 的输入
func (b *Bot) Decide(w World, dt time.Duration) core.Input {
	snap := w.Snapshot()

	switch snap.State {
	case core.StateWelcome, core.StateVictory, core.StateGameOver:
		b.cachedInput = core.Input{}
		b.untilThink = 0
		if b.config.AutoConfirm {
			return core.Input{Actions: core.NewActionSet(core.ActionConfirm)}
		}
		return core.Input{}
	}
	if snap.Paused {
		return core.Input{}
	}

	me, ok := snap.Player()
	if !ok {
		return core.Input{}
	}

	b.danger.Update(w, snap)

	// 刚陷入危险或炸弹数量变化时立即重新思考
	bombs := len(snap.Of(core.KindBomb))
	inDanger := b.danger.InDanger(me.Grid)
	force := (inDanger && !b.lastInDanger) || bombs != b.lastBombs
	b.lastInDanger = inDanger
	b.lastBombs = bombs

	b.untilThink -= dt
	if !force && b.untilThink > 0 {
		held := b.cachedInput
		held.Actions = 0 // 离散动作只触发一次
		return held
	}
	b.untilThink = b.config.ThinkInterval

	b.blackboard.ResetThink(w, snap, me.Grid)
	_ = b.tree.Tick(&b.blackboard)

	if b.config.MistakeRate > 0 && b.rng.Float64() < b.config.MistakeRate {
		switch b.rng.IntN(2) {
		case 0:
			b.blackboard.NextInput = core.Input{}
		case 1:
			b.blackboard.NextInput = inputToward(core.Cardinals[b.rng.IntN(len(core.Cardinals))])
		}
	}

	b.cachedInput = b.blackboard.NextInput
	return b.cachedInput
}

// Config 当前配置
func (b *Bot) Config() Config {
	return *b.config
}
