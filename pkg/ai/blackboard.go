package ai

import (
	"math/rand/v2"

	"bomberman-classic/pkg/core"
)

// World 机器人可以观察到的游戏信息，*core.Game 实现了该接口
type World interface {
	Snapshot() core.Snapshot
	TileAt(p core.GridPos) core.TileType
	BlastTiles(center core.GridPos, rng int) []core.GridPos
}

// Blackboard 行为树共享数据
type Blackboard struct {
	World  World
	Snap   core.Snapshot
	Me     core.GridPos
	RNG    *rand.Rand
	Danger *DangerField
	Config *Config

	NextInput core.Input

	// 游荡方向跨思考保持，减少抖动
	WanderDir  core.GridPos
	WanderLeft int
}

// ResetThink 每次思考前刷新观察结果
func (bb *Blackboard) ResetThink(w World, snap core.Snapshot, me core.GridPos) {
	bb.World = w
	bb.Snap = snap
	bb.Me = me
	bb.NextInput = core.Input{}
}

// walkable 玩家能否进入格子（炸弹不阻挡玩家）
func (bb *Blackboard) walkable(p core.GridPos) bool {
	return core.InBounds(p) && bb.World.TileAt(p) == core.TileEmpty
}

// hasBombAt 格子上是否已有炸弹
func (bb *Blackboard) hasBombAt(p core.GridPos) bool {
	for _, b := range bb.Snap.Of(core.KindBomb) {
		if b.Grid == p {
			return true
		}
	}
	return false
}

// inputToward 把方向转换成输入
func inputToward(dir core.GridPos) core.Input {
	switch dir {
	case core.DirUp:
		return core.Input{Up: true}
	case core.DirDown:
		return core.Input{Down: true}
	case core.DirLeft:
		return core.Input{Left: true}
	case core.DirRight:
		return core.Input{Right: true}
	}
	return core.Input{}
}
