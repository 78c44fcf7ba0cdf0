package ai

import (
	"bomberman-classic/pkg/ai/bt"
	"bomberman-classic/pkg/core"
)

// actWander 随机游荡：方向可行时保持若干次思考，否则重新选择安全方向
func actWander(bb *Blackboard) bt.Status {
	if bb.WanderLeft > 0 && canWander(bb, bb.WanderDir) {
		bb.WanderLeft--
		bb.NextInput.Up, bb.NextInput.Down, bb.NextInput.Left, bb.NextInput.Right = directionKeys(bb.WanderDir)
		return bt.StatusRunning
	}

	dirs := safeDirections(bb)
	if len(dirs) == 0 {
		dirs = walkableDirections(bb)
	}
	if len(dirs) == 0 {
		// 完全被困，原地不动
		bb.WanderDir = core.GridPos{}
		bb.WanderLeft = 0
		return bt.StatusRunning
	}

	bb.WanderDir = dirs[bb.RNG.IntN(len(dirs))]
	bb.WanderLeft = bb.Config.WanderSteps
	bb.NextInput.Up, bb.NextInput.Down, bb.NextInput.Left, bb.NextInput.Right = directionKeys(bb.WanderDir)
	return bt.StatusRunning
}

// canWander 指定方向是否可以移动且安全
func canWander(bb *Blackboard, dir core.GridPos) bool {
	if dir == (core.GridPos{}) {
		return false
	}
	next := bb.Me.Add(dir)
	return bb.walkable(next) && !bb.Danger.InDanger(next)
}

func safeDirections(bb *Blackboard) []core.GridPos {
	result := make([]core.GridPos, 0, len(core.Cardinals))
	for _, dir := range core.Cardinals {
		if canWander(bb, dir) {
			result = append(result, dir)
		}
	}
	return result
}

// walkableDirections 可行走的方向（不考虑危险）
func walkableDirections(bb *Blackboard) []core.GridPos {
	result := make([]core.GridPos, 0, len(core.Cardinals))
	for _, dir := range core.Cardinals {
		if bb.walkable(bb.Me.Add(dir)) {
			result = append(result, dir)
		}
	}
	return result
}

// directionKeys 方向对应的四个方向键状态
func directionKeys(dir core.GridPos) (up, down, left, right bool) {
	in := inputToward(dir)
	return in.Up, in.Down, in.Left, in.Right
}
