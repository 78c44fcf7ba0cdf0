package client

import (
	"math"

	"bomberman-classic/pkg/core"
)

// 渲染平滑配置
const (
	// 敌人每 0.5 秒跳一格，渲染时每帧向目标靠拢的比例
	EnemySmoothFactor = 0.25

	// 渲染位置与实际位置相差超过该距离（世界坐标）时直接拉回
	SnapThreshold = core.CellSize * 1.5

	// 小于该距离视为静止
	moveEpsilon = 0.5

	// 行走动画每帧时长（秒）
	animFrameSeconds = 0.15
)

// actorTrack 一个角色的渲染状态
type actorTrack struct {
	pos       core.Vec2
	facing    core.GridPos
	moving    bool
	animTime  float64
	animFrame int
}

// Smoother 角色渲染插值：敌人在格子间平滑滑动，并推断朝向与行走动画
type Smoother struct {
	tracks map[core.EntityID]*actorTrack
}

// NewSmoother 创建插值器
func NewSmoother() *Smoother {
	return &Smoother{tracks: make(map[core.EntityID]*actorTrack)}
}

// Update 把渲染位置向快照位置靠拢，快照中消失的角色被清理
func (s *Smoother) Update(sprites []core.Sprite, dt float64) {
	seen := make(map[core.EntityID]bool, len(s.tracks))
	for _, sp := range sprites {
		if sp.Kind != core.KindPlayer && sp.Kind != core.KindEnemy {
			continue
		}
		seen[sp.ID] = true

		tr, ok := s.tracks[sp.ID]
		if !ok {
			s.tracks[sp.ID] = &actorTrack{pos: sp.World, facing: core.DirDown}
			continue
		}

		factor := 1.0
		if sp.Kind == core.KindEnemy {
			factor = EnemySmoothFactor
		}

		dx := sp.World.X - tr.pos.X
		dy := sp.World.Y - tr.pos.Y
		dist := math.Hypot(dx, dy)
		switch {
		case dist > SnapThreshold:
			tr.pos = sp.World
			tr.moving = false
		case dist > moveEpsilon:
			tr.pos = tr.pos.Add(core.Vec2{X: dx * factor, Y: dy * factor})
			tr.facing = facingOf(dx, dy)
			tr.moving = true
		default:
			tr.pos = sp.World
			tr.moving = false
		}
		tr.animate(dt)
	}

	for id := range s.tracks {
		if !seen[id] {
			delete(s.tracks, id)
		}
	}
}

// Position 角色的渲染位置，未跟踪的角色返回 false
func (s *Smoother) Position(id core.EntityID) (core.Vec2, bool) {
	tr, ok := s.tracks[id]
	if !ok {
		return core.Vec2{}, false
	}
	return tr.pos, true
}

func (s *Smoother) track(id core.EntityID) *actorTrack {
	return s.tracks[id]
}

// Reset 清空所有跟踪
func (s *Smoother) Reset() {
	clear(s.tracks)
}

// facingOf 世界坐标位移对应的格子朝向（世界 Y 轴向上，格子行号向下）
func facingOf(dx, dy float64) core.GridPos {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return core.DirRight
		}
		return core.DirLeft
	}
	if dy > 0 {
		return core.DirUp
	}
	return core.DirDown
}

// animate 更新行走动画
func (tr *actorTrack) animate(dt float64) {
	if !tr.moving {
		tr.animTime = 0
		tr.animFrame = 0
		return
	}
	tr.animTime += dt
	if tr.animTime >= animFrameSeconds {
		tr.animTime = 0
		tr.animFrame = (tr.animFrame + 1) % 2
	}
}
