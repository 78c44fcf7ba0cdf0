package core

import (
	"cmp"
	"slices"
	"time"
)

// Sprite 一个可渲染实体
type Sprite struct {
	ID    EntityID
	Kind  Kind
	World Vec2
	Grid  GridPos
	Frame int // 精灵图集中的帧索引
	Z     int // 绘制层级，越大越靠上

	Remaining time.Duration // 炸弹引信 / 火焰寿命剩余时长，其它实体为 0
}

// Snapshot 某一时刻的只读视图，供渲染、HUD 和机器人使用
type Snapshot struct {
	State      GameState
	Paused     bool
	Round      string
	Sprites    []Sprite // 按 Z、ID 排序
	PendingEnd *PendingEnd
}

// Snapshot 生成当前状态的快照
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:  g.state,
		Paused: g.paused,
		Round:  g.round,
	}
	if pe, ok := g.PendingEnd(); ok {
		snap.PendingEnd = &pe
	}

	entities := g.store.Query(func(*Entity) bool { return true })
	snap.Sprites = make([]Sprite, 0, len(entities))
	for _, e := range entities {
		s := Sprite{
			ID:    e.ID,
			Kind:  e.Kind,
			World: e.World,
			Grid:  e.Pos,
		}
		switch e.Kind {
		case KindPlayer:
			s.Frame, s.Z = FramePlayer, ZActor
		case KindEnemy:
			s.Frame, s.Z = FrameEnemy, ZActor
		case KindWall:
			s.Frame, s.Z = FrameWall, ZWall
		case KindBreakableWall:
			s.Frame, s.Z = FrameBreakableWall, ZWall
		case KindBomb:
			s.Frame, s.Z = bombFrame(e), ZBomb
		case KindExplosion:
			s.Frame, s.Z = FrameFire, ZExplosion
		}
		if e.Kind == KindBomb || e.Kind == KindExplosion {
			s.Remaining = e.Timer.Remaining()
		}
		snap.Sprites = append(snap.Sprites, s)
	}

	slices.SortStableFunc(snap.Sprites, func(a, b Sprite) int {
		if c := cmp.Compare(a.Z, b.Z); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return snap
}

// Of 返回快照中指定类型的精灵
func (s Snapshot) Of(kind Kind) []Sprite {
	var result []Sprite
	for _, sp := range s.Sprites {
		if sp.Kind == kind {
			result = append(result, sp)
		}
	}
	return result
}

// Player 返回玩家精灵
func (s Snapshot) Player() (Sprite, bool) {
	players := s.Of(KindPlayer)
	if len(players) == 0 {
		return Sprite{}, false
	}
	return players[0], true
}
