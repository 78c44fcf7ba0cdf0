package core

import (
	"testing"
	"time"
)

const tick = 100 * time.Millisecond

func confirm() Input { return Input{Actions: NewActionSet(ActionConfirm)} }

func press(a Action) Input { return Input{Actions: NewActionSet(a)} }

// newTestGame 创建一局已开始的游戏（标准地图）
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(Options{Seed: 1, Strict: true})
	g.Step(confirm(), 0)
	if g.State() != StateInGame {
		t.Fatalf("state = %s, want in_game", g.State())
	}
	return g
}

// newArena 只有边框墙的空场地，玩家在 player，敌人静止不动
func newArena(t *testing.T, player GridPos, enemies ...GridPos) *Game {
	t.Helper()
	g := newTestGame(t)
	g.store.Clear()
	for i := 0; i < GridSize; i++ {
		for _, p := range []GridPos{{i, 0}, {i, GridSize - 1}, {0, i}, {GridSize - 1, i}} {
			if !g.store.Any(p, KindWall) {
				g.store.Insert(&Entity{Kind: KindWall, Pos: p, World: GridToWorld(p)})
			}
		}
	}
	g.spawnPlayer(player)
	for _, p := range enemies {
		staticEnemy(g, p)
	}
	return g
}

func staticEnemy(g *Game, p GridPos) *Entity {
	e := &Entity{
		Kind:  KindEnemy,
		Pos:   p,
		World: GridToWorld(p),
		Dir:   DirRight,
		Timer: NewTimer(time.Hour, TimerRepeating),
	}
	g.store.Insert(e)
	return e
}

func put(g *Game, kind Kind, p GridPos) *Entity {
	e := &Entity{Kind: kind, Pos: p, World: GridToWorld(p)}
	g.store.Insert(e)
	return e
}

func plantBomb(g *Game, p GridPos) *Entity {
	b := &Entity{
		Kind:  KindBomb,
		Pos:   p,
		World: GridToWorld(p),
		Timer: NewTimer(BombTimer, TimerOnce),
		Range: ExplosionRange,
	}
	g.store.Insert(b)
	return b
}

// run 连续推进 n 个 tick，返回所有事件
func run(g *Game, in Input, dt time.Duration, n int) []Event {
	var events []Event
	for i := 0; i < n; i++ {
		events = append(events, g.Step(in, dt).Events...)
	}
	return events
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func explosionTiles(g *Game) map[GridPos]int {
	tiles := make(map[GridPos]int)
	for _, e := range g.store.OfKind(KindExplosion) {
		tiles[e.Pos]++
	}
	return tiles
}
