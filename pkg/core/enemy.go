package core

import "time"

// spawnEnemy 生成敌人，初始方向随机
func (g *Game) spawnEnemy(pos GridPos) *Entity {
	e := &Entity{
		Kind:  KindEnemy,
		Pos:   pos,
		World: GridToWorld(pos),
		Dir:   g.randomDir(),
		Timer: NewTimer(EnemyMoveInterval, TimerRepeating),
	}
	g.store.Insert(e)
	return e
}

// randomDir 从四个基本方向中均匀随机选择一个
func (g *Game) randomDir() GridPos {
	return Cardinals[g.rng.IntN(len(Cardinals))]
}

// moveEnemies 敌人按计时器逐格移动
// 本 tick 计时器到点（无论到点几次）只尝试移动一次；被挡住时原地重新选方向
func (g *Game) moveEnemies(dt time.Duration) {
	for _, e := range g.store.OfKind(KindEnemy) {
		if e.Timer.Tick(dt) == 0 {
			continue
		}

		next := e.Pos.Add(e.Dir)
		if !InBounds(next) || g.store.Any(next, blocksEnemy...) {
			e.Dir = g.randomDir()
			continue
		}
		e.Pos = next
		e.World = GridToWorld(next)
	}
}

// killEnemy 移除敌人并发出事件
func (g *Game) killEnemy(e *Entity) {
	if g.store.Remove(e.ID) {
		g.emit(Event{Kind: EventEnemyKilled, Pos: e.Pos})
	}
}
