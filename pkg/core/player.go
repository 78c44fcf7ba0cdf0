package core

import "time"

// spawnPlayer 在出生点生成玩家
func (g *Game) spawnPlayer(pos GridPos) *Entity {
	p := &Entity{
		Kind:  KindPlayer,
		Pos:   pos,
		World: GridToWorld(pos),
		Speed: PlayerSpeed,
	}
	g.store.Insert(p)
	return p
}

// player 返回当前存活的玩家，不存在时返回 nil
func (g *Game) player() *Entity {
	players := g.store.OfKind(KindPlayer)
	if len(players) == 0 {
		return nil
	}
	return players[0]
}

// movePlayer 玩家连续移动
// 候选位置换算到格子后，如果该格子有墙体则整步作废
func (g *Game) movePlayer(in Input, dt time.Duration) {
	dir, ok := in.Direction()
	if !ok {
		return
	}
	p := g.player()
	if p == nil {
		return
	}

	// 格子坐标 y 向下，世界坐标 y 向上
	step := Vec2{X: float64(dir.X), Y: -float64(dir.Y)}.Mul(p.Speed * dt.Seconds() * CellSize)
	candidate := p.World.Add(step)
	tile := WorldToGrid(candidate)
	if !InBounds(tile) || g.store.Any(tile, blocksPlayer...) {
		return
	}

	p.World = candidate
	p.Pos = tile
}

// checkCollisions 玩家与敌人处于同一格子时玩家死亡
func (g *Game) checkCollisions() {
	p := g.player()
	if p == nil {
		return
	}
	if g.store.Any(p.Pos, KindEnemy) {
		g.killPlayer(p)
	}
}

// killPlayer 移除玩家并发出事件
func (g *Game) killPlayer(p *Entity) {
	if g.store.Remove(p.ID) {
		g.emit(Event{Kind: EventPlayerKilled, Pos: p.Pos})
	}
}
