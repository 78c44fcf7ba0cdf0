package core

import "time"

// placeBomb 在玩家所在格子放置炸弹
// 没有玩家、暂停中或格子上已有炸弹时静默忽略
func (g *Game) placeBomb() {
	if g.state != StateInGame || g.paused {
		return
	}
	p := g.player()
	if p == nil {
		return
	}
	if g.store.Any(p.Pos, KindBomb) {
		g.logger.Debug("bomb rejected, tile occupied", "pos", p.Pos)
		return
	}

	g.store.Insert(&Entity{
		Kind:  KindBomb,
		Pos:   p.Pos,
		World: GridToWorld(p.Pos),
		Timer: NewTimer(BombTimer, TimerOnce),
		Range: ExplosionRange,
	})
	g.emit(Event{Kind: EventBombPlaced, Pos: p.Pos})
}

// tickBombs 推进炸弹引信，到点的炸弹移除并立即引爆
func (g *Game) tickBombs(dt time.Duration) {
	for _, b := range g.store.OfKind(KindBomb) {
		if b.Timer.Tick(dt) == 0 {
			continue
		}
		if !g.store.Remove(b.ID) {
			continue
		}
		g.emit(Event{Kind: EventBombExploded, Pos: b.Pos})
		g.detonate(b.Pos, b.Range)
	}
}

// bombFrame 按引信进度选择炸弹动画帧
func bombFrame(b *Entity) int {
	if b.Timer == nil {
		return 0
	}
	frame := int(b.Timer.Progress() * BombFrames)
	if frame >= BombFrames {
		frame = BombFrames - 1
	}
	return frame
}
