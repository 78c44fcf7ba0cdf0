package core

import "time"

// blastOffsets 爆炸扩散方向，顺序固定
// 中心方向 (0,0) 与四个方向一样从 i=0 走到 range，中心格子因此会被多次覆盖
var blastOffsets = [...]GridPos{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// detonate 以 center 为中心执行爆炸扩散
//
// 每个方向从 i=0 走到 rng（含）：
//   - 不可破坏墙：该方向立即停止，不生成火焰
//   - 其余情况先生成火焰
//   - 可破坏墙：移除，并在本步之后停止该方向
//   - 格子上的所有敌人和玩家被移除
//
// 每种实体在一个格子上至多一个（墙、玩家），敌人可以重叠，因此敌人全部处理
func (g *Game) detonate(center GridPos, rng int) {
	for _, dir := range blastOffsets {
		for i := 0; i <= rng; i++ {
			tile := center.Add(dir.Scale(i))
			if !InBounds(tile) || g.store.Any(tile, KindWall) {
				break
			}

			g.spawnExplosion(tile)

			bricks := g.store.At(tile, KindBreakableWall)
			for _, w := range bricks {
				g.store.Remove(w.ID)
			}
			for _, e := range g.store.At(tile, KindEnemy) {
				g.killEnemy(e)
			}
			for _, p := range g.store.At(tile, KindPlayer) {
				g.killPlayer(p)
			}

			if len(bricks) > 0 {
				break
			}
		}
	}
}

// BlastTiles 预测在当前地图下以 center 为中心引爆会覆盖的格子（去重，不修改状态）
func (g *Game) BlastTiles(center GridPos, rng int) []GridPos {
	seen := make(map[GridPos]bool)
	var tiles []GridPos
	for _, dir := range blastOffsets {
		for i := 0; i <= rng; i++ {
			tile := center.Add(dir.Scale(i))
			if !InBounds(tile) || g.store.Any(tile, KindWall) {
				break
			}
			if !seen[tile] {
				seen[tile] = true
				tiles = append(tiles, tile)
			}
			if g.store.Any(tile, KindBreakableWall) {
				break
			}
		}
	}
	return tiles
}

// spawnExplosion 在格子上生成一个火焰
func (g *Game) spawnExplosion(pos GridPos) {
	g.store.Insert(&Entity{
		Kind:  KindExplosion,
		Pos:   pos,
		World: GridToWorld(pos),
		Timer: NewTimer(ExplosionDuration, TimerOnce),
	})
}

// tickExplosions 推进火焰寿命，到点移除
func (g *Game) tickExplosions(dt time.Duration) {
	for _, e := range g.store.OfKind(KindExplosion) {
		if e.Timer.Tick(dt) > 0 {
			g.store.Remove(e.ID)
		}
	}
}
