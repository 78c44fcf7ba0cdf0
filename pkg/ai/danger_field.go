package ai

import "bomberman-classic/pkg/core"

// dangerFloor 炸弹刚放下时覆盖格子的最低危险等级
const dangerFloor = 0.05

// DangerField 危险场：记录每个格子的危险等级，0=安全，1=必死
type DangerField struct {
	Level [core.GridSize][core.GridSize]float64
}

// Update 根据炸弹引信与敌人位置重新计算危险场
// 已存在的火焰不会伤人，因此不计入
func (df *DangerField) Update(w World, snap core.Snapshot) {
	df.Level = [core.GridSize][core.GridSize]float64{}

	for _, b := range snap.Of(core.KindBomb) {
		level := 1 - float64(b.Remaining)/float64(core.BombTimer)
		if level < dangerFloor {
			level = dangerFloor
		}
		for _, tile := range w.BlastTiles(b.Grid, core.ExplosionRange) {
			df.raise(tile, level)
		}
	}

	for _, e := range snap.Of(core.KindEnemy) {
		df.raise(e.Grid, 1)
	}
}

func (df *DangerField) raise(p core.GridPos, level float64) {
	if !core.InBounds(p) {
		return
	}
	if level > df.Level[p.Y][p.X] {
		df.Level[p.Y][p.X] = level
	}
}

// At 返回格子的危险等级，地图外视为必死
func (df *DangerField) At(p core.GridPos) float64 {
	if !core.InBounds(p) {
		return 1
	}
	return df.Level[p.Y][p.X]
}

// InDanger 格子是否处于任何威胁之下
func (df *DangerField) InDanger(p core.GridPos) bool {
	return df.At(p) > 0
}
