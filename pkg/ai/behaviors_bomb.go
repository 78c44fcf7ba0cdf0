package ai

import (
	"bomberman-classic/pkg/ai/bt"
	"bomberman-classic/pkg/core"
)

// condMayBomb 按概率决定是否放炸弹；场上已有炸弹时不再放
func condMayBomb(bb *Blackboard) bool {
	if len(bb.Snap.Of(core.KindBomb)) > 0 || bb.hasBombAt(bb.Me) {
		return false
	}
	return bb.RNG.Float64() < bb.Config.BombChance
}

// actPreCheckEscape 放炸弹前确认两步之内存在爆炸范围外的安全格子
func actPreCheckEscape(bb *Blackboard) bt.Status {
	blast := make(map[core.GridPos]bool)
	for _, p := range bb.World.BlastTiles(bb.Me, core.ExplosionRange) {
		blast[p] = true
	}
	safe := func(p core.GridPos) bool {
		return bb.walkable(p) && !blast[p] && !bb.Danger.InDanger(p)
	}

	for _, d1 := range core.Cardinals {
		n := bb.Me.Add(d1)
		if !bb.walkable(n) {
			continue
		}
		if safe(n) {
			return bt.StatusSuccess
		}
		for _, d2 := range core.Cardinals {
			if m := n.Add(d2); m != bb.Me && safe(m) {
				return bt.StatusSuccess
			}
		}
	}
	return bt.StatusFailure
}

func actPlaceBomb(bb *Blackboard) bt.Status {
	bb.NextInput.Actions = bb.NextInput.Actions.With(core.ActionPlaceBomb)
	return bt.StatusSuccess
}
