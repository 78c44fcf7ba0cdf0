package ai

import (
	"bomberman-classic/pkg/ai/bt"
	"bomberman-classic/pkg/core"
)

func condInDanger(bb *Blackboard) bool {
	return bb.Danger.InDanger(bb.Me)
}

// actFlee 朝危险最低的相邻格子移动，并列时随机选择
func actFlee(bb *Blackboard) bt.Status {
	var best []core.GridPos
	bestScore := 0.0
	for _, dir := range core.Cardinals {
		next := bb.Me.Add(dir)
		if !bb.walkable(next) {
			continue
		}
		score := fleeScore(bb, next)
		switch {
		case len(best) == 0 || score < bestScore:
			best = []core.GridPos{dir}
			bestScore = score
		case score == bestScore:
			best = append(best, dir)
		}
	}
	if len(best) == 0 {
		return bt.StatusFailure
	}

	dir := best[bb.RNG.IntN(len(best))]
	bb.NextInput = inputToward(dir)
	bb.WanderDir = dir
	bb.WanderLeft = 1
	return bt.StatusRunning
}

// fleeScore 相邻格子本身的危险，加上从它拐弯后是否还有安全格子
func fleeScore(bb *Blackboard, p core.GridPos) float64 {
	level := bb.Danger.At(p)
	if level == 0 {
		return 0
	}
	for _, dir := range core.Cardinals {
		n := p.Add(dir)
		if n != bb.Me && bb.walkable(n) && !bb.Danger.InDanger(n) {
			return level
		}
	}
	return level + 1
}
