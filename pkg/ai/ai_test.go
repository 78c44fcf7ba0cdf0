package ai

import (
	"testing"
	"time"

	"bomberman-classic/pkg/core"
)

// fakeWorld 只有边框墙的场地，可以手动摆放墙和精灵
type fakeWorld struct {
	tiles [core.GridSize][core.GridSize]core.TileType
	snap  core.Snapshot
}

func newFakeWorld(me core.GridPos) *fakeWorld {
	w := &fakeWorld{snap: core.Snapshot{State: core.StateInGame}}
	for i := 0; i < core.GridSize; i++ {
		w.tiles[0][i] = core.TileWall
		w.tiles[core.GridSize-1][i] = core.TileWall
		w.tiles[i][0] = core.TileWall
		w.tiles[i][core.GridSize-1] = core.TileWall
	}
	w.add(core.KindPlayer, me, 0)
	return w
}

func (w *fakeWorld) wall(ps ...core.GridPos) {
	for _, p := range ps {
		w.tiles[p.Y][p.X] = core.TileWall
	}
}

func (w *fakeWorld) add(kind core.Kind, p core.GridPos, remaining time.Duration) {
	w.snap.Sprites = append(w.snap.Sprites, core.Sprite{
		ID:        core.EntityID(len(w.snap.Sprites) + 1),
		Kind:      kind,
		Grid:      p,
		World:     core.GridToWorld(p),
		Remaining: remaining,
	})
}

func (w *fakeWorld) Snapshot() core.Snapshot { return w.snap }

func (w *fakeWorld) TileAt(p core.GridPos) core.TileType {
	if !core.InBounds(p) {
		return core.TileWall
	}
	return w.tiles[p.Y][p.X]
}

func (w *fakeWorld) BlastTiles(center core.GridPos, rng int) []core.GridPos {
	tiles := []core.GridPos{center}
	for _, dir := range core.Cardinals {
		for i := 1; i <= rng; i++ {
			p := center.Add(dir.Scale(i))
			if w.TileAt(p) == core.TileWall {
				break
			}
			tiles = append(tiles, p)
			if w.TileAt(p) == core.TileBrick {
				break
			}
		}
	}
	return tiles
}

func direction(t *testing.T, in core.Input) core.GridPos {
	t.Helper()
	dir, _ := in.Direction()
	return dir
}

func TestBotConfirmsOnEndScreens(t *testing.T) {
	for _, state := range []core.GameState{core.StateWelcome, core.StateVictory, core.StateGameOver} {
		w := newFakeWorld(core.GridPos{X: 5, Y: 5})
		w.snap.State = state

		in := NewBot(ConfigCalm, 1).Decide(w, 16*time.Millisecond)
		if !in.Actions.Has(core.ActionConfirm) {
			t.Errorf("%s: bot did not confirm", state)
		}

		quiet := ConfigCalm
		quiet.AutoConfirm = false
		if in := NewBot(quiet, 1).Decide(w, 16*time.Millisecond); !in.Actions.Empty() {
			t.Errorf("%s: bot acted with AutoConfirm off: %s", state, in.Actions)
		}
	}
}

func TestBotIdleWhilePaused(t *testing.T) {
	w := newFakeWorld(core.GridPos{X: 5, Y: 5})
	w.snap.Paused = true
	if in := NewBot(ConfigReckless, 1).Decide(w, time.Second); in != (core.Input{}) {
		t.Errorf("paused bot produced %+v", in)
	}
}

func TestBotFleesTowardCorner(t *testing.T) {
	me := core.GridPos{X: 5, Y: 5}
	for seed := uint64(0); seed < 20; seed++ {
		w := newFakeWorld(me)
		// 只有右和下两个出口，右侧是死胡同
		w.wall(core.GridPos{X: 4, Y: 5}, core.GridPos{X: 5, Y: 4}, core.GridPos{X: 6, Y: 4}, core.GridPos{X: 6, Y: 6})
		w.add(core.KindBomb, me, 2*time.Second)

		in := NewBot(ConfigCalm, seed).Decide(w, 16*time.Millisecond)
		if got := direction(t, in); got != core.DirDown {
			t.Fatalf("seed %d: fled %s, want down", seed, got)
		}
		if in.Actions.Has(core.ActionPlaceBomb) {
			t.Fatalf("seed %d: placed bomb while fleeing", seed)
		}
	}
}

func TestBotAvoidsEnemy(t *testing.T) {
	me := core.GridPos{X: 5, Y: 5}
	for seed := uint64(0); seed < 20; seed++ {
		w := newFakeWorld(me)
		w.wall(core.GridPos{X: 4, Y: 5}, core.GridPos{X: 5, Y: 4})
		w.add(core.KindEnemy, core.GridPos{X: 6, Y: 5}, 0)

		cfg := ConfigCalm
		cfg.BombChance = 0
		in := NewBot(cfg, seed).Decide(w, 16*time.Millisecond)
		if got := direction(t, in); got != core.DirDown {
			t.Fatalf("seed %d: moved %s, want down", seed, got)
		}
	}
}

func TestBotNeverWalksIntoWalls(t *testing.T) {
	w := newFakeWorld(core.GridPos{X: 1, Y: 1})
	cfg := ConfigReckless
	cfg.MistakeRate = 0
	bot := NewBot(cfg, 3)

	for i := 0; i < 200; i++ {
		in := bot.Decide(w, cfg.ThinkInterval)
		dir, ok := in.Direction()
		if !ok {
			continue
		}
		if dir != core.DirRight && dir != core.DirDown {
			t.Fatalf("step %d: bot walked %s into a wall", i, dir)
		}
	}
}

func TestBotHoldsInputBetweenThinks(t *testing.T) {
	w := newFakeWorld(core.GridPos{X: 5, Y: 5})
	cfg := ConfigCalm
	cfg.BombChance = 1
	bot := NewBot(cfg, 9)

	first := bot.Decide(w, cfg.ThinkInterval)
	if !first.Actions.Has(core.ActionPlaceBomb) {
		t.Fatalf("bot with BombChance 1 did not bomb: %+v", first)
	}
	held := bot.Decide(w, time.Millisecond)
	if !held.Actions.Empty() {
		t.Error("discrete action repeated between thinks")
	}
	if direction(t, held) != direction(t, first) {
		t.Errorf("direction changed between thinks: %s -> %s", direction(t, first), direction(t, held))
	}
}

func TestBotDeterministic(t *testing.T) {
	play := func() []core.Input {
		w := newFakeWorld(core.GridPos{X: 5, Y: 5})
		bot := NewBot(ConfigReckless, 77)
		var out []core.Input
		for i := 0; i < 50; i++ {
			out = append(out, bot.Decide(w, 50*time.Millisecond))
		}
		return out
	}
	a, b := play(), play()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDangerField(t *testing.T) {
	w := newFakeWorld(core.GridPos{X: 1, Y: 1})
	w.add(core.KindBomb, core.GridPos{X: 5, Y: 5}, core.BombTimer)
	w.add(core.KindBomb, core.GridPos{X: 7, Y: 5}, 500*time.Millisecond)
	w.add(core.KindEnemy, core.GridPos{X: 9, Y: 9}, 0)

	var df DangerField
	df.Update(w, w.snap)

	if got := df.At(core.GridPos{X: 5, Y: 7}); got != dangerFloor {
		t.Errorf("fresh bomb danger = %v, want %v", got, dangerFloor)
	}
	if got := df.At(core.GridPos{X: 6, Y: 5}); got < 0.8 {
		t.Errorf("overlapping tile danger = %v, want the later bomb's level", got)
	}
	if df.At(core.GridPos{X: 9, Y: 9}) != 1 {
		t.Error("enemy tile not deadly")
	}
	if df.InDanger(core.GridPos{X: 2, Y: 2}) {
		t.Error("open tile marked dangerous")
	}
	if df.At(core.GridPos{X: -1, Y: 0}) != 1 {
		t.Error("outside tile not deadly")
	}
}

func TestBotDrivesRealGame(t *testing.T) {
	g := core.NewGame(core.Options{Seed: 5, Strict: true})
	bot := NewBot(ConfigReckless, 5)
	dt := 50 * time.Millisecond

	rounds := 0
	for i := 0; i < 3000; i++ {
		res := g.Step(bot.Decide(g, dt), dt)
		for _, e := range res.Events {
			if e.Kind == core.EventStateChanged && e.To == core.StateInGame {
				rounds++
			}
		}
	}
	if rounds == 0 {
		t.Fatal("bot never started a round")
	}
	if err := g.CheckInvariants(); err != nil {
		t.Fatal(err)
	}
}

func TestPreset(t *testing.T) {
	if cfg, ok := Preset("reckless"); !ok || cfg.BombChance != ConfigReckless.BombChance {
		t.Errorf("Preset(reckless) = %+v, %v", cfg, ok)
	}
	if _, ok := Preset("calm"); !ok {
		t.Error("calm preset missing")
	}
	if _, ok := Preset("suicidal"); ok {
		t.Error("unknown preset accepted")
	}
}
