package core

import (
	"math"
	"testing"
	"time"
)

func TestInputDirection(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want GridPos
		ok   bool
	}{
		{"none", Input{}, GridPos{}, false},
		{"up", Input{Up: true}, DirUp, true},
		{"up beats down", Input{Up: true, Down: true}, DirUp, true},
		{"vertical beats horizontal", Input{Down: true, Right: true}, DirDown, true},
		{"left beats right", Input{Left: true, Right: true}, DirLeft, true},
		{"right", Input{Right: true}, DirRight, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Direction()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Direction() = %s, %v, want %s, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPlayerMovesRightThenHitsWall(t *testing.T) {
	g := newTestGame(t)
	dt := 200 * time.Millisecond

	g.Step(Input{Right: true}, dt)
	p := g.player()
	if p.Pos != (GridPos{2, 1}) {
		t.Fatalf("after moving right player at %s, want (2,1)", p.Pos)
	}
	if math.Abs(p.World.X-(-264)) > 1e-9 || p.World.Y != 300 {
		t.Fatalf("world = %v, want (-264, 300)", p.World)
	}

	// 上方是边框墙
	pos, world := p.Pos, p.World
	g.Step(Input{Up: true}, dt)
	if p.Pos != pos || p.World != world {
		t.Errorf("moved into wall: %s %v", p.Pos, p.World)
	}
}

func TestPlayerBlockedByBreakableWall(t *testing.T) {
	g := newArena(t, GridPos{5, 5}, GridPos{10, 10})
	put(g, KindBreakableWall, GridPos{5, 4})

	g.Step(Input{Up: true}, 200*time.Millisecond)
	if p := g.player(); p.Pos != (GridPos{5, 5}) || p.World != GridToWorld(GridPos{5, 5}) {
		t.Errorf("player moved into breakable wall: %s", p.Pos)
	}
}

func TestPlayerSmallStepsStayOnTile(t *testing.T) {
	g := newArena(t, GridPos{5, 5}, GridPos{10, 10})

	g.Step(Input{Down: true}, 50*time.Millisecond)
	p := g.player()
	if p.Pos != (GridPos{5, 5}) {
		t.Fatalf("player at %s, want (5,5)", p.Pos)
	}
	if p.World.Y >= GridToWorld(GridPos{5, 5}).Y {
		t.Errorf("moving down should decrease world y, got %v", p.World)
	}
}

func TestEnemyMovesOnTimer(t *testing.T) {
	g := newArena(t, GridPos{1, 1})
	e := g.spawnEnemy(GridPos{5, 5})
	e.Dir = DirRight

	g.Step(Input{}, 400*time.Millisecond)
	if e.Pos != (GridPos{5, 5}) {
		t.Fatalf("enemy moved before interval: %s", e.Pos)
	}
	g.Step(Input{}, 100*time.Millisecond)
	if e.Pos != (GridPos{6, 5}) || e.World != GridToWorld(GridPos{6, 5}) {
		t.Fatalf("enemy at %s, want (6,5)", e.Pos)
	}

	// 一次 tick 跨越多个周期也只移动一格
	g.Step(Input{}, 1200*time.Millisecond)
	if e.Pos != (GridPos{7, 5}) {
		t.Errorf("enemy at %s, want (7,5)", e.Pos)
	}
}

func TestEnemyBlockedRerolls(t *testing.T) {
	for _, blocker := range []Kind{KindWall, KindBreakableWall, KindBomb} {
		t.Run(blocker.String(), func(t *testing.T) {
			g := newArena(t, GridPos{1, 1})
			e := g.spawnEnemy(GridPos{5, 5})
			e.Dir = DirRight
			if blocker == KindBomb {
				plantBomb(g, GridPos{6, 5})
			} else {
				put(g, blocker, GridPos{6, 5})
			}

			g.Step(Input{}, EnemyMoveInterval)
			if e.Pos != (GridPos{5, 5}) {
				t.Fatalf("enemy moved through %s to %s", blocker, e.Pos)
			}
			valid := false
			for _, d := range Cardinals {
				if e.Dir == d {
					valid = true
				}
			}
			if !valid {
				t.Errorf("rerolled direction %s is not cardinal", e.Dir)
			}
		})
	}
}

func TestEnemyCollisionKillsOnlyPlayer(t *testing.T) {
	g := newArena(t, GridPos{5, 5})
	e := g.spawnEnemy(GridPos{6, 5})
	e.Dir = DirLeft

	res := g.Step(Input{}, EnemyMoveInterval)
	if !res.Has(EventPlayerKilled) {
		t.Fatal("player survived enemy contact")
	}
	if g.player() != nil {
		t.Error("player still present")
	}
	if g.store.Count(KindEnemy) != 1 {
		t.Error("enemy removed by contact")
	}
}

func TestPlayerWalksIntoEnemy(t *testing.T) {
	g := newArena(t, GridPos{5, 5}, GridPos{6, 5})

	res := g.Step(Input{Right: true}, 200*time.Millisecond)
	if !res.Has(EventPlayerKilled) {
		t.Error("player survived walking into enemy")
	}
}
