package asteroids

import (
	"math"
	"testing"

	"merlinpad/internal/device"
	"merlinpad/internal/engine"
	"merlinpad/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(device.NullContext())
	g.NewGame()
	return g
}

func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.handleEvent(engine.Event{Kind: engine.EventTap, Key: registry.KeyStart})
	if g.phase != phasePlaying {
		t.Fatalf("phase = %d, want playing", g.phase)
	}
}

func TestWrapF(t *testing.T) {
	tests := []struct {
		v, size, want float64
	}{
		{5, 128, 5},
		{-1, 128, 127},
		{128, 128, 0},
		{130, 128, 2},
		{-130, 128, 126},
	}
	for _, tt := range tests {
		if got := wrapF(tt.v, tt.size); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrapF(%v, %v) = %v, want %v", tt.v, tt.size, got, tt.want)
		}
	}
}

func TestTorusDistTakesShortWayAround(t *testing.T) {
	// 2 px off the left edge to 2 px off the right edge is 4, not 124.
	if d := torusDist(2, 10, 126, 10); math.Abs(d-4) > 1e-9 {
		t.Fatalf("torusDist = %v, want 4", d)
	}
	if d := torusDist(10, 2, 10, 62); math.Abs(d-4) > 1e-9 {
		t.Fatalf("vertical torusDist = %v, want 4", d)
	}
}

func TestWaveSpawnsAwayFromShip(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	if len(g.rocks) != g.cfg.StartRocks {
		t.Fatalf("rocks = %d, want %d", len(g.rocks), g.cfg.StartRocks)
	}
	for i := range g.rocks {
		r := &g.rocks[i]
		if d := torusDist(r.X, r.Y, g.ship.X, g.ship.Y); d <= 24 {
			t.Errorf("rock %d spawned %v px from ship", i, d)
		}
	}
}

func TestBulletSplitsBigRock(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.rocks = []Rock{{X: 30, Y: 30, Size: 0}}
	g.bullets = []Bullet{{X: 30, Y: 30, Life: 1}}
	g.collideBulletsRocks()

	if len(g.bullets) != 0 {
		t.Fatalf("bullet survived the hit")
	}
	if len(g.rocks) != 2 {
		t.Fatalf("rocks = %d, want 2 after split", len(g.rocks))
	}
	for i := range g.rocks {
		if g.rocks[i].Size != 1 {
			t.Errorf("rock %d size = %d, want 1", i, g.rocks[i].Size)
		}
	}
	if g.score != rockScore[0] {
		t.Fatalf("score = %d, want %d", g.score, rockScore[0])
	}
}

func TestSmallRockVanishes(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.rocks = []Rock{{X: 30, Y: 30, Size: 2}}
	g.bullets = []Bullet{{X: 30, Y: 30, Life: 1}}
	g.collideBulletsRocks()

	if len(g.rocks) != 0 {
		t.Fatalf("rocks = %d, want 0", len(g.rocks))
	}
}

func TestFireRateLimited(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	g.rocks = []Rock{{X: 100, Y: 10, Size: 0}} // out of the way
	g.held[registry.KeyFire] = true

	g.step(0.01)
	g.step(0.01) // still inside the fire delay
	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, want 1 within the fire delay", len(g.bullets))
	}
	g.step(g.cfg.FireDelay)
	if len(g.bullets) != 2 {
		t.Fatalf("bullets = %d, want 2 after the delay elapsed", len(g.bullets))
	}
}

func TestInvulnerabilityProtectsAfterRespawn(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.rocks = []Rock{{X: g.ship.X, Y: g.ship.Y, Size: 0}}
	g.collideShipRocks() // fresh spawn is still invulnerable
	if !g.ship.Alive {
		t.Fatal("ship died during the invulnerability window")
	}
	g.invuln = 0
	g.collideShipRocks()
	if g.ship.Alive {
		t.Fatal("ship survived a direct hit without invulnerability")
	}
	if g.lives != g.cfg.Lives-1 {
		t.Fatalf("lives = %d, want %d", g.lives, g.cfg.Lives-1)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.lives = 1
	g.invuln = 0
	g.score = 17
	g.rocks = []Rock{{X: g.ship.X, Y: g.ship.Y, Size: 0}}
	g.collideShipRocks()

	if g.phase != phaseGameOver {
		t.Fatalf("phase = %d, want game over", g.phase)
	}
	if g.best != 17 {
		t.Fatalf("best = %d, want 17", g.best)
	}
}

func TestHyperspaceStaysInWorld(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	g.ship.VX, g.ship.VY = 50, 50

	for i := 0; i < 20; i++ {
		g.hyperspace()
		if g.ship.X < 0 || g.ship.X >= worldW || g.ship.Y < 0 || g.ship.Y >= worldH {
			t.Fatalf("hyperspace left the world: (%v, %v)", g.ship.X, g.ship.Y)
		}
	}
	if g.ship.VX != 0 || g.ship.VY != 0 {
		t.Fatal("hyperspace kept momentum")
	}
	if g.invuln <= 0 {
		t.Fatal("hyperspace granted no safety window")
	}
}

func TestShipFrameInRange(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	for a := -10.0; a < 10; a += 0.1 {
		g.ship.Angle = a
		f := g.shipFrame()
		if f < 0 || f >= g.shipAtlas.Frames() {
			t.Fatalf("angle %v mapped to frame %d of %d", a, f, g.shipAtlas.Frames())
		}
	}
}

func TestShipStraddlingEdgeDrawsBothSides(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.rocks = []Rock{{X: 100, Y: 10, Size: 2}}
	g.bullets = nil
	g.ship.X, g.ship.Y = 0, 32
	g.invuln = 0
	g.renderPlaying()

	// Scan only the ship's band so the HUD and the parked rock cannot
	// satisfy the check.
	left, right := false, false
	for y := 20; y < 45; y++ {
		for x := 0; x < shipSize; x++ {
			if g.fb.Pixel(x, y) == engine.FG {
				left = true
			}
			if g.fb.Pixel(worldW-1-x, y) == engine.FG {
				right = true
			}
		}
	}
	if !left || !right {
		t.Fatalf("edge ship visible left=%v right=%v, want both", left, right)
	}
}

func TestWaveClearSpawnsNextWave(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	wave := g.wave
	g.rocks = nil
	g.step(0.016)
	if g.wave != wave+1 {
		t.Fatalf("wave = %d, want %d", g.wave, wave+1)
	}
	if len(g.rocks) == 0 {
		t.Fatal("next wave spawned no rocks")
	}
}

func TestBulletsExpire(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	g.bullets = []Bullet{{X: 10, Y: 10, VX: 1, Life: 0.05}}
	g.moveBullets(0.1)
	if len(g.bullets) != 0 {
		t.Fatalf("bullets = %d, want 0 after lifetime", len(g.bullets))
	}
}

func TestCleanupIsIdempotent(t *testing.T) {
	g := newTestGame(t)
	g.Tick()
	g.Cleanup()
	g.Cleanup()
}
