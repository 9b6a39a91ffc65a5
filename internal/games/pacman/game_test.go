package pacman

import (
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

func TestStartTapBeginsPlay(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	if g.player != g.maze.playerStart {
		t.Fatalf("player at %v, want %v", g.player, g.maze.playerStart)
	}
	if g.lives != g.cfg.Lives {
		t.Fatalf("lives = %d, want %d", g.lives, g.cfg.Lives)
	}
	if len(g.ghosts) != 2 {
		t.Fatalf("ghosts = %d, want 2", len(g.ghosts))
	}
}

func TestStepEatsPelletAndScores(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.wantDir = DirLeft
	g.stepPlayer()

	want := Point{g.maze.playerStart.X - 1, g.maze.playerStart.Y}
	if g.player != want {
		t.Fatalf("player at %v, want %v", g.player, want)
	}
	if g.score != pelletPoints {
		t.Fatalf("score = %d, want %d", g.score, pelletPoints)
	}
}

func TestBlockedPlayerStays(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.wantDir = DirDown // the bottom border wall
	g.stepPlayer()
	if g.player != g.maze.playerStart {
		t.Fatalf("player moved into a wall: %v", g.player)
	}
}

func TestPowerPelletFrightensGhosts(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.player = Point{1, 1}
	g.wantDir = DirDown // onto the power pellet at (1,2)
	g.stepPlayer()

	if g.fright <= 0 {
		t.Fatal("fright timer not started")
	}
	for i := range g.ghosts {
		if !g.ghosts[i].Fright {
			t.Fatalf("ghost %d not frightened", i)
		}
	}
	if g.score != powerPoints {
		t.Fatalf("score = %d, want %d", g.score, powerPoints)
	}
}

func TestFrightExpires(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.fright = 0.05
	for i := range g.ghosts {
		g.ghosts[i].Fright = true
	}
	g.step(0.1)

	if g.fright > 0 {
		t.Fatal("fright timer still running")
	}
	for i := range g.ghosts {
		if g.ghosts[i].Fright {
			t.Fatalf("ghost %d still frightened", i)
		}
	}
}

func TestFrightenedGhostIsEaten(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.ghosts[0].Fright = true
	g.ghosts[0].Pos = g.player
	g.caught(0)

	if g.score != ghostPoints {
		t.Fatalf("score = %d, want %d", g.score, ghostPoints)
	}
	if g.ghosts[0].Pos != g.ghosts[0].Home {
		t.Fatalf("eaten ghost at %v, want home %v", g.ghosts[0].Pos, g.ghosts[0].Home)
	}
	if g.ghosts[0].Fright {
		t.Fatal("eaten ghost still frightened")
	}
	if g.lives != g.cfg.Lives {
		t.Fatal("eating a ghost cost a life")
	}
}

func TestCaughtLosesLifeAndResets(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.player = Point{1, 3}
	g.caught(0)

	if g.lives != g.cfg.Lives-1 {
		t.Fatalf("lives = %d, want %d", g.lives, g.cfg.Lives-1)
	}
	if g.freeze <= 0 {
		t.Fatal("no freeze after losing a life")
	}
	if g.player != g.maze.playerStart {
		t.Fatalf("player not reset: %v", g.player)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.lives = 1
	g.score = 33
	g.caught(0)

	if g.phase != phaseGameOver {
		t.Fatalf("phase = %d, want game over", g.phase)
	}
	if g.best != 33 {
		t.Fatalf("best = %d, want 33", g.best)
	}
}

func TestGhostsNeverEnterWalls(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	for n := 0; n < 500; n++ {
		g.stepGhosts()
		if g.phase != phasePlaying {
			startPlaying(t, g)
		}
		for i := range g.ghosts {
			if !g.maze.Walkable(g.ghosts[i].Pos) {
				t.Fatalf("ghost %d inside a wall at %v", i, g.ghosts[i].Pos)
			}
		}
	}
}

func TestClearingBoardAdvancesLevel(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	// Leave exactly one pellet, directly left of the player.
	last := Point{g.maze.playerStart.X - 1, g.maze.playerStart.Y}
	for y := 0; y < mazeH; y++ {
		for x := 0; x < mazeW; x++ {
			p := Point{x, y}
			if p != last {
				g.maze.Eat(p)
			}
		}
	}
	g.wantDir = DirLeft
	g.stepPlayer()

	if g.level != 2 {
		t.Fatalf("level = %d, want 2", g.level)
	}
	if g.maze.Pellets() == 0 {
		t.Fatal("new level spawned no pellets")
	}
	if g.player != g.maze.playerStart {
		t.Fatal("positions not reset for the new level")
	}
}

func TestWarpTunnelCarriesPlayerAcross(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.player = Point{0, g.maze.warpRow}
	g.dir = DirLeft
	g.wantDir = DirLeft
	g.stepPlayer()

	if g.player != (Point{mazeW - 1, g.maze.warpRow}) {
		t.Fatalf("player at %v, want the far side of the warp row", g.player)
	}
}

func TestCameraClampsToBoard(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	maxY := float64(mazeH*tileSize - viewH)
	if g.cam.Y < 0 || g.cam.Y > maxY {
		t.Fatalf("camera y = %v outside [0, %v]", g.cam.Y, maxY)
	}

	g.player = Point{7, 1}
	g.followPlayer()
	g.cam.Update(10) // plenty of time to converge
	g.cam.ClampToWorld(mazeW*tileSize, mazeH*tileSize, viewW, viewH)
	if g.cam.Y != 0 {
		t.Fatalf("camera y = %v, want 0 at the top of the board", g.cam.Y)
	}
}

func TestTickRendersEveryPhase(t *testing.T) {
	g := newTestGame(t)
	for _, enter := range []func(){func() {}, g.enterPlaying, g.enterGameOver} {
		enter()
		g.Tick()
		some := false
		for _, c := range g.fb.Snapshot() {
			if c == engine.FG {
				some = true
				break
			}
		}
		if !some {
			t.Fatalf("phase %d rendered a blank frame", g.phase)
		}
	}
}

func TestCleanupIsIdempotent(t *testing.T) {
	g := newTestGame(t)
	g.Tick()
	g.Cleanup()
	g.Cleanup()
}
