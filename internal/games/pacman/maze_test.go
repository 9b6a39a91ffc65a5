package pacman

import "testing"

func TestMazeParses(t *testing.T) {
	m := NewMaze()

	if m.Pellets() == 0 {
		t.Fatal("maze has no pellets")
	}
	if m.playerStart == (Point{}) {
		t.Fatal("no player start parsed")
	}
	if len(m.ghostStarts) != 2 {
		t.Fatalf("ghost starts = %d, want 2", len(m.ghostStarts))
	}
	// The warp row must be open at both edges.
	if !m.Walkable(Point{0, m.warpRow}) || !m.Walkable(Point{mazeW - 1, m.warpRow}) {
		t.Fatal("warp row is not open at the edges")
	}
}

func TestMazeBorderIsSealedOutsideWarpRow(t *testing.T) {
	m := NewMaze()
	for y := 0; y < mazeH; y++ {
		if y == m.warpRow {
			continue
		}
		if m.Walkable(Point{0, y}) || m.Walkable(Point{mazeW - 1, y}) {
			t.Fatalf("row %d leaks through the border", y)
		}
	}
}

func TestWrapOnlyOnWarpRow(t *testing.T) {
	m := NewMaze()
	tests := []struct {
		in, want Point
	}{
		{Point{-1, 6}, Point{mazeW - 1, 6}},
		{Point{mazeW, 6}, Point{0, 6}},
		{Point{-1, 3}, Point{-1, 3}},
		{Point{5, 6}, Point{5, 6}},
	}
	for _, tt := range tests {
		if got := m.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutOfRangeReadsAsWall(t *testing.T) {
	m := NewMaze()
	for _, p := range []Point{{-1, 0}, {0, -1}, {mazeW, 0}, {0, mazeH}} {
		if m.At(p) != TileWall {
			t.Errorf("At(%v) = %v, want wall", p, m.At(p))
		}
	}
}

func TestEatConsumesOnce(t *testing.T) {
	m := NewMaze()
	before := m.Pellets()

	p := Point{1, 1} // a pellet in the top corridor
	if got := m.Eat(p); got != TilePellet {
		t.Fatalf("Eat = %v, want pellet", got)
	}
	if m.Pellets() != before-1 {
		t.Fatalf("pellets = %d, want %d", m.Pellets(), before-1)
	}
	if got := m.Eat(p); got != TileEmpty {
		t.Fatalf("second Eat = %v, want empty", got)
	}
	if m.Pellets() != before-1 {
		t.Fatal("second Eat changed the pellet count")
	}
}

func TestPowerPelletsParsed(t *testing.T) {
	m := NewMaze()
	if m.At(Point{1, 2}) != TilePower {
		t.Fatalf("expected a power pellet at (1,2), got %v", m.At(Point{1, 2}))
	}
}
