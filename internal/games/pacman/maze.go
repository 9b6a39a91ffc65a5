package pacman

// Tile is one maze cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
	TilePower
)

// Maze geometry. The maze is taller than the viewport, so the camera
// scrolls vertically; the warp row wraps horizontally.
const (
	tileSize = 8
	mazeW    = 16
	mazeH    = 16
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// mazeLayout is the board. '#' wall, '.' pellet, 'o' power pellet,
// 'P' player start, 'G' ghost start (inside the pen), ' ' open floor.
// Row 6 is the warp tunnel: walking off one side re-enters on the other.
var mazeLayout = [mazeH]string{
	"################",
	"#......##......#",
	"#o####.##.####o#",
	"#..............#",
	"#.##.######.##.#",
	"#.##.#GG  #.##.#",
	".....      .....",
	"#.##.######.##.#",
	"#.##........##.#",
	"#....##..##....#",
	"#.##.##..##.##.#",
	"#.##........##.#",
	"#....######....#",
	"#o##........##o#",
	"#......P.......#",
	"################",
}

// Maze is the parsed board plus the remaining pellet count.
type Maze struct {
	tiles       [mazeH][mazeW]Tile
	pellets     int
	playerStart Point
	ghostStarts []Point
	warpRow     int
}

// NewMaze parses the built-in layout.
func NewMaze() *Maze {
	m := &Maze{warpRow: 6}
	for y, row := range mazeLayout {
		for x, ch := range row {
			switch ch {
			case '#':
				m.tiles[y][x] = TileWall
			case '.':
				m.tiles[y][x] = TilePellet
				m.pellets++
			case 'o':
				m.tiles[y][x] = TilePower
				m.pellets++
			case 'P':
				m.playerStart = Point{x, y}
			case 'G':
				m.ghostStarts = append(m.ghostStarts, Point{x, y})
			}
		}
	}
	return m
}

// Wrap folds a tile coordinate back onto the board along the warp row.
// Off the top or bottom there is nowhere to go; those stay out of range
// and read as wall.
func (m *Maze) Wrap(p Point) Point {
	if p.Y == m.warpRow {
		if p.X < 0 {
			p.X += mazeW
		}
		if p.X >= mazeW {
			p.X -= mazeW
		}
	}
	return p
}

// At reads a tile; out-of-range coordinates read as wall.
func (m *Maze) At(p Point) Tile {
	if p.X < 0 || p.X >= mazeW || p.Y < 0 || p.Y >= mazeH {
		return TileWall
	}
	return m.tiles[p.Y][p.X]
}

// Walkable reports whether an entity can stand on the tile.
func (m *Maze) Walkable(p Point) bool {
	return m.At(p) != TileWall
}

// Eat consumes the pellet on a tile, if any, and returns what was there.
func (m *Maze) Eat(p Point) Tile {
	t := m.At(p)
	if t != TilePellet && t != TilePower {
		return TileEmpty
	}
	m.tiles[p.Y][p.X] = TileEmpty
	m.pellets--
	return t
}

// Pellets returns how many pellets are left.
func (m *Maze) Pellets() int {
	return m.pellets
}
