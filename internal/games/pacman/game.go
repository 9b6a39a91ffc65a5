// Package pacman is the scrolling maze chase: a board taller than the
// display, an eased camera that follows the player, pellets, a warp
// tunnel and two ghosts with a fright mode.
package pacman

import (
	"math/rand"
	"time"

	"merlinpad/internal/config"
	"merlinpad/internal/device"
	"merlinpad/internal/engine"
	"merlinpad/internal/registry"
)

type phase int

const (
	phaseTitle phase = iota
	phasePlaying
	phaseGameOver
)

// Direction of grid movement.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var dirDelta = [5]Point{
	DirNone:  {0, 0},
	DirUp:    {0, -1},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
}

func opposite(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Scoring.
const (
	pelletPoints = 1
	powerPoints  = 5
	ghostPoints  = 20
)

const (
	hudHeight = 8
	viewW     = engine.ScreenW
	viewH     = engine.ScreenH - hudHeight

	cameraSpeed = 90.0 // px/s follow speed
	catchFreeze = 1.0  // seconds the board freezes after losing a life
)

// Ghost is one maze chaser.
type Ghost struct {
	Pos    Point
	Dir    Direction
	Home   Point
	Fright bool
}

// Game implements the maze game against the engine stack.
type Game struct {
	ctx *device.Context
	cfg config.PacmanConfig

	fb    *engine.Framebuffer
	dirty *engine.DirtyTracker
	clock *engine.Clock
	input *engine.Dispatcher
	leds  *engine.LedEngine
	cam   *engine.Camera
	rng   *rand.Rand

	tileAtlas *engine.Atlas

	phase       phase
	glow        float64
	staticDrawn bool
	redrawAll   bool
	lastCamY    int

	maze    *Maze
	player  Point
	dir     Direction
	wantDir Direction
	ghosts  []Ghost

	score, best  int
	lives, level int
	fright       float64
	freeze       float64
	playerAcc    float64
	ghostAcc     float64
}

func init() {
	registry.Register("pacman", "Maze Chase", func(ctx *device.Context) registry.Game {
		return New(ctx)
	})
}

var configPath string

// SetConfigPath overrides the config file searched at game creation.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a maze game bound to the device context.
func New(ctx *device.Context) *Game {
	cfg, _ := config.LoadPacman(configPath)
	def := config.DefaultPacmanConfig()
	if cfg.PlayerTPS <= 0 {
		cfg.PlayerTPS = def.PlayerTPS
	}
	if cfg.GhostTPS <= 0 {
		cfg.GhostTPS = def.GhostTPS
	}
	if cfg.FrightTime <= 0 {
		cfg.FrightTime = def.FrightTime
	}
	if cfg.Lives < 1 {
		cfg.Lives = def.Lives
	}
	return &Game{
		ctx:       ctx,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		tileAtlas: buildTileAtlas(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pacman" }

// Title returns the display name.
func (g *Game) Title() string { return "Maze Chase" }

// NewGame resets to the title screen.
func (g *Game) NewGame() {
	g.fb = engine.NewFramebuffer(engine.ScreenW, engine.ScreenH)
	g.dirty = engine.NewDirtyTracker(g.fb.Bounds())
	eng, _ := config.LoadEngine("")
	g.clock = engine.NewClock()
	g.input = eng.NewDispatcher()
	g.leds = eng.NewLedEngine()
	g.cam = engine.NewCamera(cameraSpeed)
	g.best, _ = g.ctx.Settings.HighScore("pacman")
	g.enterTitle()
}

// Button feeds a raw key transition into the dispatcher.
func (g *Game) Button(key int, pressed bool) {
	if g.input == nil {
		return
	}
	g.input.Key(key, pressed, g.clock.Now())
}

// EncoderChanged feeds an encoder movement into the dispatcher.
func (g *Game) EncoderChanged(newPos, oldPos int) {
	if g.input == nil {
		return
	}
	g.input.Encoder(newPos-oldPos, g.clock.Now())
}

// Tick runs one frame.
func (g *Game) Tick() {
	if g.clock == nil {
		return
	}
	now := g.clock.Now()
	dt := g.clock.TickAt(now)
	for _, ev := range g.input.Poll(now) {
		g.handleEvent(ev)
	}
	g.glow += dt

	if g.phase == phasePlaying {
		g.step(dt)
		g.followPlayer()
		g.cam.Update(dt)
		g.cam.ClampToWorld(mazeW*tileSize, mazeH*tileSize, viewW, viewH)
	}

	g.render()
	g.animateLeds(dt)
	g.leds.Tick(dt)
	g.leds.Flush(g.ctx.Pixels, now)
}

// Cleanup blanks the display and the LED strip. Safe to call twice.
func (g *Game) Cleanup() {
	if g.fb != nil {
		g.fb.Clear(engine.BG)
		g.ctx.Refresh(g.fb, []engine.Rect{g.fb.Bounds()})
	}
	if g.leds != nil {
		g.leds.Off()
		g.leds.Tick(engine.DefaultCrossfade)
		g.leds.Flush(g.ctx.Pixels, g.clock.Now()+1)
	}
}

func (g *Game) handleEvent(ev engine.Event) {
	switch g.phase {
	case phaseTitle:
		if ev.Kind == engine.EventTap && ev.Key == registry.KeyStart {
			g.enterPlaying()
		}
	case phasePlaying:
		if ev.Kind == engine.EventDown {
			g.steer(ev.Key)
		}
		if ev.Kind == engine.EventTap && ev.Key == registry.KeyMenu {
			g.enterTitle()
		}
	case phaseGameOver:
		if ev.Kind == engine.EventTap && ev.Key == registry.KeyStart {
			g.enterPlaying()
		}
		if ev.Kind == engine.EventTap && ev.Key == registry.KeyMenu {
			g.enterTitle()
		}
	}
}

func (g *Game) steer(key int) {
	switch key {
	case registry.KeyUp:
		g.wantDir = DirUp
	case registry.KeyDown:
		g.wantDir = DirDown
	case registry.KeyLeft:
		g.wantDir = DirLeft
	case registry.KeyRight:
		g.wantDir = DirRight
	}
}

func (g *Game) enterTitle() {
	g.phase = phaseTitle
	g.input.Reset()
	g.input.Classify(registry.KeyStart)
	g.dirty.ForceFull()
	g.staticDrawn = false
	g.leds.SetAll(engine.RGB{})
}

func (g *Game) enterPlaying() {
	g.phase = phasePlaying
	g.input.Reset()
	g.input.Classify(registry.KeyMenu)
	g.score = 0
	g.lives = g.cfg.Lives
	g.level = 1
	g.startLevel()
	g.leds.SetAll(engine.RGB{})
	g.themePadLeds()
}

func (g *Game) enterGameOver() {
	g.phase = phaseGameOver
	g.input.Reset()
	g.input.Classify(registry.KeyStart)
	g.input.Classify(registry.KeyMenu)
	g.dirty.ForceFull()
	g.staticDrawn = false
	if g.score > g.best {
		g.best = g.score
	}
	g.ctx.Settings.SaveScore("pacman", g.score)
	g.leds.SetAll(engine.RGB{R: 80})
	g.ctx.PlayTone(147, 400*time.Millisecond)
}

// startLevel rebuilds the maze and parks everyone at their start tiles.
func (g *Game) startLevel() {
	g.maze = NewMaze()
	g.fright = 0
	g.freeze = 0
	g.playerAcc = 0
	g.ghostAcc = 0
	g.resetPositions()
}

// resetPositions re-seats the player and ghosts without touching the
// pellets. Used after a caught life and at level start.
func (g *Game) resetPositions() {
	g.player = g.maze.playerStart
	g.dir = DirNone
	g.wantDir = DirNone
	g.ghosts = g.ghosts[:0]
	for _, s := range g.maze.ghostStarts {
		g.ghosts = append(g.ghosts, Ghost{Pos: s, Dir: DirUp, Home: s})
	}
	_, py := g.playerPixel()
	g.cam.JumpTo(0, float64(py)-float64(viewH)/2+tileSize/2)
	g.cam.ClampToWorld(mazeW*tileSize, mazeH*tileSize, viewW, viewH)
	g.dirty.ForceFull()
	g.staticDrawn = false
	g.lastCamY = int(g.cam.Y)
}

func (g *Game) step(dt float64) {
	if g.freeze > 0 {
		g.freeze -= dt
		return
	}
	if g.fright > 0 {
		g.fright -= dt
		if g.fright <= 0 {
			for i := range g.ghosts {
				g.ghosts[i].Fright = false
			}
			g.themePadLeds()
		}
	}

	g.playerAcc += dt
	playerStep := 1.0 / g.playerTPS()
	for g.playerAcc >= playerStep && g.phase == phasePlaying && g.freeze <= 0 {
		g.playerAcc -= playerStep
		g.stepPlayer()
	}

	g.ghostAcc += dt
	ghostStep := 1.0 / g.ghostTPS()
	for g.ghostAcc >= ghostStep && g.phase == phasePlaying && g.freeze <= 0 {
		g.ghostAcc -= ghostStep
		g.stepGhosts()
	}
}

// playerTPS ramps slightly with the level.
func (g *Game) playerTPS() float64 {
	return g.cfg.PlayerTPS * (1 + 0.05*float64(g.level-1))
}

func (g *Game) ghostTPS() float64 {
	tps := g.cfg.GhostTPS * (1 + 0.07*float64(g.level-1))
	if g.fright > 0 {
		tps *= 0.6
	}
	return tps
}

func (g *Game) stepPlayer() {
	if g.wantDir != DirNone && g.canGo(g.player, g.wantDir) {
		g.dir = g.wantDir
	}
	if g.dir == DirNone || !g.canGo(g.player, g.dir) {
		return
	}
	d := dirDelta[g.dir]
	g.player = g.maze.Wrap(Point{g.player.X + d.X, g.player.Y + d.Y})

	switch g.maze.Eat(g.player) {
	case TilePellet:
		g.score += pelletPoints
		g.markTile(g.player)
	case TilePower:
		g.score += powerPoints
		g.markTile(g.player)
		g.fright = g.cfg.FrightTime
		for i := range g.ghosts {
			g.ghosts[i].Fright = true
		}
		g.leds.SetAll(engine.RGB{B: 120})
		g.ctx.PlayTone(659, 120*time.Millisecond)
	}

	g.checkCatches()

	if g.maze.Pellets() == 0 {
		g.level++
		g.startLevel()
		g.leds.SetTransient(registry.KeyStart, engine.RGB{G: 220}, 0.8)
		g.ctx.PlayTone(988, 200*time.Millisecond)
	}
}

func (g *Game) canGo(p Point, d Direction) bool {
	dd := dirDelta[d]
	return g.maze.Walkable(g.maze.Wrap(Point{p.X + dd.X, p.Y + dd.Y}))
}

func (g *Game) stepGhosts() {
	for i := range g.ghosts {
		g.stepGhost(&g.ghosts[i])
		if g.ghosts[i].Pos == g.player {
			g.caught(i)
			if g.phase != phasePlaying || g.freeze > 0 {
				return
			}
		}
	}
}

// stepGhost picks the next tile: never reverse unless trapped, chase the
// player normally, flee while frightened, random tie-break.
func (g *Game) stepGhost(gh *Ghost) {
	type option struct {
		d Direction
		p Point
	}
	var opts []option
	for _, d := range [4]Direction{DirUp, DirDown, DirLeft, DirRight} {
		if d == opposite(gh.Dir) {
			continue
		}
		dd := dirDelta[d]
		np := g.maze.Wrap(Point{gh.Pos.X + dd.X, gh.Pos.Y + dd.Y})
		if !g.maze.Walkable(np) {
			continue
		}
		opts = append(opts, option{d, np})
	}
	if len(opts) == 0 {
		// Dead end: reverse if possible, else stay put.
		d := opposite(gh.Dir)
		dd := dirDelta[d]
		np := g.maze.Wrap(Point{gh.Pos.X + dd.X, gh.Pos.Y + dd.Y})
		if g.maze.Walkable(np) {
			gh.Dir = d
			gh.Pos = np
		}
		return
	}

	best := opts[0]
	bestDist := g.chaseDist(best.p)
	for _, o := range opts[1:] {
		dist := g.chaseDist(o.p)
		better := dist < bestDist
		if gh.Fright {
			better = dist > bestDist
		}
		if better || (dist == bestDist && g.rng.Intn(2) == 0) {
			best, bestDist = o, dist
		}
	}
	gh.Dir = best.d
	gh.Pos = best.p
}

// chaseDist is the plain manhattan distance to the player; good enough
// for a 16-tile board.
func (g *Game) chaseDist(p Point) int {
	dx := p.X - g.player.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - g.player.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// checkCatches resolves player/ghost contacts after a player move.
func (g *Game) checkCatches() {
	for i := range g.ghosts {
		if g.ghosts[i].Pos == g.player {
			g.caught(i)
			if g.phase != phasePlaying || g.freeze > 0 {
				return
			}
		}
	}
}

// caught resolves contact with ghost i: eat it in fright, otherwise lose
// a life.
func (g *Game) caught(i int) {
	gh := &g.ghosts[i]
	if gh.Fright {
		g.score += ghostPoints
		gh.Pos = gh.Home
		gh.Dir = DirUp
		gh.Fright = false
		g.leds.SetTransient(registry.KeyFire, engine.RGB{G: 220}, 0.4)
		g.ctx.PlayTone(784, 80*time.Millisecond)
		return
	}

	g.lives--
	g.leds.SetTransient(registry.KeyStart, engine.RGB{R: 255}, 0.6)
	g.ctx.PlayTone(110, 300*time.Millisecond)
	if g.lives <= 0 {
		g.enterGameOver()
		return
	}
	g.freeze = catchFreeze
	g.fright = 0
	g.resetPositions()
}

// followPlayer keeps the camera centered on the player's row.
func (g *Game) followPlayer() {
	_, py := g.playerPixel()
	g.cam.SetTarget(0, float64(py)-float64(viewH)/2+tileSize/2)
}

func (g *Game) playerPixel() (int, int) {
	return g.player.X * tileSize, g.player.Y * tileSize
}

func (g *Game) themePadLeds() {
	dim := engine.RGB{R: 30, G: 24}
	g.leds.SetTarget(registry.KeyUp, dim)
	g.leds.SetTarget(registry.KeyDown, dim)
	g.leds.SetTarget(registry.KeyLeft, dim)
	g.leds.SetTarget(registry.KeyRight, dim)
	g.leds.SetTarget(registry.KeyFire, engine.RGB{})
}

func (g *Game) animateLeds(dt float64) {
	switch g.phase {
	case phaseTitle:
		k := engine.Breathe(0.1, 0.8, g.glow*3)
		g.leds.SetTarget(registry.KeyStart, engine.RGB{R: 200, G: 160}.Scale(k))
	case phasePlaying:
		if g.fright > 0 {
			k := engine.Breathe(0.3, 1.0, g.glow*6)
			for _, key := range [4]int{registry.KeyUp, registry.KeyDown, registry.KeyLeft, registry.KeyRight} {
				g.leds.SetTarget(key, engine.RGB{B: 160}.Scale(k))
			}
		}
	case phaseGameOver:
		k := engine.Breathe(0.2, 1.0, g.glow*4)
		g.leds.SetTarget(registry.KeyStart, engine.RGB{R: 160}.Scale(k))
	}
}
