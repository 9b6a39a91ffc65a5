// Package snake is the grid snake for the 12-key pad: d-pad steering,
// walls around the board, food that speeds the crawl up, and an encoder
// speed selector on the title screen.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"merlinpad/internal/config"
	"merlinpad/internal/device"
	"merlinpad/internal/engine"
	"merlinpad/internal/registry"
)

// Direction is the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

var dirDelta = [4]Point{
	DirRight: {1, 0},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
	DirUp:    {0, -1},
}

// Point is a grid cell coordinate.
type Point struct {
	X, Y int
}

type phase int

const (
	phaseTitle phase = iota
	phasePlaying
	phaseGameOver
)

const (
	hudHeight = 8 // pixel rows reserved for the score line

	speedLevels = 5 // encoder-selectable start speeds on the title screen
)

// Game implements the snake game against the engine stack.
type Game struct {
	ctx *device.Context
	cfg config.SnakeConfig

	fb    *engine.Framebuffer
	dirty *engine.DirtyTracker
	clock *engine.Clock
	input *engine.Dispatcher
	leds  *engine.LedEngine
	rng   *rand.Rand

	phase       phase
	glow        float64 // accumulated breathing phase for idle LEDs
	staticDrawn bool

	gridW, gridH int
	cell         int

	snake   []Point // head first
	dir     Direction
	nextDir Direction
	growing bool
	walls   map[Point]bool
	food    Point

	score     int
	best      int
	speedSel  int // title-screen speed selection, 0..speedLevels-1
	stepEvery float64
	stepAcc   float64
}

func init() {
	registry.Register("snake", "Snake", func(ctx *device.Context) registry.Game {
		return New(ctx)
	})
}

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath overrides the config file searched at game creation.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the configured difficulty progression.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a snake game bound to the device context.
func New(ctx *device.Context) *Game {
	cfg, _ := config.LoadSnake(configPath)
	config.ApplyPreset(&cfg.Difficulty, config.DifficultyPreset(difficultyPreset))
	def := config.DefaultSnakeConfig()
	if cfg.CellSize < 2 {
		cfg.CellSize = def.CellSize
	}
	if cfg.StepEveryS <= 0 {
		cfg.StepEveryS = def.StepEveryS
	}
	if cfg.MinStepS <= 0 || cfg.MinStepS > cfg.StepEveryS {
		cfg.MinStepS = min(def.MinStepS, cfg.StepEveryS)
	}
	g := &Game{
		ctx:  ctx,
		cfg:  cfg,
		cell: cfg.CellSize,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.gridW = engine.ScreenW / g.cell
	g.gridH = (engine.ScreenH - hudHeight) / g.cell
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// NewGame resets to the title screen.
func (g *Game) NewGame() {
	g.fb = engine.NewFramebuffer(engine.ScreenW, engine.ScreenH)
	g.dirty = engine.NewDirtyTracker(g.fb.Bounds())
	eng, _ := config.LoadEngine("")
	g.clock = engine.NewClock()
	g.input = eng.NewDispatcher()
	g.leds = eng.NewLedEngine()
	g.best, _ = g.ctx.Settings.HighScore("snake")
	g.speedSel = speedLevels / 2
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

// Tick runs one frame: input, simulation, rendering, LEDs.
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
		g.stepAcc += dt
		for g.stepAcc >= g.stepEvery && g.phase == phasePlaying {
			g.stepAcc -= g.stepEvery
			g.step()
		}
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
		if ev.Kind == engine.EventEncoder {
			g.speedSel = clampI(g.speedSel+ev.Delta, 0, speedLevels-1)
			g.staticDrawn = false
			g.dirty.ForceFull()
		}
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
	var d Direction
	switch key {
	case registry.KeyUp:
		d = DirUp
	case registry.KeyDown:
		d = DirDown
	case registry.KeyLeft:
		d = DirLeft
	case registry.KeyRight:
		d = DirRight
	default:
		return
	}
	// No instant reversal; the change applies on the next step.
	if dirDelta[d].X+dirDelta[g.dir].X != 0 || dirDelta[d].Y+dirDelta[g.dir].Y != 0 {
		g.nextDir = d
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
	g.stepAcc = 0
	g.stepEvery = g.startStep()
	g.buildBoard()
	g.dirty.ForceFull()
	g.staticDrawn = false
	g.leds.SetAll(engine.RGB{})
	g.leds.SetTarget(registry.KeyUp, dimWhite)
	g.leds.SetTarget(registry.KeyDown, dimWhite)
	g.leds.SetTarget(registry.KeyLeft, dimWhite)
	g.leds.SetTarget(registry.KeyRight, dimWhite)
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
	g.ctx.Settings.SaveScore("snake", g.score)
	g.leds.SetAll(engine.RGB{R: 80})
	g.ctx.PlayTone(196, 300*time.Millisecond)
}

// startStep maps the title-screen speed selection onto the configured
// step interval range, then squeezes the result toward the floor by the
// configured difficulty level.
func (g *Game) startStep() float64 {
	step := g.cfg.StepEveryS
	if speedLevels >= 2 {
		t := float64(g.speedSel) / float64(speedLevels-1)
		step += (g.cfg.MinStepS - g.cfg.StepEveryS) * t * 0.5
	}
	lvl := g.cfg.Difficulty.Level(0)
	return step - (step-g.cfg.MinStepS)*lvl*0.5
}

func (g *Game) buildBoard() {
	g.walls = make(map[Point]bool)
	for x := 0; x < g.gridW; x++ {
		g.walls[Point{x, 0}] = true
		g.walls[Point{x, g.gridH - 1}] = true
	}
	for y := 0; y < g.gridH; y++ {
		g.walls[Point{0, y}] = true
		g.walls[Point{g.gridW - 1, y}] = true
	}

	cx, cy := g.gridW/2, g.gridH/2
	g.snake = []Point{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.dir = DirRight
	g.nextDir = DirRight
	g.growing = false
	g.spawnFood()
}

func (g *Game) spawnFood() {
	var empty []Point
	for y := 1; y < g.gridH-1; y++ {
		for x := 1; x < g.gridW-1; x++ {
			p := Point{x, y}
			if !g.walls[p] && !g.isSnakeAt(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		g.food = Point{-1, -1}
		return
	}
	g.food = empty[g.rng.Intn(len(empty))]
}

func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// step advances the snake one cell.
func (g *Game) step() {
	g.dir = g.nextDir
	head := g.snake[0]
	d := dirDelta[g.dir]
	newHead := Point{head.X + d.X, head.Y + d.Y}

	if g.walls[newHead] {
		g.enterGameOver()
		return
	}
	checkLen := len(g.snake)
	if !g.growing {
		checkLen-- // the tail moves out of the way
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.enterGameOver()
			return
		}
	}

	g.snake = append([]Point{newHead}, g.snake...)
	if newHead == g.food {
		g.score++
		g.growing = true
		g.spawnFood()
		g.speedUp()
		g.leds.SetTransient(registry.KeyFire, engine.RGB{G: 160}, 0.3)
		g.ctx.PlayTone(880, 40*time.Millisecond)
	}
	if g.growing {
		g.growing = false
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// speedUp shortens the step after each food. The difficulty ramp can up
// to double the shrink rate as the score grows.
func (g *Game) speedUp() {
	pct := g.cfg.SpeedupPct * (1 + g.cfg.Difficulty.Level(g.score))
	g.stepEvery *= 1 - pct
	if g.stepEvery < g.cfg.MinStepS {
		g.stepEvery = g.cfg.MinStepS
	}
}

func (g *Game) animateLeds(dt float64) {
	switch g.phase {
	case phaseTitle:
		k := engine.Breathe(0.1, 0.8, g.glow*3)
		g.leds.SetTarget(registry.KeyStart, engine.RGB{G: 200}.Scale(k))
	case phaseGameOver:
		k := engine.Breathe(0.2, 1.0, g.glow*4)
		g.leds.SetTarget(registry.KeyStart, engine.RGB{R: 160}.Scale(k))
	}
}

var dimWhite = engine.RGB{R: 24, G: 24, B: 24}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (g *Game) scoreLine() string {
	return fmt.Sprintf("SCORE %d  BEST %d", g.score, g.best)
}
