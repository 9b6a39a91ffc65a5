// Package asteroids is the toroidal rock shooter: held-key rotation and
// thrust, rate-limited fire, rocks that split until they are dust, and a
// double-tap hyperspace escape.
package asteroids

import (
	"math"
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

const (
	shipRadius   = 4.0
	drag         = 0.35 // fraction of velocity shed per second
	respawnDelay = 1.5
	invulnTime   = 2.0
)

// rockScore indexes by size class.
var rockScore = [3]int{1, 2, 3}

// Game implements the asteroids game against the engine stack.
type Game struct {
	ctx *device.Context
	cfg config.AsteroidsConfig

	fb    *engine.Framebuffer
	dirty *engine.DirtyTracker
	clock *engine.Clock
	input *engine.Dispatcher
	leds  *engine.LedEngine
	rng   *rand.Rand

	shipAtlas *engine.Atlas
	rockAtlas *engine.Atlas

	phase       phase
	glow        float64
	staticDrawn bool

	held map[int]bool

	ship    Ship
	bullets []Bullet
	rocks   []Rock

	score, best int
	lives, wave int

	fireCooldown float64
	respawnIn    float64
	invuln       float64
}

func init() {
	registry.Register("asteroids", "Asteroids", func(ctx *device.Context) registry.Game {
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

// New creates an asteroids game bound to the device context.
func New(ctx *device.Context) *Game {
	cfg, _ := config.LoadAsteroids(configPath)
	config.ApplyPreset(&cfg.Difficulty, config.DifficultyPreset(difficultyPreset))
	def := config.DefaultAsteroidsConfig()
	if cfg.ShipFrames < 4 {
		cfg.ShipFrames = def.ShipFrames
	}
	if cfg.FireDelay <= 0 {
		cfg.FireDelay = def.FireDelay
	}
	if cfg.Lives < 1 {
		cfg.Lives = def.Lives
	}
	if cfg.StartRocks < 1 {
		cfg.StartRocks = def.StartRocks
	}
	return &Game{
		ctx:       ctx,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		shipAtlas: buildShipAtlas(cfg.ShipFrames),
		rockAtlas: buildRockAtlas(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "asteroids" }

// Title returns the display name.
func (g *Game) Title() string { return "Asteroids" }

// NewGame resets to the title screen.
func (g *Game) NewGame() {
	g.fb = engine.NewFramebuffer(engine.ScreenW, engine.ScreenH)
	g.dirty = engine.NewDirtyTracker(g.fb.Bounds())
	eng, _ := config.LoadEngine("")
	g.clock = engine.NewClock()
	g.input = eng.NewDispatcher()
	g.leds = eng.NewLedEngine()
	g.held = make(map[int]bool)
	g.best, _ = g.ctx.Settings.HighScore("asteroids")
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
	switch ev.Kind {
	case engine.EventDown:
		g.held[ev.Key] = true
	case engine.EventUp:
		g.held[ev.Key] = false
	}

	switch g.phase {
	case phaseTitle:
		if ev.Kind == engine.EventTap && ev.Key == registry.KeyStart {
			g.enterPlaying()
		}
	case phasePlaying:
		if ev.Kind == engine.EventDoubleTap && ev.Key == registry.KeyFire {
			g.hyperspace()
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

func (g *Game) enterTitle() {
	g.phase = phaseTitle
	g.resetInput()
	g.input.Classify(registry.KeyStart)
	g.dirty.ForceFull()
	g.staticDrawn = false
	g.leds.SetAll(engine.RGB{})
}

func (g *Game) enterPlaying() {
	g.phase = phasePlaying
	g.resetInput()
	g.input.Classify(registry.KeyMenu)
	g.input.Classify(registry.KeyFire)
	g.score = 0
	g.lives = g.cfg.Lives
	g.wave = 0
	g.bullets = g.bullets[:0]
	g.rocks = g.rocks[:0]
	g.fireCooldown = 0
	g.respawnIn = 0
	g.spawnShip()
	g.spawnWave()
	g.dirty.ForceFull()
	g.staticDrawn = false
	g.leds.SetAll(engine.RGB{})
	g.leds.SetTarget(registry.KeyLeft, dimWhite)
	g.leds.SetTarget(registry.KeyRight, dimWhite)
	g.leds.SetTarget(registry.KeyUp, dimBlue)
	g.leds.SetTarget(registry.KeyFire, dimRed)
}

func (g *Game) enterGameOver() {
	g.phase = phaseGameOver
	g.resetInput()
	g.input.Classify(registry.KeyStart)
	g.input.Classify(registry.KeyMenu)
	g.dirty.ForceFull()
	g.staticDrawn = false
	if g.score > g.best {
		g.best = g.score
	}
	g.ctx.Settings.SaveScore("asteroids", g.score)
	g.leds.SetAll(engine.RGB{R: 80})
	g.ctx.PlayTone(147, 400*time.Millisecond)
}

// resetInput drops dispatcher state and the held-key mirror together so
// a key held across a phase change cannot keep steering.
func (g *Game) resetInput() {
	g.input.Reset()
	g.held = make(map[int]bool)
}

func (g *Game) spawnShip() {
	g.ship = Ship{X: worldW / 2, Y: worldH / 2, Angle: -math.Pi / 2, Alive: true}
	g.invuln = invulnTime
}

// spawnWave places the next wave's rocks away from the ship so a fresh
// wave never kills instantly.
func (g *Game) spawnWave() {
	g.wave++
	level := g.cfg.Difficulty.Level(g.score)
	count := g.cfg.StartRocks + (g.wave-1)
	speed := 10 + 18*level
	for i := 0; i < count; i++ {
		var x, y float64
		for tries := 0; tries < 32; tries++ {
			x = g.rng.Float64() * worldW
			y = g.rng.Float64() * worldH
			if torusDist(x, y, g.ship.X, g.ship.Y) > 24 {
				break
			}
		}
		a := g.rng.Float64() * 2 * math.Pi
		s := speed * (0.6 + 0.8*g.rng.Float64())
		g.rocks = append(g.rocks, Rock{X: x, Y: y, VX: s * math.Cos(a), VY: s * math.Sin(a)})
	}
}

// hyperspace teleports the ship to a random spot with brief safety.
// Double-tap fire; the classic last-resort move.
func (g *Game) hyperspace() {
	if !g.ship.Alive {
		return
	}
	g.ship.X = g.rng.Float64() * worldW
	g.ship.Y = g.rng.Float64() * worldH
	g.ship.VX, g.ship.VY = 0, 0
	g.invuln = invulnTime / 2
	g.leds.SetTransient(registry.KeyFire, engine.RGB{B: 200}, 0.4)
	g.ctx.PlayTone(1175, 60*time.Millisecond)
}

func (g *Game) step(dt float64) {
	g.fireCooldown -= dt
	if g.invuln > 0 {
		g.invuln -= dt
	}

	if g.ship.Alive {
		g.steer(dt)
	} else {
		g.respawnIn -= dt
		if g.respawnIn <= 0 {
			g.spawnShip()
		}
	}

	g.moveBullets(dt)
	g.moveRocks(dt)
	g.collideBulletsRocks()
	g.collideShipRocks()

	if len(g.rocks) == 0 {
		g.leds.SetTransient(registry.KeyStart, engine.RGB{G: 200}, 0.6)
		g.ctx.PlayTone(784, 120*time.Millisecond)
		g.spawnWave()
	}
}

func (g *Game) steer(dt float64) {
	if g.held[registry.KeyLeft] {
		g.ship.Angle -= g.cfg.TurnRate * dt
	}
	if g.held[registry.KeyRight] {
		g.ship.Angle += g.cfg.TurnRate * dt
	}
	if g.held[registry.KeyUp] {
		g.ship.VX += g.cfg.Thrust * math.Cos(g.ship.Angle) * dt
		g.ship.VY += g.cfg.Thrust * math.Sin(g.ship.Angle) * dt
	}
	if g.held[registry.KeyFire] && g.fireCooldown <= 0 {
		g.fire()
	}

	k := 1 - drag*dt
	if k < 0 {
		k = 0
	}
	g.ship.VX *= k
	g.ship.VY *= k
	g.ship.X = wrapF(g.ship.X+g.ship.VX*dt, worldW)
	g.ship.Y = wrapF(g.ship.Y+g.ship.VY*dt, worldH)
}

func (g *Game) fire() {
	g.fireCooldown = g.cfg.FireDelay
	cos, sin := math.Cos(g.ship.Angle), math.Sin(g.ship.Angle)
	g.bullets = append(g.bullets, Bullet{
		X:    wrapF(g.ship.X+cos*shipRadius, worldW),
		Y:    wrapF(g.ship.Y+sin*shipRadius, worldH),
		VX:   g.ship.VX + g.cfg.BulletSpeed*cos,
		VY:   g.ship.VY + g.cfg.BulletSpeed*sin,
		Life: g.cfg.BulletLife,
	})
	g.ctx.PlayTone(1568, 25*time.Millisecond)
}

func (g *Game) moveBullets(dt float64) {
	alive := g.bullets[:0]
	for _, b := range g.bullets {
		b.Life -= dt
		if b.Life <= 0 {
			continue
		}
		b.X = wrapF(b.X+b.VX*dt, worldW)
		b.Y = wrapF(b.Y+b.VY*dt, worldH)
		alive = append(alive, b)
	}
	g.bullets = alive
}

func (g *Game) moveRocks(dt float64) {
	for i := range g.rocks {
		r := &g.rocks[i]
		r.X = wrapF(r.X+r.VX*dt, worldW)
		r.Y = wrapF(r.Y+r.VY*dt, worldH)
	}
}

func (g *Game) collideBulletsRocks() {
	for bi := 0; bi < len(g.bullets); bi++ {
		b := &g.bullets[bi]
		for ri := 0; ri < len(g.rocks); ri++ {
			r := &g.rocks[ri]
			if torusDist(b.X, b.Y, r.X, r.Y) > r.Radius() {
				continue
			}
			g.score += rockScore[r.Size]
			g.splitRock(ri)
			g.bullets[bi] = g.bullets[len(g.bullets)-1]
			g.bullets = g.bullets[:len(g.bullets)-1]
			bi--
			g.leds.SetTransient(registry.KeyFire, engine.RGB{R: 255, G: 120}, 0.15)
			g.ctx.PlayTone(523, 30*time.Millisecond)
			break
		}
	}
}

// splitRock replaces rock ri with two of the next size class, or removes
// it if it was already small.
func (g *Game) splitRock(ri int) {
	r := g.rocks[ri]
	g.rocks[ri] = g.rocks[len(g.rocks)-1]
	g.rocks = g.rocks[:len(g.rocks)-1]
	if r.Size >= len(rockRadius)-1 {
		return
	}
	level := g.cfg.Difficulty.Level(g.score)
	speed := (14 + 20*level)
	for i := 0; i < 2; i++ {
		a := g.rng.Float64() * 2 * math.Pi
		g.rocks = append(g.rocks, Rock{
			X: r.X, Y: r.Y,
			VX:   speed * math.Cos(a),
			VY:   speed * math.Sin(a),
			Size: r.Size + 1,
		})
	}
}

func (g *Game) collideShipRocks() {
	if !g.ship.Alive || g.invuln > 0 {
		return
	}
	for i := range g.rocks {
		r := &g.rocks[i]
		if torusDist(g.ship.X, g.ship.Y, r.X, r.Y) > r.Radius()+shipRadius {
			continue
		}
		g.shipDestroyed()
		return
	}
}

func (g *Game) shipDestroyed() {
	g.ship.Alive = false
	g.lives--
	g.leds.SetTransient(registry.KeyStart, engine.RGB{R: 255}, 0.5)
	g.ctx.PlayTone(110, 250*time.Millisecond)
	if g.lives <= 0 {
		g.enterGameOver()
		return
	}
	g.respawnIn = respawnDelay
}

func (g *Game) animateLeds(dt float64) {
	switch g.phase {
	case phaseTitle:
		k := engine.Breathe(0.1, 0.8, g.glow*3)
		g.leds.SetTarget(registry.KeyStart, engine.RGB{B: 200}.Scale(k))
	case phasePlaying:
		if g.held[registry.KeyUp] {
			g.leds.SetTarget(registry.KeyUp, engine.RGB{B: 200})
		} else {
			g.leds.SetTarget(registry.KeyUp, dimBlue)
		}
	case phaseGameOver:
		k := engine.Breathe(0.2, 1.0, g.glow*4)
		g.leds.SetTarget(registry.KeyStart, engine.RGB{R: 160}.Scale(k))
	}
}

var (
	dimWhite = engine.RGB{R: 24, G: 24, B: 24}
	dimBlue  = engine.RGB{B: 40}
	dimRed   = engine.RGB{R: 40}
)

// shipFrame quantizes the ship angle onto the atlas rotation steps.
func (g *Game) shipFrame() int {
	n := g.shipAtlas.Frames()
	a := math.Mod(g.ship.Angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	f := int(math.Round(a/(2*math.Pi)*float64(n))) % n
	return f
}
