// Package simon is the light-and-tone memory game: the pad plays a
// growing key sequence back through the LEDs and the speaker, and the
// player repeats it on the d-pad diamond.
package simon

import (
	"fmt"
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
	phaseShow
	phaseInput
	phaseGameOver
)

// The four playable pads and their colors and tones. The diamond layout
// mirrors the classic four-button shell.
var (
	padKeys = [4]int{registry.KeyUp, registry.KeyLeft, registry.KeyRight, registry.KeyDown}

	padColor = map[int]engine.RGB{
		registry.KeyUp:    {G: 220},
		registry.KeyLeft:  {R: 220},
		registry.KeyRight: {R: 220, G: 180},
		registry.KeyDown:  {B: 220},
	}

	padTone = map[int]float64{
		registry.KeyUp:    330,
		registry.KeyLeft:  277,
		registry.KeyRight: 440,
		registry.KeyDown:  165,
	}
)

const (
	baseStep = 0.55 // seconds per playback item on round one
	minStep  = 0.25
	interSeq = 0.8 // pause before a new sequence plays back
)

// Game implements the memory game against the engine stack.
type Game struct {
	ctx *device.Context

	fb    *engine.Framebuffer
	dirty *engine.DirtyTracker
	clock *engine.Clock
	input *engine.Dispatcher
	leds  *engine.LedEngine
	rng   *rand.Rand

	phase       phase
	glow        float64
	staticDrawn bool

	seq       []int
	inputPos  int
	showIdx   int
	showTimer float64

	score, best int
}

func init() {
	registry.Register("simon", "Simon", func(ctx *device.Context) registry.Game {
		return New(ctx)
	})
}

// New creates a memory game bound to the device context.
func New(ctx *device.Context) *Game {
	return &Game{
		ctx: ctx,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "simon" }

// Title returns the display name.
func (g *Game) Title() string { return "Simon" }

// NewGame resets to the title screen.
func (g *Game) NewGame() {
	g.fb = engine.NewFramebuffer(engine.ScreenW, engine.ScreenH)
	g.dirty = engine.NewDirtyTracker(g.fb.Bounds())
	eng, _ := config.LoadEngine("")
	g.clock = engine.NewClock()
	g.input = eng.NewDispatcher()
	g.leds = eng.NewLedEngine()
	// Snappier fades than the default: the flashes ARE the gameplay.
	g.leds.Crossfade = 0.08
	g.best, _ = g.ctx.Settings.HighScore("simon")
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

	if g.phase == phaseShow {
		g.advancePlayback(dt)
	}

	g.render()
	g.animateLeds()
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
	case phaseShow:
		// Input during playback is ignored, not punished.
	case phaseInput:
		if ev.Kind == engine.EventDown {
			g.padPressed(ev.Key)
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
	g.input.Reset()
	g.input.Classify(registry.KeyStart)
	g.dirty.ForceFull()
	g.staticDrawn = false
	g.leds.SetAll(engine.RGB{})
}

func (g *Game) enterPlaying() {
	g.score = 0
	g.seq = g.seq[:0]
	g.leds.SetAll(engine.RGB{})
	g.extendSequence()
}

// extendSequence appends one random pad and starts the playback.
func (g *Game) extendSequence() {
	g.seq = append(g.seq, padKeys[g.rng.Intn(len(padKeys))])
	g.phase = phaseShow
	g.input.Reset()
	g.showIdx = 0
	g.showTimer = interSeq
	g.dirty.ForceFull()
	g.staticDrawn = false
	g.leds.SetAll(engine.RGB{})
}

// stepDur speeds the playback up as the sequence grows.
func (g *Game) stepDur() float64 {
	d := baseStep - 0.02*float64(len(g.seq))
	if d < minStep {
		d = minStep
	}
	return d
}

// advancePlayback flashes the next sequence item when its slot comes up,
// then hands control to the player.
func (g *Game) advancePlayback(dt float64) {
	g.showTimer -= dt
	if g.showTimer > 0 {
		return
	}
	if g.showIdx >= len(g.seq) {
		g.phase = phaseInput
		g.input.Reset()
		g.input.Classify(registry.KeyMenu)
		g.inputPos = 0
		g.staticDrawn = false
		g.dirty.ForceFull()
		return
	}
	key := g.seq[g.showIdx]
	step := g.stepDur()
	g.leds.SetTransient(key, padColor[key], step*0.6)
	g.ctx.PlayTone(padTone[key], time.Duration(step*0.6*float64(time.Second)))
	g.showIdx++
	g.showTimer = step
}

// padPressed checks one answer key against the sequence.
func (g *Game) padPressed(key int) {
	if _, ok := padColor[key]; !ok {
		return
	}
	g.leds.SetTransient(key, padColor[key], 0.25)
	g.ctx.PlayTone(padTone[key], 150*time.Millisecond)

	if key != g.seq[g.inputPos] {
		g.enterGameOver()
		return
	}
	g.inputPos++
	if g.inputPos < len(g.seq) {
		return
	}
	g.score++
	g.extendSequence()
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
	g.ctx.Settings.SaveScore("simon", g.score)
	g.leds.SetAll(engine.RGB{R: 80})
	g.ctx.PlayTone(110, 500*time.Millisecond)
}

func (g *Game) animateLeds() {
	switch g.phase {
	case phaseTitle:
		k := engine.Breathe(0.1, 0.7, g.glow*2.5)
		for _, key := range padKeys {
			g.leds.SetTarget(key, padColor[key].Scale(k*0.4))
		}
		g.leds.SetTarget(registry.KeyStart, engine.RGB{R: 200, G: 200, B: 200}.Scale(engine.Breathe(0.1, 0.8, g.glow*3)))
	case phaseInput:
		for _, key := range padKeys {
			g.leds.SetTarget(key, padColor[key].Scale(0.12))
		}
	case phaseGameOver:
		k := engine.Breathe(0.2, 1.0, g.glow*4)
		g.leds.SetTarget(registry.KeyStart, engine.RGB{R: 160}.Scale(k))
	}
}

func (g *Game) render() {
	g.dirty.BeginFrame()
	if !g.staticDrawn {
		g.fb.Clear(engine.BG)
		switch g.phase {
		case phaseTitle:
			g.fb.DrawTextCentered(8, "SIMON", engine.FG)
			g.fb.DrawTextCentered(22, fmt.Sprintf("BEST %d", g.best), engine.FG)
			g.drawDiamond(36)
			g.fb.DrawTextCentered(52, "PRESS START", engine.FG)
		case phaseShow:
			g.fb.DrawTextCentered(16, fmt.Sprintf("ROUND %d", len(g.seq)), engine.FG)
			g.fb.DrawTextCentered(34, "WATCH", engine.FG)
		case phaseInput:
			g.fb.DrawTextCentered(16, fmt.Sprintf("ROUND %d", len(g.seq)), engine.FG)
			g.fb.DrawTextCentered(34, "YOUR TURN", engine.FG)
		case phaseGameOver:
			g.fb.DrawTextCentered(14, "GAME OVER", engine.FG)
			g.fb.DrawTextCentered(28, fmt.Sprintf("SCORE %d", g.score), engine.FG)
			g.fb.DrawTextCentered(38, fmt.Sprintf("BEST %d", g.best), engine.FG)
			g.fb.DrawTextCentered(52, "START RETRY", engine.FG)
		}
		g.staticDrawn = true
	}

	erase, redraw := g.dirty.EndFrame()
	if len(erase) == 0 && len(redraw) == 0 {
		return
	}
	g.ctx.Refresh(g.fb, append(erase, redraw...))
}

// drawDiamond sketches the four-pad layout on the title screen.
func (g *Game) drawDiamond(cy int) {
	cx := engine.ScreenW / 2
	g.fb.FillRect(cx-2, cy-8, 4, 4, engine.FG)
	g.fb.FillRect(cx-10, cy-2, 4, 4, engine.FG)
	g.fb.FillRect(cx+6, cy-2, 4, 4, engine.FG)
	g.fb.FillRect(cx-2, cy+4, 4, 4, engine.FG)
}
