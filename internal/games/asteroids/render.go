package asteroids

import (
	"fmt"
	"math"

	"merlinpad/internal/engine"
)

func (g *Game) render() {
	switch g.phase {
	case phaseTitle:
		g.renderTitle()
	case phasePlaying:
		g.renderPlaying()
	case phaseGameOver:
		g.renderGameOver()
	}
}

func (g *Game) flushFrame() {
	erase, redraw := g.dirty.EndFrame()
	if len(erase) == 0 && len(redraw) == 0 {
		return
	}
	g.ctx.Refresh(g.fb, append(erase, redraw...))
}

func (g *Game) renderTitle() {
	g.dirty.BeginFrame()
	if !g.staticDrawn {
		g.fb.Clear(engine.BG)
		g.fb.DrawTextCentered(8, "ASTEROIDS", engine.FG)
		g.fb.DrawTextCentered(22, fmt.Sprintf("BEST %d", g.best), engine.FG)
		drawRock(g.fb, 24, 42, rockBigR)
		drawRock(g.fb, 104, 40, rockMediumR)
		g.fb.DrawTextCentered(52, "PRESS START", engine.FG)
		g.staticDrawn = true
	}
	g.flushFrame()
}

func (g *Game) renderPlaying() {
	g.dirty.BeginFrame()
	for _, r := range g.dirty.PrevRects() {
		g.fb.FillRect(r.X, r.Y, r.W, r.H, engine.BG)
	}
	g.staticDrawn = true

	hud := fmt.Sprintf("%d  /%d", g.score, g.lives)
	g.fb.DrawText(2, 1, hud, engine.FG)
	g.dirty.Mark(engine.NewRect(0, 0, 64, engine.GlyphH+2))

	for i := range g.rocks {
		r := &g.rocks[i]
		x := int(r.X) - rockSize/2
		y := int(r.Y) - rockSize/2
		for _, rect := range g.rockAtlas.BlitWrapped(g.fb, r.Size, x, y, engine.BG, worldW, worldH) {
			g.dirty.Mark(rect)
		}
	}

	for i := range g.bullets {
		g.drawDotWrapped(int(g.bullets[i].X), int(g.bullets[i].Y))
	}

	if g.ship.Alive && !g.invulnBlink() {
		x := int(g.ship.X) - shipSize/2
		y := int(g.ship.Y) - shipSize/2
		for _, rect := range g.shipAtlas.BlitWrapped(g.fb, g.shipFrame(), x, y, engine.BG, worldW, worldH) {
			g.dirty.Mark(rect)
		}
	}

	g.flushFrame()
}

// invulnBlink hides the ship on alternating stripes of the invulnerable
// window so the respawn protection is visible.
func (g *Game) invulnBlink() bool {
	if g.invuln <= 0 {
		return false
	}
	return int(math.Floor(g.invuln*8))%2 == 1
}

// drawDotWrapped paints a 2×2 bullet, repeating it across the torus seam
// when it straddles an edge.
func (g *Game) drawDotWrapped(x, y int) {
	for _, dy := range [3]int{0, -worldH, worldH} {
		for _, dx := range [3]int{0, -worldW, worldW} {
			r := engine.NewRect(x+dx, y+dy, 2, 2).Intersect(g.fb.Bounds())
			if r.Empty() {
				continue
			}
			g.fb.FillRect(r.X, r.Y, r.W, r.H, engine.FG)
			g.dirty.Mark(r)
		}
	}
}

func (g *Game) renderGameOver() {
	g.dirty.BeginFrame()
	if !g.staticDrawn {
		g.fb.Clear(engine.BG)
		g.fb.DrawTextCentered(14, "GAME OVER", engine.FG)
		g.fb.DrawTextCentered(28, fmt.Sprintf("SCORE %d", g.score), engine.FG)
		g.fb.DrawTextCentered(38, fmt.Sprintf("BEST %d", g.best), engine.FG)
		g.fb.DrawTextCentered(52, "START RETRY", engine.FG)
		g.staticDrawn = true
	}
	g.flushFrame()
}
