package snake

import (
	"fmt"

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
		g.fb.DrawTextCentered(8, "SNAKE", engine.FG)
		g.fb.DrawTextCentered(20, fmt.Sprintf("BEST %d", g.best), engine.FG)
		g.drawSpeedGauge(34)
		g.fb.DrawTextCentered(52, "PRESS START", engine.FG)
		g.staticDrawn = true
	}
	g.flushFrame()
}

// drawSpeedGauge renders the encoder-selected start speed as a row of
// boxes, filled up to the selection.
func (g *Game) drawSpeedGauge(y int) {
	const boxW, boxH, gap = 8, 6, 3
	total := speedLevels*boxW + (speedLevels-1)*gap
	x := (engine.ScreenW - total) / 2
	for i := 0; i < speedLevels; i++ {
		bx := x + i*(boxW+gap)
		if i <= g.speedSel {
			g.fb.FillRect(bx, y, boxW, boxH, engine.FG)
		} else {
			g.fb.RectOutline(bx, y, boxW, boxH, engine.FG)
		}
	}
}

func (g *Game) renderPlaying() {
	g.dirty.BeginFrame()
	for _, r := range g.dirty.PrevRects() {
		g.fb.FillRect(r.X, r.Y, r.W, r.H, engine.BG)
	}
	if !g.staticDrawn {
		for p := range g.walls {
			x, y := g.cellOrigin(p)
			g.fb.FillRect(x, y, g.cell, g.cell, engine.FG)
		}
		g.staticDrawn = true
	}

	g.fb.DrawText(2, 1, g.scoreLine(), engine.FG)
	g.dirty.Mark(engine.NewRect(0, 0, engine.ScreenW, hudHeight-1))

	for i, seg := range g.snake {
		x, y := g.cellOrigin(seg)
		if i == 0 {
			g.fb.FillRect(x, y, g.cell, g.cell, engine.FG)
		} else {
			g.fb.RectOutline(x, y, g.cell, g.cell, engine.FG)
		}
		g.dirty.Mark(engine.NewRect(x, y, g.cell, g.cell))
	}

	if g.food.X >= 0 {
		x, y := g.cellOrigin(g.food)
		g.fb.FillRect(x+1, y+1, g.cell-2, g.cell-2, engine.FG)
		g.dirty.Mark(engine.NewRect(x, y, g.cell, g.cell))
	}

	g.flushFrame()
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

// cellOrigin maps a grid cell to its top-left pixel below the HUD.
func (g *Game) cellOrigin(p Point) (int, int) {
	return p.X * g.cell, hudHeight + p.Y*g.cell
}
