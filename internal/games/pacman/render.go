package pacman

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
		g.fb.DrawTextCentered(8, "MAZE CHASE", engine.FG)
		g.fb.DrawTextCentered(22, fmt.Sprintf("BEST %d", g.best), engine.FG)
		drawPlayer(g.fb, 48, 36, DirRight)
		drawGhost(g.fb, 70, 36, false)
		g.fb.DrawTextCentered(52, "PRESS START", engine.FG)
		g.staticDrawn = true
	}
	g.flushFrame()
}

// tileScreenRect maps a tile to its on-screen rect for the current
// camera position.
func (g *Game) tileScreenRect(p Point) engine.Rect {
	sx := p.X*tileSize - int(g.cam.X)
	sy := p.Y*tileSize - int(g.cam.Y) + hudHeight
	return engine.NewRect(sx, sy, tileSize, tileSize)
}

// markTile records a tile as dirty, for pellet removal under the player.
func (g *Game) markTile(p Point) {
	g.dirty.Mark(g.tileScreenRect(p).Intersect(g.fb.Bounds()))
}

func (g *Game) renderPlaying() {
	// A camera scroll moves every tile, so incremental tracking is
	// pointless for that frame.
	if int(g.cam.Y) != g.lastCamY {
		g.lastCamY = int(g.cam.Y)
		g.dirty.ForceFull()
		g.staticDrawn = false
	}

	g.dirty.BeginFrame()
	if !g.staticDrawn {
		g.fb.Clear(engine.BG)
		g.drawBoardRegion(g.fb.Bounds())
		g.staticDrawn = true
	} else {
		for _, r := range g.dirty.PrevRects() {
			g.fb.FillRect(r.X, r.Y, r.W, r.H, engine.BG)
			g.drawBoardRegion(r)
		}
	}

	// The HUD band is repainted after the board so a tile row straddling
	// the band boundary cannot bleed into it.
	hud := fmt.Sprintf("%d  /%d", g.score, g.lives)
	g.fb.FillRect(0, 0, engine.ScreenW, hudHeight, engine.BG)
	g.fb.DrawText(2, 1, hud, engine.FG)
	g.dirty.Mark(engine.NewRect(0, 0, engine.ScreenW, hudHeight))

	for i := range g.ghosts {
		gh := &g.ghosts[i]
		r := g.tileScreenRect(gh.Pos)
		drawGhost(g.fb, r.X, r.Y, gh.Fright)
		g.dirty.Mark(r.Intersect(g.fb.Bounds()))
	}

	pr := g.tileScreenRect(g.player)
	drawPlayer(g.fb, pr.X, pr.Y, g.dir)
	g.dirty.Mark(pr.Intersect(g.fb.Bounds()))

	g.flushFrame()
}

// drawBoardRegion repaints the maze tiles intersecting a screen-space
// region. Erasing a sprite also erases the board under it; this puts the
// pellets and walls back.
func (g *Game) drawBoardRegion(r engine.Rect) {
	camY := int(g.cam.Y)
	x0 := (r.X + int(g.cam.X)) / tileSize
	y0 := (r.Y - hudHeight + camY) / tileSize
	x1 := (r.Right() - 1 + int(g.cam.X)) / tileSize
	y1 := (r.Bottom() - 1 - hudHeight + camY) / tileSize

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			p := Point{tx, ty}
			var frame int
			switch g.maze.At(p) {
			case TileWall:
				frame = frameWall
			case TilePellet:
				frame = framePellet
			case TilePower:
				frame = framePower
			default:
				continue
			}
			tr := g.tileScreenRect(p)
			if tr.Bottom() <= hudHeight {
				continue // fully hidden behind the HUD band
			}
			g.tileAtlas.Blit(g.fb, frame, tr.X, tr.Y, engine.BG)
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
