package pacman

import "merlinpad/internal/engine"

// Tile atlas frame indices.
const (
	frameWall = iota
	framePellet
	framePower
)

// buildTileAtlas rasterizes the three drawable tile styles once; board
// painting is then pure blitting.
func buildTileAtlas() *engine.Atlas {
	return engine.BuildAtlas(3, tileSize, tileSize, func(i int, f *engine.Framebuffer) {
		switch i {
		case frameWall:
			f.FillRect(1, 1, tileSize-2, tileSize-2, engine.FG)
		case framePellet:
			f.FillRect(3, 3, 2, 2, engine.FG)
		case framePower:
			f.RectOutline(2, 2, 4, 4, engine.FG)
		}
	})
}

// drawPlayer paints the player at a screen position: a solid block with
// a mouth notch on the facing side.
func drawPlayer(f *engine.Framebuffer, sx, sy int, d Direction) {
	f.FillRect(sx+1, sy+1, 6, 6, engine.FG)
	cx, cy := sx+4, sy+4
	switch d {
	case DirLeft:
		f.SetPixel(cx-2, cy-1, engine.BG)
		f.SetPixel(cx-3, cy-1, engine.BG)
	case DirUp:
		f.SetPixel(cx-1, cy-2, engine.BG)
		f.SetPixel(cx-1, cy-3, engine.BG)
	case DirDown:
		f.SetPixel(cx-1, cy+1, engine.BG)
		f.SetPixel(cx-1, cy+2, engine.BG)
	default: // right, also the idle pose
		f.SetPixel(cx+1, cy-1, engine.BG)
		f.SetPixel(cx+2, cy-1, engine.BG)
	}
}

// drawGhost paints a ghost: a dome with legs, hollow while frightened.
func drawGhost(f *engine.Framebuffer, sx, sy int, fright bool) {
	if fright {
		f.RectOutline(sx+1, sy+1, 6, 6, engine.FG)
		f.SetPixel(sx+3, sy+3, engine.FG)
		f.SetPixel(sx+4, sy+3, engine.FG)
		return
	}
	f.FillRect(sx+1, sy+2, 6, 4, engine.FG)
	f.HLine(sx+2, sx+5, sy+1, engine.FG)
	f.SetPixel(sx+1, sy+6, engine.FG)
	f.SetPixel(sx+3, sy+6, engine.FG)
	f.SetPixel(sx+4, sy+6, engine.FG)
	f.SetPixel(sx+6, sy+6, engine.FG)
	// Eyes read as background holes.
	f.SetPixel(sx+2, sy+3, engine.BG)
	f.SetPixel(sx+5, sy+3, engine.BG)
}
