package engine

// A 3×5 pixel font covering digits, uppercase letters and the handful of
// punctuation the games print. Each glyph is 15 bits, row-major from the
// top-left. Lowercase input is folded to uppercase; unknown runes render
// as blank cells so text drawing is total like everything else here.

// GlyphW and GlyphH are the cell size of the built-in font; AdvanceW
// includes the one-pixel gap between characters.
const (
	GlyphW   = 3
	GlyphH   = 5
	AdvanceW = GlyphW + 1
)

var font3x5 = map[rune]uint16{
	'A': 0b010_101_111_101_101,
	'B': 0b110_101_110_101_110,
	'C': 0b011_100_100_100_011,
	'D': 0b110_101_101_101_110,
	'E': 0b111_100_110_100_111,
	'F': 0b111_100_110_100_100,
	'G': 0b011_100_101_101_011,
	'H': 0b101_101_111_101_101,
	'I': 0b111_010_010_010_111,
	'J': 0b001_001_001_101_010,
	'K': 0b101_110_100_110_101,
	'L': 0b100_100_100_100_111,
	'M': 0b101_111_101_101_101,
	'N': 0b110_101_101_101_101,
	'O': 0b010_101_101_101_010,
	'P': 0b110_101_110_100_100,
	'Q': 0b010_101_101_110_011,
	'R': 0b110_101_110_110_101,
	'S': 0b011_100_010_001_110,
	'T': 0b111_010_010_010_010,
	'U': 0b101_101_101_101_111,
	'V': 0b101_101_101_101_010,
	'W': 0b101_101_101_111_101,
	'X': 0b101_101_010_101_101,
	'Y': 0b101_101_010_010_010,
	'Z': 0b111_001_010_100_111,
	'0': 0b111_101_101_101_111,
	'1': 0b010_110_010_010_111,
	'2': 0b111_001_111_100_111,
	'3': 0b111_001_011_001_111,
	'4': 0b101_101_111_001_001,
	'5': 0b111_100_111_001_111,
	'6': 0b111_100_111_101_111,
	'7': 0b111_001_001_010_010,
	'8': 0b111_101_111_101_111,
	'9': 0b111_101_111_001_111,
	'-': 0b000_000_111_000_000,
	'.': 0b000_000_000_000_010,
	':': 0b000_010_000_010_000,
	'!': 0b010_010_010_000_010,
	'>': 0b100_010_001_010_100,
	'<': 0b001_010_100_010_001,
	'/': 0b001_001_010_100_100,
	' ': 0,
}

// DrawText renders s at (x, y) in color c and returns the touched region
// clipped to the buffer. Only set bits are painted; the background shows
// through, so callers erase via the dirty tracker like any other sprite.
func (f *Framebuffer) DrawText(x, y int, s string, c Color) Rect {
	cx := x
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		bits := font3x5[r]
		for row := 0; row < GlyphH; row++ {
			for col := 0; col < GlyphW; col++ {
				if bits&(1<<uint(14-(row*GlyphW+col))) != 0 {
					f.SetPixel(cx+col, y+row, c)
				}
			}
		}
		cx += AdvanceW
	}
	return NewRect(x, y, cx-x-1, GlyphH).Intersect(f.Bounds())
}

// TextWidth returns the pixel width of s in the built-in font.
func TextWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	if n == 0 {
		return 0
	}
	return n*AdvanceW - 1
}

// DrawTextCentered renders s horizontally centered in the buffer.
func (f *Framebuffer) DrawTextCentered(y int, s string, c Color) Rect {
	return f.DrawText((f.Width()-TextWidth(s))/2, y, s, c)
}
