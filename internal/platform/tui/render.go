package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"merlinpad/internal/engine"
)

var (
	screenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("233"))
	bezelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	offLed     = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

// RenderFrame converts the 1-bit framebuffer to terminal text, packing
// two pixel rows into each line with half-block glyphs.
func RenderFrame(fb *engine.Framebuffer) string {
	if fb == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow((fb.Width() + 1) * (fb.Height()/2 + 1))

	for y := 0; y < fb.Height(); y += 2 {
		var line strings.Builder
		for x := 0; x < fb.Width(); x++ {
			top := fb.Pixel(x, y) == engine.FG
			bot := y+1 < fb.Height() && fb.Pixel(x, y+1) == engine.FG
			switch {
			case top && bot:
				line.WriteRune('█')
			case top:
				line.WriteRune('▀')
			case bot:
				line.WriteRune('▄')
			default:
				line.WriteRune(' ')
			}
		}
		sb.WriteString(screenStyle.Render(line.String()))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// RenderLeds draws the 12-pad LED grid as 4 rows of 3 colored dots,
// mirroring the physical key layout.
func RenderLeds(leds [engine.LedCount]engine.RGB) string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		sb.WriteString("  ")
		for col := 0; col < 3; col++ {
			c := leds[row*3+col]
			if (c == engine.RGB{}) {
				sb.WriteString(offLed.Render("·"))
			} else {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%06X", c.Hex())))
				sb.WriteString(style.Render("●"))
			}
			sb.WriteString(" ")
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// renderBezel frames the screen and pad like the device front plate.
func renderBezel(frame, pad, footer string) string {
	screen := bezelStyle.Render(strings.Repeat("─", engine.ScreenW)) + "\n" + frame
	body := lipgloss.JoinHorizontal(lipgloss.Top, screen, "  ", pad)
	return body + helpStyle.Render(footer) + "\n"
}
