// Package tui simulates the keypad hardware in a terminal: the Bubble
// Tea loop drives game ticks, keyboard input stands in for the 12-key
// pad and the rotary encoder, and the OLED and LED strip are rendered
// with half-block glyphs and colored dots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
