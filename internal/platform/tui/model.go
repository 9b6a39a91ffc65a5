package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"merlinpad/internal/config"
	"merlinpad/internal/registry"
	"merlinpad/internal/settings"
)

// holdWindow is how long an emulated key press stays down after the
// last key message. Terminals only report key-down, so a held key is
// reconstructed from auto-repeat: each repeat refreshes the deadline,
// and silence releases the key. Long-presses therefore need key repeat
// enabled in the terminal.
const holdWindow = 250 * time.Millisecond

// GameModel is the Bubble Tea model hosting one game on the simulated
// keypad.
type GameModel struct {
	game       registry.Game
	sim        *Simulator
	keymap     *KeyMapper
	tickRate   int
	pressed    map[int]time.Time // pad key -> emulated release deadline
	encoderPos int
	quitting   bool
}

// NewGameModel creates a model for an already-constructed game.
func NewGameModel(game registry.Game, sim *Simulator, engineCfg config.EngineConfig) *GameModel {
	return &GameModel{
		game:     game,
		sim:      sim,
		keymap:   NewKeyMapper(),
		tickRate: engineCfg.TickRate,
		pressed:  make(map[int]time.Time),
	}
}

// Init starts the game and the tick loop.
func (m *GameModel) Init() tea.Cmd {
	m.game.NewGame()
	return tickCmd(m.tickRate)
}

// Update handles messages.
func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case TickMsg:
		return m, m.handleTick()
	}
	return m, nil
}

func (m *GameModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.keymap.IsQuit(msg) {
		m.quitting = true
		m.game.Cleanup()
		return tea.Quit
	}

	if delta := m.keymap.EncoderDelta(msg); delta != 0 {
		old := m.encoderPos
		m.encoderPos += delta
		m.game.EncoderChanged(m.encoderPos, old)
		return nil
	}

	if key, ok := m.keymap.PadKey(msg); ok {
		if _, down := m.pressed[key]; !down {
			m.game.Button(key, true)
		}
		m.pressed[key] = time.Now().Add(holdWindow)
	}
	return nil
}

func (m *GameModel) handleTick() tea.Cmd {
	now := time.Now()
	for key, deadline := range m.pressed {
		if now.After(deadline) {
			delete(m.pressed, key)
			m.game.Button(key, false)
		}
	}
	m.game.Tick()
	return tickCmd(m.tickRate)
}

// View renders the simulated device.
func (m *GameModel) View() string {
	if m.quitting {
		return ""
	}
	footer := "arrows/wasd d-pad · space fire · enter start · esc menu · ,/. dial · q quit"
	return renderBezel(RenderFrame(m.sim.Frame()), RenderLeds(m.sim.Leds()), footer)
}

// RunGame runs a single game by ID until the player quits.
func RunGame(id string, store *settings.Store, engineCfg config.EngineConfig) error {
	sim := NewSimulator()
	game, err := registry.Create(id, sim.Context(store, nil))
	if err != nil {
		return err
	}
	defer game.Cleanup()

	model := NewGameModel(game, sim, engineCfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
