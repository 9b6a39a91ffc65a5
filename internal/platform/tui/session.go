package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"merlinpad/internal/config"
	"merlinpad/internal/registry"
	"merlinpad/internal/settings"
)

type sessionState int

const (
	stateMenu sessionState = iota
	statePlaying
	stateScores
)

// SessionModel runs the full arcade flow inside one Bubble Tea program:
// menu, game, scoreboard and back. SSH sessions need this because each
// connection gets exactly one program.
type SessionModel struct {
	state     sessionState
	store     *settings.Store
	logger    *log.Logger
	engineCfg config.EngineConfig

	menu   MenuModel
	game   *GameModel
	scores ScoreboardModel

	width, height int
	quitting      bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *settings.Store, logger *log.Logger, engineCfg config.EngineConfig) SessionModel {
	return SessionModel{
		state:     stateMenu,
		store:     store,
		logger:    logger,
		engineCfg: engineCfg,
		menu:      NewMenuModel(store),
		width:     80,
		height:    24,
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		m.quitting = true
		if m.state == statePlaying && m.game != nil {
			m.game.game.Cleanup()
		}
		return m, tea.Quit
	}

	switch m.state {
	case stateMenu:
		return m.updateMenu(msg)
	case statePlaying:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	}
	return m, nil
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	menu, ok := next.(MenuModel)
	if !ok {
		return m, cmd
	}
	m.menu = menu

	switch {
	case menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case menu.WantsScores():
		m.state = stateScores
		m.scores = NewScoreboardModel(m.store, m.width, m.height)
		m.menu = NewMenuModel(m.store)
		return m, m.scores.Init()
	case menu.Selected() != "":
		id := menu.Selected()
		sim := NewSimulator()
		game, err := registry.Create(id, sim.Context(m.store, m.logger))
		if err != nil {
			m.menu = NewMenuModel(m.store)
			return m, nil
		}
		m.state = statePlaying
		m.game = NewGameModel(game, sim, m.engineCfg)
		m.menu = NewMenuModel(m.store)
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	// q leaves the game back to the menu instead of quitting.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "q" {
		m.game.game.Cleanup()
		m.game = nil
		m.state = stateMenu
		m.menu = NewMenuModel(m.store) // re-read the high scores
		return m, nil
	}

	next, cmd := m.game.Update(msg)
	if game, ok := next.(*GameModel); ok {
		m.game = game
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	scores, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	m.scores = scores
	if scores.quitting {
		m.state = stateMenu
		m.menu = NewMenuModel(m.store)
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case statePlaying:
		if m.game != nil {
			return m.game.View()
		}
	case stateScores:
		return m.scores.View()
	}
	return m.menu.View()
}
