package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"merlinpad/internal/registry"
	"merlinpad/internal/settings"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	menuScoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	items    []registry.Info
	best     map[string]int
	cursor   int
	width    int
	keymap   *KeyMapper
	quitting bool
	selected string
	scores   bool
}

// NewMenuModel creates a menu over every registered game, annotated
// with the stored high scores.
func NewMenuModel(store *settings.Store) MenuModel {
	items := registry.List()
	best := make(map[string]int, len(items))
	for _, it := range items {
		best[it.ID], _ = store.HighScore(it.ID)
	}
	return MenuModel{
		items:  items,
		best:   best,
		width:  80,
		keymap: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keymap.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				m.selected = m.items[m.cursor].ID
				return m, tea.Quit
			}
		case MenuActionScores:
			m.scores = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M E R L I N P A D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%-14s %s", cursor, item.Title,
			menuScoreStyle.Render(fmt.Sprintf("best %d", m.best[item.ID])))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuScoreStyle.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen game ID, or empty.
func (m MenuModel) Selected() string {
	return m.selected
}

// WantsScores reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScores() bool {
	return m.scores
}

// IsQuitting reports whether the player backed out of the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	padding := (width - lipgloss.Width(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the outcome of one menu run.
type MenuResult struct {
	GameID      string
	WantsScores bool
	Quit        bool
}

// RunMenu runs the picker and returns the selection.
func RunMenu(store *settings.Store) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}
	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	switch {
	case m.WantsScores():
		return MenuResult{WantsScores: true}, nil
	case m.Selected() != "":
		return MenuResult{GameID: m.Selected()}, nil
	default:
		return MenuResult{Quit: true}, nil
	}
}
