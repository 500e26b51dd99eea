package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

// LevelSelection is the stage picked in the menu.
type LevelSelection struct {
	Category int
	Level    int
}

// MenuModel is the Bubble Tea model for the category/level picker.
type MenuModel struct {
	cfg       config.PingPongConfig
	category  int
	level     int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	selected  *LevelSelection
	openStats bool
}

// NewMenuModel creates a picker with the cursor on category/level.
func NewMenuModel(cfg config.PingPongConfig, rt core.RuntimeConfig, category, level int) MenuModel {
	m := MenuModel{
		cfg:       cfg,
		width:     rt.ScreenW,
		height:    rt.ScreenH,
		keyMapper: NewKeyMapper(),
	}
	m.category = core.Clamp(category, 1, m.categories())
	m.level = core.Clamp(level, 1, m.levels())
	return m
}

func (m MenuModel) categories() int {
	return core.Max(1, len(m.cfg.Progression.CategoryNames))
}

func (m MenuModel) levels() int {
	return core.Max(1, m.cfg.Progression.LevelsPerCategory)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.level > 1 {
			m.level--
		}

	case MenuActionDown:
		if m.level < m.levels() {
			m.level++
		}

	case MenuActionLeft:
		if m.category > 1 {
			m.category--
		}

	case MenuActionRight:
		if m.category < m.categories() {
			m.category++
		}

	case MenuActionSelect:
		m.selected = &LevelSelection{Category: m.category, Level: m.level}

	case MenuActionStats:
		m.openStats = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T A B L E   T E N N I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a stage", m.width))
	b.WriteString("\n\n")

	for i, name := range m.cfg.Progression.CategoryNames {
		line := fmt.Sprintf("  %2d  %-20s", i+1, name)
		if i+1 == m.category {
			line = activeStyle.Render(fmt.Sprintf("> %2d  %-20s", i+1, name))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	d := m.cfg.Difficulty.Resolve(m.category, m.level)
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("Level %d / %d", m.level, m.levels())), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("bot speed %.5f  serve x%.1f", d.BotSpeed, d.SpeedFactor)), m.width))
	b.WriteString("\n\n")

	controls := "Left/Right: Category  |  Up/Down: Level  |  Enter: Play  |  Tab: Stats  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked stage, or nil if none was picked.
func (m MenuModel) Selected() *LevelSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user requested the stats screen.
func (m MenuModel) WantsStats() bool {
	return m.openStats
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
