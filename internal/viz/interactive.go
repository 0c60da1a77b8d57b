package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fractree/internal/tree"
)

var variantInfo = map[tree.Variant]string{
	tree.Basic:   "symmetric, fixed 20° turns",
	tree.Random:  "jittered angles and lengths",
	tree.Colored: "jitter, lighter and thinner with depth",
}

const (
	stateMenu = iota
	stateTree
)

type model struct {
	state, cursor int
	view          Model
}

// NewInteractiveApp opens on a variant menu; choosing an entry grows that
// tree and switches to the tree view.
func NewInteractiveApp(scene *tree.Scene, opts Options) *model {
	return &model{state: stateMenu, view: NewModel(scene, opts)}
}

func (m model) Init() tea.Cmd { return m.view.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateMenu {
			return m.menuKey(msg)
		}
		if msg.String() == "esc" {
			m.state = stateMenu
			return m, nil
		}
	}
	next, cmd := m.view.Update(msg)
	m.view = next.(Model)
	return m, cmd
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(tree.Variants)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.view.selectVariant(tree.Variants[m.cursor])
		m.state = stateTree
	}
	return m, nil
}

func (m model) View() string {
	if m.state == stateTree {
		return m.view.View()
	}
	return m.viewMenu()
}

func (m model) viewMenu() string {
	var b strings.Builder
	h, sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#2e7d32")).Bold(true), lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	b.WriteString("\n\n    " + h.Render("FRACTREE") + "\n    " + sub.Render("fractal tree generator") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, v := range tree.Variants {
		name := fmt.Sprintf("%-10s", v)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("#9ccc65")).Bold(true).Render("▸"), lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Render(name), lipgloss.NewStyle().Foreground(lipgloss.Color("#c5e1a5")).Render(variantInfo[v])))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("#555566")).Render("  "+name), lipgloss.NewStyle().Foreground(lipgloss.Color("#444455")).Render(variantInfo[v])))
		}
	}
	key, desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true), lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	b.WriteString("\n    " + key.Render("j/k") + desc.Render(" navigate  ") + key.Render("enter") + desc.Render(" grow  ") + key.Render("q") + desc.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive starts the menu-driven terminal UI.
func RunInteractive(scene *tree.Scene, opts Options) error {
	_, err := tea.NewProgram(NewInteractiveApp(scene, opts), tea.WithAltScreen()).Run()
	return err
}

// Run starts the terminal UI directly on the tree view.
func Run(scene *tree.Scene, opts Options) error {
	_, err := tea.NewProgram(NewModel(scene, opts), tea.WithAltScreen()).Run()
	return err
}
