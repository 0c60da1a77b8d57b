package viz

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fractree/internal/export"
	"github.com/san-kum/fractree/internal/render"
	"github.com/san-kum/fractree/internal/tree"
)

const (
	width      = 80
	height     = 24
	panelWidth = 36
	minCols    = 20
	minRows    = 8
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(panelWidth)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Options configures the tree view.
type Options struct {
	WorldWidth  float64
	WorldHeight float64
	FPS         int
	Style       render.Style
	Theme       string
	Seed        int64
	Logger      *log.Logger
}

// Model draws the active tree of a scene onto a braille canvas every frame.
type Model struct {
	scene         *tree.Scene
	canvas        *Canvas
	surface       *CanvasSurface
	style         render.Style
	theme         Theme
	opts          Options
	logger        *log.Logger
	width, height int
	frames        int
	status        string
	showHelp      bool
}

// NewModel builds a view over scene.
func NewModel(scene *tree.Scene, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	m := Model{
		scene:  scene,
		style:  opts.Style,
		theme:  GetTheme(opts.Theme),
		opts:   opts,
		logger: opts.Logger,
	}
	m.resize(width, height)
	return m
}

func (m *Model) resize(cols, rows int) {
	m.width, m.height = max(cols, minCols), max(rows, minRows)
	m.canvas = NewCanvas(m.width, m.height)
	m.surface = NewCanvasSurface(m.canvas, m.opts.WorldWidth, m.opts.WorldHeight)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles selection triggers, theme changes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "b", "1":
			m.selectVariant(tree.Basic)
		case "r", "2":
			m.selectVariant(tree.Random)
		case "c", "3":
			m.selectVariant(tree.Colored)
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.status = "theme: " + m.theme.Name
		case "s":
			m.snapshot()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width-panelWidth-6, msg.Height-3)
	case TickMsg:
		m.frames++
		return m, m.tick()
	}
	return m, nil
}

// selectVariant activates v and regenerates its tree.
func (m *Model) selectVariant(v tree.Variant) {
	start := time.Now()
	m.scene.Select(v)
	m.status = fmt.Sprintf("generated %s", v)
	m.logger.Debug("variant selected", "variant", v, "segments", len(m.scene.Current()), "took", time.Since(start))
}

// snapshot writes the active tree to a PNG in the working directory.
func (m *Model) snapshot() {
	name := fmt.Sprintf("fractree_%s_%d.png", m.scene.Active(), time.Now().Unix())
	f, err := os.Create(name)
	if err != nil {
		m.status = "snapshot failed"
		m.logger.Error("snapshot", "err", err)
		return
	}
	defer f.Close()

	st := m.frameStyle()
	if err := export.PNG(f, m.scene.Current(), st, int(m.opts.WorldWidth), int(m.opts.WorldHeight), 1); err != nil {
		m.status = "snapshot failed"
		m.logger.Error("snapshot", "err", err)
		return
	}
	m.status = "saved " + name
	m.logger.Info("snapshot saved", "file", name)
}

func (m Model) frameStyle() render.Style {
	st := m.style
	st.Background = m.theme.CanvasColor()
	return st
}

// draw renders the active sequence from scratch.
func (m Model) draw() {
	render.Render(m.surface, m.scene.Current(), m.frameStyle())
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.Styled(m.surface.Background()))

	header := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).MarginBottom(1)
	active := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)

	seq := m.scene.Current()
	var s strings.Builder
	s.WriteString(header.Render("FRACTREE") + "\n")
	for _, v := range tree.Variants {
		label := fmt.Sprintf("%d %s", int(v)+1, v)
		if v == m.scene.Active() {
			s.WriteString(active.Render("▸ "+label) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(label) + "\n")
		}
	}
	s.WriteString("\n")

	rule := tree.RuleFor(m.scene.Active())
	s.WriteString(labelStyle.Render("Segments") + valueStyle.Render(fmt.Sprintf("%d", len(seq))) + "\n")
	s.WriteString(labelStyle.Render("Depth") + valueStyle.Render(fmt.Sprintf("%d", rule.MaxLevel)) + "\n")
	s.WriteString(labelStyle.Render("Seed") + valueStyle.Render(fmt.Sprintf("%d", m.opts.Seed)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")
	s.WriteString(labelStyle.Render("Frames") + valueStyle.Render(fmt.Sprintf("%d", m.frames)) + "\n")

	if means := seq.MeanLengthByDepth(); len(means) > 1 {
		chart := asciigraph.Plot(means, asciigraph.Height(5), asciigraph.Width(panelWidth-12), asciigraph.Caption("length by depth"))
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Primary).Render(chart) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.status) + "\n")
	}
	s.WriteString(helpStyle.Render("─────────────────────\nB/1 R/2 C/3:Grow  T:Theme\nS:Snapshot ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  B / 1    - Grow a basic tree        ║
║  R / 2    - Grow a random tree       ║
║  C / 3    - Grow a colored tree      ║
║  T        - Cycle themes             ║
║  S        - Save PNG snapshot        ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
