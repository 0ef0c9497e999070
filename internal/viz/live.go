// Package viz is the terminal frontend: a bubbletea program drawing
// the system onto a braille canvas with the same toggle semantics as
// the GUI.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/marek-sk/orbitsim/internal/config"
	"github.com/marek-sk/orbitsim/internal/physics"
	"github.com/marek-sk/orbitsim/internal/screen"
	"github.com/marek-sk/orbitsim/internal/sim"
)

const (
	canvasWidth     = 70
	canvasHeight    = 24
	historyCapacity = 400
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Model struct {
	cfg    *config.Config
	sim    *sim.Simulator
	proj   screen.Projector
	trails *screen.TrailSet
	canvas *Canvas

	orbitsVisible bool
	paused        bool
	speed         int

	energyHistory []float64
}

// NewModel builds the terminal view for an already-validated config.
func NewModel(cfg *config.Config) (Model, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return Model{}, err
	}

	gravity := physics.NewGravity()
	gravity.Softening = cfg.Softening

	speed := cfg.Speed
	if speed < 1 {
		speed = 1
	}

	c := NewCanvas(canvasWidth, canvasHeight)
	pw, ph := c.PixelSize()

	// Shrink the configured pixel scale to the dot surface.
	scale := cfg.Scale * float64(pw) / float64(cfg.Window.Width)

	return Model{
		cfg:           cfg,
		sim:           sim.New(reg, gravity),
		proj:          screen.NewProjector(pw, ph, scale),
		trails:        screen.NewTrailSet(reg.Len()),
		canvas:        c,
		orbitsVisible: true,
		speed:         speed,
		energyHistory: make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "o":
			m.orbitsVisible = !m.orbitsVisible
		case " ":
			m.paused = !m.paused
		case "+", "=":
			if m.speed < 1024 {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "r":
			m.sim.Reset()
			m.trails.Reset()
			m.energyHistory = m.energyHistory[:0]
		}
	case TickMsg:
		if !m.paused {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	for i := 0; i < m.speed; i++ {
		m.sim.Tick(m.cfg.Dt)
	}

	if m.orbitsVisible {
		m.trails.Extend(m.proj, m.sim.Registry().Bodies())
	}

	m.energyHistory = append(m.energyHistory, m.sim.Gravity().Energy(m.sim.Registry().Bodies()))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *Model) drawCanvas() {
	m.canvas.Clear()
	bodies := m.sim.Registry().Bodies()

	if m.orbitsVisible {
		for i, b := range bodies {
			if b.Anchor {
				continue
			}
			points := m.trails.Trail(i).Points()
			for j := 1; j < len(points); j++ {
				m.canvas.Line(int(points[j-1].X), int(points[j-1].Y),
					int(points[j].X), int(points[j].Y))
			}
		}
	}

	for _, b := range bodies {
		p := m.proj.Project(b.Pos)
		// Marker radius in dots, kept small; the configured pixel
		// radius is meant for the GUI surface.
		r := int(b.RenderRadius / 4)
		if r > 3 {
			r = 3
		}
		m.canvas.Disc(int(p.X), int(p.Y), r)
	}
}

func (m Model) View() string {
	m.drawCanvas()

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.cfg.Window.Title)) + "\n")

	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	days := m.sim.Elapsed(m.cfg.Dt) / 86400
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1f days", days)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%dx", m.speed)) + "\n")
	orbits := "on"
	if !m.orbitsVisible {
		orbits = "off"
	}
	s.WriteString(labelStyle.Render("Orbits") + valueStyle.Render(orbits) + "\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("total energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\nBODIES\n")
	for _, b := range m.sim.Registry().Bodies() {
		au := b.Pos.Norm() / 1.496e11
		s.WriteString(fmt.Sprintf("  %-8s %7.3f AU\n", b.Name, au))
	}

	s.WriteString(helpStyle.Render("O:Orbits SP:Pause +/-:Speed R:Reset Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()))
}
