package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/geom"
	"github.com/san-kum/veer/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 30
	historyCapacity = 600
	trailCapacity   = 900

	// Sensor zone thresholds, pixels. Inside dangerZone the reactive
	// rule brakes, inside warnZone it slows down.
	dangerZone = 80.0
	warnZone   = 120.0
)

type TickMsg time.Time

// Model steps one world at 60 FPS and renders it on a braille canvas
// with a stats panel beside it.
type Model struct {
	world  *sim.World
	canvas *Canvas
	scale  float64

	running  bool
	frames   int
	themeIdx int
	st       styles

	trail        []geom.Vec
	speedHistory []float64
}

// NewModel wraps a world for live viewing. An unknown theme name
// falls back to the default theme.
func NewModel(w *sim.World, theme string) Model {
	idx := 0
	for i, t := range Themes {
		if t.Name == theme {
			idx = i
			break
		}
	}

	return Model{
		world:        w,
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		scale:        float64(canvasWidth*2) / w.Track.Width,
		running:      true,
		themeIdx:     idx,
		st:           newStyles(Themes[idx]),
		trail:        make([]geom.Vec, 0, trailCapacity),
		speedHistory: make([]float64, 0, historyCapacity),
	}
}

// Run starts the live view and blocks until the user quits.
func Run(w *sim.World, theme string) error {
	p := tea.NewProgram(NewModel(w, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(Themes)
			m.st = newStyles(Themes[m.themeIdx])
		}
	case TickMsg:
		if m.running && m.world.Status() == sim.StatusDriving {
			m.step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances the world by one frame and records the buffers the
// panel draws from.
func (m *Model) step() {
	m.world.Step()
	m.frames++

	m.trail = append(m.trail, m.world.Car().Pos)
	if len(m.trail) > trailCapacity {
		m.trail = m.trail[1:]
	}

	m.speedHistory = append(m.speedHistory, m.world.Car().Speed)
	if len(m.speedHistory) > historyCapacity {
		m.speedHistory = m.speedHistory[1:]
	}
}

// reset respawns the car and clears the trail and history.
func (m *Model) reset() {
	m.world.Reset()
	m.trail = m.trail[:0]
	m.speedHistory = m.speedHistory[:0]
	m.frames = 0
	m.running = true
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := m.st.canvas.Render(m.canvas.String())

	cur := m.world.Car()
	readings := m.world.Sense()

	var s strings.Builder
	s.WriteString(m.st.header.Render(strings.ToUpper(m.world.Track.Name)) + "\n")

	status := m.st.running.Render("RUNNING")
	if m.world.Status() == sim.StatusCollided {
		status = m.st.collided.Render("COLLIDED · R to respawn")
	} else if !m.running {
		status = m.st.paused.Render("PAUSED")
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Speed"))
		s.WriteString(m.st.graph.Render(chart) + "\n\n")
	}

	s.WriteString(m.st.label.Render("Distance") + m.st.value.Render(fmt.Sprintf("%.0f px", m.world.Distance())) + "\n")
	s.WriteString(m.st.label.Render("Speed") + m.st.value.Render(fmt.Sprintf("%.2f px/f", cur.Speed)) + "\n")
	s.WriteString(m.st.label.Render("Heading") + m.st.value.Render(fmt.Sprintf("%.1f°", cur.Heading)) + "\n")
	s.WriteString(m.st.label.Render("Frames") + m.st.value.Render(fmt.Sprintf("%d", m.frames)) + "\n")

	s.WriteString("\nSENSORS\n")
	for _, rd := range readings {
		bar := readingBar(rd.Distance/m.world.Rig.Range, 10)
		line := fmt.Sprintf("%-6s %s %4.0f", bearingName(rd.Bearing), bar, rd.Distance)
		s.WriteString("  " + m.zoneStyle(rd.Distance).Render(line) + "\n")
	}

	s.WriteString(m.st.help.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme"))
	statsView := m.st.panel.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// zoneStyle picks the color for a sensor readout by how close the
// obstacle is.
func (m Model) zoneStyle(distance float64) lipgloss.Style {
	switch {
	case distance < dangerZone:
		return m.st.danger
	case distance < warnZone:
		return m.st.warn
	default:
		return m.st.safe
	}
}

func bearingName(bearing float64) string {
	switch {
	case bearing < 0:
		return "left"
	case bearing > 0:
		return "right"
	default:
		return "ahead"
	}
}

// project maps world coordinates to canvas sub-pixels. Both spaces
// are y-down, so only the scale applies.
func (m *Model) project(p geom.Vec) (int, int) {
	return int(p.X * m.scale), int(p.Y * m.scale)
}

// draw repaints the canvas: track walls, trail, sensor rays, car.
func (m *Model) draw() {
	m.canvas.Clear()

	for _, r := range m.world.Track.Rects {
		x0, y0 := m.project(geom.Vec{X: r.X, Y: r.Y})
		x1, y1 := m.project(geom.Vec{X: r.X + r.W, Y: r.Y + r.H})
		m.canvas.DrawRect(x0, y0, x1-x0, y1-y0)
	}

	for _, p := range m.trail {
		x, y := m.project(p)
		m.canvas.Set(x, y)
	}

	cur := m.world.Car()
	cx, cy := m.project(cur.Pos)
	for _, rd := range m.world.Sense() {
		dir := geom.FromDeg(cur.Heading + rd.Bearing)
		ex, ey := m.project(cur.Pos.Add(dir.Scale(rd.Distance)))
		m.canvas.DrawLine(cx, cy, ex, ey)
	}

	corners := car.Body(cur, m.world.Params).Corners()
	for i := range corners {
		x0, y0 := m.project(corners[i])
		x1, y1 := m.project(corners[(i+1)%len(corners)])
		m.canvas.DrawLine(x0, y0, x1, y1)
	}

	nx, ny := m.project(cur.Pos.Add(geom.FromDeg(cur.Heading).Scale(m.world.Params.Length / 2)))
	m.canvas.DrawLine(cx, cy, nx, ny)
}
