// Package viz renders a live terminal view of a running episode.
package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/kestrel-sim/kestrel/internal/catalog"
	"github.com/kestrel-sim/kestrel/internal/env"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps an episode under a random policy and plots its trace.
type Model struct {
	episode *env.Env
	rng     *rand.Rand

	running     bool
	totalReward float64
	lastReward  float64
	lastInfo    string

	altHistory    []float64
	rewardHistory []float64
}

// NewModel wraps an environment for live display. The rng drives the
// random policy.
func NewModel(e *env.Env, rng *rand.Rand) Model {
	m := Model{
		episode:       e,
		rng:           rng,
		running:       true,
		altHistory:    make([]float64, 0, historyCapacity),
		rewardHistory: make([]float64, 0, historyCapacity),
	}
	e.Reset()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

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
		}
	case TickMsg:
		if m.running && !m.episode.Done() {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) reset() {
	m.episode.Reset()
	m.totalReward = 0
	m.lastReward = 0
	m.lastInfo = ""
	m.altHistory = m.altHistory[:0]
	m.rewardHistory = m.rewardHistory[:0]
}

func (m *Model) step() {
	actions := make([][]float64, len(m.episode.Agents()))
	for i := range actions {
		actions[i] = m.episode.Task().ActionSpace().Sample(m.rng)
	}
	results, err := m.episode.Step(actions)
	if err != nil {
		m.lastInfo = err.Error()
		m.running = false
		return
	}
	r := results[0]
	m.lastReward = r.Reward
	m.totalReward += r.Reward
	if name, ok := r.Info["termination"].(string); ok {
		m.lastInfo = name
	}

	sim := m.episode.Agents()[0].Sim
	m.altHistory = appendBounded(m.altHistory, sim.Get(catalog.PositionHSLFt))
	m.rewardHistory = appendBounded(m.rewardHistory, r.Reward)
}

func (m Model) View() string {
	sim := m.episode.Agents()[0].Sim

	var stats strings.Builder
	row := func(label string, format string, args ...any) {
		stats.WriteString(labelStyle.Render(label))
		stats.WriteString(valueStyle.Render(fmt.Sprintf(format, args...)))
		stats.WriteString("\n")
	}
	row("task", "%s", m.episode.Task().Name())
	row("t", "%.1f s", sim.Get(catalog.SimulationSimTimeSec))
	row("altitude", "%.0f ft", sim.Get(catalog.PositionHSLFt))
	row("heading err", "%.1f deg", sim.Get(catalog.DeltaHeadingDeg))
	row("roll", "%.2f rad", sim.Get(catalog.AttitudeRollRad))
	row("pitch", "%.2f rad", sim.Get(catalog.AttitudePitchRad))
	row("airspeed", "%.0f fps", sim.Get(catalog.VelocitiesVcFps))
	row("step reward", "%.3f", m.lastReward)
	row("total reward", "%.2f", m.totalReward)

	graphs := ""
	if len(m.altHistory) > 1 {
		graphs = graphStyle.Render(
			asciigraph.Plot(m.altHistory, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("altitude (ft)")) +
				"\n\n" +
				asciigraph.Plot(m.rewardHistory, asciigraph.Height(6), asciigraph.Width(60), asciigraph.Caption("step reward")))
	}

	status := ""
	if m.episode.Done() {
		status = doneStyle.Render(fmt.Sprintf("episode over: %s", m.lastInfo))
	} else if !m.running {
		status = doneStyle.Render("paused")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, statsStyle.Render(stats.String()), graphs)
	return headerStyle.Render("kestrel live") + "\n" + body + "\n" + status +
		helpStyle.Render("\n[space] pause  [r] reset  [q] quit")
}

func appendBounded(hist []float64, v float64) []float64 {
	if len(hist) >= historyCapacity {
		hist = hist[1:]
	}
	return append(hist, v)
}
