// Package countdown is the full-screen rest timer of the sport page.
package countdown

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/planner/pkg/theme"
	"tableflip.dev/planner/pkg/ticker"
)

// tickMsg carries the run it was scheduled for so ticks of a stopped run are
// dropped.
type tickMsg struct {
	run int
}

// Model drives a ticker.Countdown from one-second tea.Tick messages.
type Model struct {
	countdown *ticker.Countdown
	presets   []int
	theme     theme.Theme
	run       int
	status    string
	interval  time.Duration
}

// New arms a countdown with preset seconds, to be picked among presets.
func New(presets []int, preset int) (Model, error) {
	c, err := ticker.NewCountdown(preset)
	if err != nil {
		return Model{}, err
	}
	if !slices.Contains(presets, preset) {
		presets = append(slices.Clone(presets), preset)
		slices.Sort(presets)
	}
	return Model{
		countdown: c,
		presets:   presets,
		theme:     theme.ForPage(theme.Sport),
		status:    "Prêt",
		interval:  time.Second,
	}, nil
}

// Countdown exposes the state machine for inspection.
func (m Model) Countdown() *ticker.Countdown { return m.countdown }

func (m Model) tick() tea.Cmd {
	run := m.run
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{run: run} })
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.run != m.run || !m.countdown.Running() {
			return m, nil
		}
		if m.countdown.Tick() {
			m.status = "Terminé !"
			return m, nil
		}
		return m, m.tick()
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.countdown.Stop()
			return m, tea.Quit
		case "enter", "space", "s":
			if m.countdown.Start() {
				m.run++
				m.status = "En cours"
				return m, m.tick()
			}
		case "esc", "x":
			if m.countdown.Running() {
				m.countdown.Stop()
				m.run++
				m.status = "Arrêté"
			}
		case "left", "h":
			m.shiftPreset(-1)
		case "right", "l", "tab":
			m.shiftPreset(1)
		}
	}
	return m, nil
}

func (m *Model) shiftPreset(by int) {
	if m.countdown.Running() {
		return
	}
	i := slices.Index(m.presets, m.countdown.Preset())
	i = (i + by + len(m.presets)) % len(m.presets)
	_ = m.countdown.SetPreset(m.presets[i])
}

func (m Model) View() string {
	shown := m.countdown.Label()
	if !m.countdown.Running() && m.countdown.Remaining() == 0 {
		shown = ticker.FormatClock(time.Duration(m.countdown.Preset()) * time.Second)
	}

	presets := make([]string, len(m.presets))
	for i, p := range m.presets {
		label := fmt.Sprintf("%ds", p)
		if p == m.countdown.Preset() {
			label = m.theme.Badge.Render(label)
		}
		presets[i] = label
	}

	body := strings.Join([]string{
		m.theme.Title.Render(shown),
		m.theme.Muted.Render(m.status),
		"",
		strings.Join(presets, " "),
	}, "\n")
	help := m.theme.Muted.Render("entrée: démarrer · x: arrêter · ←/→: durée · q: quitter")
	return m.theme.Panel.Frame.Render(m.theme.Panel.Title.Render("Minuteur")+"\n\n"+body) + "\n" + help
}

// Run shows the timer until the user quits.
func Run(presets []int, preset int) error {
	m, err := New(presets, preset)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
