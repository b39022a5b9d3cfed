package countdown

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func press(m Model, msg tea.KeyPressMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestStartTickStop(t *testing.T) {
	m, err := New([]int{30, 45, 60, 90}, 30)
	if err != nil {
		t.Fatal(err)
	}

	m, cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil || !m.Countdown().Running() {
		t.Fatal("expected the run to start with a tick scheduled")
	}

	next, cmd := m.Update(tickMsg{run: m.run})
	m = next.(Model)
	if cmd == nil || m.Countdown().Remaining() != 29 {
		t.Fatalf("expected 29 seconds left, got %d", m.Countdown().Remaining())
	}

	stale := m.run
	m, _ = press(m, tea.KeyPressMsg{Code: 'x', Text: "x"})
	if m.Countdown().Running() {
		t.Fatal("expected stop")
	}

	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	next, _ = m.Update(tickMsg{run: stale})
	m = next.(Model)
	if m.Countdown().Remaining() != 30 {
		t.Fatalf("expected a stale tick to be ignored, got %d", m.Countdown().Remaining())
	}
}

func TestFinish(t *testing.T) {
	m, _ := New(nil, 1)
	m, _ = press(m, tea.KeyPressMsg{Code: 's', Text: "s"})
	next, cmd := m.Update(tickMsg{run: m.run})
	m = next.(Model)
	if cmd != nil || m.Countdown().Running() {
		t.Fatal("expected the countdown to stop at zero")
	}
	if !strings.Contains(m.View(), "Terminé") {
		t.Fatalf("expected finished status in %q", m.View())
	}
}

func TestPresets(t *testing.T) {
	m, _ := New([]int{30, 45, 60, 90}, 45)
	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyRight})
	if m.Countdown().Preset() != 60 {
		t.Fatalf("expected 60, got %d", m.Countdown().Preset())
	}
	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyLeft})
	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyLeft})
	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.Countdown().Preset() != 90 {
		t.Fatalf("expected wrap to 90, got %d", m.Countdown().Preset())
	}
	if !strings.Contains(m.View(), "01:30") {
		t.Fatalf("expected the armed preset shown, got %q", m.View())
	}
	if _, err := New(nil, 0); err == nil {
		t.Fatal("expected a zero preset to be rejected")
	}
}
