package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m *ContainerModel, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func drag(m *ContainerModel, x, y int) {
	// Real wall-clock spacing so the recognizer's velocity estimate has
	// a usable sign and magnitude.
	time.Sleep(time.Millisecond)
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
}

func release(m *ContainerModel, x, y int) {
	time.Sleep(time.Millisecond)
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease})
}

func TestTapSwitchAnimatesAndSettles(t *testing.T) {
	t.Parallel()

	m := newTestContainer()
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	if m.SelectedIndex() != 1 {
		t.Fatalf("selected = %d, want 1 right after tap", m.SelectedIndex())
	}
	if !m.anim.Active() {
		t.Fatal("tap switch did not start a transition")
	}
	settle(t, m)

	if m.SelectedIndex() != 1 {
		t.Fatalf("selected = %d, want 1 after settle", m.SelectedIndex())
	}
}

func TestTapSwitchWraps(t *testing.T) {
	t.Parallel()

	m := newTestContainer()
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	settle(t, m)

	if m.SelectedIndex() != 2 {
		t.Fatalf("selected = %d, want wrap to last tab", m.SelectedIndex())
	}
}

func TestTapIgnoredWhileAnimating(t *testing.T) {
	t.Parallel()

	m := newTestContainer()
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	settle(t, m)
	if m.SelectedIndex() != 1 {
		t.Fatalf("selected = %d, want 1: second tap during animation must be dropped", m.SelectedIndex())
	}
}

func TestDragCommitAdvancesSelection(t *testing.T) {
	t.Parallel()

	m := newTestContainer()
	press(m, 60, 10)
	drag(m, 50, 10)
	drag(m, 30, 10)
	drag(m, 15, 10)
	release(m, 12, 10)

	if m.SelectedIndex() != 1 {
		t.Fatalf("selected = %d, want preview advance to 1", m.SelectedIndex())
	}
	settle(t, m)

	if m.SelectedIndex() != 1 {
		t.Fatalf("selected = %d, want 1 after commit", m.SelectedIndex())
	}
	commits, rollbacks := m.Stats()
	if commits != 1 || rollbacks != 0 {
		t.Fatalf("stats = %d/%d, want 1 commit and no rollbacks", commits, rollbacks)
	}
	if m.bar.Hidden() {
		t.Fatal("bar not re-shown after the transition resolved")
	}
}

func TestDragBarChoreography(t *testing.T) {
	t.Parallel()

	m := newTestContainer()
	press(m, 60, 10)
	drag(m, 50, 10)
	drag(m, 20, 10)

	// The hide is paired with the drag, so the frame tracks progress.
	frame := m.bar.Frame()
	if frame.Y <= float64(m.height-m.opts.BarHeight) {
		t.Fatalf("bar frame y = %v, want mid slide-out below %d", frame.Y, m.height-m.opts.BarHeight)
	}

	release(m, 15, 10)
	settle(t, m)

	if m.bar.Hidden() {
		t.Fatal("bar still hidden after the transition finished")
	}
}

func TestCancelGestureRollsBack(t *testing.T) {
	t.Parallel()

	m := newTestContainer()
	press(m, 60, 10)
	drag(m, 55, 10)
	drag(m, 52, 10)
	m.CancelGesture()

	settle(t, m)

	if m.SelectedIndex() != 0 {
		t.Fatalf("selected = %d, want rollback to 0", m.SelectedIndex())
	}
	commits, rollbacks := m.Stats()
	if commits != 0 || rollbacks != 1 {
		t.Fatalf("stats = %d/%d, want no commits and 1 rollback", commits, rollbacks)
	}
}

func TestRightwardDragIneligibleFromFirstTab(t *testing.T) {
	t.Parallel()

	m := newTestContainer()
	press(m, 10, 10)
	drag(m, 20, 10)
	drag(m, 35, 10)
	release(m, 40, 10)

	if m.anim.Active() {
		t.Fatal("ineligible drag direction started a transition")
	}
	if m.SelectedIndex() != 0 {
		t.Fatalf("selected = %d, want unchanged 0", m.SelectedIndex())
	}
}

func TestToggleBarKey(t *testing.T) {
	t.Parallel()

	m := newTestContainer()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	settle(t, m)

	if !m.bar.Hidden() {
		t.Fatal("bar still shown after hide toggle settled")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	settle(t, m)

	if m.bar.Hidden() {
		t.Fatal("bar still hidden after show toggle settled")
	}
}

func TestToggleSwipeKey(t *testing.T) {
	t.Parallel()

	m := newTestContainer()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	if m.opts.SwipeEnabled {
		t.Fatal("swipe still enabled after toggle")
	}

	press(m, 60, 10)
	drag(m, 40, 10)
	release(m, 40, 10)
	if m.SelectedIndex() != 0 {
		t.Fatalf("selected = %d, want 0 with swiping off", m.SelectedIndex())
	}
}

func TestQuitTearsDown(t *testing.T) {
	t.Parallel()

	m := newTestContainer()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if !m.torndown {
		t.Fatal("quit did not mark the model torn down")
	}
}
