package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/victorhydecode/swipetabs/internal/bar"
	"github.com/victorhydecode/swipetabs/internal/gesture"
)

// Update implements tea.Model.
func (m *ContainerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.SetContentFrame(bar.Rect{
			X: 0,
			Y: 0,
			W: float64(msg.Width),
			H: float64(msg.Height),
		})
		return m, m.forwardToPages(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.handleMouseEvent(msg)

	case frameMsg:
		return m, m.handleFrame()
	}

	return m, m.forwardToPages(msg)
}

// handleKeyPress dispatches container shortcuts, then forwards to the
// selected page.
func (m *ContainerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.ForceQuit), key.Matches(msg, k.Quit):
		m.Teardown()
		return m, tea.Quit

	case key.Matches(msg, k.NextTab):
		return m, m.selectAdjacent(+1)

	case key.Matches(msg, k.PrevTab):
		return m, m.selectAdjacent(-1)

	case key.Matches(msg, k.ToggleBar):
		m.bar.SetHidden(!m.bar.Hidden(), true, nil)
		return m, m.startTicking()

	case key.Matches(msg, k.ToggleSwipe):
		m.SetSwipeEnabled(!m.opts.SwipeEnabled)
		return m, nil
	}

	return m, m.SelectedPage().Update(msg)
}

// selectAdjacent performs a tap-originated switch to a neighboring
// tab, wrapping at the ends.
func (m *ContainerModel) selectAdjacent(delta int) tea.Cmd {
	if m.anim.Active() {
		return nil
	}
	count := len(m.pages)
	target := (m.selected + delta + count) % count
	if target == m.selected {
		return nil
	}
	if !m.coordinator.WillSelect(target) {
		return nil
	}
	if t := m.coordinator.BeginTap(target); t == nil {
		// No animation controller resolved: the switch already
		// happened instantly.
		m.coordinator.DidSelect(m.selected)
		return nil
	}
	return m.startTicking()
}

// handleMouseEvent feeds press/motion/release into the recognizer pair
// bound to the selected page, and classified samples into the driver.
func (m *ContainerModel) handleMouseEvent(msg tea.MouseMsg) tea.Cmd {
	if m.pair == nil {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		edge := gesture.EdgeLeft
		if msg.X >= m.contentWidth()/2 {
			edge = gesture.EdgeRight
		}
		if !m.pair.CanBegin(edge) {
			return nil
		}
		m.activeEdge = edge
		m.dragging = true
		m.recognizer().Press(msg.X, msg.Y)
		return nil

	case tea.MouseActionMotion:
		if !m.dragging {
			return nil
		}
		if s, ok := m.recognizer().Move(msg.X, msg.Y); ok {
			m.driver.Handle(s)
		}
		return m.startTicking()

	case tea.MouseActionRelease:
		if !m.dragging {
			return nil
		}
		m.dragging = false
		if s, ok := m.recognizer().Release(msg.X, msg.Y); ok {
			m.driver.Handle(s)
		}
		m.rebindGesture()
		return m.startTicking()
	}

	return nil
}

// recognizer returns the pair member for the edge the current press
// started on.
func (m *ContainerModel) recognizer() *gesture.Recognizer {
	if m.activeEdge == gesture.EdgeLeft {
		return m.pair.Left
	}
	return m.pair.Right
}

// CancelGesture force-ends any in-flight drag, e.g. on focus loss.
func (m *ContainerModel) CancelGesture() tea.Cmd {
	if m.pair == nil {
		return nil
	}
	m.dragging = false
	for _, s := range m.pair.Cancel() {
		m.driver.Handle(s)
	}
	m.rebindGesture()
	return m.startTicking()
}

// handleFrame advances one animation frame and resolves transitions
// that just settled.
func (m *ContainerModel) handleFrame() tea.Cmd {
	m.ticking = false

	t := m.anim.Transition()
	cancelled := m.anim.Cancelled()
	if m.anim.Step() && t != nil {
		m.coordinator.EndActive()
		m.coordinator.DidSelect(m.selected)
		if cancelled {
			m.rollbacks++
		} else {
			m.commits++
		}
	}
	m.bar.Step(m.frameInterval())

	return m.startTicking()
}

// Stats returns the running commit/rollback counters.
func (m *ContainerModel) Stats() (commits, rollbacks int) {
	return m.commits, m.rollbacks
}

// forwardToPages hands a message to every page; pages ignore what they
// do not understand.
func (m *ContainerModel) forwardToPages(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.pages {
		if c := p.Update(msg); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}
