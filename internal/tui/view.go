package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/victorhydecode/swipetabs/internal/swipe"
)

// View implements tea.Model.
func (m *ContainerModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing container..."
	}

	tabBar := m.renderTabBar()
	contentHeight := m.height - 1
	if contentHeight < 1 {
		return tabBar
	}

	var content string
	if t := m.anim.Transition(); t != nil {
		content = m.renderSlide(t, contentHeight)
	} else {
		content = place(m.SelectedPage().View(m.width, contentHeight), m.width, contentHeight)
	}

	lines := strings.Split(tabBar+"\n"+content, "\n")
	m.overlayBar(lines)
	return strings.Join(lines, "\n")
}

// renderSlide composes the outgoing and incoming pages side by side
// and crops a window-wide slice at the current slide offset.
func (m *ContainerModel) renderSlide(t *swipe.Transition, height int) string {
	w := m.width
	from := place(m.pages[t.From].View(w, height), w, height)
	to := place(m.pages[t.To].View(w, height), w, height)

	offset := int(math.Round(m.anim.Progress() * float64(w)))
	if offset < 0 {
		offset = 0
	}
	if offset > w {
		offset = w
	}

	var strip string
	var start int
	if t.To > t.From {
		// Incoming page slides in from the right.
		strip = lipgloss.JoinHorizontal(lipgloss.Top, from, to)
		start = offset
	} else {
		strip = lipgloss.JoinHorizontal(lipgloss.Top, to, from)
		start = w - offset
	}

	lines := strings.Split(strip, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ansi.Cut(line, start, start+w)
	}
	return strings.Join(out, "\n")
}

// renderTabBar renders one row of tab titles with the selection
// highlighted.
func (m *ContainerModel) renderTabBar() string {
	theme := ActiveTheme()
	cells := make([]string, 0, len(m.pages)+1)
	for i, p := range m.pages {
		style := theme.tabInactiveStyle()
		if i == m.selected {
			style = theme.tabActiveStyle()
		}
		cells = append(cells, style.Render(p.Title()))
	}
	if !m.opts.SwipeEnabled {
		cells = append(cells, theme.accentStyle().Render(" swipe off"))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return ansi.Truncate(lipgloss.NewStyle().Width(m.width).Render(row), m.width, "")
}

// overlayBar draws the overlay bar onto the composed frame at its
// current animated row. Rows below the window are simply not drawn,
// which is what makes the hide animation read as a slide-out.
func (m *ContainerModel) overlayBar(lines []string) {
	frame := m.bar.Frame()
	row := int(math.Round(frame.Y))
	if row < 0 || row >= len(lines) {
		return
	}

	theme := ActiveTheme()
	label := " " + m.barLabel
	rendered := theme.barStyle().Width(m.width).Render(label)
	lines[row] = ansi.Truncate(rendered, m.width, "")
}

// place pads a page view to an exact width and height.
func place(view string, w, h int) string {
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, view)
}
