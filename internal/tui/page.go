package tui

import tea "github.com/charmbracelet/bubbletea"

// Page represents one tab in the container.
type Page interface {
	ID() string
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// Wrapper is a navigation-style page that nests a real content page.
// Gesture binding descends through wrappers to the first real content
// page, so a wrapped tab swipes the same as a bare one.
type Wrapper interface {
	Page
	Content() Page
}

// ContentPage descends through any wrapping pages to the first real
// content page.
func ContentPage(p Page) Page {
	for {
		w, ok := p.(Wrapper)
		if !ok {
			return p
		}
		p = w.Content()
	}
}
