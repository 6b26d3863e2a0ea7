package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextPage is a static content tab.
type TextPage struct {
	id    string
	title string
	body  string
}

// NewTextPage creates a text tab.
func NewTextPage(id, title, body string) *TextPage {
	return &TextPage{id: id, title: title, body: body}
}

func (p *TextPage) ID() string    { return p.id }
func (p *TextPage) Title() string { return p.title }

func (p *TextPage) Init() tea.Cmd { return nil }

func (p *TextPage) Update(msg tea.Msg) tea.Cmd { return nil }

func (p *TextPage) View(width, height int) string {
	style := lipgloss.NewStyle().Padding(1, 2).Width(width)
	return style.Render(p.body)
}

// StatsPage charts resolved transitions: one bar for commits, one for
// rollbacks. The counters are read through a closure so the page never
// holds a reference back into the container.
type StatsPage struct {
	id    string
	title string
	stats func() (commits, rollbacks int)
}

// NewStatsPage creates the transition-stats tab.
func NewStatsPage(id, title string, stats func() (int, int)) *StatsPage {
	return &StatsPage{id: id, title: title, stats: stats}
}

func (p *StatsPage) ID() string    { return p.id }
func (p *StatsPage) Title() string { return p.title }

func (p *StatsPage) Init() tea.Cmd { return nil }

func (p *StatsPage) Update(msg tea.Msg) tea.Cmd { return nil }

func (p *StatsPage) View(width, height int) string {
	commits, rollbacks := p.stats()

	chartWidth := width - 6
	if chartWidth < 12 {
		chartWidth = 12
	}
	chartHeight := height - 6
	if chartHeight < 3 {
		chartHeight = 3
	}

	theme := ActiveTheme()
	commitStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.AccentFG)).
		Background(lipgloss.Color(theme.AccentFG))
	rollbackStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("208")).
		Background(lipgloss.Color("208"))

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(2),
		barchart.WithBarWidth(4),
	)
	bc.Push(barchart.BarData{
		Label: "ok",
		Values: []barchart.BarValue{
			{Name: "committed", Value: float64(commits), Style: commitStyle},
		},
	})
	bc.Push(barchart.BarData{
		Label: "undo",
		Values: []barchart.BarValue{
			{Name: "rolled back", Value: float64(rollbacks), Style: rollbackStyle},
		},
	})
	bc.Draw()

	legend := fmt.Sprintf("committed: %d  rolled back: %d", commits, rollbacks)
	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, bc.View(), "", legend),
	)
}

// NavWrapperPage nests a content page behind a breadcrumb header, the
// way a navigation-style container wraps its root. Gesture binding
// descends through it to the content page.
type NavWrapperPage struct {
	id      string
	crumb   string
	content Page
}

// NewNavWrapper wraps a content page.
func NewNavWrapper(id, crumb string, content Page) *NavWrapperPage {
	return &NavWrapperPage{id: id, crumb: crumb, content: content}
}

func (p *NavWrapperPage) ID() string    { return p.id }
func (p *NavWrapperPage) Title() string { return p.content.Title() }

// Content implements Wrapper.
func (p *NavWrapperPage) Content() Page { return p.content }

func (p *NavWrapperPage) Init() tea.Cmd { return p.content.Init() }

func (p *NavWrapperPage) Update(msg tea.Msg) tea.Cmd { return p.content.Update(msg) }

func (p *NavWrapperPage) View(width, height int) string {
	theme := ActiveTheme()
	header := theme.accentStyle().Render("› " + p.crumb)
	inner := p.content.View(width, height-1)
	return lipgloss.JoinVertical(lipgloss.Left, header, inner)
}
