package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/victorhydecode/swipetabs/internal/bar"
	"github.com/victorhydecode/swipetabs/internal/gesture"
	"github.com/victorhydecode/swipetabs/internal/swipe"
)

// Options configures a container.
type Options struct {
	SwipeEnabled         bool
	DiagonalSwipeEnabled bool
	BarHeight            int
	FPS                  int
}

// DefaultOptions returns the standard configuration: swiping on,
// diagonal swiping off, a one-row bar, 60 frames per second.
func DefaultOptions() Options {
	return Options{
		SwipeEnabled: true,
		BarHeight:    1,
		FPS:          60,
	}
}

// LayoutState holds window geometry.
type LayoutState struct {
	width  int
	height int
}

// SwipeState holds the gesture and transition machinery.
type SwipeState struct {
	registry    *gesture.Registry
	pair        *gesture.Pair
	activeEdge  gesture.Edge
	dragging    bool
	driver      *swipe.Driver
	coordinator *swipe.Coordinator
	anim        *slideAnim
}

// BarState holds the overlay bar controller and render info.
type BarState struct {
	bar      *bar.Controller
	barLabel string
}

// StatsState counts resolved transitions for the demo chart page.
type StatsState struct {
	commits   int
	rollbacks int
}

// ContainerModel is the tabbed-navigation container: an ordered page
// list, a selection slot, and the swipe/bar machinery bound together.
// Sub-state is organized into embedded structs for readability.
type ContainerModel struct {
	LayoutState
	SwipeState
	BarState
	StatsState

	pages    []Page
	selected int
	keys     KeyMap
	opts     Options

	ticking   bool
	lastFrame time.Time
	torndown  bool

	// OnFinishTransition is the host callback fired once a swipe-driven
	// transition commits. It carries no payload; the host re-reads the
	// already-mutated selection.
	OnFinishTransition func()
}

// frameMsg drives transition and bar animation frames.
type frameMsg time.Time

// NewContainerModel builds a container over a non-empty page list.
func NewContainerModel(opts Options, pages ...Page) *ContainerModel {
	if len(pages) == 0 {
		panic("tui: container needs at least one page")
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.BarHeight <= 0 {
		opts.BarHeight = 1
	}

	m := &ContainerModel{
		pages: pages,
		keys:  DefaultKeyMap(),
		opts:  opts,
	}

	m.registry = gesture.NewRegistry()
	m.registry.SetEnabled(opts.SwipeEnabled)
	m.anim = newSlideAnim(opts.FPS)
	m.coordinator = swipe.NewCoordinator(m, m.anim)
	m.driver = swipe.NewDriver(m.coordinator, m.contentWidth)
	m.driver.SetEnabled(opts.SwipeEnabled)
	m.driver.SetDiagonalEnabled(opts.DiagonalSwipeEnabled)
	m.coordinator.SetDriver(m.driver)

	m.driver.TransitionFinished = func() {
		if m.OnFinishTransition != nil {
			m.OnFinishTransition()
		}
	}

	m.bar = bar.NewController(float64(opts.BarHeight), bar.Rect{})
	m.bar.SetAlive(func() bool { return !m.torndown })
	m.barLabel = "swipe between the first two tabs • tab/shift+tab to switch"

	m.coordinator.OnStart = func(t *swipe.Transition) {
		// Bar choreography only engages for transitions touching the
		// first page.
		if t.TouchesFirstPage {
			m.bar.SetHidden(true, true, m.anim)
		}
	}
	m.coordinator.OnFinish = func(t *swipe.Transition) {
		if m.bar.Hidden() {
			m.bar.SetHidden(false, true, nil)
		}
	}

	m.rebindGesture()
	return m
}

// Delegate exposes the transition-animation and interactive-transition
// query surface plus the selection lifecycle notifications.
func (m *ContainerModel) Delegate() swipe.Delegate { return m.coordinator }

// SelectedIndex implements swipe.Host.
func (m *ContainerModel) SelectedIndex() int { return m.selected }

// PageCount implements swipe.Host.
func (m *ContainerModel) PageCount() int { return len(m.pages) }

// SetSelectedIndex implements swipe.Host. Every selection change
// re-binds the gesture pair to the newly selected page's effective
// content view.
func (m *ContainerModel) SetSelectedIndex(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(m.pages) {
		index = len(m.pages) - 1
	}
	m.selected = index
	m.rebindGesture()
}

// SelectedPage returns the page at the current selection.
func (m *ContainerModel) SelectedPage() Page { return m.pages[m.selected] }

// SetSwipeEnabled toggles gesture recognition without clearing any
// in-flight interaction state.
func (m *ContainerModel) SetSwipeEnabled(enabled bool) {
	m.opts.SwipeEnabled = enabled
	m.registry.SetEnabled(enabled)
	m.driver.SetEnabled(enabled)
}

// rebindGesture tears down and replaces the recognizer registration
// for the selected page's content view. The previous registration is
// discarded, never stacked. Rebinding is deferred while a drag is in
// flight: the interactive preview changes the selection mid-gesture,
// and the live recognizer must survive that.
func (m *ContainerModel) rebindGesture() {
	if m.dragging {
		return
	}
	content := ContentPage(m.pages[m.selected])
	m.pair = m.registry.Bind(content.ID())
}

// contentWidth is the width used to normalize drag translations.
func (m *ContainerModel) contentWidth() int {
	if m.width < 1 {
		return 1
	}
	return m.width
}

// Init implements tea.Model.
func (m *ContainerModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.pages))
	for _, p := range m.pages {
		if c := p.Init(); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}

// Teardown marks the model as gone so stale animation completions
// become no-ops.
func (m *ContainerModel) Teardown() { m.torndown = true }

func (m *ContainerModel) frameInterval() time.Duration {
	return time.Second / time.Duration(m.opts.FPS)
}

// animating reports whether any animation needs frame ticks.
func (m *ContainerModel) animating() bool {
	return m.anim.Active() || m.bar.Animating()
}

// startTicking returns a frame tick command, coalescing so only one
// tick chain is live at a time.
func (m *ContainerModel) startTicking() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	m.lastFrame = time.Now()
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
