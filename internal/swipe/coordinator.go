package swipe

// Host is the container-side surface the coordinator needs: an ordered
// page list and a read/write selection slot. The coordinator references
// the list, it never owns it.
type Host interface {
	SelectedIndex() int
	SetSelectedIndex(index int)
	PageCount() int
}

// Animator is the visual side of a transition. Begin sets up the slide
// for a transition, SetProgress drives it interactively, and
// Commit/Cancel resolve it to the target or back to the origin.
type Animator interface {
	Begin(t *Transition)
	SetProgress(fraction float64)
	Commit()
	Cancel()
}

// Transition describes one page-switch animation. It is produced once
// per transition and carries the style (already resolved, with FromLeft
// set) plus the touches-first-page flag that gates bar choreography.
type Transition struct {
	From             int
	To               int
	Style            *Style
	TouchesFirstPage bool
	Interactive      bool

	started  bool
	finished bool
}

// Coordinator binds driver decisions to the host container: it advances
// and rolls back the selection, picks exactly one animation style per
// transition, and fires the start/finish hooks the bar choreography
// listens to.
//
// Ordering contract for the current-style cell: WillSelect (the
// should-select path) and DidSelect are its only writers, and
// AnimationController is always called after one of them, never
// interleaved. Single-threaded dispatch guarantees the cell is not
// torn mid-update.
type Coordinator struct {
	host Host
	anim Animator

	swipeStyle *Style
	tapStyle   *Style
	current    *Style

	active      *Transition
	interactive bool
	driver      *Driver

	// OnStart and OnFinish bracket every transition, tap- and
	// swipe-originated alike, and fire exactly once per transition.
	OnStart  func(*Transition)
	OnFinish func(*Transition)
}

// NewCoordinator creates a coordinator with the default swipe and tap
// styles selected for swipe.
func NewCoordinator(host Host, anim Animator) *Coordinator {
	c := &Coordinator{
		host:       host,
		anim:       anim,
		swipeStyle: NewSwipeStyle(),
		tapStyle:   NewTapStyle(),
	}
	c.current = c.swipeStyle
	return c
}

// SetDriver attaches the interaction driver handed out by
// InteractionController while a drag is live.
func (c *Coordinator) SetDriver(d *Driver) { c.driver = d }

// SetStyles replaces the pluggable style objects.
func (c *Coordinator) SetStyles(swipeStyle, tapStyle *Style) {
	c.swipeStyle = swipeStyle
	c.tapStyle = tapStyle
	c.current = c.swipeStyle
}

// CurrentStyle exposes the style cell for the host's rendering path.
func (c *Coordinator) CurrentStyle() *Style { return c.current }

// SelectedIndex implements Controller.
func (c *Coordinator) SelectedIndex() int { return c.host.SelectedIndex() }

// PageCount implements Controller.
func (c *Coordinator) PageCount() int { return c.host.PageCount() }

// AnimationController resolves the animation for a from→to switch.
// It returns nil when either endpoint cannot be resolved against the
// page list; the host treats that as an instant, non-animated switch.
// Side effect: records whether the pair touches the first page, which
// decides whether bar choreography engages for this transition.
func (c *Coordinator) AnimationController(from, to int) *Transition {
	count := c.host.PageCount()
	if from < 0 || from >= count || to < 0 || to >= count {
		return nil
	}
	style := c.current
	style.FromLeft = from > to
	t := &Transition{
		From:             from,
		To:               to,
		Style:            style,
		TouchesFirstPage: from == 0 || to == 0,
		Interactive:      c.interactive,
	}
	c.active = t
	return t
}

// InteractionController returns the live progress driver only while a
// drag-originated interaction is in progress, so tap transitions are
// never interactive.
func (c *Coordinator) InteractionController() *Driver {
	if !c.interactive {
		return nil
	}
	return c.driver
}

// WillSelect is the should-select notification: the host is about to
// perform a direct (tap) switch. Selects the tap style and allows it.
func (c *Coordinator) WillSelect(index int) bool {
	c.current = c.tapStyle
	return true
}

// DidSelect resets the style cell to the swipe style, the defaulting
// assumption for the next gesture.
func (c *Coordinator) DidSelect(index int) {
	c.current = c.swipeStyle
}

// BeginInteractive implements Controller: the driver has accepted a
// drag. The selection advances immediately; the visual commit stays
// pending until Finish or Cancel.
func (c *Coordinator) BeginInteractive(from, to int) {
	c.current = c.swipeStyle
	c.interactive = true
	t := c.AnimationController(from, to)
	c.host.SetSelectedIndex(to)
	if t == nil {
		c.interactive = false
		return
	}
	// Begin before the start hook so anything the hook pairs with the
	// animation survives the animator's reset.
	c.anim.Begin(t)
	c.startTransition(t)
}

// UpdateProgress implements Controller.
func (c *Coordinator) UpdateProgress(fraction float64) {
	c.anim.SetProgress(fraction)
}

// Finish implements Controller: commit the active transition. The
// selection was already advanced at gesture start and stays. The
// finish hook fires from EndActive once the animation completes.
func (c *Coordinator) Finish() {
	c.interactive = false
	c.anim.Commit()
}

// Cancel implements Controller: roll back the active transition,
// reverting the selection to the pre-gesture index.
func (c *Coordinator) Cancel() {
	c.interactive = false
	c.anim.Cancel()
	if c.active != nil {
		c.host.SetSelectedIndex(c.active.From)
	}
}

// BeginTap starts a non-interactive transition to the given index.
// Returns nil after performing an instant switch when no animation
// controller resolves.
func (c *Coordinator) BeginTap(to int) *Transition {
	from := c.host.SelectedIndex()
	t := c.AnimationController(from, to)
	c.host.SetSelectedIndex(to)
	if t == nil {
		return nil
	}
	c.anim.Begin(t)
	c.startTransition(t)
	return t
}

// EndActive fires the finish side of the active transition's bracket.
// The host's animator calls this when the slide settles, for tap and
// drag transitions alike; repeated calls are no-ops.
func (c *Coordinator) EndActive() {
	c.endTransition(c.active)
}

func (c *Coordinator) startTransition(t *Transition) {
	if t == nil || t.started {
		return
	}
	t.started = true
	if t.Style != nil && t.Style.Start != nil {
		t.Style.Start()
	}
	if c.OnStart != nil {
		c.OnStart(t)
	}
}

func (c *Coordinator) endTransition(t *Transition) {
	if t == nil || t.finished {
		return
	}
	t.finished = true
	if t.Style != nil && t.Style.Finish != nil {
		t.Style.Finish()
	}
	if c.OnFinish != nil {
		c.OnFinish(t)
	}
	if c.active == t {
		c.active = nil
	}
}
