// Package swipe holds the interactive tab-transition core: a driver
// that turns classified drag samples into a progress fraction plus a
// commit/rollback decision, and a coordinator that binds those
// decisions to the host container's selection and animations.
package swipe

import "github.com/victorhydecode/swipetabs/internal/gesture"

const (
	// diagonalSlop and diagonalVelocityLimit gate the diagonal-suspend
	// predicate when diagonal swiping is disabled.
	diagonalSlop          = 5.0
	diagonalVelocityLimit = 100.0

	// commitVelocity is the horizontal release speed (cells/s) that
	// commits a transition regardless of accumulated progress.
	commitVelocity = 200.0

	completeThreshold = 0.5
	maxFraction       = 0.99
)

// Controller receives the driver's decisions. Implemented by
// Coordinator; tests substitute a recorder.
type Controller interface {
	SelectedIndex() int
	PageCount() int
	BeginInteractive(from, to int)
	UpdateProgress(fraction float64)
	Finish()
	Cancel()
}

// Driver is the gesture→progress state machine. It owns the
// interaction-in-progress state for a single pointer stream and decides
// eligibility, progress, and the terminal commit/rollback outcome.
//
// States: idle → suspended → idle on a diagonal start, otherwise
// idle → tracking → committing|cancelling → idle.
type Driver struct {
	ctrl  Controller
	width func() int

	enabled         bool
	diagonalEnabled bool

	inProgress     bool
	suspended      bool
	rightToLeft    bool
	shouldComplete bool
	fromIndex      int
	toIndex        int

	// GestureStarted and GestureFinished fire on Began and
	// Ended/Cancelled of an in-progress interaction. TransitionFinished
	// fires once a drag-driven transition commits, with the selection
	// already advanced.
	GestureStarted     func()
	GestureFinished    func()
	TransitionFinished func()
}

// NewDriver creates an enabled driver. width reports the bound
// container width in cells and is consulted per sample, so resizes
// mid-gesture use the fresh value.
func NewDriver(ctrl Controller, width func() int) *Driver {
	return &Driver{
		ctrl:    ctrl,
		width:   width,
		enabled: true,
	}
}

// SetEnabled suppresses all recognition when false without altering
// interaction state.
func (d *Driver) SetEnabled(enabled bool) { d.enabled = enabled }

// SetDiagonalEnabled toggles diagonal-swipe support. When disabled,
// gestures with a meaningful vertical component are suspended at Began.
func (d *Driver) SetDiagonalEnabled(enabled bool) { d.diagonalEnabled = enabled }

// InProgress reports whether a drag interaction is live.
func (d *Driver) InProgress() bool { return d.inProgress }

// Handle feeds one classified sample through the state machine.
func (d *Driver) Handle(s gesture.Sample) {
	if !d.enabled {
		return
	}
	switch s.Phase {
	case gesture.PhaseBegan:
		d.began(s)
	case gesture.PhaseChanged:
		d.changed(s)
	case gesture.PhaseEnded, gesture.PhaseCancelled:
		d.ended(s)
	}
}

func (d *Driver) began(s gesture.Sample) {
	if d.GestureStarted != nil {
		d.GestureStarted()
	}
	d.suspended = false

	if !d.diagonalEnabled && (abs(s.Translation.Y) > diagonalSlop || abs(s.Velocity.Y) > diagonalVelocityLimit) {
		d.suspended = true
		d.inProgress = false
		return
	}

	d.rightToLeft = s.Velocity.X < 0

	// Eligibility is keyed to fixed indices: a right-to-left start only
	// from the first tab, a left-to-right start only from the second.
	current := d.ctrl.SelectedIndex()
	if d.rightToLeft && current != 0 {
		return
	}
	if !d.rightToLeft && current != 1 {
		return
	}

	target := current - 1
	if d.rightToLeft {
		target = current + 1
	}
	if target < 0 || target >= d.ctrl.PageCount() {
		return
	}

	d.fromIndex = current
	d.toIndex = target
	d.shouldComplete = false
	d.inProgress = true

	// The index change happens at gesture start; the visual commit is
	// still pending, which is what makes the preview interactive.
	d.ctrl.BeginInteractive(current, target)
}

func (d *Driver) changed(s gesture.Sample) {
	if !d.inProgress || d.suspended {
		return
	}

	w := d.width()
	if w < 1 {
		w = 1
	}
	value := s.Translation.X / float64(w)

	// Dragging back past the start point clamps at zero rather than
	// regressing the transition.
	if (d.rightToLeft && value > 0) || (!d.rightToLeft && value < 0) {
		d.ctrl.UpdateProgress(0)
		return
	}

	fraction := abs(value)
	if fraction > maxFraction {
		fraction = maxFraction
	}
	d.shouldComplete = fraction > completeThreshold
	d.ctrl.UpdateProgress(fraction)
}

func (d *Driver) ended(s gesture.Sample) {
	if !d.inProgress {
		return
	}
	d.inProgress = false
	if d.GestureFinished != nil {
		d.GestureFinished()
	}

	if !d.shouldComplete {
		if d.rightToLeft && s.Velocity.X < -commitVelocity {
			d.shouldComplete = true
		}
		if !d.rightToLeft && s.Velocity.X > commitVelocity {
			d.shouldComplete = true
		}
	}

	if s.Phase == gesture.PhaseCancelled || !d.shouldComplete {
		d.ctrl.Cancel()
		return
	}

	d.ctrl.Finish()
	if d.TransitionFinished != nil {
		d.TransitionFinished()
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
