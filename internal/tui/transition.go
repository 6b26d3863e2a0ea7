package tui

import (
	"github.com/charmbracelet/harmonica"

	"github.com/victorhydecode/swipetabs/internal/swipe"
)

const settleEpsilon = 0.002

// slideAnim is the container's transition animation: it maps driver
// fractions onto a horizontal page offset and, once the interaction
// resolves, springs the offset to its terminal position. It doubles as
// the pairing context for bar choreography, so a bar change paired
// with a transition tracks the same progress and completes with it.
type slideAnim struct {
	spring harmonica.Spring

	active    *swipe.Transition
	progress  float64
	vel       float64
	settling  bool
	target    float64
	cancelled bool

	alongside   []func(float64)
	completions []func(bool)
}

func newSlideAnim(fps int) *slideAnim {
	if fps <= 0 {
		fps = 60
	}
	return &slideAnim{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 9.0, 1.0),
	}
}

// Active reports whether a transition is animating or being dragged.
func (a *slideAnim) Active() bool { return a.active != nil }

// Transition returns the transition currently on screen, if any.
func (a *slideAnim) Transition() *swipe.Transition { return a.active }

// Progress returns the current slide progress in [0,1].
func (a *slideAnim) Progress() float64 { return a.progress }

// Cancelled reports whether the settle in flight is a rollback.
func (a *slideAnim) Cancelled() bool { return a.cancelled }

// Begin implements swipe.Animator. Tap-originated transitions have no
// drag phase and settle immediately.
func (a *slideAnim) Begin(t *swipe.Transition) {
	a.active = t
	a.progress = 0
	a.vel = 0
	a.settling = false
	a.cancelled = false
	a.alongside = nil
	a.completions = nil
	if !t.Interactive {
		a.settling = true
		a.target = 1
	}
}

// SetProgress implements swipe.Animator: interactive drag updates.
func (a *slideAnim) SetProgress(fraction float64) {
	if a.active == nil || a.settling {
		return
	}
	a.progress = fraction
	a.notify(fraction)
}

// Commit implements swipe.Animator.
func (a *slideAnim) Commit() {
	if a.active == nil {
		return
	}
	a.settling = true
	a.target = 1
	a.cancelled = false
}

// Cancel implements swipe.Animator.
func (a *slideAnim) Cancel() {
	if a.active == nil {
		return
	}
	a.settling = true
	a.target = 0
	a.cancelled = true
}

// Alongside implements bar.Context.
func (a *slideAnim) Alongside(update func(progress float64)) {
	a.alongside = append(a.alongside, update)
	update(a.progress)
}

// OnComplete implements bar.Context.
func (a *slideAnim) OnComplete(done func(cancelled bool)) {
	a.completions = append(a.completions, done)
}

// Step advances the settle spring by one frame. Returns true when the
// transition just reached its terminal position; the caller then
// resolves the transition with the coordinator.
func (a *slideAnim) Step() bool {
	if a.active == nil || !a.settling {
		return false
	}

	a.progress, a.vel = a.spring.Update(a.progress, a.vel, a.target)
	a.notify(a.progress)

	if abs(a.progress-a.target) > settleEpsilon || abs(a.vel) > settleEpsilon {
		return false
	}

	a.progress = a.target
	a.notify(a.progress)
	a.settling = false
	cancelled := a.cancelled
	completions := a.completions
	a.active = nil
	a.alongside = nil
	a.completions = nil
	for _, done := range completions {
		done(cancelled)
	}
	return true
}

func (a *slideAnim) notify(p float64) {
	for _, f := range a.alongside {
		f(p)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
