// Package bar animates a fixed overlay bar in and out of the container
// in sync with tab transitions. Hiding slides the bar down below the
// content frame; showing slides it back up.
package bar

import "time"

// standaloneDuration is the length of an unpaired show/hide animation.
const standaloneDuration = 300 * time.Millisecond

// Rect is an axis-aligned frame in cell coordinates. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two frames share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Context couples a frame change to an external transition animation so
// both complete in lockstep. Implemented by the container's transition
// animation.
type Context interface {
	// Alongside registers a progress callback driven by the paired
	// animation, with progress in [0,1].
	Alongside(update func(progress float64))
	// OnComplete registers the terminal callback for the paired
	// animation; cancelled reports a rollback.
	OnComplete(done func(cancelled bool))
}

type animation struct {
	origin, target float64
	elapsed        time.Duration
	done           func(cancelled bool)
}

// Controller owns the bar frame and its visibility choreography.
// Visibility is derived from geometry, never stored: the bar is hidden
// exactly when its frame no longer overlaps the content frame.
type Controller struct {
	frame   Rect
	content Rect
	barH    float64

	inset      float64 // layout inset currently applied for the bar
	ownedInset float64 // inset the shown bar is owed

	anim  *animation
	alive func() bool
}

// NewController creates a controller with the bar shown, docked to the
// bottom edge of the content frame.
func NewController(barHeight float64, content Rect) *Controller {
	return &Controller{
		frame: Rect{
			X: content.X,
			Y: content.Y + content.H - barHeight,
			W: content.W,
			H: barHeight,
		},
		content:    content,
		barH:       barHeight,
		ownedInset: barHeight,
		inset:      barHeight,
	}
}

// SetAlive installs the liveness probe captured by animation
// completions. A completion that fires after the probe reports gone
// becomes a no-op instead of mutating a torn-down view.
func (c *Controller) SetAlive(alive func() bool) { c.alive = alive }

// SetContentFrame relayouts the controller after a resize, keeping the
// current shown/hidden state. A degenerate previous frame (before the
// first layout) counts as shown.
func (c *Controller) SetContentFrame(content Rect) {
	hidden := c.Hidden() && c.content.W > 0 && c.content.H > 0
	c.content = content
	c.frame.X = content.X
	c.frame.W = content.W
	c.frame.Y = content.Y + content.H - c.barH
	if hidden {
		c.frame.Y += c.barH
	}
	c.anim = nil
}

// Frame returns the bar's current frame.
func (c *Controller) Frame() Rect { return c.frame }

// Inset returns the layout inset currently owed to the bar.
func (c *Controller) Inset() float64 { return c.inset }

// Hidden is derived, not stored: true iff the bar frame no longer
// overlaps the content frame.
func (c *Controller) Hidden() bool { return !c.frame.Overlaps(c.content) }

// Animating reports whether a standalone animation is in flight; the
// container keeps ticking frames while true.
func (c *Controller) Animating() bool { return c.anim != nil }

// SetHidden shows or hides the bar. Requesting the current state is a
// no-op. When animated and paired with a transition context, the frame
// change runs in lockstep with that transition; otherwise it runs as a
// standalone fixed-duration animation advanced by Step.
func (c *Controller) SetHidden(hidden, animated bool, ctx Context) {
	if c.Hidden() == hidden {
		return
	}

	origin := c.frame.Y
	target := origin - c.barH
	if hidden {
		target = origin + c.barH
	}

	prevInset := c.inset
	if hidden {
		c.inset = 0
	}

	complete := func(cancelled bool) {
		if c.alive != nil && !c.alive() {
			return
		}
		if cancelled {
			c.frame.Y = origin
			c.inset = prevInset
			return
		}
		c.frame.Y = target
		if !hidden {
			c.inset = c.ownedInset
		}
	}

	if !animated {
		complete(false)
		return
	}

	if ctx != nil {
		ctx.Alongside(func(p float64) {
			c.frame.Y = origin + (target-origin)*p
		})
		ctx.OnComplete(complete)
		return
	}

	c.anim = &animation{origin: origin, target: target, done: complete}
}

// Step advances a standalone animation. The container calls it once
// per frame tick with the elapsed time.
func (c *Controller) Step(dt time.Duration) {
	if c.anim == nil {
		return
	}
	c.anim.elapsed += dt
	p := float64(c.anim.elapsed) / float64(standaloneDuration)
	if p >= 1 {
		done := c.anim.done
		c.anim = nil
		done(false)
		return
	}
	// Smoothstep easing over the fixed duration.
	p = p * p * (3 - 2*p)
	c.frame.Y = c.anim.origin + (c.anim.target-c.anim.origin)*p
}

// CancelAnimation aborts a standalone animation, restoring the
// pre-change frame and inset.
func (c *Controller) CancelAnimation() {
	if c.anim == nil {
		return
	}
	done := c.anim.done
	c.anim = nil
	done(true)
}
