package gesture

import "time"

// Edge identifies which screen edge a recognizer is bound to.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
)

func (e Edge) String() string {
	if e == EdgeLeft {
		return "left"
	}
	return "right"
}

// Recognizer converts a press/motion/release mouse stream into Samples.
// A drag is not recognized until the pointer actually moves, so the
// Began sample carries a usable velocity for direction classification.
// A bare click never produces a sample.
type Recognizer struct {
	edge    Edge
	enabled bool

	pressed bool
	begun   bool
	origin  Point
	last    Point
	lastAt  time.Time
	lastVel Point

	now func() time.Time
}

// NewRecognizer creates an enabled recognizer bound to the given edge.
func NewRecognizer(edge Edge) *Recognizer {
	return &Recognizer{
		edge:    edge,
		enabled: true,
		now:     time.Now,
	}
}

// Edge returns the screen edge this recognizer is bound to.
func (r *Recognizer) Edge() Edge { return r.edge }

// SetEnabled globally enables or disables recognition. Disabling does
// not clear in-flight press state; input is simply swallowed.
func (r *Recognizer) SetEnabled(enabled bool) { r.enabled = enabled }

// Enabled reports whether recognition is active.
func (r *Recognizer) Enabled() bool { return r.enabled }

// Tracking reports whether a recognized drag is in flight.
func (r *Recognizer) Tracking() bool { return r.begun }

// Translation returns the current translation from the press origin.
func (r *Recognizer) Translation() Point {
	return Point{X: r.last.X - r.origin.X, Y: r.last.Y - r.origin.Y}
}

// Press records the drag origin. No sample is emitted yet.
func (r *Recognizer) Press(x, y int) {
	if !r.enabled {
		return
	}
	r.pressed = true
	r.begun = false
	r.origin = Point{X: float64(x), Y: float64(y)}
	r.last = r.origin
	r.lastAt = r.now()
	r.lastVel = Point{}
}

// Move emits a Began sample on the first motion after a press and
// Changed samples after that. Returns false when no drag is in flight.
func (r *Recognizer) Move(x, y int) (Sample, bool) {
	if !r.enabled || !r.pressed {
		return Sample{}, false
	}

	cur := Point{X: float64(x), Y: float64(y)}
	now := r.now()
	r.lastVel = velocity(r.last, cur, now.Sub(r.lastAt))
	r.last = cur
	r.lastAt = now

	phase := PhaseChanged
	if !r.begun {
		r.begun = true
		phase = PhaseBegan
	}
	return Sample{Phase: phase, Translation: r.Translation(), Velocity: r.lastVel}, true
}

// Release ends the drag. A press without motion resolves to nothing.
func (r *Recognizer) Release(x, y int) (Sample, bool) {
	if !r.enabled || !r.pressed {
		return Sample{}, false
	}
	r.pressed = false
	if !r.begun {
		return Sample{}, false
	}
	r.begun = false

	cur := Point{X: float64(x), Y: float64(y)}
	now := r.now()
	vel := velocity(r.last, cur, now.Sub(r.lastAt))
	if vel == (Point{}) {
		// Release at the same cell within the same tick: keep the
		// velocity of the last motion so threshold checks still work.
		vel = r.lastVel
	}
	r.last = cur
	return Sample{Phase: PhaseEnded, Translation: r.Translation(), Velocity: vel}, true
}

// Cancel force-ends any in-flight drag, emitting a Cancelled sample.
// Used on focus loss and when the recognizer is being rebound.
func (r *Recognizer) Cancel() (Sample, bool) {
	if !r.pressed && !r.begun {
		return Sample{}, false
	}
	begun := r.begun
	r.pressed = false
	r.begun = false
	if !begun {
		return Sample{}, false
	}
	return Sample{Phase: PhaseCancelled, Translation: r.Translation(), Velocity: r.lastVel}, true
}

// velocity estimates cells-per-second movement between two points.
func velocity(from, to Point, elapsed time.Duration) Point {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return Point{}
	}
	return Point{X: (to.X - from.X) / secs, Y: (to.Y - from.Y) / secs}
}
