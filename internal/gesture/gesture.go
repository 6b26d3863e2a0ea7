// Package gesture turns raw terminal mouse input into classified drag
// samples: a phase plus a 2D translation and velocity in cell
// coordinates. Consumers never see individual mouse events.
package gesture

// Phase classifies where a sample sits in a drag's lifecycle.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

// String returns the phase name for logs and test failures.
func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Point is a 2D vector in terminal cell coordinates.
type Point struct {
	X float64
	Y float64
}

// Sample is one classified pointer update. Translation is measured from
// the press origin; Velocity is in cells per second.
type Sample struct {
	Phase       Phase
	Translation Point
	Velocity    Point
}
