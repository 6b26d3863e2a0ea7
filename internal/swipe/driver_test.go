package swipe

import (
	"testing"

	"github.com/victorhydecode/swipetabs/internal/gesture"
)

// recorder implements Controller and mimics the coordinator's
// selection bookkeeping: advance on begin, revert on cancel.
type recorder struct {
	selected int
	count    int

	beganFrom []int
	beganTo   []int
	progress  []float64
	finishes  int
	cancels   int
}

func (r *recorder) SelectedIndex() int { return r.selected }
func (r *recorder) PageCount() int     { return r.count }

func (r *recorder) BeginInteractive(from, to int) {
	r.beganFrom = append(r.beganFrom, from)
	r.beganTo = append(r.beganTo, to)
	r.selected = to
}

func (r *recorder) UpdateProgress(f float64) { r.progress = append(r.progress, f) }

func (r *recorder) Finish() { r.finishes++ }

func (r *recorder) Cancel() {
	r.cancels++
	if len(r.beganFrom) > 0 {
		r.selected = r.beganFrom[len(r.beganFrom)-1]
	}
}

func newTestDriver(selected, count int) (*Driver, *recorder) {
	rec := &recorder{selected: selected, count: count}
	d := NewDriver(rec, func() int { return 100 })
	return d, rec
}

func began(vx, vy, tx, ty float64) gesture.Sample {
	return gesture.Sample{
		Phase:       gesture.PhaseBegan,
		Translation: gesture.Point{X: tx, Y: ty},
		Velocity:    gesture.Point{X: vx, Y: vy},
	}
}

func changed(tx float64) gesture.Sample {
	return gesture.Sample{Phase: gesture.PhaseChanged, Translation: gesture.Point{X: tx}}
}

func ended(vx float64) gesture.Sample {
	return gesture.Sample{Phase: gesture.PhaseEnded, Velocity: gesture.Point{X: vx}}
}

func TestDriver_DirectionEligibility(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		selected int
		vx       float64
		want     bool
	}{
		{"right-to-left from first tab", 0, -50, true},
		{"left-to-right from first tab", 0, 50, false},
		{"left-to-right from second tab", 1, 50, true},
		{"right-to-left from second tab", 1, -50, false},
		{"right-to-left from third tab", 2, -50, false},
		{"left-to-right from third tab", 2, 50, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d, rec := newTestDriver(tc.selected, 3)
			d.Handle(began(tc.vx, 0, 0, 0))

			if d.InProgress() != tc.want {
				t.Fatalf("in progress = %v, want %v", d.InProgress(), tc.want)
			}
			if !tc.want && rec.selected != tc.selected {
				t.Fatalf("ineligible start mutated selection: %d → %d", tc.selected, rec.selected)
			}
		})
	}
}

func TestDriver_BoundaryClamp(t *testing.T) {
	t.Parallel()

	// Single page: a right-to-left start from index 0 has no page
	// beyond it and must stay inert.
	d, rec := newTestDriver(0, 1)
	d.Handle(began(-50, 0, 0, 0))

	if d.InProgress() {
		t.Fatal("interaction started at the list boundary")
	}
	if rec.selected != 0 {
		t.Fatalf("selection = %d, want 0", rec.selected)
	}
	if len(rec.beganFrom) != 0 {
		t.Fatal("coordinator was asked to begin a boundary transition")
	}
}

func TestDriver_SelectionAdvancesAtGestureStart(t *testing.T) {
	t.Parallel()

	d, rec := newTestDriver(0, 3)
	d.Handle(began(-50, 0, -1, 0))

	if !d.InProgress() {
		t.Fatal("eligible gesture did not start")
	}
	if rec.selected != 1 {
		t.Fatalf("selection = %d, want 1 (advanced at gesture start)", rec.selected)
	}
}

func TestDriver_ProgressMonotonicClamp(t *testing.T) {
	t.Parallel()

	d, rec := newTestDriver(0, 3)
	d.Handle(began(-50, 0, 0, 0))

	// translationValue sweeping -2.0 → 2.0 in right-to-left mode.
	crossed := false
	for v := -2.0; v <= 2.0; v += 0.1 {
		rec.progress = nil
		d.Handle(changed(v * 100)) // width is 100

		if len(rec.progress) != 1 {
			t.Fatalf("value %v: got %d progress reports, want 1", v, len(rec.progress))
		}
		f := rec.progress[0]
		if f < 0 || f > 0.99 {
			t.Fatalf("value %v: fraction %v outside [0, 0.99]", v, f)
		}
		if v > 0 && f != 0 {
			t.Fatalf("value %v opposes direction, fraction = %v, want 0", v, f)
		}
		if v < -0.5-1e-9 && !d.shouldComplete {
			t.Fatalf("value %v: shouldComplete not set past the midpoint", v)
		}
		if d.shouldComplete {
			crossed = true
		}
	}
	if !crossed {
		t.Fatal("sweep never crossed the completion threshold")
	}
}

func TestDriver_VelocityOverrideOnRelease(t *testing.T) {
	t.Parallel()

	t.Run("fast release commits", func(t *testing.T) {
		t.Parallel()

		d, rec := newTestDriver(0, 3)
		d.Handle(began(-50, 0, 0, 0))
		d.Handle(changed(-30)) // fraction 0.3, below threshold
		d.Handle(ended(-250))

		if rec.finishes != 1 || rec.cancels != 0 {
			t.Fatalf("finishes=%d cancels=%d, want commit", rec.finishes, rec.cancels)
		}
		if rec.selected != 1 {
			t.Fatalf("selection = %d, want 1 after commit", rec.selected)
		}
	})

	t.Run("slow release cancels", func(t *testing.T) {
		t.Parallel()

		d, rec := newTestDriver(0, 3)
		d.Handle(began(-50, 0, 0, 0))
		d.Handle(changed(-30))
		d.Handle(ended(-150))

		if rec.cancels != 1 || rec.finishes != 0 {
			t.Fatalf("finishes=%d cancels=%d, want cancel", rec.finishes, rec.cancels)
		}
		if rec.selected != 0 {
			t.Fatalf("selection = %d, want 0 after rollback", rec.selected)
		}
	})
}

func TestDriver_CancelledPhaseAlwaysRollsBack(t *testing.T) {
	t.Parallel()

	d, rec := newTestDriver(0, 3)
	finished := 0
	d.TransitionFinished = func() { finished++ }

	d.Handle(began(-50, 0, 0, 0))
	d.Handle(changed(-90)) // fraction 0.9, shouldComplete = true
	d.Handle(gesture.Sample{
		Phase:    gesture.PhaseCancelled,
		Velocity: gesture.Point{X: -500}, // would also pass the override
	})

	if rec.cancels != 1 || rec.finishes != 0 {
		t.Fatalf("finishes=%d cancels=%d, want rollback", rec.finishes, rec.cancels)
	}
	if finished != 0 {
		t.Fatal("finish callback fired for a cancelled gesture")
	}
	if rec.selected != 0 {
		t.Fatalf("selection = %d, want 0 after rollback", rec.selected)
	}
}

func TestDriver_DiagonalSuspend(t *testing.T) {
	t.Parallel()

	d, rec := newTestDriver(0, 3)
	d.Handle(began(-300, 0, 0, 10)) // ty=10 > slop; vx would qualify

	if d.InProgress() {
		t.Fatal("diagonal gesture marked in progress")
	}
	if len(rec.beganFrom) != 0 {
		t.Fatal("suspended gesture reached the coordinator")
	}

	// Suspended: further samples are inert until the next Began.
	d.Handle(changed(-60))
	if len(rec.progress) != 0 {
		t.Fatal("suspended gesture reported progress")
	}

	// Vertical velocity alone also suspends.
	d2, _ := newTestDriver(0, 3)
	d2.Handle(began(-300, 150, 0, 0))
	if d2.InProgress() {
		t.Fatal("high vertical velocity did not suspend")
	}

	// With diagonal swiping enabled the same gesture is accepted.
	d3, _ := newTestDriver(0, 3)
	d3.SetDiagonalEnabled(true)
	d3.Handle(began(-300, 0, 0, 10))
	if !d3.InProgress() {
		t.Fatal("diagonal gesture rejected with diagonal swiping enabled")
	}
}

func TestDriver_DisabledSuppressesWithoutClearingState(t *testing.T) {
	t.Parallel()

	d, rec := newTestDriver(0, 3)
	d.Handle(began(-50, 0, 0, 0))
	d.SetEnabled(false)

	d.Handle(changed(-60))
	d.Handle(ended(-300))
	if len(rec.progress) != 0 || rec.finishes != 0 || rec.cancels != 0 {
		t.Fatal("disabled driver still processed samples")
	}
	if !d.InProgress() {
		t.Fatal("disabling cleared interaction state")
	}

	d.SetEnabled(true)
	d.Handle(ended(-300))
	if rec.finishes != 1 {
		t.Fatal("re-enabled driver did not resume the interaction")
	}
}

func TestDriver_GestureLifecycleHooks(t *testing.T) {
	t.Parallel()

	d, _ := newTestDriver(0, 3)
	var log []string
	d.GestureStarted = func() { log = append(log, "started") }
	d.GestureFinished = func() { log = append(log, "finished") }
	d.TransitionFinished = func() { log = append(log, "transition") }

	d.Handle(began(-50, 0, 0, 0))
	d.Handle(changed(-70))
	d.Handle(ended(0))

	want := []string{"started", "finished", "transition"}
	if len(log) != len(want) {
		t.Fatalf("hook log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("hook log = %v, want %v", log, want)
		}
	}
}
