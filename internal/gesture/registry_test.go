package gesture

import (
	"testing"
	"time"
)

func TestRegistry_RebindReplacesPriorPair(t *testing.T) {
	t.Parallel()

	g := NewRegistry()
	first := g.Bind("tab-a")
	first.Left.now = fakeClock(time.Unix(0, 0), time.Millisecond)
	first.Left.Press(10, 1)
	first.Left.Move(5, 1)

	second := g.Bind("tab-a")
	if second == first {
		t.Fatal("rebind returned the same pair")
	}
	if first.Left.Tracking() {
		t.Fatal("prior pair still tracking after rebind")
	}
	if first.Left.Enabled() {
		t.Fatal("prior pair still enabled after rebind")
	}

	got, ok := g.Lookup("tab-a")
	if !ok || got != second {
		t.Fatal("lookup did not resolve to the replacement pair")
	}
}

func TestRegistry_SetEnabledAppliesToExistingAndFutureBinds(t *testing.T) {
	t.Parallel()

	g := NewRegistry()
	existing := g.Bind("tab-a")
	g.SetEnabled(false)

	if existing.Left.Enabled() {
		t.Fatal("existing pair still enabled")
	}
	if later := g.Bind("tab-b"); later.Right.Enabled() {
		t.Fatal("pair bound while disabled is enabled")
	}
}

func TestPair_OppositeEdgeWindow(t *testing.T) {
	t.Parallel()

	p := NewPair()
	p.Left.now = fakeClock(time.Unix(0, 0), time.Millisecond)

	p.Left.Press(0, 1)
	p.Left.Move(4, 1) // |tx| = 4, inside the slop window
	if !p.CanBegin(EdgeRight) {
		t.Fatal("opposite edge blocked inside the slop window")
	}

	p.Left.Move(6, 1) // |tx| = 6, past the window
	if p.CanBegin(EdgeRight) {
		t.Fatal("opposite edge allowed past the slop window")
	}
	if !p.CanBegin(EdgeLeft) {
		t.Fatal("primary edge blocked by itself")
	}
}

func TestPair_CancelResolvesBothRecognizers(t *testing.T) {
	t.Parallel()

	p := NewPair()
	p.Left.now = fakeClock(time.Unix(0, 0), time.Millisecond)
	p.Left.Press(0, 1)
	p.Left.Move(3, 1)

	samples := p.Cancel()
	if len(samples) != 1 {
		t.Fatalf("cancel produced %d samples, want 1", len(samples))
	}
	if samples[0].Phase != PhaseCancelled {
		t.Fatalf("cancel sample phase = %s, want cancelled", samples[0].Phase)
	}
	if p.Left.Tracking() {
		t.Fatal("left recognizer still tracking after pair cancel")
	}
}
