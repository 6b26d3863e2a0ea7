package gesture

// simultaneousSlop is the horizontal translation (in cells) below which
// the opposite-edge recognizer may still begin recognizing alongside an
// already-active one.
const simultaneousSlop = 5.0

// Pair is the left-edge/right-edge recognizer pair registered for one
// page. The pair enforces the simultaneous-recognition window: once
// either recognizer has moved more than simultaneousSlop cells
// horizontally, the other is locked out until the drag resolves.
type Pair struct {
	Left  *Recognizer
	Right *Recognizer
}

// NewPair creates an enabled recognizer pair.
func NewPair() *Pair {
	return &Pair{
		Left:  NewRecognizer(EdgeLeft),
		Right: NewRecognizer(EdgeRight),
	}
}

// SetEnabled toggles both recognizers.
func (p *Pair) SetEnabled(enabled bool) {
	p.Left.SetEnabled(enabled)
	p.Right.SetEnabled(enabled)
}

// CanBegin reports whether the recognizer on the given edge is allowed
// to begin recognizing right now. The companion on the opposite edge
// blocks it once its own horizontal translation passes the slop window.
func (p *Pair) CanBegin(edge Edge) bool {
	other := p.Left
	if edge == EdgeLeft {
		other = p.Right
	}
	if !other.Tracking() {
		return true
	}
	tx := other.Translation().X
	if tx < 0 {
		tx = -tx
	}
	return tx < simultaneousSlop
}

// Cancel force-ends any drag in flight on either recognizer. Cancelled
// samples are returned in left, right order for forwarding.
func (p *Pair) Cancel() []Sample {
	var out []Sample
	if s, ok := p.Left.Cancel(); ok {
		out = append(out, s)
	}
	if s, ok := p.Right.Cancel(); ok {
		out = append(out, s)
	}
	return out
}

// Registry maps page identifiers to their registered recognizer pair.
// It replaces per-view associated storage with an explicit table owned
// by the gesture layer.
type Registry struct {
	pairs   map[string]*Pair
	enabled bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pairs: make(map[string]*Pair), enabled: true}
}

// Bind registers a fresh recognizer pair for the page, discarding and
// cancelling any prior registration. At most one pair exists per page,
// so a rebind can never stack duplicate handlers.
func (g *Registry) Bind(pageID string) *Pair {
	if old, ok := g.pairs[pageID]; ok {
		old.Cancel()
		old.SetEnabled(false)
		delete(g.pairs, pageID)
	}
	pair := NewPair()
	pair.SetEnabled(g.enabled)
	g.pairs[pageID] = pair
	return pair
}

// Lookup returns the registered pair for the page, if any.
func (g *Registry) Lookup(pageID string) (*Pair, bool) {
	p, ok := g.pairs[pageID]
	return p, ok
}

// Unbind removes and cancels the page's registration.
func (g *Registry) Unbind(pageID string) {
	if old, ok := g.pairs[pageID]; ok {
		old.Cancel()
		old.SetEnabled(false)
		delete(g.pairs, pageID)
	}
}

// SetEnabled toggles every registered pair and applies to future binds.
func (g *Registry) SetEnabled(enabled bool) {
	g.enabled = enabled
	for _, p := range g.pairs {
		p.SetEnabled(enabled)
	}
}
