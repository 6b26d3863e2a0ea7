package swipe

// StyleKind distinguishes the two built-in animation variants.
type StyleKind int

const (
	KindSwipe StyleKind = iota
	KindTap
)

func (k StyleKind) String() string {
	if k == KindTap {
		return "tap"
	}
	return "swipe"
}

// Style is a pluggable animation style. FromLeft is resolved by the
// coordinator before the style is handed out, from the transition's
// endpoint order. Start and Finish are optional closures the
// coordinator invokes around the transition.
type Style struct {
	Kind     StyleKind
	FromLeft bool
	Start    func()
	Finish   func()
}

// NewSwipeStyle returns the style used for drag-originated transitions.
func NewSwipeStyle() *Style { return &Style{Kind: KindSwipe} }

// NewTapStyle returns the style used for direct tab selection.
func NewTapStyle() *Style { return &Style{Kind: KindTap} }
