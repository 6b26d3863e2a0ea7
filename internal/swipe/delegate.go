package swipe

// Delegate is the host-facing contract: two animation queries and two
// selection-lifecycle notifications. Coordinator implements it; hosts
// that only care about a subset embed BaseDelegate for the defaults.
type Delegate interface {
	// AnimationController resolves the animation for a switch, or nil
	// for an instant switch.
	AnimationController(from, to int) *Transition
	// InteractionController returns the live progress driver, or nil
	// when the transition is not drag-originated.
	InteractionController() *Driver
	// WillSelect is asked before a direct selection change; returning
	// false denies the switch.
	WillSelect(index int) bool
	// DidSelect is notified after a selection change has committed.
	DidSelect(index int)
}

// BaseDelegate supplies allow/no-op defaults so hosts need not
// implement the full contract.
type BaseDelegate struct{}

func (BaseDelegate) AnimationController(from, to int) *Transition { return nil }
func (BaseDelegate) InteractionController() *Driver               { return nil }
func (BaseDelegate) WillSelect(index int) bool                    { return true }
func (BaseDelegate) DidSelect(index int)                          {}

var _ Delegate = (*Coordinator)(nil)
var _ Delegate = BaseDelegate{}
