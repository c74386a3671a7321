package splitlayout

import "github.com/GriffinCanCode/splitlayout/internal/dom"

// slotAttribute is the marker the client uses to route a child into a pane
const slotAttribute = "slot"

// Slot names one of the two panes
type Slot int

const (
	Primary Slot = iota
	Secondary
)

// String returns the slot marker value
func (s Slot) String() string {
	if s == Secondary {
		return "secondary"
	}
	return "primary"
}

// index is the position of the slot's occupant among the layout's children
func (s Slot) index() int {
	if s == Secondary {
		return 1
	}
	return 0
}

// SlotOf returns the slot a child element is routed to, if it carries a marker
func SlotOf(el *dom.Element) (Slot, bool) {
	switch el.GetAttribute(slotAttribute) {
	case "primary":
		return Primary, true
	case "secondary":
		return Secondary, true
	default:
		return Primary, false
	}
}

// renderSlot returns the node that occupies a slot: the logical child,
// or a fresh empty placeholder when there is none
func renderSlot(child *dom.Element) *dom.Element {
	if child != nil {
		return child
	}
	return dom.NewDiv()
}
