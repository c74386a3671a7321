package splitlayout

import (
	"fmt"

	"github.com/GriffinCanCode/splitlayout/internal/dom"
)

// Tag is the custom element the layout renders as
const Tag = "collapsible-split-layout"

// DOM event types fired by the client element
const (
	EventIronResize      = "iron-resize"
	EventSplitterDragend = "splitter-dragend"
	EventClick           = "click"
)

const orientationProperty = "orientation"

// Base mirrors the properties and events of the client element.
// SplitLayout builds the slot and sizing logic on top of it.
type Base struct {
	element *dom.Element
}

func newBase() Base {
	return Base{element: dom.NewElement(Tag)}
}

// Element returns the underlying element
func (b *Base) Element() *dom.Element { return b.element }

// AddThemeVariants adds theme variants to the element
func (b *Base) AddThemeVariants(variants ...Variant) {
	b.element.ThemeNames().Add(variantNames(variants)...)
}

// RemoveThemeVariants removes theme variants from the element
func (b *Base) RemoveThemeVariants(variants ...Variant) {
	b.element.ThemeNames().Remove(variantNames(variants)...)
}

// HasThemeVariant reports whether the variant is applied
func (b *Base) HasThemeVariant(v Variant) bool {
	return b.element.ThemeNames().Contains(v.Name())
}

// SetWidth sets the inline width of the layout; "" clears it
func (b *Base) SetWidth(width string) {
	b.element.Style().Set("width", width)
}

// SetHeight sets the inline height of the layout; "" clears it
func (b *Base) SetHeight(height string) {
	b.element.Style().Set("height", height)
}

// SetSizeFull makes the layout fill its parent
func (b *Base) SetSizeFull() {
	b.SetWidth("100%")
	b.SetHeight("100%")
}

// SetSizeUndefined clears the inline width and height
func (b *Base) SetSizeUndefined() {
	b.SetWidth("")
	b.SetHeight("")
}

func (b *Base) addListener(eventType string, fn func(dom.Event)) dom.Registration {
	return b.element.AddEventListener(eventType, fn)
}

// addToSlot marks each node with the slot and appends it
func (b *Base) addToSlot(slot Slot, nodes ...*dom.Element) {
	for _, node := range nodes {
		node.SetAttribute(slotAttribute, slot.String())
		b.element.AppendChild(node)
	}
}

func (b *Base) orientationString() string {
	return b.element.PropertyString(orientationProperty)
}

func (b *Base) setOrientationString(orientation string) {
	b.element.SetProperty(orientationProperty, orientation)
}

// remove detaches direct children and clears their slot markers.
// Nothing is removed unless every node is a child.
func (b *Base) remove(nodes ...*dom.Element) error {
	for _, node := range nodes {
		if node == nil || node.Parent() != b.element {
			return fmt.Errorf("%w: %s is not a child of this layout", ErrPreconditionViolation, describe(node))
		}
	}
	for _, node := range nodes {
		node.RemoveAttribute(slotAttribute)
	}
	if err := b.element.RemoveChild(nodes...); err != nil {
		return fmt.Errorf("%w: %w", ErrPreconditionViolation, err)
	}
	return nil
}

// removeAll detaches every child and clears their slot markers
func (b *Base) removeAll() {
	for _, child := range b.element.Children() {
		child.RemoveAttribute(slotAttribute)
	}
	b.element.RemoveAllChildren()
}

func describe(node *dom.Element) string {
	if node == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<%s %s>", node.Tag(), node.ID())
}
