package dom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/GriffinCanCode/splitlayout/internal/shared/id"
)

var (
	// ErrNotChild is returned when removing an element that is not a direct child.
	ErrNotChild = errors.New("element is not a child of this element")
)

// Element is a node of the server-side element tree mirrored to the client
type Element struct {
	id         string
	tag        string
	text       string
	attributes map[string]string
	properties map[string]interface{}
	style      *Style
	themes     *ThemeList
	children   []*Element
	parent     *Element
	doc        *Document

	listeners       map[string][]*listener
	attachListeners []*lifecycleListener
	detachListeners []*lifecycleListener
}

// NewElement creates a detached element with the given tag name
func NewElement(tag string) *Element {
	e := &Element{
		id:         id.NewNodeID().String(),
		tag:        tag,
		attributes: make(map[string]string),
		properties: make(map[string]interface{}),
		listeners:  make(map[string][]*listener),
	}
	e.style = &Style{owner: e, values: make(map[string]string)}
	e.themes = &ThemeList{owner: e, names: make(map[string]struct{})}
	return e
}

// NewDiv creates an anonymous container element
func NewDiv(children ...*Element) *Element {
	div := NewElement("div")
	div.AppendChild(children...)
	return div
}

// NewText creates a span holding plain text
func NewText(text string) *Element {
	span := NewElement("span")
	span.text = text
	return span
}

// ID returns the node identifier used in change records
func (e *Element) ID() string { return e.id }

// Tag returns the element's tag name
func (e *Element) Tag() string { return e.tag }

// Text returns the element's own text content
func (e *Element) Text() string { return e.text }

// SetText replaces the element's own text content
func (e *Element) SetText(text string) {
	e.text = text
	e.record(Change{Kind: ChangeText, Value: text})
}

// Document returns the document this element is attached to, or nil
func (e *Element) Document() *Document { return e.doc }

// IsAttached reports whether the element belongs to a document
func (e *Element) IsAttached() bool { return e.doc != nil }

// Attribute methods

// GetAttribute retrieves an attribute value, or "" if unset
func (e *Element) GetAttribute(name string) string {
	return e.attributes[name]
}

// HasAttribute reports whether the attribute is set
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attributes[name]
	return ok
}

// SetAttribute sets an attribute value and records the change
func (e *Element) SetAttribute(name, value string) {
	if current, ok := e.attributes[name]; ok && current == value {
		return
	}
	e.attributes[name] = value
	e.record(Change{Kind: ChangeAttribute, Name: name, Value: value})
}

// RemoveAttribute removes an attribute if present
func (e *Element) RemoveAttribute(name string) {
	if _, ok := e.attributes[name]; !ok {
		return
	}
	delete(e.attributes, name)
	e.record(Change{Kind: ChangeAttributeRemoved, Name: name})
}

// AttributeNames returns the set attribute names in sorted order
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attributes))
	for name := range e.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Property methods

// SetProperty sets a client-side property value
func (e *Element) SetProperty(name string, value interface{}) {
	e.properties[name] = value
	e.record(Change{Kind: ChangeProperty, Name: name, Value: value})
}

// Property returns a property value and whether it is set
func (e *Element) Property(name string) (interface{}, bool) {
	v, ok := e.properties[name]
	return v, ok
}

// PropertyString returns a property as a string, or "" if unset or not a string
func (e *Element) PropertyString(name string) string {
	s, _ := e.properties[name].(string)
	return s
}

// PropertyNames returns the set property names in sorted order
func (e *Element) PropertyNames() []string {
	names := make([]string, 0, len(e.properties))
	for name := range e.properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style returns the element's inline style
func (e *Element) Style() *Style { return e.style }

// ThemeNames returns the element's theme name set
func (e *Element) ThemeNames() *ThemeList { return e.themes }

// Tree methods

// AppendChild appends children to this element.
// A child that already has a parent is moved.
func (e *Element) AppendChild(children ...*Element) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.isAncestorOf(e) {
			panic(fmt.Sprintf("dom: cannot append <%s> into its own subtree", child.tag))
		}
		if child.parent != nil {
			child.parent.detachChild(child)
		}
		child.parent = e
		e.children = append(e.children, child)
		e.record(Change{Kind: ChangeChildAppended, Value: child.id})
		if e.doc != nil {
			child.attachRecursive(e.doc)
		}
	}
}

// RemoveChild removes direct children from this element.
// Every argument is checked before anything is removed.
func (e *Element) RemoveChild(children ...*Element) error {
	for _, child := range children {
		if child == nil || child.parent != e {
			return ErrNotChild
		}
	}
	for _, child := range children {
		e.detachChild(child)
	}
	return nil
}

// RemoveAllChildren removes every child of this element
func (e *Element) RemoveAllChildren() {
	for len(e.children) > 0 {
		e.detachChild(e.children[len(e.children)-1])
	}
}

// Children returns a copy of the child elements in order
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount returns the number of direct children
func (e *Element) ChildCount() int { return len(e.children) }

// ChildAt returns the child at index i, or nil when out of range
func (e *Element) ChildAt(i int) *Element {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// Parent returns the parent element, or nil
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) detachChild(child *Element) {
	for i, c := range e.children {
		if c != child {
			continue
		}
		e.children = append(e.children[:i], e.children[i+1:]...)
		e.record(Change{Kind: ChangeChildRemoved, Value: child.id})
		child.parent = nil
		if child.doc != nil {
			child.detachRecursive()
		}
		return
	}
}

func (e *Element) isAncestorOf(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

func (e *Element) attachRecursive(doc *Document) {
	e.doc = doc
	for _, l := range snapshotLifecycle(e.attachListeners) {
		l.fn(doc)
	}
	for _, child := range e.children {
		child.attachRecursive(doc)
	}
}

func (e *Element) detachRecursive() {
	for _, child := range e.children {
		child.detachRecursive()
	}
	doc := e.doc
	for _, l := range snapshotLifecycle(e.detachListeners) {
		l.fn(doc)
	}
	e.doc = nil
}

// record appends a change to the owning document's log when attached
func (e *Element) record(c Change) {
	if e.doc == nil {
		return
	}
	c.Node = e.id
	e.doc.record(c)
}
