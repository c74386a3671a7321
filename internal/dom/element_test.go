package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChild(t *testing.T) {
	parent := NewElement("div")
	a, b := NewText("a"), NewText("b")

	parent.AppendChild(a, nil, b)

	assert.Equal(t, []*Element{a, b}, parent.Children())
	assert.Same(t, parent, a.Parent())
	assert.Same(t, b, parent.ChildAt(1))
	assert.Nil(t, parent.ChildAt(2))
	assert.Nil(t, parent.ChildAt(-1))
}

func TestAppendChildMovesFromPreviousParent(t *testing.T) {
	first, second := NewElement("div"), NewElement("div")
	child := NewText("moving")

	first.AppendChild(child)
	second.AppendChild(child)

	assert.Equal(t, 0, first.ChildCount())
	assert.Same(t, second, child.Parent())
}

func TestAppendChildRejectsCycles(t *testing.T) {
	outer := NewElement("div")
	inner := NewElement("div")
	outer.AppendChild(inner)

	assert.Panics(t, func() { inner.AppendChild(outer) })
	assert.Panics(t, func() { outer.AppendChild(outer) })
}

func TestRemoveChild(t *testing.T) {
	parent := NewElement("div")
	a, b := NewText("a"), NewText("b")
	parent.AppendChild(a, b)

	require.NoError(t, parent.RemoveChild(a))

	assert.Equal(t, []*Element{b}, parent.Children())
	assert.Nil(t, a.Parent())
}

func TestRemoveChildFailsWithoutPartialEffect(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	parent.AppendChild(a)

	err := parent.RemoveChild(a, NewText("stranger"))

	assert.ErrorIs(t, err, ErrNotChild)
	assert.Same(t, parent, a.Parent())
	assert.Equal(t, 1, parent.ChildCount())

	assert.ErrorIs(t, parent.RemoveChild(nil), ErrNotChild)
}

func TestRemoveAllChildren(t *testing.T) {
	parent := NewElement("div")
	a, b := NewText("a"), NewText("b")
	parent.AppendChild(a, b)

	parent.RemoveAllChildren()

	assert.Equal(t, 0, parent.ChildCount())
	assert.Nil(t, a.Parent())
	assert.Nil(t, b.Parent())
}

func TestAttributes(t *testing.T) {
	e := NewElement("div")

	e.SetAttribute("slot", "primary")
	e.SetAttribute("id", "main")
	assert.Equal(t, "primary", e.GetAttribute("slot"))
	assert.True(t, e.HasAttribute("slot"))
	assert.Equal(t, []string{"id", "slot"}, e.AttributeNames())

	e.RemoveAttribute("slot")
	assert.False(t, e.HasAttribute("slot"))
	assert.Equal(t, "", e.GetAttribute("slot"))
}

func TestProperties(t *testing.T) {
	e := NewElement("div")

	e.SetProperty("orientation", "vertical")
	e.SetProperty("opened", true)

	assert.Equal(t, "vertical", e.PropertyString("orientation"))
	assert.Equal(t, "", e.PropertyString("opened"))
	v, ok := e.Property("opened")
	assert.True(t, ok)
	assert.Equal(t, true, v)
	_, ok = e.Property("missing")
	assert.False(t, ok)
}

func TestStyle(t *testing.T) {
	e := NewElement("div")

	e.Style().Set("width", "30%")
	e.Style().Set("flex", "1")
	e.Style().Set("width", "40%")
	assert.Equal(t, "width:40%;flex:1", e.Style().String())
	assert.Equal(t, []string{"flex", "width"}, e.Style().Names())

	e.Style().Set("flex", "")
	assert.False(t, e.Style().Has("flex"))
	assert.Equal(t, "width:40%", e.Style().String())

	e.Style().Remove("width")
	assert.Equal(t, "", e.Style().String())
}

func TestThemeNames(t *testing.T) {
	e := NewElement("div")

	e.ThemeNames().Add("small", "minimal", "small", "")
	assert.Equal(t, []string{"minimal", "small"}, e.ThemeNames().Names())
	assert.Equal(t, "minimal small", e.GetAttribute("theme"))
	assert.Equal(t, 2, e.ThemeNames().Len())

	e.ThemeNames().Remove("minimal", "unknown")
	assert.Equal(t, "small", e.GetAttribute("theme"))
	assert.False(t, e.ThemeNames().Contains("minimal"))

	e.ThemeNames().Remove("small")
	assert.False(t, e.HasAttribute("theme"))
}

func TestEventListeners(t *testing.T) {
	e := NewElement("div")

	var got []Event
	reg := e.AddEventListener("click", func(ev Event) { got = append(got, ev) })
	assert.True(t, e.HasListener("click"))

	e.DispatchEvent(Event{Type: "click", FromClient: true})
	e.DispatchEvent(Event{Type: "keydown"})

	require.Len(t, got, 1)
	assert.Same(t, e, got[0].Source)
	assert.True(t, got[0].FromClient)

	reg.Remove()
	reg.Remove()
	e.DispatchEvent(Event{Type: "click"})
	assert.Len(t, got, 1)
	assert.False(t, e.HasListener("click"))
}

func TestListenerRemovingItselfDuringDispatch(t *testing.T) {
	e := NewElement("div")

	calls := 0
	var reg Registration
	reg = e.AddEventListener("click", func(Event) {
		calls++
		reg.Remove()
	})
	e.AddEventListener("click", func(Event) { calls++ })

	e.DispatchEvent(Event{Type: "click"})
	e.DispatchEvent(Event{Type: "click"})

	assert.Equal(t, 3, calls)
}

func TestIDsAreUnique(t *testing.T) {
	a, b := NewElement("div"), NewElement("div")
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Contains(t, a.ID(), "node_")
}
