package splitlayout

import "github.com/GriffinCanCode/splitlayout/internal/dom"

// ResizeEvent is fired when the client element has been resized
type ResizeEvent struct {
	Source     *SplitLayout
	FromClient bool
}

// SplitterDragendEvent is fired when the user stops dragging the splitter
type SplitterDragendEvent struct {
	Source     *SplitLayout
	FromClient bool
}

// ClickEvent is fired when the layout is clicked
type ClickEvent struct {
	Source     *SplitLayout
	FromClient bool
}

// AddIronResizeListener registers fn for resize notifications
func (l *SplitLayout) AddIronResizeListener(fn func(ResizeEvent)) dom.Registration {
	return l.addListener(EventIronResize, func(e dom.Event) {
		fn(ResizeEvent{Source: l, FromClient: e.FromClient})
	})
}

// AddSplitterDragendListener registers fn for the end of a splitter drag
func (l *SplitLayout) AddSplitterDragendListener(fn func(SplitterDragendEvent)) dom.Registration {
	return l.addListener(EventSplitterDragend, func(e dom.Event) {
		fn(SplitterDragendEvent{Source: l, FromClient: e.FromClient})
	})
}

// AddClickListener registers fn for clicks on the layout
func (l *SplitLayout) AddClickListener(fn func(ClickEvent)) dom.Registration {
	return l.addListener(EventClick, func(e dom.Event) {
		fn(ClickEvent{Source: l, FromClient: e.FromClient})
	})
}

// FireSplitterDragend synthesizes a splitter-dragend event on the server
func (l *SplitLayout) FireSplitterDragend() {
	l.element.DispatchEvent(dom.Event{Type: EventSplitterDragend})
}

// FireIronResize synthesizes an iron-resize event on the server
func (l *SplitLayout) FireIronResize() {
	l.element.DispatchEvent(dom.Event{Type: EventIronResize})
}
