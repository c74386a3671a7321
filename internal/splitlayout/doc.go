/*
Package splitlayout implements the server side of the
<collapsible-split-layout> element: a two-pane layout with a draggable
splitter whose panes can optionally be collapsed.

# Slots

The layout always renders exactly two children, one marked slot="primary"
and one slot="secondary". AddToPrimary and AddToSecondary set the logical
child of a pane; several nodes are wrapped in a div, and an empty pane is
filled with a placeholder div.

	layout := splitlayout.NewWith(editor, preview)
	layout.SetPrimaryCollapsible(true)
	layout.SetSplitterPosition(30)

# Splitter position

SetSplitterPosition stores the raw value. Once the layout is attached to a
dom.Document, a single style update is scheduled before the next client
response: inline flex is cleared from the slotted children and the clamped
position is written as width (horizontal) or height (vertical)
percentages. Repeated calls before a flush collapse into one update.

# Errors

SetOrientation returns ErrInvalidArgument for an unknown orientation and
Remove returns ErrPreconditionViolation for nodes that are not children.
Both fail before mutating anything.
*/
package splitlayout
