package splitlayout

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/splitlayout/internal/dom"
	"github.com/GriffinCanCode/splitlayout/internal/infrastructure/monitoring"
)

const collapsibleAttribute = "collapsible-components"

// SplitLayout is a two-pane layout with a draggable, optionally collapsible
// splitter. It keeps exactly one occupant in each slot: the logical child
// set through AddToPrimary/AddToSecondary, or an empty placeholder.
type SplitLayout struct {
	Base

	primary   *dom.Element
	secondary *dom.Element

	primaryCollapsible   bool
	secondaryCollapsible bool

	splitterPosition *float64
	appliedStyle     string

	pendingUpdate dom.Registration
	lifecycle     []dom.Registration

	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// Option configures a SplitLayout
type Option func(*SplitLayout)

// WithLogger sets the layout logger
func WithLogger(logger *zap.Logger) Option {
	return func(l *SplitLayout) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMetrics enables layout metrics
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(l *SplitLayout) { l.metrics = metrics }
}

// New creates an empty horizontal layout with placeholders in both slots
func New(opts ...Option) *SplitLayout {
	l := &SplitLayout{
		Base:   newBase(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.setOrientationString(Horizontal.String())
	l.updateCollapsibleComponents()
	l.lifecycle = append(l.lifecycle,
		l.element.AddAttachListener(l.requestStyleUpdate),
		l.element.AddDetachListener(func(*dom.Document) { l.cancelStyleUpdate() }),
	)
	l.setComponents("init")
	return l
}

// NewWith creates a layout with the given primary and secondary children.
// A nil child leaves the slot empty.
func NewWith(primary, secondary *dom.Element, opts ...Option) *SplitLayout {
	l := New(opts...)
	l.AddToPrimary(primary)
	l.AddToSecondary(secondary)
	return l
}

// AddToPrimary sets the primary pane: the left one when horizontal, the
// top one when vertical. Several nodes are wrapped in a div; none clears
// the pane.
func (l *SplitLayout) AddToPrimary(nodes ...*dom.Element) {
	// A node occupies one pane only
	if contains(nodes, l.secondary) {
		l.secondary = nil
	}
	l.primary = wrap(nodes)
	l.setComponents("primary")
}

// AddToSecondary sets the secondary pane: the right one when horizontal,
// the bottom one when vertical. Several nodes are wrapped in a div; none
// clears the pane.
func (l *SplitLayout) AddToSecondary(nodes ...*dom.Element) {
	if contains(nodes, l.primary) {
		l.primary = nil
	}
	l.secondary = wrap(nodes)
	l.setComponents("secondary")
}

// PrimaryComponent returns the logical primary child, or nil
func (l *SplitLayout) PrimaryComponent() *dom.Element { return l.primary }

// SecondaryComponent returns the logical secondary child, or nil
func (l *SplitLayout) SecondaryComponent() *dom.Element { return l.secondary }

// Component returns the logical child of a slot, or nil
func (l *SplitLayout) Component(slot Slot) *dom.Element {
	if slot == Secondary {
		return l.secondary
	}
	return l.primary
}

// SetOrientation sets the orientation property of the element
func (l *SplitLayout) SetOrientation(orientation Orientation) error {
	if !orientation.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, orientation)
	}
	l.setOrientationString(orientation.String())
	if l.splitterPosition != nil {
		if doc := l.element.Document(); doc != nil {
			l.requestStyleUpdate(doc)
		}
	}
	return nil
}

// Orientation reads the orientation back from the element. The client may
// change the property without notifying the server, so this can differ
// from the last SetOrientation. An unrecognized value reads as Horizontal.
func (l *SplitLayout) Orientation() Orientation {
	o, err := ParseOrientation(l.orientationString())
	if err != nil {
		return Horizontal
	}
	return o
}

// SetPrimaryCollapsible lets the user collapse the primary pane
func (l *SplitLayout) SetPrimaryCollapsible(collapsible bool) {
	l.primaryCollapsible = collapsible
	l.updateCollapsibleComponents()
}

// SetSecondaryCollapsible lets the user collapse the secondary pane
func (l *SplitLayout) SetSecondaryCollapsible(collapsible bool) {
	l.secondaryCollapsible = collapsible
	l.updateCollapsibleComponents()
}

// IsPrimaryCollapsible reports whether the primary pane is collapsible
func (l *SplitLayout) IsPrimaryCollapsible() bool { return l.primaryCollapsible }

// IsSecondaryCollapsible reports whether the secondary pane is collapsible
func (l *SplitLayout) IsSecondaryCollapsible() bool { return l.secondaryCollapsible }

// SetSplitterPosition sets the share of the primary pane in percent. The
// value is stored as given and clamped to [0, 100] when the styles are
// applied before the next client response.
func (l *SplitLayout) SetSplitterPosition(position float64) {
	l.splitterPosition = &position
	if doc := l.element.Document(); doc != nil {
		l.requestStyleUpdate(doc)
	}
}

// SplitterPosition returns the stored splitter position and whether one is set
func (l *SplitLayout) SplitterPosition() (float64, bool) {
	if l.splitterPosition == nil {
		return 0, false
	}
	return *l.splitterPosition, true
}

// SetPrimaryStyle sets a style on the primary pane
func (l *SplitLayout) SetPrimaryStyle(name, value string) {
	l.SetStyle(Primary, name, value)
}

// SetSecondaryStyle sets a style on the secondary pane
func (l *SplitLayout) SetSecondaryStyle(name, value string) {
	l.SetStyle(Secondary, name, value)
}

// SetStyle sets a style on the occupant of a slot. Without a logical child
// the placeholder is addressed by position among the element's children.
func (l *SplitLayout) SetStyle(slot Slot, name, value string) {
	if child := l.Component(slot); child != nil {
		child.Style().Set(name, value)
		return
	}
	if occupant := l.element.ChildAt(slot.index()); occupant != nil {
		occupant.Style().Set(name, value)
	}
}

// Remove detaches the given direct children. It fails with
// ErrPreconditionViolation, removing nothing, if any node is not a child.
// Removing a slot occupant, logical child or placeholder, renders both
// slots again so each keeps exactly one occupant.
func (l *SplitLayout) Remove(nodes ...*dom.Element) error {
	// remove strips the slot markers, so look at them first
	slotted := false
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if _, ok := SlotOf(node); ok {
			slotted = true
		}
	}

	if err := l.remove(nodes...); err != nil {
		return err
	}

	for _, node := range nodes {
		if node == l.primary {
			l.primary = nil
		}
		if node == l.secondary {
			l.secondary = nil
		}
	}
	if slotted {
		l.setComponents("remove")
	}
	return nil
}

// RemoveAll detaches every child and clears their slot markers. The
// logical children are kept; the next AddToPrimary or AddToSecondary
// renders them again.
func (l *SplitLayout) RemoveAll() {
	l.removeAll()
}

// Dispose releases the pending style update and the lifecycle listeners
func (l *SplitLayout) Dispose() {
	l.cancelStyleUpdate()
	for _, reg := range l.lifecycle {
		reg.Remove()
	}
	l.lifecycle = nil
}

// setComponents re-renders both slots from the logical children
func (l *SplitLayout) setComponents(reason string) {
	l.removeAll()
	l.addToSlot(Primary, renderSlot(l.primary))
	l.addToSlot(Secondary, renderSlot(l.secondary))
	l.metrics.IncSlotRenders(reason)

	// Placeholders are new elements and need the sizing styles again
	if l.splitterPosition != nil {
		if doc := l.element.Document(); doc != nil {
			l.requestStyleUpdate(doc)
		}
	}
}

func (l *SplitLayout) updateCollapsibleComponents() {
	l.element.SetAttribute(collapsibleAttribute, collapsibleValue(l.primaryCollapsible, l.secondaryCollapsible))
}

func collapsibleValue(primary, secondary bool) string {
	switch {
	case primary && secondary:
		return "primaryAndSecondary"
	case primary:
		return "primary"
	case secondary:
		return "secondary"
	default:
		return "none"
	}
}

// requestStyleUpdate schedules the sizing styles for the next flush. The
// document keeps one task per owner, so a pending update is replaced.
func (l *SplitLayout) requestStyleUpdate(doc *dom.Document) {
	if l.pendingUpdate != nil {
		l.logger.Debug("Replacing pending splitter style update", zap.String("layout", l.element.ID()))
	}
	l.pendingUpdate = doc.BeforeClientResponse(l.element, func(*dom.Document) {
		l.pendingUpdate = nil
		l.clearSlottedFlex()
		l.updateStylesForSplitterPosition()
	})
}

func (l *SplitLayout) cancelStyleUpdate() {
	if l.pendingUpdate != nil {
		l.pendingUpdate.Remove()
		l.pendingUpdate = nil
	}
}

// clearSlottedFlex drops inline flex from slotted children; the client's
// flex defaults would otherwise override the percentage sizes
func (l *SplitLayout) clearSlottedFlex() {
	for _, child := range l.element.Children() {
		if _, ok := SlotOf(child); ok {
			child.Style().Remove("flex")
		}
	}
}

func (l *SplitLayout) updateStylesForSplitterPosition() {
	if l.splitterPosition == nil {
		return
	}
	primary, secondary := splitShares(*l.splitterPosition)
	orientation := l.Orientation()
	styleName := orientation.sizeStyle()

	if l.appliedStyle != "" && l.appliedStyle != styleName {
		l.SetPrimaryStyle(l.appliedStyle, "")
		l.SetSecondaryStyle(l.appliedStyle, "")
	}
	l.SetPrimaryStyle(styleName, formatPercent(primary))
	l.SetSecondaryStyle(styleName, formatPercent(secondary))
	l.appliedStyle = styleName

	l.metrics.IncStyleUpdates(orientation.String())
	l.logger.Debug("Applied splitter position",
		zap.String("layout", l.element.ID()),
		zap.String("style", styleName),
		zap.Float64("primary", primary),
		zap.Float64("secondary", secondary),
	)
}

// splitShares clamps a position to [0, 100] and returns both pane shares.
// NaN is treated as 0.
func splitShares(position float64) (primary, secondary float64) {
	if math.IsNaN(position) {
		position = 0
	}
	primary = math.Min(math.Max(position, 0), 100)
	return primary, 100 - primary
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func contains(nodes []*dom.Element, target *dom.Element) bool {
	if target == nil {
		return false
	}
	for _, n := range nodes {
		if n == target {
			return true
		}
	}
	return false
}

// wrap returns the single node, a div around several nodes, or nil
func wrap(nodes []*dom.Element) *dom.Element {
	present := make([]*dom.Element, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			present = append(present, n)
		}
	}
	switch len(present) {
	case 0:
		return nil
	case 1:
		return present[0]
	default:
		// Wrapped nodes may come straight out of a slot
		for _, n := range present {
			n.RemoveAttribute(slotAttribute)
		}
		return dom.NewDiv(present...)
	}
}
