package splitlayout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned for unrecognized orientation or variant values.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPreconditionViolation is returned when removing a node that is not a child of the layout.
	ErrPreconditionViolation = errors.New("precondition violation")
)

// Orientation is the split direction of a SplitLayout
type Orientation int

const (
	// Horizontal places the panes side by side; the splitter position sets widths.
	Horizontal Orientation = iota
	// Vertical stacks the panes; the splitter position sets heights.
	Vertical
)

// String returns the client token, "horizontal" or "vertical"
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Valid reports whether o is one of the two orientations
func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

// sizeStyle is the style property the splitter position maps to
func (o Orientation) sizeStyle() string {
	if o == Vertical {
		return "height"
	}
	return "width"
}

// ParseOrientation parses a client token, ignoring case
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("%w: unknown orientation %q", ErrInvalidArgument, s)
	}
}
