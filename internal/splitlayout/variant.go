package splitlayout

import "fmt"

// Variant is a theme variant of the split layout
type Variant int

const (
	VariantLumoMinimal Variant = iota
	VariantLumoSmall
)

// Name returns the theme name of the variant
func (v Variant) Name() string {
	switch v {
	case VariantLumoMinimal:
		return "minimal"
	case VariantLumoSmall:
		return "small"
	default:
		return ""
	}
}

// String implements fmt.Stringer
func (v Variant) String() string {
	if name := v.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant parses a theme name into a Variant
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "minimal":
		return VariantLumoMinimal, nil
	case "small":
		return VariantLumoSmall, nil
	default:
		return 0, fmt.Errorf("%w: unknown theme variant %q", ErrInvalidArgument, name)
	}
}

func variantNames(variants []Variant) []string {
	names := make([]string, 0, len(variants))
	for _, v := range variants {
		if name := v.Name(); name != "" {
			names = append(names, name)
		}
	}
	return names
}
