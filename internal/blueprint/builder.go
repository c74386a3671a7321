package blueprint

import (
	"errors"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/splitlayout/internal/dom"
	"github.com/GriffinCanCode/splitlayout/internal/infrastructure/config"
	"github.com/GriffinCanCode/splitlayout/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/splitlayout/internal/splitlayout"
)

// Component types understood by the builder
const (
	TypeText        = "text"
	TypeContainer   = "container"
	TypeDiv         = "div"
	TypeSplitLayout = "split-layout"
)

// ErrUnknownComponent is returned for a component type the builder cannot render
var ErrUnknownComponent = errors.New("unknown component type")

// Result holds the elements built from a blueprint
type Result struct {
	Title   string
	Roots   []*dom.Element
	Layouts map[string]*splitlayout.SplitLayout
}

// Builder turns expanded components into elements and split layouts
type Builder struct {
	orientation splitlayout.Orientation
	variants    []splitlayout.Variant
	sanitizer   *bluemonday.Policy
	logger      *zap.Logger
	metrics     *monitoring.Metrics
}

// BuilderOption configures a Builder
type BuilderOption func(*Builder)

// WithOrientation sets the orientation of layouts that do not set one
func WithOrientation(o splitlayout.Orientation) BuilderOption {
	return func(b *Builder) { b.orientation = o }
}

// WithThemeVariants sets variants added to every layout
func WithThemeVariants(variants ...splitlayout.Variant) BuilderOption {
	return func(b *Builder) { b.variants = variants }
}

// WithLogger sets the builder logger, also passed to built layouts
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics passes metrics to built layouts
func WithMetrics(metrics *monitoring.Metrics) BuilderOption {
	return func(b *Builder) { b.metrics = metrics }
}

// NewBuilder creates a builder with horizontal layouts by default
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		orientation: splitlayout.Horizontal,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBuilderFromConfig creates a builder with the layout defaults from cfg
func NewBuilderFromConfig(cfg config.LayoutConfig, opts ...BuilderOption) (*Builder, error) {
	orientation, err := splitlayout.ParseOrientation(cfg.Orientation)
	if err != nil {
		return nil, fmt.Errorf("layout orientation: %w", err)
	}
	variants := make([]splitlayout.Variant, 0, len(cfg.ThemeVariants))
	for _, name := range cfg.ThemeVariants {
		v, err := splitlayout.ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("layout theme variants: %w", err)
		}
		variants = append(variants, v)
	}

	base := []BuilderOption{WithOrientation(orientation), WithThemeVariants(variants...)}
	return NewBuilder(append(base, opts...)...), nil
}

// Build renders every top-level component of bp
func (b *Builder) Build(bp *Blueprint) (*Result, error) {
	result := &Result{
		Title:   bp.Title,
		Layouts: make(map[string]*splitlayout.SplitLayout),
	}
	for _, comp := range bp.Components {
		el, err := b.build(comp, result)
		if err != nil {
			return nil, err
		}
		result.Roots = append(result.Roots, el)
	}

	b.logger.Debug("Built blueprint",
		zap.String("title", bp.Title),
		zap.Int("roots", len(result.Roots)),
		zap.Int("layouts", len(result.Layouts)),
	)
	return result, nil
}

func (b *Builder) build(comp Component, result *Result) (*dom.Element, error) {
	switch comp.Type {
	case TypeText:
		el := dom.NewText(b.sanitize(stringProp(comp.Props, "content")))
		el.SetAttribute("id", comp.ID)
		return el, nil

	case TypeContainer, TypeDiv:
		children, err := b.buildAll(comp.Children, result)
		if err != nil {
			return nil, err
		}
		el := dom.NewDiv(children...)
		el.SetAttribute("id", comp.ID)
		for _, name := range []string{"layout", "role"} {
			if v := stringProp(comp.Props, name); v != "" {
				el.SetAttribute(name, v)
			}
		}
		return el, nil

	case TypeSplitLayout:
		layout, err := b.buildSplitLayout(comp, result)
		if err != nil {
			return nil, err
		}
		return layout.Element(), nil

	default:
		return nil, fmt.Errorf("component %q: %w: %s", comp.ID, ErrUnknownComponent, comp.Type)
	}
}

func (b *Builder) buildAll(comps []Component, result *Result) ([]*dom.Element, error) {
	out := make([]*dom.Element, 0, len(comps))
	for _, comp := range comps {
		el, err := b.build(comp, result)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}

func (b *Builder) buildSplitLayout(comp Component, result *Result) (*splitlayout.SplitLayout, error) {
	if _, exists := result.Layouts[comp.ID]; exists {
		return nil, fmt.Errorf("component %q: %w: duplicate layout id", comp.ID, splitlayout.ErrInvalidArgument)
	}
	if len(comp.Children) > 0 {
		return nil, fmt.Errorf("component %q: %w: children cannot be combined with primary or secondary props",
			comp.ID, splitlayout.ErrInvalidArgument)
	}

	layout := splitlayout.New(
		splitlayout.WithLogger(b.logger.With(zap.String("layout", comp.ID))),
		splitlayout.WithMetrics(b.metrics),
	)
	layout.Element().SetAttribute("id", comp.ID)

	orientation := b.orientation
	if name := stringProp(comp.Props, "orientation"); name != "" {
		o, err := splitlayout.ParseOrientation(name)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", comp.ID, err)
		}
		orientation = o
	}
	if err := layout.SetOrientation(orientation); err != nil {
		return nil, fmt.Errorf("component %q: %w", comp.ID, err)
	}

	layout.SetPrimaryCollapsible(boolProp(comp.Props, "primaryCollapsible"))
	layout.SetSecondaryCollapsible(boolProp(comp.Props, "secondaryCollapsible"))

	if raw, ok := comp.Props["splitterPosition"]; ok {
		position, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("component %q: %w: splitterPosition must be a number, got %T",
				comp.ID, splitlayout.ErrInvalidArgument, raw)
		}
		layout.SetSplitterPosition(position)
	}

	layout.AddThemeVariants(b.variants...)
	for _, name := range stringsProp(comp.Props, "themeVariants") {
		v, err := splitlayout.ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", comp.ID, err)
		}
		layout.AddThemeVariants(v)
	}

	if w := stringProp(comp.Props, "width"); w != "" {
		layout.SetWidth(w)
	}
	if h := stringProp(comp.Props, "height"); h != "" {
		layout.SetHeight(h)
	}

	// Register before building panes so nested duplicates are detected
	result.Layouts[comp.ID] = layout

	primary, err := b.buildPane(comp.ID, "primary", comp.Primary, result)
	if err != nil {
		return nil, err
	}
	secondary, err := b.buildPane(comp.ID, "secondary", comp.Secondary, result)
	if err != nil {
		return nil, err
	}
	layout.AddToPrimary(primary...)
	layout.AddToSecondary(secondary...)

	return layout, nil
}

func (b *Builder) buildPane(layoutID, pane string, comps []Component, result *Result) ([]*dom.Element, error) {
	elements, err := b.buildAll(comps, result)
	if err != nil {
		return nil, fmt.Errorf("component %q %s pane: %w", layoutID, pane, err)
	}
	return elements, nil
}

// sanitize strips markup from text content
func (b *Builder) sanitize(text string) string {
	return html.UnescapeString(b.sanitizer.Sanitize(text))
}
