package blueprint

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/splitlayout/internal/dom"
	"github.com/GriffinCanCode/splitlayout/internal/infrastructure/config"
	"github.com/GriffinCanCode/splitlayout/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/splitlayout/internal/splitlayout"
)

const mailJSON = `{
  "ui": {
    "title": "Mail",
    "components": [
      {
        "type": "split-layout",
        "id": "main",
        "props": {
          "orientation": "vertical",
          "splitterPosition": 30,
          "primaryCollapsible": true,
          "themeVariants": ["small"],
          "primary": ["Inbox"],
          "secondary": [{"type": "text", "props": {"content": "Reading pane"}}]
        }
      }
    ]
  }
}`

const mailYAML = `
ui:
  title: Mail
  components:
    - type: split-layout
      id: main
      props:
        orientation: vertical
        splitterPosition: 30
        primaryCollapsible: true
        themeVariants: [small]
        primary: [Inbox]
        secondary:
          - {type: text, props: {content: Reading pane}}
`

const mailTOML = `
[ui]
title = "Mail"

[[ui.components]]
type = "split-layout"
id = "main"

[ui.components.props]
orientation = "vertical"
splitterPosition = 30
primaryCollapsible = true
themeVariants = ["small"]
primary = ["Inbox"]
secondary = [{ type = "text", props = { content = "Reading pane" } }]
`

func build(t *testing.T, format Format, content string, opts ...BuilderOption) *Result {
	t.Helper()
	bp, err := NewParser().Parse(format, []byte(content))
	require.NoError(t, err)
	result, err := NewBuilder(opts...).Build(bp)
	require.NoError(t, err)
	return result
}

func TestBuildAllFormatsAgree(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		content string
	}{
		{"json", FormatJSON, mailJSON},
		{"yaml", FormatYAML, mailYAML},
		{"toml", FormatTOML, mailTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := build(t, tt.format, tt.content)

			assert.Equal(t, "Mail", result.Title)
			require.Len(t, result.Roots, 1)
			require.Contains(t, result.Layouts, "main")

			layout := result.Layouts["main"]
			assert.Same(t, layout.Element(), result.Roots[0])
			assert.Equal(t, splitlayout.Vertical, layout.Orientation())
			assert.True(t, layout.IsPrimaryCollapsible())
			assert.False(t, layout.IsSecondaryCollapsible())
			assert.True(t, layout.HasThemeVariant(splitlayout.VariantLumoSmall))

			position, ok := layout.SplitterPosition()
			require.True(t, ok)
			assert.Equal(t, 30.0, position)

			require.NotNil(t, layout.PrimaryComponent())
			require.NotNil(t, layout.SecondaryComponent())
			assert.Equal(t, "Inbox", layout.PrimaryComponent().Text())
			assert.Equal(t, "Reading pane", layout.SecondaryComponent().Text())
		})
	}
}

func TestBuiltLayoutAppliesSplitterOnFlush(t *testing.T) {
	result := build(t, FormatJSON, mailJSON)
	layout := result.Layouts["main"]

	doc := dom.NewDocument()
	doc.Attach(result.Roots...)
	doc.Flush()

	assert.Equal(t, "30%", layout.PrimaryComponent().Style().Get("height"))
	assert.Equal(t, "70%", layout.SecondaryComponent().Style().Get("height"))
}

func TestBuildNestedLayouts(t *testing.T) {
	content := `{
	  "ui": {
	    "components": [
	      {"split-layout#outer": {
	        "splitterPosition": 25,
	        "children": [
	          {"sidebar#nav": {"children": ["Folders"]}},
	          {"split-layout#inner": {"orientation": "vertical", "primary": ["List"]}}
	        ]
	      }}
	    ]
	  }
	}`

	result := build(t, FormatJSON, content)

	require.Len(t, result.Layouts, 2)
	outer, inner := result.Layouts["outer"], result.Layouts["inner"]
	assert.Equal(t, splitlayout.Horizontal, outer.Orientation())
	assert.Equal(t, splitlayout.Vertical, inner.Orientation())
	assert.Same(t, inner.Element(), outer.SecondaryComponent())

	nav := outer.PrimaryComponent()
	require.NotNil(t, nav)
	assert.Equal(t, "sidebar", nav.GetAttribute("role"))
	assert.Equal(t, "nav", nav.GetAttribute("id"))

	// No secondary: the placeholder stays
	assert.Nil(t, inner.SecondaryComponent())
	assert.Equal(t, 2, inner.Element().ChildCount())
}

func TestBuildWrapsExtraChildrenIntoSecondary(t *testing.T) {
	result := build(t, FormatJSON, `{"ui": {"components": [{"split#main": {"children": ["Nav", "Body", "Footer"]}}]}}`)

	layout := result.Layouts["main"]
	assert.Equal(t, "Nav", layout.PrimaryComponent().Text())

	secondary := layout.SecondaryComponent()
	require.NotNil(t, secondary)
	assert.Equal(t, "div", secondary.Tag())
	require.Equal(t, 2, secondary.ChildCount())
	assert.Equal(t, "Body", secondary.ChildAt(0).Text())
	assert.Equal(t, "Footer", secondary.ChildAt(1).Text())
	assert.Equal(t, 2, layout.Element().ChildCount())
}

func TestBuildRendersHTML(t *testing.T) {
	result := build(t, FormatYAML, mailYAML)
	doc := dom.NewDocument()
	doc.Attach(result.Roots...)
	doc.Flush()

	out, err := dom.RenderHTML(result.Roots[0])
	require.NoError(t, err)

	page, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	root := page.Find(splitlayout.Tag + "#main")
	require.Equal(t, 1, root.Length())
	assert.Equal(t, "vertical", root.AttrOr("orientation", ""))
	assert.Equal(t, "primary", root.AttrOr("collapsible-components", ""))
	assert.Equal(t, "Inbox", root.Find(`[slot="primary"]`).Text())
	assert.Equal(t, "height:70%", root.Find(`[slot="secondary"]`).AttrOr("style", ""))
}

func TestBuildSanitizesText(t *testing.T) {
	result := build(t, FormatJSON, `{"ui": {"components": ["Hello <script>alert(1)</script><b>world</b> & co"]}}`)

	require.Len(t, result.Roots, 1)
	assert.Equal(t, "Hello world & co", result.Roots[0].Text())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
		message string
	}{
		{
			name:    "invalid orientation",
			content: `{"ui": {"components": [{"split-layout#main": {"orientation": "diagonal"}}]}}`,
			target:  splitlayout.ErrInvalidArgument,
			message: `"main"`,
		},
		{
			name:    "non numeric splitter position",
			content: `{"ui": {"components": [{"split-layout#main": {"splitterPosition": "half"}}]}}`,
			target:  splitlayout.ErrInvalidArgument,
			message: "splitterPosition",
		},
		{
			name:    "unknown variant",
			content: `{"ui": {"components": [{"split-layout#main": {"themeVariants": ["huge"]}}]}}`,
			target:  splitlayout.ErrInvalidArgument,
			message: `"main"`,
		},
		{
			name:    "duplicate layout id",
			content: `{"ui": {"components": [{"split-layout#a": {}}, {"split-layout#a": {}}]}}`,
			target:  splitlayout.ErrInvalidArgument,
			message: "duplicate",
		},
		{
			name:    "children next to pane props",
			content: `{"ui": {"components": [{"split-layout#main": {"primary": ["a"], "children": ["b"]}}]}}`,
			target:  splitlayout.ErrInvalidArgument,
			message: "children",
		},
		{
			name:    "unknown component in pane",
			content: `{"ui": {"components": [{"split-layout#main": {"primary": [{"chart#c": {}}]}}]}}`,
			target:  ErrUnknownComponent,
			message: "primary pane",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp, err := NewParser().Parse(FormatJSON, []byte(tt.content))
			require.NoError(t, err)

			_, err = NewBuilder().Build(bp)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestBuilderDefaultsFromConfig(t *testing.T) {
	cfg := config.LayoutConfig{
		Orientation:   "vertical",
		ThemeVariants: []string{"minimal"},
	}
	metrics := monitoring.NewMetrics("test")
	b, err := NewBuilderFromConfig(cfg, WithMetrics(metrics))
	require.NoError(t, err)

	bp, err := NewParser().Parse(FormatJSON, []byte(`{"ui": {"components": [{"split#main": {}}]}}`))
	require.NoError(t, err)
	result, err := b.Build(bp)
	require.NoError(t, err)

	layout := result.Layouts["main"]
	assert.Equal(t, splitlayout.Vertical, layout.Orientation())
	assert.True(t, layout.HasThemeVariant(splitlayout.VariantLumoMinimal))
	assert.Positive(t, metrics.Snapshot().SlotRenders)
}

func TestBuilderFromConfigRejectsBadDefaults(t *testing.T) {
	_, err := NewBuilderFromConfig(config.LayoutConfig{Orientation: "sideways"})
	assert.ErrorIs(t, err, splitlayout.ErrInvalidArgument)

	_, err = NewBuilderFromConfig(config.LayoutConfig{Orientation: "horizontal", ThemeVariants: []string{"bold"}})
	assert.ErrorIs(t, err, splitlayout.ErrInvalidArgument)
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{float64(12.5), 12.5, true},
		{int64(-3), -3, true},
		{uint64(40), 40, true},
		{42, 42, true},
		{"42", 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := toFloat(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}
