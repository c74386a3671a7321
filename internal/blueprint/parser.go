package blueprint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBlueprint is returned when a document has no usable ui section
var ErrInvalidBlueprint = errors.New("invalid blueprint")

// Blueprint is the expanded form of a blueprint document
type Blueprint struct {
	Title      string
	Components []Component
}

// Component is a normalized component: explicit type, id and props.
// Shorthand forms are resolved by the parser. Primary and Secondary hold
// the panes of a split layout.
type Component struct {
	Type      string
	ID        string
	Props     map[string]interface{}
	Children  []Component
	Primary   []Component
	Secondary []Component
}

// Parser expands blueprint documents into components
type Parser struct {
	templates map[string]interface{}
	idCounter int
}

// NewParser creates a new blueprint parser
func NewParser() *Parser {
	return &Parser{
		templates: make(map[string]interface{}),
	}
}

// Parse decodes content in the given format and expands its ui section
func (p *Parser) Parse(format Format, content []byte) (*Blueprint, error) {
	doc, err := Decode(format, content)
	if err != nil {
		return nil, err
	}
	return p.Expand(doc)
}

// Expand converts a decoded document into a Blueprint
func (p *Parser) Expand(doc map[string]interface{}) (*Blueprint, error) {
	// IDs restart for every document
	p.idCounter = 0

	ui, ok := doc["ui"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: ui section is required", ErrInvalidBlueprint)
	}

	p.templates = make(map[string]interface{})
	if templates, ok := ui["templates"].(map[string]interface{}); ok {
		p.templates = templates
	}

	title, _ := ui["title"].(string)
	components, _ := ui["components"].([]interface{})

	return &Blueprint{
		Title:      title,
		Components: p.expandComponents(components),
	}, nil
}

// expandComponents recursively expands a component list, skipping entries
// that are neither text nor component objects
func (p *Parser) expandComponents(components []interface{}) []Component {
	result := make([]Component, 0, len(components))
	for _, comp := range components {
		if expanded, ok := p.expandComponent(comp); ok {
			result = append(result, expanded)
		}
	}
	return result
}

// expandComponent expands a single component with all shortcuts
func (p *Parser) expandComponent(comp interface{}) (Component, bool) {
	switch v := comp.(type) {
	case string:
		// "Hello" is a text component
		return Component{
			Type:  TypeText,
			ID:    p.nextID(TypeText),
			Props: map[string]interface{}{"content": v},
		}, true

	case map[string]interface{}:
		if compType, ok := v["type"].(string); ok {
			// Explicit form: {"type": "split-layout", "id": "...", "props": {...}}
			props, _ := v["props"].(map[string]interface{})
			compID, _ := v["id"].(string)
			children, _ := v["children"].([]interface{})
			return p.component(compType, compID, props, children), true
		}

		// Shorthand form: {"split-layout#main": {...props}}
		for key, value := range v {
			props, ok := value.(map[string]interface{})
			if !ok {
				continue
			}
			compType, compID, _ := strings.Cut(key, "#")
			children, _ := props["children"].([]interface{})
			return p.component(compType, compID, props, children), true
		}
	}
	return Component{}, false
}

func (p *Parser) component(compType, compID string, props map[string]interface{}, children []interface{}) Component {
	clean := make(map[string]interface{}, len(props))
	for k, v := range p.applyTemplate(props) {
		// Children are expanded separately; other $ directives are not supported
		if k == "children" || strings.HasPrefix(k, "$") {
			continue
		}
		clean[k] = v
	}

	// Layout shortcuts
	switch compType {
	case "row":
		compType = TypeContainer
		clean["layout"] = "horizontal"
	case "col":
		compType = TypeContainer
		clean["layout"] = "vertical"
	case "sidebar", "main", "header", "footer", "content", "section":
		clean["role"] = compType
		compType = TypeContainer
		if _, ok := clean["layout"]; !ok {
			clean["layout"] = "vertical"
		}
	case "split", "splitter":
		compType = TypeSplitLayout
	}

	if compID == "" {
		compID = p.nextID(compType)
	}

	result := Component{
		Type:     compType,
		ID:       compID,
		Props:    clean,
		Children: p.expandComponents(children),
	}
	if compType == TypeSplitLayout {
		p.expandPanes(&result)
	}
	return result
}

// expandPanes moves the primary and secondary props of a split layout into
// its panes. Without either prop, the first child fills the primary pane and
// the rest fill the secondary one. Children next to pane props are left in
// place for the builder to reject.
func (p *Parser) expandPanes(c *Component) {
	primary, hasPrimary := c.Props["primary"]
	secondary, hasSecondary := c.Props["secondary"]
	delete(c.Props, "primary")
	delete(c.Props, "secondary")

	if !hasPrimary && !hasSecondary {
		if len(c.Children) > 0 {
			c.Primary = c.Children[:1]
			c.Secondary = c.Children[1:]
		}
		c.Children = nil
		return
	}
	c.Primary = p.expandComponents(asList(primary))
	c.Secondary = p.expandComponents(asList(secondary))
}

// asList treats a single value as a one-element list
func asList(v interface{}) []interface{} {
	switch list := v.(type) {
	case nil:
		return nil
	case []interface{}:
		return list
	default:
		return []interface{}{v}
	}
}

// applyTemplate merges a referenced template under the given props;
// the component's own props win
func (p *Parser) applyTemplate(props map[string]interface{}) map[string]interface{} {
	name, ok := props["$template"].(string)
	if !ok {
		return props
	}
	template, ok := p.templates[name].(map[string]interface{})
	if !ok {
		return props
	}

	merged := make(map[string]interface{}, len(template)+len(props))
	for k, v := range template {
		merged[k] = v
	}
	for k, v := range props {
		merged[k] = v
	}
	return merged
}

// nextID generates an auto ID such as "text-0" or "split-layout-1"
func (p *Parser) nextID(compType string) string {
	id := fmt.Sprintf("%s-%d", compType, p.idCounter)
	p.idCounter++
	return id
}
