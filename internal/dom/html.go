package dom

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
)

// RenderHTML serializes an element subtree as HTML. Properties with
// scalar values are rendered as attributes unless an attribute of the
// same name exists; the inline style is rendered as the style attribute.
func RenderHTML(e *Element) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, toNode(e)); err != nil {
		return "", fmt.Errorf("failed to render <%s>: %w", e.tag, err)
	}
	return buf.String(), nil
}

func toNode(e *Element) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: e.tag}

	for _, name := range e.AttributeNames() {
		n.Attr = append(n.Attr, html.Attribute{Key: name, Val: e.attributes[name]})
	}
	for _, name := range e.PropertyNames() {
		if e.HasAttribute(name) {
			continue
		}
		switch v := e.properties[name].(type) {
		case string, bool, int, int64, float64:
			n.Attr = append(n.Attr, html.Attribute{Key: name, Val: fmt.Sprint(v)})
		}
	}
	if style := e.style.String(); style != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: style})
	}

	if e.text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.text})
	}
	for _, child := range e.children {
		n.AppendChild(toNode(child))
	}
	return n
}
