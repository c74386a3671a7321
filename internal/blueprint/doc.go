// Package blueprint builds element trees and split layouts from declarative
// blueprint documents.
//
// A document is JSON, YAML or TOML with a ui section:
//
//	ui:
//	  title: Mail
//	  components:
//	    - type: split-layout
//	      id: main
//	      props:
//	        orientation: vertical
//	        splitterPosition: 30
//	        primary: ["Inbox"]
//	        secondary:
//	          - {type: text, props: {content: Reading pane}}
//
// Key Components:
//   - Decode: format-specific decoding into generic maps
//   - Parser: shorthand and template expansion into Components
//   - Builder: Components to dom elements and SplitLayouts
//
// Shorthands:
//   - "Hello": text component
//   - {"split-layout#main": {...}}: type and id in one key
//   - row / col: containers with a horizontal or vertical layout
//   - sidebar, main, header, footer, content, section: containers with a role
//   - split / splitter: split-layout
//   - $template: merge props from ui.templates
//
// Components without an id get one of the form "type-N".
//
// Example:
//
//	bp, err := blueprint.NewParser().Parse(blueprint.FormatYAML, content)
//	result, err := blueprint.NewBuilder().Build(bp)
package blueprint
