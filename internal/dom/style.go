package dom

import (
	"sort"
	"strings"
)

// Style is an element's inline style declaration
type Style struct {
	owner  *Element
	values map[string]string
	order  []string
}

// Set sets a style property. An empty value removes it.
func (s *Style) Set(name, value string) {
	if value == "" {
		s.Remove(name)
		return
	}
	if current, ok := s.values[name]; ok {
		if current == value {
			return
		}
	} else {
		s.order = append(s.order, name)
	}
	s.values[name] = value
	s.owner.record(Change{Kind: ChangeStyle, Name: name, Value: value})
}

// Get returns a style property value, or "" if unset
func (s *Style) Get(name string) string {
	return s.values[name]
}

// Has reports whether the style property is set
func (s *Style) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Remove clears a style property
func (s *Style) Remove(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.owner.record(Change{Kind: ChangeStyleRemoved, Name: name})
}

// Names returns the set style property names, sorted
func (s *Style) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	sort.Strings(names)
	return names
}

// String serializes the declaration in insertion order, e.g. "width:30%;flex:1"
func (s *Style) String() string {
	parts := make([]string, 0, len(s.order))
	for _, name := range s.order {
		parts = append(parts, name+":"+s.values[name])
	}
	return strings.Join(parts, ";")
}
