package dom

import (
	"sort"
	"strings"
)

const themeAttribute = "theme"

// ThemeList is the set of theme names of an element, reflected to its
// "theme" attribute as a space separated list
type ThemeList struct {
	owner *Element
	names map[string]struct{}
}

// Add adds theme names to the set
func (t *ThemeList) Add(names ...string) {
	changed := false
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := t.names[name]; !ok {
			t.names[name] = struct{}{}
			changed = true
		}
	}
	if changed {
		t.sync()
	}
}

// Remove removes theme names from the set
func (t *ThemeList) Remove(names ...string) {
	changed := false
	for _, name := range names {
		if _, ok := t.names[name]; ok {
			delete(t.names, name)
			changed = true
		}
	}
	if changed {
		t.sync()
	}
}

// Contains reports whether name is in the set
func (t *ThemeList) Contains(name string) bool {
	_, ok := t.names[name]
	return ok
}

// Len returns the number of theme names
func (t *ThemeList) Len() int { return len(t.names) }

// Names returns the theme names, sorted
func (t *ThemeList) Names() []string {
	out := make([]string, 0, len(t.names))
	for name := range t.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (t *ThemeList) sync() {
	if len(t.names) == 0 {
		t.owner.RemoveAttribute(themeAttribute)
		return
	}
	t.owner.SetAttribute(themeAttribute, strings.Join(t.Names(), " "))
}
