package dom

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// ChangeKind identifies the type of a recorded tree mutation
type ChangeKind string

const (
	ChangeAttribute        ChangeKind = "set_attribute"
	ChangeAttributeRemoved ChangeKind = "remove_attribute"
	ChangeProperty         ChangeKind = "set_property"
	ChangeStyle            ChangeKind = "set_style"
	ChangeStyleRemoved     ChangeKind = "remove_style"
	ChangeText             ChangeKind = "set_text"
	ChangeChildAppended    ChangeKind = "append_child"
	ChangeChildRemoved     ChangeKind = "remove_child"
)

// Change is one mutation of an attached element, flushed to the client
type Change struct {
	Kind  ChangeKind  `json:"kind"`
	Node  string      `json:"node"`
	Name  string      `json:"name,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// MarshalChanges encodes a change batch as a JSON array
func MarshalChanges(changes []Change) ([]byte, error) {
	if changes == nil {
		changes = []Change{}
	}
	data, err := sonic.Marshal(changes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode changes: %w", err)
	}
	return data, nil
}

// Filter returns the changes matching kind and name. An empty name matches any.
func Filter(changes []Change, kind ChangeKind, name string) []Change {
	var out []Change
	for _, c := range changes {
		if c.Kind == kind && (name == "" || c.Name == name) {
			out = append(out, c)
		}
	}
	return out
}
