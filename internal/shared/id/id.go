// Package id generates element IDs.
//
// Node IDs are prefixed ULIDs ("node_01HV..."). Monotonic entropy keeps IDs
// created within one millisecond in creation order, so node IDs sort the
// way elements were created.
package id

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// NodePrefix is the prefix of every NodeID
const NodePrefix = "node"

// NodeID identifies an element of a document tree
type NodeID string

// String returns the ID as a string
func (id NodeID) String() string { return string(id) }

// Generator issues node IDs. It is safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	entropy io.Reader
}

// NewGenerator creates a generator with monotonic, cryptographically secure entropy
func NewGenerator() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Next returns a new node ID
func (g *Generator) Next() NodeID {
	g.mu.Lock()
	u := ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
	g.mu.Unlock()
	return NodeID(NodePrefix + "_" + u.String())
}

var nodes = NewGenerator()

// NewNodeID returns a node ID from the shared generator
func NewNodeID() NodeID {
	return nodes.Next()
}
