package id

import (
	"strings"
	"sync"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeIDFormat(t *testing.T) {
	nodeID := NewNodeID().String()

	prefix, raw, ok := strings.Cut(nodeID, "_")
	require.True(t, ok, "missing separator in %q", nodeID)
	assert.Equal(t, NodePrefix, prefix)
	_, err := ulid.Parse(raw)
	assert.NoError(t, err)
}

func TestNodeIDsSortInCreationOrder(t *testing.T) {
	gen := NewGenerator()

	prev := gen.Next()
	for i := 0; i < 500; i++ {
		next := gen.Next()
		require.Greater(t, next.String(), prev.String())
		prev = next
	}
}

func TestConcurrentNodeIDsAreUnique(t *testing.T) {
	gen := NewGenerator()

	const workers, perWorker = 20, 200
	ids := make(chan NodeID, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- gen.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[NodeID]struct{}, workers*perWorker)
	for nodeID := range ids {
		_, dup := seen[nodeID]
		require.False(t, dup, "duplicate id %s", nodeID)
		seen[nodeID] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}
