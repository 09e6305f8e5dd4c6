package ebtree_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezequielgarcia/ebtree"
	"github.com/ezequielgarcia/ebtree/ebtesting"
)

func TestDeleteSoleRecord(t *testing.T) {
	nodes := make([]ebtree.Node, 1)
	var root ebtree.Root
	nodes[0].Key = []byte("only")
	ebtree.Insert(nodes, &root, 0, 4)

	ebtree.Delete(nodes, &root, 0)
	require.True(t, root.Empty())
	require.False(t, nodes[0].InTree())
	require.Equal(t, ebtree.NoRef, ebtree.Lookup(nodes, &root, []byte("only"), 4))

	// Deleting a detached record is a no-op.
	ebtree.Delete(nodes, &root, 0)
	require.True(t, root.Empty())
}

func TestDeleteRelocatesBranchRole(t *testing.T) {
	nodes := make([]ebtree.Node, 3)
	var root ebtree.Root
	nodes[0].Key = []byte{0x00}
	nodes[1].Key = []byte{0x80}
	nodes[2].Key = []byte{0xC0}
	for i := range nodes {
		ebtree.Insert(nodes, &root, ebtree.Ref(i), 1)
	}
	// Record 1 is both the bit-0 branch at the root and a leaf below
	// record 2's bit-1 branch. Unsplicing its leaf must hand the bit-0
	// role to the freed record without touching record 0.
	require.True(t, nodes[1].AsBranch())

	ebtree.Delete(nodes, &root, 1)
	require.False(t, nodes[1].InTree())
	require.False(t, nodes[1].AsBranch())
	require.True(t, nodes[2].AsBranch())
	require.Equal(t, 0, nodes[2].SplitBit())

	require.Equal(t, ebtree.Ref(0), ebtree.First(nodes, &root))
	require.Equal(t, ebtree.Ref(2), ebtree.Next(nodes, 0))
	require.Equal(t, ebtree.NoRef, ebtree.Lookup(nodes, &root, []byte{0x80}, 1))
	require.NoError(t, ebtree.Verify(nodes, &root))
}

func TestDeleteSubsetKeepsOrderAndReinserts(t *testing.T) {
	c := ebtesting.NewTestContext(t, ebtesting.TestConfig{Seed: 37, KeyBytes: keyBytes})
	keys := c.GenerateKeys(256)
	nodes := c.NewArena(len(keys))
	var root ebtree.Root
	for i, k := range keys {
		nodes[i].Key = k
		ebtree.Insert(nodes, &root, ebtree.Ref(i), keyBytes)
	}

	for i := 0; i < len(keys); i += 2 {
		ebtree.Delete(nodes, &root, ebtree.Ref(i))
	}
	require.NoError(t, ebtree.Verify(nodes, &root))

	var kept [][]byte
	for i := 1; i < len(keys); i += 2 {
		kept = append(kept, keys[i])
	}
	kept = ebtesting.SortedCopy(kept)
	i := ebtree.First(nodes, &root)
	for _, want := range kept {
		require.True(t, bytes.Equal(want, nodes[i].Key))
		i = ebtree.Next(nodes, i)
	}
	require.Equal(t, ebtree.NoRef, i)

	// Deleted records are reinsertable as-is.
	for i := 0; i < len(keys); i += 2 {
		require.Equal(t, ebtree.Ref(i), ebtree.Insert(nodes, &root, ebtree.Ref(i), keyBytes))
	}
	require.NoError(t, ebtree.Verify(nodes, &root))
	require.Equal(t, len(keys), countLeaves(nodes, &root))
}

func TestDeleteFromDuplicateGroup(t *testing.T) {
	c := ebtesting.NewTestContext(t, ebtesting.TestConfig{Seed: 41, KeyBytes: keyBytes})
	k := c.GenerateKeys(1)[0]
	nodes := c.NewArena(5)
	var root ebtree.Root
	for i := 0; i < 4; i++ {
		nodes[i].Key = k
		ebtree.Insert(nodes, &root, ebtree.Ref(i), keyBytes)
	}

	ebtree.Delete(nodes, &root, 1)
	require.NoError(t, ebtree.Verify(nodes, &root))
	require.Equal(t, 3, countLeaves(nodes, &root))
	// The group's original member stays leftmost.
	require.Equal(t, ebtree.Ref(0), ebtree.Lookup(nodes, &root, k, keyBytes))

	// The disturbed group still admits new members.
	nodes[4].Key = k
	require.Equal(t, ebtree.Ref(4), ebtree.Insert(nodes, &root, 4, keyBytes))
	require.NoError(t, ebtree.Verify(nodes, &root))
	require.Equal(t, 4, countLeaves(nodes, &root))
	require.Equal(t, ebtree.Ref(0), ebtree.Lookup(nodes, &root, k, keyBytes))
}
