package ebtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaggedRefPacking(t *testing.T) {
	for _, tag := range []Tag{Leaf, Branch} {
		for _, i := range []Ref{0, 1, 12345, RootRef} {
			tr := Tagged(i, tag)
			require.Equal(t, i, tr.Ref())
			require.Equal(t, tag, tr.Tag())
			require.NotEqual(t, None, tr)
		}
	}
}

func TestNoneWalksToNoRef(t *testing.T) {
	// walkDown depends on the empty reference carrying the Leaf tag
	// and unpacking to NoRef, so empty slots terminate a descent with
	// "no record" and no special casing.
	require.Equal(t, Leaf, None.Tag())
	require.Equal(t, NoRef, None.Ref())

	var root Root
	require.True(t, root.Empty())
	require.False(t, root.Unique())
	require.Equal(t, NoRef, First(nil, &root))
	require.Equal(t, NoRef, Last(nil, &root))

	u := UniqueRoot()
	require.True(t, u.Empty())
	require.True(t, u.Unique())
}
