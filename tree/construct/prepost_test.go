package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/treekit/tree"
	"go.lepak.sg/treekit/tree/traverse"
)

func TestFromPrePostFullTree(t *testing.T) {
	// full tree:
	//	1
	//	├─L─2
	//	│   ├─L─4
	//	│   └─R─5
	//	└─R─3
	full := &tree.Node[int]{
		Value: 1,
		Left: &tree.Node[int]{
			Value: 2,
			Left:  tree.NodeOf(4),
			Right: tree.NodeOf(5),
		},
		Right: tree.NodeOf(3),
	}

	rebuilt, err := FromPrePost(
		traverse.PreOrderValues(full), traverse.PostOrderValues(full))
	require.NoError(t, err)
	assert.True(t, tree.Equal(full, rebuilt))
}

func TestFromPrePostLoneChildGoesLeft(t *testing.T) {
	// pre [1,2] / post [2,1] fits both 1(2) and 1()(2);
	// the documented tie-break hangs 2 to the left
	rebuilt, err := FromPrePost([]int{1, 2}, []int{2, 1})
	require.NoError(t, err)
	require.NotNil(t, rebuilt.Left)
	assert.Nil(t, rebuilt.Right)
	assert.Equal(t, 2, rebuilt.Left.Value)

	// whatever tree comes back must reproduce both traversals
	assert.Equal(t, []int{1, 2}, traverse.PreOrderValues(rebuilt))
	assert.Equal(t, []int{2, 1}, traverse.PostOrderValues(rebuilt))
}

func TestFromPrePostErrors(t *testing.T) {
	tests := []struct {
		name string
		pre  []int
		post []int
	}{
		{
			name: "length mismatch",
			pre:  []int{1, 2},
			post: []int{2, 1, 3},
		},
		{
			name: "duplicate in post-order",
			pre:  []int{1, 2, 2},
			post: []int{2, 2, 1},
		},
		{
			name: "different roots",
			pre:  []int{1, 2, 3},
			post: []int{1, 3, 2},
		},
		{
			name: "disjoint sequences",
			pre:  []int{1, 2},
			post: []int{3, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rebuilt, err := FromPrePost(tt.pre, tt.post)
			assert.Error(t, err)
			assert.Nil(t, rebuilt, "no partial tree on error")
		})
	}
}

func TestFromPrePostEmpty(t *testing.T) {
	rebuilt, err := FromPrePost([]int{}, []int{})
	require.NoError(t, err)
	assert.Nil(t, rebuilt)
}
