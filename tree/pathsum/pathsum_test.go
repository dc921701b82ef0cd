package pathsum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/treekit/tree"
	"go.lepak.sg/treekit/tree/construct"
)

// the classic path-sum tree:
//	5
//	├─L─4
//	│   └─L─11
//	│       ├─L─7
//	│       └─R─2
//	└─R─8
//	    ├─L─13
//	    └─R─4
//	        └─R─1
func newPathSumTree() *tree.Node[int] {
	n, err := construct.Deserialize[int](
		"5,4,11,7,null,null,2,null,null,null,8,13,null,null,4,null,1,null,null")
	if err != nil {
		panic(err)
	}
	return n
}

func TestHas(t *testing.T) {
	n := newPathSumTree()

	assert.True(t, Has(n, 22), "5+4+11+2")
	assert.False(t, Has(n, 21))
	assert.True(t, Has(n, 26), "5+8+13")
	assert.True(t, Has(n, 18), "5+8+4+1")

	// 20 = 5+4+11 stops at an internal node, not a leaf
	assert.False(t, Has(n, 20))

	assert.False(t, Has[int](nil, 0), "empty tree has no paths")

	single := tree.NodeOf(-3)
	assert.True(t, Has(single, -3))
	assert.False(t, Has(single, 0))
}

func TestCollect(t *testing.T) {
	// two distinct root-to-leaf paths with the same sum
	n, err := construct.Deserialize[int](
		"5,4,11,7,null,null,2,null,null,null,8,13,null,null,4,5,null,null,1,null,null")
	assert.NoError(t, err)

	assert.Equal(t, [][]int{
		{5, 4, 11, 2},
		{5, 8, 4, 5},
	}, Collect(n, 22))

	assert.Empty(t, Collect(n, 1))
	assert.Empty(t, Collect[int](nil, 0))

	single := tree.NodeOf(7)
	assert.Equal(t, [][]int{{7}}, Collect(single, 7))
}

func TestCollectBacktracksAfterMatch(t *testing.T) {
	// a matching leaf must not leave its value on the shared
	// buffer for the paths discovered after it
	n, err := construct.Deserialize[int](
		"1,2,null,null,2,null,null")
	assert.NoError(t, err)

	assert.Equal(t, [][]int{
		{1, 2},
		{1, 2},
	}, Collect(n, 3))
}

func TestMax(t *testing.T) {
	two := &tree.Node[int]{
		Value: 1,
		Left:  tree.NodeOf(2),
		Right: tree.NodeOf(3),
	}
	best, ok := Max(two)
	assert.True(t, ok)
	assert.Equal(t, 6, best, "path 2-1-3")

	// a negative root is bypassed entirely when a subtree alone
	// is better
	neg, err := construct.Deserialize[int](
		"-10,9,null,null,20,15,null,null,7,null,null")
	assert.NoError(t, err)
	best, ok = Max(neg)
	assert.True(t, ok)
	assert.Equal(t, 42, best, "path 15-20-7")

	// all negative: the best path is the single least-bad node
	allNeg, err := construct.Deserialize[int]("-3,-5,null,null,-8,null,null")
	assert.NoError(t, err)
	best, ok = Max(allNeg)
	assert.True(t, ok)
	assert.Equal(t, -3, best)

	_, ok = Max[int](nil)
	assert.False(t, ok, "empty tree has no paths, and no honest sum")
}
