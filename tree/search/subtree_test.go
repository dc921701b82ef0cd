package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/treekit/tree"
)

func TestIsSubtree(t *testing.T) {
	impls := map[string]func(root, sub *tree.Node[int]) bool{
		"walk":       IsSubtree[int],
		"serialized": IsSubtreeSerialized[int],
	}

	root := &tree.Node[int]{
		Value: 3,
		Left: &tree.Node[int]{
			Value: 4,
			Left:  tree.NodeOf(1),
			Right: tree.NodeOf(2),
		},
		Right: tree.NodeOf(5),
	}

	tests := []struct {
		name string
		sub  *tree.Node[int]
		want bool
	}{
		{
			name: "nil sub matches anything",
			sub:  nil,
			want: true,
		},
		{
			name: "whole tree matches itself",
			sub:  tree.Clone(root),
			want: true,
		},
		{
			name: "inner subtree",
			sub: &tree.Node[int]{
				Value: 4,
				Left:  tree.NodeOf(1),
				Right: tree.NodeOf(2),
			},
			want: true,
		},
		{
			name: "leaf",
			sub:  tree.NodeOf(2),
			want: true,
		},
		{
			name: "value present, shape absent",
			sub: &tree.Node[int]{
				Value: 4,
				Left:  tree.NodeOf(1),
			},
			want: false, // the 4 in root also has a right child
		},
		{
			name: "value absent",
			sub:  tree.NodeOf(9),
			want: false,
		},
	}
	for name, impl := range impls {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, impl(root, tt.sub))
			})
		}
	}
}

func TestIsSubtreeNoValueSplicing(t *testing.T) {
	// "2" must not match inside "12": the separator in the
	// serialized encoding is what prevents it
	root := tree.NodeOf(12)
	sub := tree.NodeOf(2)

	assert.False(t, IsSubtree(root, sub))
	assert.False(t, IsSubtreeSerialized(root, sub))
}

func TestIsSubtreeEmptyRoot(t *testing.T) {
	assert.False(t, IsSubtree(nil, tree.NodeOf(1)))
	assert.False(t, IsSubtreeSerialized(nil, tree.NodeOf(1)))
	assert.True(t, IsSubtree[int](nil, nil))
	assert.True(t, IsSubtreeSerialized[int](nil, nil))
}
