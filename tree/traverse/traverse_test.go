package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/treekit/tree"
)

// 2-tall complete tree:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func newCompleteTree2Tall() *tree.Node[int] {
	return &tree.Node[int]{
		Value: 4,
		Left: &tree.Node[int]{
			Value: 2,
			Left:  tree.NodeOf(1),
			Right: tree.NodeOf(3),
		},
		Right: &tree.Node[int]{
			Value: 6,
			Left:  tree.NodeOf(5),
			Right: tree.NodeOf(7),
		},
	}
}

func newLeftSkewed(n int) *tree.Node[int] {
	var root *tree.Node[int]
	for v := n; v >= 1; v-- {
		node := tree.NodeOf(v)
		node.Left = root
		root = node
	}
	return root
}

func newRightSkewed(n int) *tree.Node[int] {
	var root *tree.Node[int]
	for v := n; v >= 1; v-- {
		node := tree.NodeOf(v)
		node.Right = root
		root = node
	}
	return root
}

var shapes = []struct {
	name   string
	create func() *tree.Node[int]
}{
	{"empty", func() *tree.Node[int] { return nil }},
	{"one", func() *tree.Node[int] { return tree.NodeOf(1) }},
	{"left-skewed", func() *tree.Node[int] { return newLeftSkewed(6) }},
	{"right-skewed", func() *tree.Node[int] { return newRightSkewed(6) }},
	{"height=2", newCompleteTree2Tall},
}

func valuesOf(n *tree.Node[int], visit func(*tree.Node[int], func(int) bool)) []int {
	var out []int
	visit(n, func(v int) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Every form of the same order must produce an identical sequence,
// for every tree shape.
func TestOrderEquivalence(t *testing.T) {
	orders := []struct {
		name  string
		forms map[string]func(*tree.Node[int], func(int) bool)
	}{
		{
			name: "preorder",
			forms: map[string]func(*tree.Node[int], func(int) bool){
				"recursive": PreOrder[int],
				"iterative": PreOrderIter[int],
				"morris":    MorrisPreOrder[int],
			},
		},
		{
			name: "inorder",
			forms: map[string]func(*tree.Node[int], func(int) bool){
				"recursive": InOrder[int],
				"iterative": InOrderIter[int],
				"morris":    MorrisInOrder[int],
			},
		},
		{
			name: "postorder",
			forms: map[string]func(*tree.Node[int], func(int) bool){
				"recursive": PostOrder[int],
				"iterative": PostOrderIter[int],
			},
		},
	}

	for _, order := range orders {
		for _, shape := range shapes {
			t.Run(order.name+"/"+shape.name, func(t *testing.T) {
				want := valuesOf(shape.create(), order.forms["recursive"])
				for form, visit := range order.forms {
					got := valuesOf(shape.create(), visit)
					assert.Equal(t, want, got, form)
				}
			})
		}
	}
}

func TestOrderSequences(t *testing.T) {
	n := newCompleteTree2Tall()

	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, PreOrderValues(n))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, InOrderValues(n))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, PostOrderValues(n))
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, LevelOrderValues(n))
}

func TestEarlyStop(t *testing.T) {
	n := newCompleteTree2Tall()

	forms := map[string]func(*tree.Node[int], func(int) bool){
		"preorder/recursive":  PreOrder[int],
		"preorder/iterative":  PreOrderIter[int],
		"inorder/recursive":   InOrder[int],
		"inorder/iterative":   InOrderIter[int],
		"postorder/recursive": PostOrder[int],
		"postorder/iterative": PostOrderIter[int],
		"levelorder":          LevelOrder[int],
	}

	for name, visit := range forms {
		t.Run(name, func(t *testing.T) {
			visited := 0
			visit(n, func(int) bool {
				visited++
				return visited < 3
			})
			assert.Equal(t, 3, visited, "must stop right after f returns false")
		})
	}
}

func TestLevels(t *testing.T) {
	assert.Nil(t, Levels[int](nil))
	assert.Equal(t, [][]int{{1}}, Levels(tree.NodeOf(1)))
	assert.Equal(t,
		[][]int{{4}, {2, 6}, {1, 3, 5, 7}},
		Levels(newCompleteTree2Tall()))

	// ragged last level
	ragged := newCompleteTree2Tall()
	ragged.Left.Left = nil
	ragged.Right.Right = nil
	assert.Equal(t,
		[][]int{{4}, {2, 6}, {3, 5}},
		Levels(ragged))
}

func TestZigzag(t *testing.T) {
	assert.Nil(t, Zigzag[int](nil))
	assert.Equal(t,
		[][]int{{4}, {6, 2}, {1, 3, 5, 7}},
		Zigzag(newCompleteTree2Tall()))
	assert.Equal(t,
		[][]int{{1}, {2}, {3}},
		Zigzag(newRightSkewed(3)))
}
