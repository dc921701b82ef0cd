package construct

import (
	"math/rand"

	"go.lepak.sg/treekit/tree"
)

// Random builds a search tree with num nodes. Node values are in
// the range [0, num) and are inserted in a random order. The seed
// for the random insert order is a parameter, which ensures
// repeatable results.
func Random(num int, seed int64) *tree.Node[int] {
	rd := rand.New(rand.NewSource(seed))

	values := make([]int, num)
	for i := 0; i < num; i++ {
		values[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	var root *tree.Node[int]
	for _, v := range values {
		root = bstInsert(root, v)
	}

	return root
}

func bstInsert(n *tree.Node[int], v int) *tree.Node[int] {
	if n == nil {
		return tree.NodeOf(v)
	}

	switch tree.Compare(v, n.Value) {
	case tree.Less:
		n.Left = bstInsert(n.Left, v)
	case tree.Greater:
		n.Right = bstInsert(n.Right, v)
	case tree.EqualTo:
		// values are distinct by construction
	}

	return n
}
