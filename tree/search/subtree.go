package search

import (
	"strconv"
	"strings"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// IsSubtree reports whether sub occurs somewhere in root as a
// COMPLETE subtree: same structure and same values all the way
// down, children included (a match can't have extra children
// hanging off its leaves). The empty tree is a subtree of
// everything. Cost is O(len(root) * len(sub)) in the worst case;
// IsSubtreeSerialized trades allocation for a single scan.
func IsSubtree[T constraints.Ordered](root, sub *tree.Node[T]) bool {
	if sub == nil {
		return true
	}
	if root == nil {
		return false
	}

	if tree.Equal(root, sub) {
		return true
	}

	return IsSubtree(root.Left, sub) || IsSubtree(root.Right, sub)
}

// IsSubtreeSerialized answers IsSubtree by encoding both trees
// into delimiter-safe pre-order strings and running substring
// search. Each value is preceded by a separator and absent
// children are encoded explicitly, so "2" can never match inside
// "12" and leaf matches can't ignore children. Two string builds
// plus one scan, at the price of materializing both encodings.
func IsSubtreeSerialized[T constraints.Signed](root, sub *tree.Node[T]) bool {
	return strings.Contains(subtreeEncode(root), subtreeEncode(sub))
}

func subtreeEncode[T constraints.Signed](n *tree.Node[T]) string {
	var sb strings.Builder
	subtreeEncodeVisit(&sb, n)
	return sb.String()
}

func subtreeEncodeVisit[T constraints.Signed](sb *strings.Builder, n *tree.Node[T]) {
	sb.WriteByte(' ')
	if n == nil {
		sb.WriteByte('#')
		return
	}

	sb.WriteString(strconv.FormatInt(int64(n.Value), 10))
	subtreeEncodeVisit(sb, n.Left)
	subtreeEncodeVisit(sb, n.Right)
}
