package construct

import (
	"fmt"
	"strconv"
	"strings"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// NullToken encodes an absent child in the serialized tree format.
// It is reserved: no value token can collide with it since values
// are numeric.
const NullToken = "null"

// Serialize encodes the tree as a comma-separated pre-order
// listing with NullToken standing in for each absent child:
//	    1
//	   / \
//	  2   3
// encodes as "1,2,null,null,3,null,null". The empty tree encodes
// as "null". Deserialize inverts this exactly.
func Serialize[T constraints.Signed](n *tree.Node[T]) string {
	var sb strings.Builder
	writeSerial(&sb, n)
	return sb.String()
}

func writeSerial[T constraints.Signed](sb *strings.Builder, n *tree.Node[T]) {
	if sb.Len() > 0 {
		sb.WriteByte(',')
	}

	if n == nil {
		sb.WriteString(NullToken)
		return
	}

	sb.WriteString(strconv.FormatInt(int64(n.Value), 10))
	writeSerial(sb, n.Left)
	writeSerial(sb, n.Right)
}

// Deserialize rebuilds a tree from its Serialize encoding,
// consuming tokens in the same pre-order, left subtree before
// right. Truncated input, non-numeric tokens and trailing tokens
// are rejected.
func Deserialize[T constraints.Signed](s string) (*tree.Node[T], error) {
	d := serialDecoder[T]{tokens: strings.Split(s, ",")}

	root, err := d.build()
	if err != nil {
		return nil, err
	}

	if d.next != len(d.tokens) {
		return nil, fmt.Errorf(
			"trailing tokens after serialized tree: %q",
			strings.Join(d.tokens[d.next:], ","))
	}

	return root, nil
}

type serialDecoder[T constraints.Signed] struct {
	tokens []string
	next   int
}

func (d *serialDecoder[T]) build() (*tree.Node[T], error) {
	if d.next == len(d.tokens) {
		return nil, fmt.Errorf("serialized tree is truncated")
	}

	tok := strings.TrimSpace(d.tokens[d.next])
	d.next++

	if tok == NullToken {
		return nil, nil
	}

	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid token %q in serialized tree", tok)
	}

	n := tree.NodeOf(T(v))
	if n.Left, err = d.build(); err != nil {
		return nil, err
	}
	if n.Right, err = d.build(); err != nil {
		return nil, err
	}

	return n, nil
}
