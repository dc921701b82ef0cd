package construct

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// FromBrackets parses the bracket-string tree format:
//	value(leftSubtree)(rightSubtree)
// A leaf is just its value; an empty subtree omits its group, so
// "1(2)" hangs 2 to the left and "1()(3)" hangs 3 to the right.
// Values may carry a leading '-'. The empty string parses to the
// empty tree.
//
// Unbalanced brackets, more than two groups under one node, and
// non-numeric value tokens are all rejected.
func FromBrackets[T constraints.Signed](s string) (*tree.Node[T], error) {
	if s == "" {
		return nil, nil
	}

	p := &bracketParser[T]{s: s}

	root, err := p.readValue()
	if err != nil {
		return nil, err
	}

	// stack of open nodes; each '(' descends a level, each ')'
	// climbs back out
	type frame struct {
		n      *tree.Node[T]
		groups int
	}
	stack := []frame{{root, 0}}

	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case '(':
			p.pos++

			top := &stack[len(stack)-1]
			if top.groups == 2 {
				return nil, fmt.Errorf(
					"node %v has more than two subtree groups", top.n.Value)
			}
			top.groups++

			if p.pos < len(p.s) && p.s[p.pos] == ')' {
				// explicitly empty subtree, eg. the left of "1()(3)"
				p.pos++
				continue
			}

			child, err := p.readValue()
			if err != nil {
				return nil, err
			}
			if top.groups == 1 {
				top.n.Left = child
			} else {
				top.n.Right = child
			}

			stack = append(stack, frame{child, 0})

		case ')':
			if len(stack) == 1 {
				return nil, errors.New(
					"unbalanced brackets: unexpected ')'")
			}
			stack = stack[:len(stack)-1]
			p.pos++

		default:
			return nil, fmt.Errorf(
				"unexpected character %q at offset %d", p.s[p.pos], p.pos)
		}
	}

	if len(stack) != 1 {
		return nil, errors.New("unbalanced brackets: missing ')'")
	}

	return root, nil
}

type bracketParser[T constraints.Signed] struct {
	s   string
	pos int
}

// readValue consumes a (possibly negative) integer token at the
// current offset and returns a leaf node holding it.
func (p *bracketParser[T]) readValue() (*tree.Node[T], error) {
	start := p.pos
	if p.pos < len(p.s) && p.s[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}

	tok := p.s[start:p.pos]
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf(
			"expected a value at offset %d, got %q", start, tok)
	}

	return tree.NodeOf(T(v)), nil
}

// ToBrackets is FromBrackets' inverse. Leaves render as bare
// values; a node with only a right child renders its empty left
// group as "()" to keep the right group in second position.
func ToBrackets[T constraints.Signed](n *tree.Node[T]) string {
	var sb strings.Builder
	writeBrackets(&sb, n)
	return sb.String()
}

func writeBrackets[T constraints.Signed](sb *strings.Builder, n *tree.Node[T]) {
	if n == nil {
		return
	}

	sb.WriteString(strconv.FormatInt(int64(n.Value), 10))

	if n.Left == nil && n.Right == nil {
		return
	}

	sb.WriteByte('(')
	writeBrackets(sb, n.Left)
	sb.WriteByte(')')

	if n.Right != nil {
		sb.WriteByte('(')
		writeBrackets(sb, n.Right)
		sb.WriteByte(')')
	}
}
