package pathsum

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/treekit/tree"
	"go.lepak.sg/treekit/tree/construct"
	"golang.org/x/sync/errgroup"
)

func TestCount(t *testing.T) {
	// the classic counting tree, target 8:
	// paths 5-3, 5-2-1, -3-11
	n, err := construct.Deserialize[int](
		"10,5,3,3,null,null,-2,null,null,2,null,1,null,null,-3,null,11,null,null")
	require.NoError(t, err)

	assert.Equal(t, 3, Count(n, 8))
	assert.Equal(t, 3, CountNaive(n, 8))

	assert.Equal(t, 0, Count[int](nil, 0))
	assert.Equal(t, 0, CountNaive[int](nil, 0))

	// zero-sum subtleties: the seed {0:1} must not invent paths
	zero := tree.NodeOf(0)
	assert.Equal(t, 1, Count(zero, 0))
	assert.Equal(t, 1, CountNaive(zero, 0))
}

func TestCountNoSiblingCrossing(t *testing.T) {
	// prefix sums on the left branch: 1, 3, 6.
	// at the right child, running=5 and 5-2=3 matches the stale
	// left-branch prefix if the decrement-on-unwind is skipped,
	// inventing a path that crosses between siblings.
	n := &tree.Node[int]{
		Value: 1,
		Left: &tree.Node[int]{
			Value: 2,
			Left:  tree.NodeOf(3),
		},
		Right: tree.NodeOf(4),
	}

	assert.Equal(t, 1, Count(n, 2), "only the node 2 itself")
	assert.Equal(t, CountNaive(n, 2), Count(n, 2))
}

func randomTree(rd *rand.Rand, depth int) *tree.Node[int] {
	if depth == 0 || rd.Intn(5) == 0 {
		return nil
	}

	n := tree.NodeOf(rd.Intn(21) - 10)
	n.Left = randomTree(rd, depth-1)
	n.Right = randomTree(rd, depth-1)

	return n
}

func TestCountMatchesNaive(t *testing.T) {
	const workers = 4
	const rounds = 200

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		seed := int64(0xc0ffee + w)
		g.Go(func() error {
			rd := rand.New(rand.NewSource(seed))
			for i := 0; i < rounds; i++ {
				n := randomTree(rd, 12)
				target := rd.Intn(41) - 20

				fast := Count(n, target)
				slow := CountNaive(n, target)
				if fast != slow {
					return fmt.Errorf(
						"seed=%#x round=%d target=%d: Count=%d CountNaive=%d\n%s",
						seed, i, target, fast, slow, tree.Sprint(n))
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
