package main

import (
	"flag"
	"fmt"

	"go.lepak.sg/treekit/tree"
	"go.lepak.sg/treekit/tree/construct"
	"go.lepak.sg/treekit/tree/pathsum"
	"go.lepak.sg/treekit/tree/props"
	"go.lepak.sg/treekit/tree/traverse"
)

var (
	serial   = flag.String("t", "", "tree in serialized form, eg. 1,2,null,null,3,null,null")
	brackets = flag.String("b", "", "tree in bracket form, eg. 1(2)(3)")
	random   = flag.Int("n", 0, "build a random search tree with n nodes instead")
	seed     = flag.Int64("s", 1, "seed for -n")
	target   = flag.Int("sum", 0, "path sum target")
)

func main() {
	flag.Parse()

	var root *tree.Node[int]
	var err error

	switch {
	case *serial != "":
		root, err = construct.Deserialize[int](*serial)
	case *brackets != "":
		root, err = construct.FromBrackets[int](*brackets)
	case *random > 0:
		root = construct.Random(*random, *seed)
	default:
		root, err = construct.Deserialize[int]("4,2,1,null,null,3,null,null,6,5,null,null,7,null,null")
	}
	if err != nil {
		panic(err)
	}

	fmt.Println("tree:")
	fmt.Print(tree.Sprint(root))

	fmt.Println("preorder: ", traverse.PreOrderValues(root))
	fmt.Println("inorder:  ", traverse.InOrderValues(root))
	fmt.Println("postorder:", traverse.PostOrderValues(root))
	fmt.Println("levels:   ", traverse.Levels(root))
	fmt.Println("zigzag:   ", traverse.Zigzag(root))

	fmt.Println("nodes:", props.Count(root),
		"leaves:", props.CountLeaves(root),
		"height:", props.Height(root),
		"diameter:", props.Diameter(root))
	fmt.Println("balanced:", props.Balanced(root),
		"complete:", props.IsComplete(root),
		"search tree:", props.IsBST(root))

	if best, ok := pathsum.Max(root); ok {
		fmt.Println("max path sum:", best)
	}
	fmt.Printf("paths summing to %d: %v\n",
		*target, pathsum.Collect(root, *target))
	fmt.Println("downward paths:", pathsum.Count(root, *target))

	fmt.Println("serialized:", construct.Serialize(root))
	fmt.Println("brackets:  ", construct.ToBrackets(root))
}
