package rbtree

// leftRotate rotates the subtree rooted at x to the left.
//
//	    P                P
//	    |                |
//	    x                y
//	   / \              / \
//	  A   y     →      x   C
//	     / \          / \
//	    B   C        A   B
func (t *Tree) leftRotate(x *Node) {
	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rightRotate rotates the subtree rooted at y to the right.
//
//	      P            P
//	      |            |
//	      y            x
//	     / \          / \
//	    x   C   →    A   y
//	   / \              / \
//	  A   B            B   C
func (t *Tree) rightRotate(y *Node) {
	x := y.left
	y.left = x.right
	if x.right != t.sentinel {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.sentinel {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}
