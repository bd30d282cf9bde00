package rbtree

import "fmt"

// Erase removes node z from the tree. z must have been returned by Insert,
// Find, Min, Max, Next or Prev of this very tree and must not have been erased
// before; otherwise Erase returns ErrForeignNode and leaves the tree untouched.
func (t *Tree) Erase(z *Node) error {
	if z == nil || z.tree != t || z == t.sentinel {
		return fmt.Errorf("%w: cannot erase %v", ErrForeignNode, z)
	}
	var x *Node // node moving into the structurally removed position
	y := z      // node structurally removed from its position
	removedColor := y.color
	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.minimum(z.right)
		removedColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y // x may be the sentinel
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	if removedColor == Black {
		t.eraseFixup(x)
	}
	t.sentinel.parent = t.sentinel
	t.size--
	z.left, z.right, z.parent, z.tree = nil, nil, nil, nil
	return nil
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
// v's parent link is set even if v is the sentinel.
func (t *Tree) transplant(u, v *Node) {
	if u.parent == t.sentinel {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// eraseFixup resolves the double-black deficit carried by x.
func (t *Tree) eraseFixup(x *Node) {
	for x != t.root && x.color == Black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == Black && w.right.color == Black {
				w.color = Red
				x = x.parent
				continue
			}
			if w.right.color == Black { // near child red
				w.left.color = Black
				w.color = Red
				t.rightRotate(w)
				w = x.parent.right
			}
			T().Debugf("rbtree: erase fixup rotates left at %v", x.parent)
			w.color = x.parent.color
			x.parent.color = Black
			w.right.color = Black
			t.leftRotate(x.parent)
			x = t.root
		} else {
			w := x.parent.left
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.left.color == Black && w.right.color == Black {
				w.color = Red
				x = x.parent
				continue
			}
			if w.left.color == Black {
				w.right.color = Black
				w.color = Red
				t.leftRotate(w)
				w = x.parent.left
			}
			T().Debugf("rbtree: erase fixup rotates right at %v", x.parent)
			w.color = x.parent.color
			x.parent.color = Black
			w.left.color = Black
			t.rightRotate(x.parent)
			x = t.root
		}
	}
	x.color = Black
}
