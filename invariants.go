package rbtree

import "fmt"

// Check validates the red-black tree invariants:
//
//   - keys are ordered: left subtree ≤ node ≤ right subtree,
//   - the root and the sentinel are black,
//   - no red node has a red child,
//   - every path from the root to a leaf has the same number of black nodes,
//   - parent links mirror child links and every node belongs to t,
//   - the node count matches Len().
//
// Errors wrap ErrInvariant. Check does not modify the tree and is meant for
// tests and diagnostics; it visits every node.
func (t *Tree) Check() error {
	if t == nil || t.sentinel == nil {
		return fmt.Errorf("%w: tree not initialized", ErrInvariant)
	}
	if t.sentinel.color != Black {
		return fmt.Errorf("%w: sentinel is red", ErrInvariant)
	}
	if t.root == t.sentinel {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrInvariant, t.size)
		}
		return nil
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root %v is red", ErrInvariant, t.root)
	}
	if t.root.parent != t.sentinel {
		return fmt.Errorf("%w: root %v has a parent", ErrInvariant, t.root)
	}
	count, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrInvariant, count, t.size)
	}
	return nil
}

// checkNode checks the subtree at n, whose keys must lie within [lo, hi] (nil
// meaning unbounded). It returns the node count and black height of the subtree.
func (t *Tree) checkNode(n *Node, lo, hi *Key) (count int, blackHeight int, err error) {
	if n == t.sentinel {
		return 0, 0, nil
	}
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil link", ErrInvariant)
	}
	if n.tree != t {
		return 0, 0, fmt.Errorf("%w: node %v belongs to another tree", ErrInvariant, n)
	}
	if (lo != nil && n.key < *lo) || (hi != nil && n.key > *hi) {
		return 0, 0, fmt.Errorf("%w: key order broken at %v", ErrInvariant, n)
	}
	for _, child := range [2]*Node{n.left, n.right} {
		if child == t.sentinel {
			continue
		}
		if child.parent != n {
			return 0, 0, fmt.Errorf("%w: child %v does not point back to %v", ErrInvariant, child, n)
		}
		if n.color == Red && child.color == Red {
			return 0, 0, fmt.Errorf("%w: red node %v has red child %v", ErrInvariant, n, child)
		}
	}
	lcount, lheight, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, fmt.Errorf("%w: black heights differ below %v (%d != %d)",
			ErrInvariant, n, lheight, rheight)
	}
	if n.color == Black {
		lheight++
	}
	return lcount + rcount + 1, lheight, nil
}

// BlackHeight returns the number of black nodes on any path from the root to
// a leaf, not counting the leaf. The result is meaningful only for trees which
// pass Check.
func (t *Tree) BlackHeight() int {
	if t.IsEmpty() {
		return 0
	}
	h := 0
	for n := t.root; n != t.sentinel; n = n.left {
		if n.color == Black {
			h++
		}
	}
	return h
}
