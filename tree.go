package rbtree

// Tree is a red-black tree of keys. The zero value is not usable; create trees
// with New.
type Tree struct {
	root     *Node
	sentinel *Node // leaf placeholder, exclusive to this tree
	size     int
}

// New creates an empty tree.
func New() *Tree {
	s := newSentinel()
	return &Tree{root: s, sentinel: s}
}

// Destroy releases every node of the tree and leaves t empty.
//
// Nodes are unlinked in post-order. References to nodes of t held by clients
// become stale; Erase will reject them.
func (t *Tree) Destroy() {
	if t == nil || t.sentinel == nil {
		return
	}
	released := t.release(t.root)
	T().Infof("rbtree: destroyed tree, released %d nodes", released)
	t.root = t.sentinel
	t.sentinel.left, t.sentinel.right, t.sentinel.parent = t.sentinel, t.sentinel, t.sentinel
	t.size = 0
}

func (t *Tree) release(n *Node) int {
	if n == t.sentinel {
		return 0
	}
	count := t.release(n.left) + t.release(n.right) + 1
	n.left, n.right, n.parent, n.tree = nil, nil, nil, nil
	return count
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == t.sentinel
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if t.IsEmpty() {
		return nil
	}
	return t.root
}
