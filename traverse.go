package rbtree

import "iter"

// Find returns the first node with key met when descending from the root, or
// nil if no node carries key.
func (t *Tree) Find(key Key) *Node {
	if t.IsEmpty() {
		return nil
	}
	cur := t.root
	for cur != t.sentinel {
		switch {
		case key == cur.key:
			return cur
		case key < cur.key:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// Min returns the node with the smallest key, or nil for an empty tree.
func (t *Tree) Min() *Node {
	if t.IsEmpty() {
		return nil
	}
	return t.minimum(t.root)
}

// Max returns the node with the largest key, or nil for an empty tree.
func (t *Tree) Max() *Node {
	if t.IsEmpty() {
		return nil
	}
	return t.maximum(t.root)
}

func (t *Tree) minimum(x *Node) *Node {
	for x.left != t.sentinel {
		x = x.left
	}
	return x
}

func (t *Tree) maximum(x *Node) *Node {
	for x.right != t.sentinel {
		x = x.right
	}
	return x
}

// Next returns the in-order successor of n, or nil if n is the last node.
func (t *Tree) Next(n *Node) *Node {
	if n == nil || n.tree != t {
		return nil
	}
	if n.right != t.sentinel {
		return t.minimum(n.right)
	}
	p := n.parent
	for p != t.sentinel && n == p.right {
		n, p = p, p.parent
	}
	if p == t.sentinel {
		return nil
	}
	return p
}

// Prev returns the in-order predecessor of n, or nil if n is the first node.
func (t *Tree) Prev(n *Node) *Node {
	if n == nil || n.tree != t {
		return nil
	}
	if n.left != t.sentinel {
		return t.maximum(n.left)
	}
	p := n.parent
	for p != t.sentinel && n == p.left {
		n, p = p, p.parent
	}
	if p == t.sentinel {
		return nil
	}
	return p
}

// Each walks the nodes of t in-order.
//
// Iteration stops early if fn returns false.
func (t *Tree) Each(fn func(n *Node) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	var stack []*Node
	cur := t.root
	for cur != t.sentinel || len(stack) > 0 {
		for cur != t.sentinel {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			return
		}
		cur = cur.right
	}
}

// All returns an iterator over the keys of t in non-decreasing order.
func (t *Tree) All() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		t.Each(func(n *Node) bool {
			return yield(n.key)
		})
	}
}

// ToArray writes the keys of t in-order to out, at most limit of them and never
// more than len(out). It returns the number of keys written.
func (t *Tree) ToArray(out []Key, limit int) int {
	limit = min(limit, len(out))
	if limit <= 0 {
		return 0
	}
	count := 0
	t.Each(func(n *Node) bool {
		out[count] = n.key
		count++
		return count < limit
	})
	return count
}

// Keys returns all keys of t in non-decreasing order.
func (t *Tree) Keys() []Key {
	keys := make([]Key, t.Len())
	return keys[:t.ToArray(keys, len(keys))]
}
