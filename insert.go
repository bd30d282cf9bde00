package rbtree

// Insert adds a node with key to the tree and returns it. Keys equal to an
// existing key are placed to its right.
func (t *Tree) Insert(key Key) *Node {
	z := &Node{
		key:    key,
		color:  Red,
		left:   t.sentinel,
		right:  t.sentinel,
		parent: t.sentinel,
		tree:   t,
	}
	parent, cur := t.sentinel, t.root
	for cur != t.sentinel {
		parent = cur
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	z.parent = parent
	if parent == t.sentinel {
		t.root = z
	} else if key < parent.key {
		parent.left = z
	} else {
		parent.right = z
	}
	t.size++
	t.insertFixup(z)
	return z
}

// insertFixup climbs from the freshly linked red node z, removing red-red
// conflicts.
func (t *Tree) insertFixup(z *Node) {
	for z.parent.color == Red {
		gp := z.parent.parent // exists: a red parent is never the root
		if z.parent == gp.left {
			uncle := gp.right
			if uncle.color == Red {
				z.parent.color = Black
				uncle.color = Black
				gp.color = Red
				z = gp
				continue
			}
			if z == z.parent.right { // inner child
				z = z.parent
				t.leftRotate(z)
			}
			T().Debugf("rbtree: insert fixup rotates right at %v", gp)
			z.parent.color = Black
			gp.color = Red
			t.rightRotate(gp)
		} else {
			uncle := gp.left
			if uncle.color == Red {
				z.parent.color = Black
				uncle.color = Black
				gp.color = Red
				z = gp
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rightRotate(z)
			}
			T().Debugf("rbtree: insert fixup rotates left at %v", gp)
			z.parent.color = Black
			gp.color = Red
			t.leftRotate(gp)
		}
	}
	t.root.color = Black
}
