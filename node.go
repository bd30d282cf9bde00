package rbtree

import "strconv"

// Key is the type of the keys stored in a tree.
type Key int

// Color is the color bit of a node.
type Color bool

// Node colors.
const (
	Red   Color = true
	Black Color = false
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is a node of a red-black tree. Nodes are created by Tree.Insert and are
// owned by their tree until they are erased.
type Node struct {
	key                 Key
	color               Color
	left, right, parent *Node
	tree                *Tree // owning tree; nil for sentinels and erased nodes
}

// newSentinel creates the leaf placeholder of a tree. Its links point to itself,
// so no walk ever steps onto a nil pointer.
func newSentinel() *Node {
	s := &Node{color: Black}
	s.left, s.right, s.parent = s, s, s
	return s
}

// Key returns the key of a node.
func (n *Node) Key() Key {
	return n.key
}

// Color returns the color of a node.
func (n *Node) Color() Color {
	return n.color
}

// Left returns the left child of n, or nil.
func (n *Node) Left() *Node {
	return n.visible(n.left)
}

// Right returns the right child of n, or nil.
func (n *Node) Right() *Node {
	return n.visible(n.right)
}

// Parent returns the parent of n, or nil if n is the root.
func (n *Node) Parent() *Node {
	return n.visible(n.parent)
}

// visible hides the sentinel of n's tree from clients.
func (n *Node) visible(link *Node) *Node {
	if n.tree == nil || link == n.tree.sentinel {
		return nil
	}
	return link
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return strconv.Itoa(int(n.key)) + "/" + n.color.String()
}
