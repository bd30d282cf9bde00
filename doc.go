/*
Package rbtree implements a red-black tree over integer keys.

Red-Black Trees

A red-black tree is a binary search tree where every node carries an extra color bit.
The coloring rules bound the height of the tree to O(log n):

 1. Every node is either red or black.
 2. Leaves (the sentinel) are black.
 3. A red node never has a red child.
 4. Every path from a node down to a leaf passes the same number of black nodes.
 5. The root is black.

Insert and Erase repair these rules with recolorings and at most three rotations
before returning. Between operations, Check may be used to verify them.

Keys need not be unique. A key equal to an existing one is placed in the right
subtree of that node, so an in-order walk yields keys in non-decreasing order,
duplicates included.

Sentinel

Every tree owns exactly one sentinel node. It stands in for every missing child
and for the parent of the root, which keeps the fixup code free of nil checks.
The sentinel is never visible to clients: accessors return nil where the
structure holds the sentinel.

Trees are not safe for concurrent use. Clients sharing a tree between goroutines
have to guard it with a sync.RWMutex or similar.

_________________________________________________________________________

# BSD License

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the rbtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrForeignNode is flagged when Erase is called with a node which is not a
// live member of the tree.
const ErrForeignNode = TreeError("node is not a member of this tree")

// ErrInvariant is flagged by Check whenever a red-black property is violated.
const ErrInvariant = TreeError("red-black invariant violated")
