package rbtree

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Sentinel leaves are drawn as small empty circles.
func Tree2Dot(t *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	nilid := 0
	edge := func(from int, child *Node) {
		if child == nil {
			nilid--
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", from, nilid)
			return
		}
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", from, ids.alloc(child))
	}
	if !t.IsEmpty() {
		t.Each(func(node *Node) bool {
			ID := ids.alloc(node)
			nodelist += fmt.Sprintf("\"%d\" [label=%d %s];\n", ID, node.key, nodeDotStyles(node))
			edge(ID, node.Left())
			edge(ID, node.Right())
			return true
		})
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(node *Node) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if node.color == Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ee3333\""
	} else {
		s += ",color=black,fillcolor=black"
	}
	return s
}
