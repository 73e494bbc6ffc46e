package mset

import (
	"fmt"
	"io"
)

// Mset2Dot outputs the internal structure of a multiset in Graphviz DOT
// format (for debugging purposes).
//
// Tree edges are drawn solid, the in-order thread is drawn as dashed edges.
func Mset2Dot(s *Multiset, w io.Writer) {
	io.WriteString(w, "digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist, threadlist := "", "", ""
	if !s.IsEmpty() {
		nilid := len(s.nodes)
		s.eachNode(s.root, func(r ref) {
			n := &s.nodes[r]
			label := fmt.Sprintf("%d\\n×%d", n.elem, n.count)
			nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", r, label, nodeDotStyles(r == s.root))
			for _, child := range [2]ref{n.left, n.right} {
				if child == none {
					nilid++
					nodelist += fmt.Sprintf("\t\"%d\" %s;\n", nilid, emptyNode())
					edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", r, nilid)
				} else {
					edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", r, child)
				}
			}
			if n.next != none {
				threadlist += fmt.Sprintf("\t\"%d\" -> \"%d\" [style=dashed,color=\"#0077FF\",constraint=false];\n",
					r, n.next)
			}
		})
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, threadlist)
	io.WriteString(w, "}\n")
}

// eachNode visits the subtree at r in pre-order.
func (s *Multiset) eachNode(r ref, f func(ref)) {
	if r == none {
		return
	}
	f(r)
	s.eachNode(s.nodes[r].left, f)
	s.eachNode(s.nodes[r].right, f)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isroot bool) string {
	s := ",style=filled,shape=circle,color=black"
	if isroot {
		s += ",fillcolor=\"#FFBB88\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
