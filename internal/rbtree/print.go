package rbtree

import (
	"fmt"
)

// PrintTree writes every node in ascending order to Config.Output, one
// line each, with its color, value and the value of its parent (empty
// for the root). The output is meant for manual inspection only.
func (t *RBTree[T]) PrintTree() {
	out := t.config.Output
	if out == nil {
		return
	}
	for n := range t.inOrder() {
		parent := ""
		if n.parent != nil {
			parent = fmt.Sprint(n.parent.value)
		}
		fmt.Fprintf(out, "Color:%s, Value:%v, Parent:%s\n", n.color, n.value, parent)
	}
}
