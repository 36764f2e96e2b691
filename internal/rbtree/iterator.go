package rbtree

import (
	"iter"
)

// inOrder walks the nodes in ascending order without recursion.
// The tree must not be modified while the sequence is consumed.
func (t *RBTree[T]) inOrder() iter.Seq[*node[T]] {
	return func(yield func(*node[T]) bool) {
		stack := []*node[T]{}
		current := t.root
		for current != nil || len(stack) > 0 {

			for current != nil {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current) {
				return
			}

			current = current.right
		}
	}
}
