package rbtree

// Values returns the stored values in ascending order.
func (t *RBTree[T]) Values() []T {
	values := make([]T, 0, t.size)
	for n := range t.inOrder() {
		values = append(values, n.value)
	}
	return values
}
