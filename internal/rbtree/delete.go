package rbtree

// Delete removes value from the tree while maintaining Red-Black Tree
// properties. It reports whether value was present; deleting an absent
// value is a no-op.
//
// A node with two children keeps its place and takes over the value of
// its in-order successor, which is unlinked instead.
func (t *RBTree[T]) Delete(value T) bool {
	z := t.findNode(value)
	if z == nil {
		return false
	}

	if z.left != nil && z.right != nil {
		successor := minimum(z.right)
		z.value = successor.value
		z = successor
	}

	// z has at most one child now.
	child := z.left
	if child == nil {
		child = z.right
	}

	parent := z.parent
	isLeft := parent != nil && z == parent.left
	if child != nil {
		child.parent = parent
	}
	if parent == nil {
		t.root = child
	} else if isLeft {
		parent.left = child
	} else {
		parent.right = child
	}

	if z.color == black {
		t.fixDelete(child, parent, isLeft)
	}

	z.left, z.right, z.parent = nil, nil, nil
	t.size--
	t.checkInvariants()
	return true
}

// fixDelete restores the black height after a black node was unlinked.
// x is the position one black short of its sibling subtree. It may be
// nil, so its parent and side are passed explicitly.
func (t *RBTree[T]) fixDelete(x, parent *node[T], isLeft bool) {
	for x != t.root && isBlack(x) {
		if isLeft {
			w := parent.right
			if isRed(w) {
				w.color = black
				parent.color = red
				t.leftRotate(parent)
				w = parent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x = parent
				parent = x.parent
				isLeft = parent != nil && x == parent.left
				continue
			}
			if isBlack(w.right) {
				w.left.color = black
				w.color = red
				t.rightRotate(w)
				w = parent.right
			}
			w.color = parent.color
			parent.color = black
			w.right.color = black
			t.leftRotate(parent)
		} else {
			w := parent.left
			if isRed(w) {
				w.color = black
				parent.color = red
				t.rightRotate(parent)
				w = parent.left
			}
			if isBlack(w.right) && isBlack(w.left) {
				w.color = red
				x = parent
				parent = x.parent
				isLeft = parent != nil && x == parent.left
				continue
			}
			if isBlack(w.left) {
				w.right.color = black
				w.color = red
				t.leftRotate(w)
				w = parent.left
			}
			w.color = parent.color
			parent.color = black
			w.left.color = black
			t.rightRotate(parent)
		}
		x = t.root
	}
	if x != nil {
		x.color = black
	}
}
