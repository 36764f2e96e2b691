package rbtree

import (
	"errors"
	"fmt"
)

// Errors returned by VerifyTreeProperties.
var (
	ErrUnordered    = errors.New("values out of order")
	ErrRedRoot      = errors.New("root is red")
	ErrDoubleRed    = errors.New("red node has a red child")
	ErrBlackHeight  = errors.New("black height differs between subtrees")
	ErrBrokenLink   = errors.New("child does not point back to its parent")
	ErrSizeMismatch = errors.New("size does not match node count")
)

// VerifyTreeProperties validates Red-Black Tree invariants:
// 1. In-order values are strictly increasing
// 2. Root is always black
// 3. Red nodes must have black children
// 4. All paths from node to leaves have same black node count
// It also checks parent links and the stored size.
// Returns nil if all properties are satisfied.
func (t *RBTree[T]) VerifyTreeProperties() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrSizeMismatch, t.size)
		}
		return nil
	}

	if t.root.color != black {
		return ErrRedRoot
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrBrokenLink, t.root.value)
	}

	count := 0
	var prev *node[T]
	for n := range t.inOrder() {
		if prev != nil && t.compare(prev.value, n.value) >= 0 {
			return fmt.Errorf("%w: %v before %v", ErrUnordered, prev.value, n.value)
		}
		prev = n
		count++
	}
	if count != t.size {
		return fmt.Errorf("%w: %d nodes, size %d", ErrSizeMismatch, count, t.size)
	}

	_, err := t.checkSubtreeProperties(t.root)
	return err
}

// checkSubtreeProperties returns the black height of n, counting the
// nil leaves.
func (t *RBTree[T]) checkSubtreeProperties(n *node[T]) (int, error) {
	if n == nil {
		return 1, nil
	}

	for _, child := range [2]*node[T]{n.left, n.right} {
		if child != nil && child.parent != n {
			return 0, fmt.Errorf("%w: %v under %v", ErrBrokenLink, child.value, n.value)
		}
	}

	if n.color == red && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("%w: %v", ErrDoubleRed, n.value)
	}

	leftCount, err := t.checkSubtreeProperties(n.left)
	if err != nil {
		return 0, err
	}
	rightCount, err := t.checkSubtreeProperties(n.right)
	if err != nil {
		return 0, err
	}

	if leftCount != rightCount {
		return 0, fmt.Errorf("%w: %v has %d on the left, %d on the right",
			ErrBlackHeight, n.value, leftCount, rightCount)
	}

	if n.color == black {
		leftCount++
	}
	return leftCount, nil
}
