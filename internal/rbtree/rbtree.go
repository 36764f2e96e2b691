// Package rbtree implements a generic Red-Black Tree data structure
// with insertion, deletion and search operations.
//
// Red-Black Tree is a self-balancing binary search tree that guarantees
// O(log n) time complexity for basic operations. Values are unique: a
// duplicate insert is rejected and leaves the tree untouched.
//
// The tree is not safe for concurrent use. Callers sharing a tree between
// goroutines must guard every call with a single lock.
package rbtree

import (
	"golang.org/x/exp/constraints"
)

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "Red"
	}
	return "Black"
}

type node[T any] struct {
	value               T
	color               color
	left, right, parent *node[T]
}

// RBTree represents a Red-Black Tree instance.
// Use New() or NewFunc() to create a new tree instance.
type RBTree[T any] struct {
	root    *node[T] // nil when the tree is empty
	size    int
	compare func(a, b T) int
	config  *Config
}

// New creates an empty tree ordered by the natural ordering of T.
// A nil config selects DefaultConfig().
func New[T constraints.Ordered](config *Config) *RBTree[T] {
	return NewFunc(compareOrdered[T], config)
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number
// when a > b. A nil config selects DefaultConfig().
func NewFunc[T any](compare func(a, b T) int, config *Config) *RBTree[T] {
	if config == nil {
		config = DefaultConfig()
	}
	return &RBTree[T]{
		compare: compare,
		config:  config,
	}
}

// compareOrdered orders NaN before every other value and equal to itself,
// otherwise floats would break the total order the tree relies on.
func compareOrdered[T constraints.Ordered](a, b T) int {
	aNaN := a != a
	bNaN := b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func isRed[T any](n *node[T]) bool {
	return n != nil && n.color == red
}

func isBlack[T any](n *node[T]) bool {
	return n == nil || n.color == black
}

// Insert adds value to the tree while maintaining Red-Black Tree
// properties. It reports false, without modifying the tree, when
// value is already present.
func (t *RBTree[T]) Insert(value T) bool {
	newNode := &node[T]{value: value, color: black}

	if t.root == nil {
		t.root = newNode
		t.size++
		t.checkInvariants()
		return true
	}

	newNode.color = red
	current := t.root
	for {
		cmp := t.compare(value, current.value)
		if cmp == 0 {
			return false
		}
		if cmp < 0 {
			if current.left == nil {
				current.left = newNode
				break
			}
			current = current.left
		} else {
			if current.right == nil {
				current.right = newNode
				break
			}
			current = current.right
		}
	}
	newNode.parent = current
	t.size++

	t.fixInsert(newNode)
	t.checkInvariants()
	return true
}

// fixInsert resolves a red node with a red parent. Only the new node and
// nodes pushed up by a red uncle can be in that state.
func (t *RBTree[T]) fixInsert(x *node[T]) {
	for x.parent != nil && x.parent.color == red {
		parent := x.parent
		grand := parent.parent // never nil: a red parent is not the root

		if parent == grand.left {
			uncle := grand.right
			if isRed(uncle) {
				parent.color = black
				uncle.color = black
				grand.color = red
				x = grand
				continue
			}
			if x == parent.right {
				// Inner child: straighten into the outer case.
				x = parent
				t.leftRotate(x)
				parent = x.parent
			}
			parent.color = black
			grand.color = red
			t.rightRotate(grand)
		} else {
			uncle := grand.left
			if isRed(uncle) {
				parent.color = black
				uncle.color = black
				grand.color = red
				x = grand
				continue
			}
			if x == parent.left {
				x = parent
				t.rightRotate(x)
				parent = x.parent
			}
			parent.color = black
			grand.color = red
			t.leftRotate(grand)
		}
	}
	t.root.color = black
}

func (t *RBTree[T]) leftRotate(x *node[T]) {
	/*
		Left rotation around node x:
			    Before:               After:
		          P                    P
		          |                    |
		          x                    y
		         / \                  / \
		        A   y       →        x   C
		           / \              / \
		          B   C            A   B
	*/
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *RBTree[T]) rightRotate(y *node[T]) {
	/*
		Right rotation around node y:
		    Before:               After:
		       P                    P
		       |                    |
		       y                    x
		      / \                  / \
		     x   C       →        A   y
		    / \                      / \
		   A   B                    B   C
	*/
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == nil {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

func (t *RBTree[T]) findNode(value T) *node[T] {
	current := t.root
	for current != nil {
		cmp := t.compare(value, current.value)
		if cmp == 0 {
			return current
		} else if cmp < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	return nil
}

// Contains checks if value is present in the tree.
func (t *RBTree[T]) Contains(value T) bool {
	return t.findNode(value) != nil
}

func minimum[T any](x *node[T]) *node[T] {
	for x.left != nil {
		x = x.left
	}
	return x
}

func maximum[T any](x *node[T]) *node[T] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// Min returns the smallest value, or false if the tree is empty.
func (t *RBTree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return minimum(t.root).value, true
}

// Max returns the largest value, or false if the tree is empty.
func (t *RBTree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return maximum(t.root).value, true
}

// Len returns the number of values stored in the tree.
func (t *RBTree[T]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest path from the root
// down to a leaf, 0 for an empty tree.
func (t *RBTree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Clear drops every value and leaves an empty tree.
func (t *RBTree[T]) Clear() {
	t.root = nil
	t.size = 0
}
