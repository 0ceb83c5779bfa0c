package rbtree

import "fmt"

type color int

const (
	red color = iota
	black
)

func (c color) String() string {
	if c == black {
		return "black"
	}
	return "red"
}

// node is the unit of storage. Children are owned by their parent; the
// parent link is a back reference used by the iterative fix-ups.
//
// The sentinel ("no subtree") is the nil *node. It is black, it is shared by
// every tree, and it can never be mutated or released.
type node[K, V any] struct {
	key                 K
	value               V
	parent, left, right *node[K, V]
	color               color
}

// Create a red node with both children set to the sentinel.
func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, color: red}
}

// Create a node from explicit fields. The color defaults to red.
func newNodeWith[K, V any](key K, value V, left, right *node[K, V], c ...color) *node[K, V] {
	n := &node[K, V]{key: key, value: value, left: left, right: right, color: red}
	if len(c) > 0 {
		n.color = c[0]
	}
	if left != nil {
		left.parent = n
	}
	if right != nil {
		right.parent = n
	}
	return n
}

func (n *node[K, V]) String() string {
	return fmt.Sprintf("(%v,%v)", n.key, n.value)
}

//
// Internal node attribute accessors
//

func isSentinel[K, V any](n *node[K, V]) bool {
	return n == nil
}

func getColor[K, V any](n *node[K, V]) color {
	if isSentinel(n) {
		return black
	}
	return n.color
}

func (n *node[K, V]) isLeftChild() bool {
	return n == n.parent.left
}

func (n *node[K, V]) isRightChild() bool {
	return n == n.parent.right
}

func (n *node[K, V]) sibling() *node[K, V] {
	doAssert(n.parent != nil)
	if n.isLeftChild() {
		return n.parent.right
	}
	return n.parent.left
}

// Return the leftmost node under n, or nil if n is the sentinel.
func minNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Return the rightmost node under n, or nil if n is the sentinel.
func maxNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Return the minimum node that's larger than n. Return nil if no such
// node is found.
func (n *node[K, V]) doNext() *node[K, V] {
	if n.right != nil {
		return minNode(n.right)
	}
	for n.parent != nil {
		if n.isLeftChild() {
			return n.parent
		}
		n = n.parent
	}
	return nil
}

// Return the maximum node that's smaller than n. Return nil if no
// such node is found.
func (n *node[K, V]) doPrev() *node[K, V] {
	if n.left != nil {
		return maxNode(n.left)
	}
	for n.parent != nil {
		if n.isRightChild() {
			return n.parent
		}
		n = n.parent
	}
	return nil
}

// Detach every node reachable from n, iteratively. Sentinels are never
// followed.
func release[K, V any](n *node[K, V]) {
	if isSentinel(n) {
		return
	}
	stack := []*node[K, V]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.left != nil {
			stack = append(stack, top.left)
		}
		if top.right != nil {
			stack = append(stack, top.right)
		}
		var zeroK K
		var zeroV V
		top.key, top.value = zeroK, zeroV
		top.parent, top.left, top.right = nil, nil, nil
	}
}
