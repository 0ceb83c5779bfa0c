package rbtree

import (
	"math/bits"

	"github.com/timtadh/data-structures/errors"
)

// ErrJoinOverlap is returned by Join when the key ranges of the two trees
// are not strictly ordered.
var ErrJoinOverlap = errors.Errorf("rbtree: every key of the left tree must be less than every key of the right tree")

// ErrJoinOrder is returned by Join when the two trees do not agree on the
// order of their boundary keys, i.e. they were built with different
// CompareFuncs.
var ErrJoinOrder = errors.Errorf("rbtree: joined trees must share one key order")

// Split moves the entries of t into two new trees: the first holds every
// key <= key, the second every key > key. t is left empty. Nodes are reused
// and both halves are rebuilt in O(n).
func Split[K, V any](t *Tree[K, V], key K) (*Tree[K, V], *Tree[K, V]) {
	lower, upper := t.empty(), t.empty()
	var lo, hi []*node[K, V]
	for n := t.minNode; n != nil; n = n.doNext() {
		if t.compare(n.key, key) <= 0 {
			lo = append(lo, n)
		} else {
			hi = append(hi, n)
		}
	}
	t.reset()
	lower.build(lo)
	upper.build(hi)
	t.trace("SPLIT", "%d <= %v < %d", len(lo), key, len(hi))
	return lower, upper
}

// Join moves every entry of right into left and returns left. Both trees
// must be ordered by the same CompareFunc, and every key of left must be
// strictly less than every key of right. Otherwise ErrJoinOrder or
// ErrJoinOverlap is returned and neither tree is changed. right is left
// empty. Runs in O(log n).
func Join[K, V any](left, right *Tree[K, V]) (*Tree[K, V], error) {
	if right.count == 0 {
		return left, nil
	}
	if left.count == 0 {
		left.takeFrom(right)
		return left, nil
	}
	if left.compare(left.maxNode.key, right.minNode.key) >= 0 {
		return nil, ErrJoinOverlap
	}
	if right.compare(left.maxNode.key, right.minNode.key) >= 0 {
		return nil, ErrJoinOrder
	}

	// The smallest entry of right becomes the pivot linking both trees.
	// The work of removing it is charged to left.
	pk, pv := right.minNode.key, right.minNode.value
	before := right.stats
	right.Remove(pk)
	left.stats.add(right.stats.since(before))
	right.stats = before
	if right.count == 0 {
		left.Insert(pk, pv)
		return left, nil
	}

	lh, rh := left.BlackHeight(), right.BlackHeight()
	count := left.count + right.count + 1
	minN, maxN := left.minNode, right.maxNode
	var pivot *node[K, V]
	if lh >= rh {
		// Walk down the right spine of left to a black node of black-height rh.
		n, h := left.root, lh
		for n.color != black || h != rh {
			if n.color == black {
				h--
			}
			n = n.right
			doAssert(n != nil)
		}
		parent := n.parent
		pivot = newNodeWith(pk, pv, n, right.root)
		pivot.parent = parent
		if parent == nil {
			left.root = pivot
		} else {
			parent.right = pivot
		}
		right.reset()
	} else {
		// Walk down the left spine of right to a black node of black-height lh.
		n, h := right.root, rh
		for n.color != black || h != lh {
			if n.color == black {
				h--
			}
			n = n.left
			doAssert(n != nil)
		}
		parent := n.parent
		pivot = newNodeWith(pk, pv, left.root, n)
		pivot.parent = parent
		if parent == nil {
			right.root = pivot
		} else {
			parent.left = pivot
		}
		left.takeFrom(right)
	}
	left.count = count
	left.minNode, left.maxNode = minN, maxN
	left.insertFixup(pivot)
	left.trace("JOIN", "pivot %v, %d entries", pivot, count)
	return left, nil
}

// Replace the contents of t with the sorted nodes. The tree is balanced by
// size; every node on the (possibly incomplete) deepest level is red and
// every other node black, so each path crosses the same number of black
// nodes.
func (t *Tree[K, V]) build(nodes []*node[K, V]) {
	t.reset()
	if len(nodes) == 0 {
		return
	}
	redDepth := bits.Len(uint(len(nodes)+1)) - 1
	t.root = buildSorted(nodes, nil, 0, redDepth)
	t.count = len(nodes)
	t.minNode = nodes[0]
	t.maxNode = nodes[len(nodes)-1]
}

func buildSorted[K, V any](nodes []*node[K, V], parent *node[K, V], depth, redDepth int) *node[K, V] {
	if len(nodes) == 0 {
		return nil
	}
	mid := len(nodes) / 2
	n := nodes[mid]
	n.parent = parent
	n.color = black
	if depth == redDepth {
		n.color = red
	}
	n.left = buildSorted(nodes[:mid], n, depth+1, redDepth)
	n.right = buildSorted(nodes[mid+1:], n, depth+1, redDepth)
	return n
}
