package rbtree

import (
	"iter"
	"strings"
)

// Order selects a traversal order.
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "unknown-order"
}

// All yields every entry in ascending key order.
//
// Each call starts a fresh traversal. The tree must not be modified while
// a traversal is in progress.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.minNode; n != nil; n = n.doNext() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Backward yields every entry in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.maxNode; n != nil; n = n.doPrev() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Walk yields every entry in the given order.
func (t *Tree[K, V]) Walk(order Order) iter.Seq2[K, V] {
	switch order {
	case PreOrder:
		return t.preOrder
	case PostOrder:
		return t.postOrder
	}
	return t.All()
}

func (t *Tree[K, V]) preOrder(yield func(K, V) bool) {
	if t.root == nil {
		return
	}
	stack := []*node[K, V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.key, n.value) {
			return
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

func (t *Tree[K, V]) postOrder(yield func(K, V) bool) {
	var stack []*node[K, V]
	var last *node[K, V]
	n := t.root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		if !yield(top.key, top.value) {
			return
		}
		last = top
		stack = stack[:len(stack)-1]
	}
}

// Keys returns the keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in ascending key order.
func (t *Tree[K, V]) Values() []V {
	values := make([]V, 0, t.count)
	for _, v := range t.All() {
		values = append(values, v)
	}
	return values
}

// ToString dumps the structure of the tree. A node is written as (k,v)
// and the sentinel as NIL:
//
//	InOrder   [left,(k,v),right]
//	PreOrder  [(k,v)leftright]
//	PostOrder [leftright(k,v)]
func (t *Tree[K, V]) ToString(order Order) string {
	// Each frame is either a subtree still to expand or literal text.
	type frame struct {
		n   *node[K, V]
		lit string
	}
	var b strings.Builder
	stack := []frame{{n: t.root}}
	push := func(fs ...frame) {
		for i := len(fs) - 1; i >= 0; i-- {
			stack = append(stack, fs[i])
		}
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.lit != "" {
			b.WriteString(f.lit)
			continue
		}
		if f.n == nil {
			b.WriteString("NIL")
			continue
		}
		self := frame{lit: f.n.String()}
		left, right := frame{n: f.n.left}, frame{n: f.n.right}
		switch order {
		case PreOrder:
			push(frame{lit: "["}, self, left, right, frame{lit: "]"})
		case PostOrder:
			push(frame{lit: "["}, left, right, self, frame{lit: "]"})
		default:
			push(frame{lit: "["}, left, frame{lit: ","}, self, frame{lit: ","}, right, frame{lit: "]"})
		}
	}
	return b.String()
}

func (t *Tree[K, V]) String() string {
	return t.ToString(InOrder)
}
