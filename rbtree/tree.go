package rbtree

import (
	"golang.org/x/exp/constraints"

	"github.com/khshah3/rbtree/logger"
)

// CompareFunc returns 0 if a==b, <0 if a<b, >0 if a>b.
type CompareFunc[K any] func(a, b K) int

// Compare is the natural order of an ordered key type. A NaN is less
// than every other value and equal only to another NaN.
func Compare[K constraints.Ordered](a, b K) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Tree is an ordered map from K to V. The zero value is not usable; create
// trees with New or NewFunc.
//
// A Tree is not safe for concurrent use. Callers sharing a tree between
// goroutines must hold one lock around every operation.
type Tree[K, V any] struct {
	root *node[K, V]

	// The minimum and maximum nodes under root.
	minNode, maxNode *node[K, V]

	// Number of nodes under root, including root
	count   int
	compare CompareFunc[K]
	log     *logger.Logger
	stats   Stats
}

// Option configures a Tree.
type Option func(*options)

type options struct {
	log *logger.Logger
}

// WithLogger traces rotations, recolors and fix-ups to l.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Create a new empty tree ordered by the natural order of K.
func New[K constraints.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](Compare[K], opts...)
}

// Create a new empty tree ordered by compare.
func NewFunc[K, V any](compare CompareFunc[K], opts ...Option) *Tree[K, V] {
	doAssert(compare != nil)
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K, V]{compare: compare, log: o.log}
}

// Return a new empty tree sharing t's order and logger.
func (t *Tree[K, V]) empty() *Tree[K, V] {
	return &Tree[K, V]{compare: t.compare, log: t.log}
}

// Return the number of elements in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Clear removes every element. Nodes are detached so they no longer
// reference each other; the sentinel is never touched.
func (t *Tree[K, V]) Clear() {
	root := t.root
	t.reset()
	release(root)
}

func (t *Tree[K, V]) reset() {
	t.root = nil
	t.minNode = nil
	t.maxNode = nil
	t.count = 0
}

// Move every node of src into t, leaving src empty.
func (t *Tree[K, V]) takeFrom(src *Tree[K, V]) {
	t.root = src.root
	t.minNode = src.minNode
	t.maxNode = src.maxNode
	t.count = src.count
	src.reset()
}

func (t *Tree[K, V]) trace(key, format string, args ...interface{}) {
	if t.log == nil {
		return
	}
	t.log.Logf(key, format, args...)
}

func doAssert(b bool) {
	if !b {
		panic("rbtree internal assertion failed")
	}
}
