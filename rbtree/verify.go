package rbtree

import (
	"github.com/timtadh/data-structures/errors"
)

// Verify checks the search order, the parent links, the node count, the
// cached extremes and every red-black rule. It returns an error describing
// the first violation found.
func (t *Tree[K, V]) Verify() error {
	if t.root != nil {
		if t.root.parent != nil {
			return errors.Errorf("rbtree: root %v has a parent", t.root)
		}
		if t.root.color != black {
			return errors.Errorf("rbtree: root %v is red", t.root)
		}
	}
	_, count, err := t.verify(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return errors.Errorf("rbtree: counted %d nodes, Len() is %d", count, t.count)
	}
	if t.minNode != minNode(t.root) {
		return errors.Errorf("rbtree: cached minimum %v is stale", t.minNode)
	}
	if t.maxNode != maxNode(t.root) {
		return errors.Errorf("rbtree: cached maximum %v is stale", t.maxNode)
	}
	return nil
}

// Check the subtree under n, whose keys must lie strictly between lo and
// hi (nil means unbounded). Returns its black-height and size.
func (t *Tree[K, V]) verify(n, lo, hi *node[K, V]) (int, int, error) {
	if isSentinel(n) {
		return 0, 0, nil
	}
	if lo != nil && t.compare(lo.key, n.key) >= 0 {
		return 0, 0, errors.Errorf("rbtree: %v is not after %v", n, lo)
	}
	if hi != nil && t.compare(n.key, hi.key) >= 0 {
		return 0, 0, errors.Errorf("rbtree: %v is not before %v", n, hi)
	}
	for _, c := range []*node[K, V]{n.left, n.right} {
		if c == nil {
			continue
		}
		if c.parent != n {
			return 0, 0, errors.Errorf("rbtree: %v does not point back to parent %v", c, n)
		}
		if n.color == red && c.color == red {
			return 0, 0, errors.Errorf("rbtree: red %v has red child %v", n, c)
		}
	}
	lh, lc, err := t.verify(n.left, lo, n)
	if err != nil {
		return 0, 0, err
	}
	rh, rc, err := t.verify(n.right, n, hi)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, errors.Errorf("rbtree: black-height at %v is %d on the left, %d on the right", n, lh, rh)
	}
	if n.color == black {
		lh++
	}
	return lh, lc + rc + 1, nil
}

// BlackHeight is the number of black nodes on any path from the root down
// to the sentinel, counting the root.
func (t *Tree[K, V]) BlackHeight() int {
	return blackHeight(t.root)
}

func blackHeight[K, V any](n *node[K, V]) int {
	h := 0
	for ; n != nil; n = n.left {
		if n.color == black {
			h++
		}
	}
	return h
}

// Height is the number of nodes on the longest path from the root.
func (t *Tree[K, V]) Height() int {
	type item struct {
		n     *node[K, V]
		depth int
	}
	height := 0
	if t.root == nil {
		return height
	}
	stack := []item{{t.root, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth > height {
			height = it.depth
		}
		if it.n.left != nil {
			stack = append(stack, item{it.n.left, it.depth + 1})
		}
		if it.n.right != nil {
			stack = append(stack, item{it.n.right, it.depth + 1})
		}
	}
	return height
}
