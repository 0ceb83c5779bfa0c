// A red-black tree mapping ordered keys to values.
//
// Every node is red or black, the root is black, a red node never has a red
// child, and every path from a node down to the sentinel (nil) crosses the
// same number of black nodes. Those rules keep the height within
// 2*log2(n+1), so lookups, insertions and removals are O(log n).
package rbtree

//
// Public definitions
//

// Find returns the value stored under key. The boolean is false when the
// key is absent; a stored zero value is reported as (zero, true).
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if n := t.findNode(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (t *Tree[K, V]) Contains(key K) bool {
	return t.findNode(key) != nil
}

// Return the smallest key, or false if the tree is empty.
func (t *Tree[K, V]) MinKey() (K, bool) {
	if t.minNode == nil {
		var zero K
		return zero, false
	}
	return t.minNode.key, true
}

// Return the largest key, or false if the tree is empty.
func (t *Tree[K, V]) MaxKey() (K, bool) {
	if t.maxNode == nil {
		var zero K
		return zero, false
	}
	return t.maxNode.key, true
}

// Return the value stored under the smallest key.
func (t *Tree[K, V]) ValAtMin() (V, bool) {
	if t.minNode == nil {
		var zero V
		return zero, false
	}
	return t.minNode.value, true
}

// Return the value stored under the largest key.
func (t *Tree[K, V]) ValAtMax() (V, bool) {
	if t.maxNode == nil {
		var zero V
		return zero, false
	}
	return t.maxNode.value, true
}

// Previous returns the largest key strictly less than key, with its value.
// key itself need not be in the tree.
func (t *Tree[K, V]) Previous(key K) (K, V, bool) {
	var best *node[K, V]
	for n := t.root; n != nil; {
		if t.compare(n.key, key) < 0 {
			best = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return unpack(best)
}

// Next returns the smallest key strictly greater than key, with its value.
func (t *Tree[K, V]) Next(key K) (K, V, bool) {
	var best *node[K, V]
	for n := t.root; n != nil; {
		if t.compare(n.key, key) > 0 {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return unpack(best)
}

func unpack[K, V any](n *node[K, V]) (K, V, bool) {
	if n == nil {
		var k K
		var v V
		return k, v, false
	}
	return n.key, n.value, true
}

// Insert maps key to value. It returns true if a new node was created and
// false if an existing value was replaced; a replacement never changes the
// shape or the colors of the tree.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	n, created := t.doInsert(key, value)
	if !created {
		return false
	}
	t.insertFixup(n)
	return true
}

// Remove deletes key. It returns false, leaving the tree untouched, if
// key is absent.
func (t *Tree[K, V]) Remove(key K) bool {
	n := t.findNode(key)
	if n == nil {
		return false
	}
	t.doDelete(n)
	return true
}

//
// Private methods
//

func (t *Tree[K, V]) findNode(key K) *node[K, V] {
	n := t.root
	for n != nil {
		comp := t.compare(key, n.key)
		if comp == 0 {
			return n
		} else if comp < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

func (t *Tree[K, V]) recomputeMinNode() {
	t.minNode = minNode(t.root)
}

func (t *Tree[K, V]) recomputeMaxNode() {
	t.maxNode = maxNode(t.root)
}

func (t *Tree[K, V]) maybeSetMinNode(n *node[K, V]) {
	if t.minNode == nil {
		t.minNode = n
		t.maxNode = n
	} else if t.compare(n.key, t.minNode.key) < 0 {
		t.minNode = n
	}
}

func (t *Tree[K, V]) maybeSetMaxNode(n *node[K, V]) {
	if t.maxNode == nil {
		t.minNode = n
		t.maxNode = n
	} else if t.compare(n.key, t.maxNode.key) > 0 {
		t.maxNode = n
	}
}

// Try inserting key into the tree. If key is already present its value is
// overwritten and the existing node is returned with false. Otherwise a new
// red leaf is linked in and returned with true.
func (t *Tree[K, V]) doInsert(key K, value V) (*node[K, V], bool) {
	if t.root == nil {
		n := newNode(key, value)
		t.root = n
		t.minNode = n
		t.maxNode = n
		t.count++
		return n, true
	}
	parent := t.root
	for {
		comp := t.compare(key, parent.key)
		if comp == 0 {
			parent.value = value
			return parent, false
		} else if comp < 0 {
			if parent.left == nil {
				n := newNode(key, value)
				n.parent = parent
				parent.left = n
				t.count++
				t.maybeSetMinNode(n)
				return n, true
			}
			parent = parent.left
		} else {
			if parent.right == nil {
				n := newNode(key, value)
				n.parent = parent
				parent.right = n
				t.count++
				t.maybeSetMaxNode(n)
				return n, true
			}
			parent = parent.right
		}
	}
}

// Restore the red-black rules after the red node n was linked in.
func (t *Tree[K, V]) insertFixup(n *node[K, V]) {
	for {
		// Case 1: n is at the root
		if n.parent == nil {
			t.paint(n, black)
			break
		}

		// Case 2: The parent is black, so the tree already
		// satisfies the RB properties
		if n.parent.color == black {
			break
		}

		// Case 3: Parent and uncle are both red.
		// Then paint both black and make grandparent red.
		grandparent := n.parent.parent
		doAssert(grandparent != nil)
		uncle := n.parent.sibling()
		if getColor(uncle) == red {
			t.trace("FIXUP", "insert red uncle at %v", grandparent)
			t.paint(n.parent, black)
			t.paint(uncle, black)
			t.paint(grandparent, red)
			n = grandparent
			continue
		}

		// Case 4: Parent is red, uncle is black, n is an inner grandchild.
		// Rotate it to the outside.
		if n.isRightChild() && n.parent.isLeftChild() {
			t.rotateLeft(n.parent)
			n = n.left
			continue
		}
		if n.isLeftChild() && n.parent.isRightChild() {
			t.rotateRight(n.parent)
			n = n.right
			continue
		}

		// Case 5: Parent is red, uncle is black, n is an outer grandchild.
		t.trace("FIXUP", "insert black uncle at %v", grandparent)
		t.paint(n.parent, black)
		t.paint(grandparent, red)
		if n.isLeftChild() {
			t.rotateRight(grandparent)
		} else {
			t.rotateLeft(grandparent)
		}
		break
	}
	t.paint(t.root, black)
}

// Delete n from the tree.
func (t *Tree[K, V]) doDelete(n *node[K, V]) {
	if n.left != nil && n.right != nil {
		// Take over the successor's entry and splice the successor
		// out instead; it has no left child.
		succ := minNode(n.right)
		n.key, n.value = succ.key, succ.value
		n = succ
	}

	doAssert(n.left == nil || n.right == nil)
	child := n.right
	if child == nil {
		child = n.left
	}
	parent := n.parent
	t.replaceNode(n, child)
	if n.color == black {
		t.deleteFixup(child, parent)
	}

	t.count--
	if t.count == 0 {
		t.minNode = nil
		t.maxNode = nil
	} else {
		if t.minNode == n {
			t.recomputeMinNode()
		}
		if t.maxNode == n {
			t.recomputeMaxNode()
		}
	}
	var zeroK K
	var zeroV V
	n.key, n.value = zeroK, zeroV
	n.parent, n.left, n.right = nil, nil, nil
}

// Resolve the missing black on the path through x after a black node was
// spliced out. x may be the sentinel, so its parent is passed explicitly.
func (t *Tree[K, V]) deleteFixup(x, parent *node[K, V]) {
	for x != t.root && getColor(x) == black {
		doAssert(parent != nil)
		if x == parent.left {
			w := parent.right
			doAssert(w != nil)
			if w.color == red {
				// Sibling red: turn it into a black sibling case.
				t.paint(w, black)
				t.paint(parent, red)
				t.rotateLeft(parent)
				w = parent.right
			}
			if getColor(w.left) == black && getColor(w.right) == black {
				// Sibling and both nephews black: push the deficiency up.
				t.paint(w, red)
				x = parent
				parent = x.parent
				continue
			}
			if getColor(w.right) == black {
				// Only the near nephew is red: make it the far one.
				t.paint(w.left, black)
				t.paint(w, red)
				t.rotateRight(w)
				w = parent.right
			}
			// Far nephew red.
			t.trace("FIXUP", "delete far nephew at %v", parent)
			t.paint(w, parent.color)
			t.paint(parent, black)
			t.paint(w.right, black)
			t.rotateLeft(parent)
		} else {
			w := parent.left
			doAssert(w != nil)
			if w.color == red {
				t.paint(w, black)
				t.paint(parent, red)
				t.rotateRight(parent)
				w = parent.left
			}
			if getColor(w.left) == black && getColor(w.right) == black {
				t.paint(w, red)
				x = parent
				parent = x.parent
				continue
			}
			if getColor(w.left) == black {
				t.paint(w.right, black)
				t.paint(w, red)
				t.rotateLeft(w)
				w = parent.left
			}
			t.trace("FIXUP", "delete far nephew at %v", parent)
			t.paint(w, parent.color)
			t.paint(parent, black)
			t.paint(w.left, black)
			t.rotateRight(parent)
		}
		x = t.root
	}
	if x != nil {
		t.paint(x, black)
	}
}

func (t *Tree[K, V]) replaceNode(oldn, newn *node[K, V]) {
	if oldn.parent == nil {
		t.root = newn
	} else {
		if oldn.isLeftChild() {
			oldn.parent.left = newn
		} else {
			oldn.parent.right = newn
		}
	}
	if newn != nil {
		newn.parent = oldn.parent
	}
}

/*
    X		     Y
  A   Y	    =>     X   C
     B C 	  A B
*/
func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else {
		if x.isLeftChild() {
			x.parent.left = y
		} else {
			x.parent.right = y
		}
	}
	y.left = x
	x.parent = y
	t.stats.Rotations++
	t.trace("ROTATE", "left at %v", x)
}

/*
     Y           X
   X   C  =>   A   Y
  A B             B C
*/
func (t *Tree[K, V]) rotateRight(y *node[K, V]) {
	x := y.left

	// Move "B"
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent
	if y.parent == nil {
		t.root = x
	} else {
		if y.isLeftChild() {
			y.parent.left = x
		} else {
			y.parent.right = x
		}
	}
	x.right = y
	y.parent = x
	t.stats.Rotations++
	t.trace("ROTATE", "right at %v", y)
}
