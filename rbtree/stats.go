package rbtree

// Stats counts the structural work done by the fix-ups of a tree.
// Value overwrites and lookups never change it.
type Stats struct {
	Rotations int
	Recolors  int
}

func (t *Tree[K, V]) Stats() Stats {
	return t.stats
}

// Set n's color, counting the change.
func (t *Tree[K, V]) paint(n *node[K, V], c color) {
	if n.color == c {
		return
	}
	n.color = c
	t.stats.Recolors++
	t.trace("RECOLOR", "%v -> %v", n, c)
}

func (s *Stats) add(o Stats) {
	s.Rotations += o.Rotations
	s.Recolors += o.Recolors
}

// Return the work done since the snapshot old was taken.
func (s Stats) since(old Stats) Stats {
	return Stats{Rotations: s.Rotations - old.Rotations, Recolors: s.Recolors - old.Recolors}
}
