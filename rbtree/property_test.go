package rbtree

import (
	"sort"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/timtadh/data-structures/test"
)

type op struct {
	Remove bool
	Key    uint8
	Value  int
}

func randomOps(seed int64) []op {
	var ops []op
	fuzz.NewWithSeed(seed).NilChance(0).NumElements(100, 400).Fuzz(&ops)
	return ops
}

func sortedKeys(ref map[uint8]int) []uint8 {
	keys := make([]uint8, 0, len(ref))
	for k := range ref {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func TestRandomOperationsKeepInvariants(x *testing.T) {
	t := (*test.T)(x)
	for seed := int64(1); seed <= 25; seed++ {
		tree := New[uint8, int]()
		ref := make(map[uint8]int)
		for i, o := range randomOps(seed) {
			if o.Remove {
				_, had := ref[o.Key]
				delete(ref, o.Key)
				t.Assert(tree.Remove(o.Key) == had, "seed %d op %d: Remove(%d) reported %v", seed, i, o.Key, !had)
			} else {
				_, had := ref[o.Key]
				ref[o.Key] = o.Value
				t.Assert(tree.Insert(o.Key, o.Value) == !had, "seed %d op %d: Insert(%d) reported %v", seed, i, o.Key, had)
			}
			err := tree.Verify()
			t.Assert(err == nil, "seed %d op %d: %v", seed, i, err)
			t.Assert(tree.Len() == len(ref), "seed %d op %d: len %d, want %d", seed, i, tree.Len(), len(ref))
		}

		keys := sortedKeys(ref)
		got := tree.Keys()
		t.Assert(len(got) == len(keys), "seed %d: %d keys, want %d", seed, len(got), len(keys))
		for i := range keys {
			t.Assert(got[i] == keys[i], "seed %d: keys out of order: %v", seed, got)
			v, ok := tree.Find(keys[i])
			t.Assert(ok && v == ref[keys[i]], "seed %d: Find(%d) = %v, %v", seed, keys[i], v, ok)
		}
	}
}

func TestPreviousNextMatchSortedKeys(x *testing.T) {
	t := (*test.T)(x)
	for seed := int64(1); seed <= 10; seed++ {
		tree := New[uint8, int]()
		ref := make(map[uint8]int)
		for _, o := range randomOps(seed) {
			tree.Insert(o.Key, o.Value)
			ref[o.Key] = o.Value
		}
		keys := sortedKeys(ref)
		for probe := 0; probe < 256; probe++ {
			k := uint8(probe)
			i := sort.Search(len(keys), func(i int) bool { return keys[i] >= k })
			pk, _, ok := tree.Previous(k)
			if i == 0 {
				t.Assert(!ok, "seed %d: Previous(%d) = %d, want none", seed, k, pk)
			} else {
				t.Assert(ok && pk == keys[i-1], "seed %d: Previous(%d) = %d, want %d", seed, k, pk, keys[i-1])
			}

			j := sort.Search(len(keys), func(i int) bool { return keys[i] > k })
			nk, nv, ok := tree.Next(k)
			if j == len(keys) {
				t.Assert(!ok, "seed %d: Next(%d) = %d, want none", seed, k, nk)
			} else {
				t.Assert(ok && nk == keys[j] && nv == ref[nk], "seed %d: Next(%d) = %d, want %d", seed, k, nk, keys[j])
			}
		}
	}
}

func TestOverwriteNeverGrows(x *testing.T) {
	t := (*test.T)(x)
	tree := New[uint8, int]()
	for _, o := range randomOps(7) {
		tree.Insert(o.Key, o.Value)
	}
	n := tree.Len()
	shape := tree.ToString(PreOrder)
	stats := tree.Stats()
	for _, k := range tree.Keys() {
		v, _ := tree.Find(k)
		t.Assert(!tree.Insert(k, v), "Insert(%d) created a node for an existing key", k)
	}
	t.Assert(tree.Len() == n, "len changed from %d to %d", n, tree.Len())
	t.Assert(tree.ToString(PreOrder) == shape, "shape changed on overwrite")
	t.Assert(tree.Stats() == stats, "fix-ups ran on overwrite: %v -> %v", stats, tree.Stats())
}
