// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"io"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/avl"
)

// compare against an independent ordered container through a random
// mix of inserts and removals
func TestRandomAgainstBTree(t *testing.T) {
	const keySpace = 2000
	const operations = 20000

	rng := rand.New(rand.NewSource(42))
	tree := avl.NewOrdered[int, int](false)
	oracle := btree.NewOrderedG[int](16)
	entries := make(map[int]*avl.Entry[int, int])

	for i := 0; i < operations; i += 1 {
		k := rng.Intn(keySpace)
		if rng.Intn(3) > 0 {
			err := tree.Insert(avl.NewEntry(k, i))
			_, replaced := oracle.ReplaceOrInsert(k)
			if replaced {
				require.Error(t, err, "duplicate accepted: %d", k)
			} else {
				require.NoError(t, err, "insert: %d", k)
				entries[k] = tree.Find(k)
			}
		} else {
			_, err := tree.RemoveKey(k)
			_, found := oracle.Delete(k)
			assert.Equal(t, found, nil == err, "remove disagreement for: %d", k)
			delete(entries, k)
		}

		if 0 == i%1000 {
			require.NoError(t, tree.Check(), "inconsistent tree at step: %d", i)
		}
	}
	require.NoError(t, tree.Check(), "inconsistent tree")
	require.Equal(t, oracle.Len(), tree.Len(), "count differs")

	expected := make([]int, 0, oracle.Len())
	oracle.Ascend(func(k int) bool {
		expected = append(expected, k)
		return true
	})
	if diff := cmp.Diff(expected, keys[int, int](tree.Inorder())); "" != diff {
		t.Fatalf("inorder mismatch (-oracle +map):\n%s", diff)
	}

	// every probe agrees with the oracle's view of neighbours
	for probe := -1; probe <= keySpace; probe += 7 {
		var next, prev *int
		oracle.AscendGreaterOrEqual(probe, func(k int) bool {
			next = &k
			return false
		})
		oracle.DescendLessOrEqual(probe, func(k int) bool {
			prev = &k
			return false
		})
		if e := tree.FindOrNext(probe); nil == next {
			assert.Nil(t, e, "find or next: %d", probe)
		} else if assert.NotNil(t, e, "find or next: %d", probe) {
			assert.Equal(t, *next, e.Key(), "find or next: %d", probe)
		}
		if e := tree.FindOrPrev(probe); nil == prev {
			assert.Nil(t, e, "find or prev: %d", probe)
		} else if assert.NotNil(t, e, "find or prev: %d", probe) {
			assert.Equal(t, *prev, e.Key(), "find or prev: %d", probe)
		}
	}

	// removing through the retained records empties the map
	for k, e := range entries {
		removed, err := tree.Remove(e)
		require.NoError(t, err, "remove: %d", k)
		require.Same(t, e, removed, "different record for: %d", k)
	}
	assert.True(t, tree.IsEmpty(), "map not empty")
	assert.NoError(t, tree.Check(), "inconsistent empty tree")
}

func TestRandomMultimap(t *testing.T) {
	const keySpace = 50
	const size = 3000

	rng := rand.New(rand.NewSource(7))
	tree := avl.NewOrdered[int, int](true)
	expected := make([]int, 0, size)
	entries := make([]*avl.Entry[int, int], 0, size)

	for i := 0; i < size; i += 1 {
		k := rng.Intn(keySpace)
		e := avl.NewEntry(k, i)
		require.NoError(t, tree.Insert(e), "insert: %d", k)
		expected = append(expected, k)
		entries = append(entries, e)
	}
	require.NoError(t, tree.Check(), "inconsistent tree")

	sort.Ints(expected)
	if diff := cmp.Diff(expected, keys[int, int](tree.Inorder())); "" != diff {
		t.Fatalf("inorder mismatch (-expected +map):\n%s", diff)
	}

	counts := make(map[int]int)
	for _, k := range expected {
		counts[k] += 1
	}
	for k := -1; k <= keySpace; k += 1 {
		assert.Equal(t, counts[k], tree.Count(k), "count for: %d", k)
	}

	// remove a random half, in random order
	rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	half := entries[:size/2]
	for i, e := range half {
		_, err := tree.Remove(e)
		require.NoError(t, err, "remove: %d", e.Key())
		counts[e.Key()] -= 1
		if 0 == i%100 {
			require.NoError(t, tree.Check(), "inconsistent tree at step: %d", i)
		}
	}
	require.NoError(t, tree.Check(), "inconsistent tree")
	assert.Equal(t, size-len(half), tree.Len(), "count after removal")
	for k, n := range counts {
		assert.Equal(t, n, tree.Count(k), "count after removal for: %d", k)
	}
}

func TestSequentialShapes(t *testing.T) {
	const n = 1023

	ascending := avl.NewOrdered[int, int](false)
	descending := avl.NewOrdered[int, int](false)
	for i := 0; i < n; i += 1 {
		require.NoError(t, ascending.Insert(avl.NewEntry(i, i)), "ascending insert")
		require.NoError(t, descending.Insert(avl.NewEntry(n-i, i)), "descending insert")
	}
	require.NoError(t, ascending.Check(), "inconsistent ascending tree")
	require.NoError(t, descending.Check(), "inconsistent descending tree")

	// sequential insertion into an AVL tree gives a perfect tree
	assert.Equal(t, 10, ascending.Print(io.Discard, false), "ascending height")
	assert.Equal(t, 10, descending.Print(io.Discard, false), "descending height")
}

