package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDelete(t *testing.T, tr *Trie, word string) bool {
	t.Helper()
	ok, err := tr.Delete(word)
	require.NoError(t, err)
	return ok
}

func TestTrie_DeleteScenarios(t *testing.T) {
	tr := New()

	mustInsert(t, tr, "apple", "apps", "ape")
	assert.True(t, search(t, tr, "apple"))
	assert.False(t, search(t, tr, "app"))
	assert.True(t, startsWith(t, tr, "ap"))

	assert.True(t, mustDelete(t, tr, "apple"))
	assert.False(t, search(t, tr, "apple"))
	assert.True(t, search(t, tr, "apps"))
	assert.True(t, search(t, tr, "ape"))
	assert.False(t, startsWith(t, tr, "appl"))
	assert.Equal(t, 5, tr.NodeCount())

	mustInsert(t, tr, "banana", "band", "bandana")
	assert.True(t, startsWith(t, tr, "ban"))
	assert.True(t, search(t, tr, "bandana"))
	assert.False(t, search(t, tr, "bandage"))

	assert.True(t, mustDelete(t, tr, "band"))
	assert.False(t, search(t, tr, "band"))
	assert.True(t, search(t, tr, "bandana"))
	assert.True(t, startsWith(t, tr, "band"))
	assert.Equal(t, 5+10, tr.NodeCount())
}

func TestTrie_DeleteStrictPrefix(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "car", "cart")
	nodes := tr.NodeCount()

	assert.True(t, mustDelete(t, tr, "car"))
	assert.False(t, search(t, tr, "car"))
	assert.True(t, search(t, tr, "cart"))
	assert.True(t, startsWith(t, tr, "car"))
	assert.Equal(t, nodes, tr.NodeCount())
}

func TestTrie_DeleteStopsAtStoredPrefix(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "app", "application")

	assert.True(t, mustDelete(t, tr, "application"))
	assert.True(t, search(t, tr, "app"))
	assert.False(t, startsWith(t, tr, "appl"))
	assert.Equal(t, 3, tr.NodeCount())

	want := New()
	mustInsert(t, want, "app")
	assert.Equal(t, want.Fingerprint(), tr.Fingerprint())
}

func TestTrie_DeleteStopsAtBranch(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "bat", "ball")

	assert.True(t, mustDelete(t, tr, "ball"))
	assert.True(t, search(t, tr, "bat"))
	assert.True(t, startsWith(t, tr, "ba"))
	assert.False(t, startsWith(t, tr, "bal"))
	assert.Equal(t, 3, tr.NodeCount())
}

func TestTrie_DeleteAbsent(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "apple")
	fp := tr.Fingerprint()

	for _, w := range []string{"app", "apples", "banana", "b", "applf", ""} {
		assert.False(t, mustDelete(t, tr, w), "Delete(%q)", w)
	}
	assert.Equal(t, fp, tr.Fingerprint())
	assert.Equal(t, 5, tr.NodeCount())
	assert.Equal(t, 1, tr.Len())
	assert.True(t, search(t, tr, "apple"))
}

func TestTrie_DeleteTwice(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "kiwi")
	assert.True(t, mustDelete(t, tr, "kiwi"))
	assert.False(t, mustDelete(t, tr, "kiwi"))
	assert.Equal(t, 0, tr.Len())
}

func TestTrie_DeletePrunesToEmpty(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "xyz")
	assert.True(t, mustDelete(t, tr, "xyz"))

	fresh := New()
	assert.Equal(t, 0, tr.NodeCount())
	assert.Equal(t, fresh.Fingerprint(), tr.Fingerprint())
	for _, p := range []string{"x", "xy", "xyz"} {
		assert.False(t, startsWith(t, tr, p), "StartsWith(%q)", p)
	}
	assert.True(t, startsWith(t, tr, ""))
}

func TestTrie_ReinsertAfterDelete(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "echo")
	assert.True(t, mustDelete(t, tr, "echo"))
	assert.False(t, search(t, tr, "echo"))

	mustInsert(t, tr, "echo")
	assert.True(t, search(t, tr, "echo"))
	assert.Equal(t, 4, tr.NodeCount())
}

func TestTrie_DeleteEverything(t *testing.T) {
	words := []string{"a", "ab", "abc", "abd", "b", "ba", "bab", "c", "zzz", "zz"}
	tr := New()
	mustInsert(t, tr, words...)

	// delete in an order that mixes leaves, inner words and branch points
	for _, w := range []string{"ab", "zzz", "a", "bab", "abc", "c", "b", "zz", "abd", "ba"} {
		require.True(t, mustDelete(t, tr, w), "Delete(%q)", w)
		assert.False(t, search(t, tr, w))
	}
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.NodeCount())
	assert.Equal(t, New().Fingerprint(), tr.Fingerprint())
}
