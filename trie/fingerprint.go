package trie

import (
	"github.com/cespare/xxhash/v2"
)

// closeMark terminates a node's child list in the pre-order encoding.
const closeMark = '.'

// Fingerprint returns a digest of the tree's shape. Since dead branches are
// always pruned, two tries holding the same words have the same
// fingerprint no matter the order of inserts and deletes that built them.
func (t *Trie) Fingerprint() uint64 {
	if t.locking {
		t.mu.RLock()
		defer t.mu.RUnlock()
	}
	d := xxhash.New()
	var buf [1]byte
	var walk func(n *node)
	walk = func(n *node) {
		buf[0] = '0'
		if n.wordEnd {
			buf[0] = '1'
		}
		_, _ = d.Write(buf[:])
		for i, c := range n.child {
			if c == nil {
				continue
			}
			buf[0] = 'a' + byte(i)
			_, _ = d.Write(buf[:])
			walk(c)
		}
		buf[0] = closeMark
		_, _ = d.Write(buf[:])
	}
	walk(t.root)
	return d.Sum64()
}
