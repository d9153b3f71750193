package trie

import (
	"sync"

	"go.uber.org/zap"
)

// Trie is a prefix tree over the lowercase letters a-z.
//
// The zero value is not usable; construct one with New. A Trie is not safe
// for concurrent use unless it was built with WithLocking.
type Trie struct {
	root    *node
	pool    sync.Pool
	mu      sync.RWMutex
	locking bool
	log     *zap.Logger
	words   int
	nodes   int
}

// New creates an empty Trie. Its root has no children and is not a word end.
func New(opts ...Option) *Trie {
	t := &Trie{log: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	t.pool.New = func() any {
		return &node{}
	}
	t.root = t.newNode()
	return t
}

// Insert stores word. Inserting a word twice is the same as inserting it
// once, and the empty string marks the root itself as a word end.
//
// The whole word is validated first; on ErrInvalidCharacter the tree is
// left untouched.
func (t *Trie) Insert(word string) error {
	if err := validate(word); err != nil {
		t.log.Debug("insert rejected", zap.String("word", word), zap.Error(err))
		return err
	}
	if t.locking {
		t.mu.Lock()
		defer t.mu.Unlock()
	}

	n := t.root
	for i := 0; i < len(word); i++ {
		c := word[i] - 'a'
		if n.child[c] == nil {
			n.attach(c, t.newNode())
			t.nodes++
		}
		n = n.child[c]
	}
	if !n.wordEnd {
		n.wordEnd = true
		t.words++
	}
	return nil
}

// Search reports whether word itself is stored. A prefix of a stored word
// that was never inserted on its own is not.
func (t *Trie) Search(word string) (bool, error) {
	if err := validate(word); err != nil {
		return false, err
	}
	if t.locking {
		t.mu.RLock()
		defer t.mu.RUnlock()
	}
	n := t.find(word)
	return n != nil && n.wordEnd, nil
}

// StartsWith reports whether any stored word begins with prefix. The empty
// prefix always matches.
func (t *Trie) StartsWith(prefix string) (bool, error) {
	if err := validate(prefix); err != nil {
		return false, err
	}
	if t.locking {
		t.mu.RLock()
		defer t.mu.RUnlock()
	}
	return t.find(prefix) != nil, nil
}

// Delete removes word and releases every node on its path that no longer
// leads to a stored word. It reports whether word was present; deleting an
// absent word is a no-op.
func (t *Trie) Delete(word string) (bool, error) {
	if err := validate(word); err != nil {
		t.log.Debug("delete rejected", zap.String("word", word), zap.Error(err))
		return false, err
	}
	if t.locking {
		t.mu.Lock()
		defer t.mu.Unlock()
	}

	before := t.nodes
	// The root is never released, so its prune signal is dropped.
	removed, _ := t.remove(t.root, word, 0)
	if !removed {
		return false, nil
	}
	t.words--
	t.log.Debug("word deleted", zap.String("word", word), zap.Int("pruned", before-t.nodes))
	return true, nil
}

// remove clears the word end for word[index:] below n. prune reports that n
// is dead afterwards and must be released by its parent.
func (t *Trie) remove(n *node, word string, index int) (removed, prune bool) {
	if index == len(word) {
		if !n.wordEnd {
			return false, false
		}
		n.wordEnd = false
		return true, n.occupied == 0
	}

	c := word[index] - 'a'
	child := n.child[c]
	if child == nil {
		return false, false
	}
	removed, prune = t.remove(child, word, index+1)
	if !prune {
		return removed, false
	}
	n.detach(c)
	t.release(child)
	return true, n.dead()
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	if t.locking {
		t.mu.RLock()
		defer t.mu.RUnlock()
	}
	return t.words
}

// NodeCount returns the number of live nodes below the root.
func (t *Trie) NodeCount() int {
	if t.locking {
		t.mu.RLock()
		defer t.mu.RUnlock()
	}
	return t.nodes
}

// find walks s from the root and returns the node it ends on, or nil.
func (t *Trie) find(s string) *node {
	n := t.root
	for i := 0; i < len(s); i++ {
		if n = n.child[s[i]-'a']; n == nil {
			return nil
		}
	}
	return n
}

// Helper: allocate a new node from pool
func (t *Trie) newNode() *node {
	n := t.pool.Get().(*node)
	*n = node{} // clear contents
	return n
}

func (t *Trie) release(n *node) {
	t.nodes--
	*n = node{}
	t.pool.Put(n)
}
