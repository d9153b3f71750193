package trie

import "go.uber.org/zap"

// Option configures a Trie.
type Option func(*Trie)

// WithLogger routes debug events (rejected input, pruning) to l.
func WithLogger(l *zap.Logger) Option {
	return func(t *Trie) {
		if l != nil {
			t.log = l
		}
	}
}

// WithLocking guards every operation with a single lock so the Trie can be
// shared between goroutines. Writers hold it exclusively for the whole call.
func WithLocking() Option {
	return func(t *Trie) {
		t.locking = true
	}
}
