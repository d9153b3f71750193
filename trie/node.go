package trie

// alphabetSize is the number of child slots per node, one per letter a-z.
const alphabetSize = 26

// node is a single vertex of the trie. A node is owned by exactly one
// parent slot, or by the Trie itself for the root.
type node struct {
	child    [alphabetSize]*node // direct access to child nodes (O(1) access)
	occupied int                 // number of non-nil entries in child
	wordEnd  bool
}

func (n *node) attach(i byte, c *node) {
	n.child[i] = c
	n.occupied++
}

func (n *node) detach(i byte) {
	n.child[i] = nil
	n.occupied--
}

// dead reports whether n holds nothing worth keeping.
func (n *node) dead() bool {
	return n.occupied == 0 && !n.wordEnd
}
