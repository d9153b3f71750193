package trie_test

import (
	"errors"
	"fmt"

	"github.com/oarkflow/wordtrie/trie"
)

func ExampleTrie_Delete() {
	t := trie.New()
	for _, w := range []string{"banana", "band", "bandana"} {
		_ = t.Insert(w)
	}

	removed, _ := t.Delete("band")
	band, _ := t.Search("band")
	bandana, _ := t.Search("bandana")
	fmt.Println(removed, band, bandana)

	removed, _ = t.Delete("band")
	fmt.Println(removed)
	// Output:
	// true false true
	// false
}

func ExampleTrie_Insert_invalid() {
	t := trie.New()
	err := t.Insert("Apple")
	fmt.Println(errors.Is(err, trie.ErrInvalidCharacter))
	fmt.Println(err)
	// Output:
	// true
	// trie: invalid character 'A' at offset 0 in "Apple"
}
