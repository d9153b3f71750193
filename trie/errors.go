package trie

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidCharacter is returned when an input holds a character outside a-z.
var ErrInvalidCharacter = errors.New("trie: invalid character")

// InvalidCharacterError describes the first offending character of an input.
type InvalidCharacterError struct {
	Input  string
	Offset int // byte offset into Input
	Char   rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%v %q at offset %d in %q", ErrInvalidCharacter, e.Char, e.Offset, e.Input)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// validate checks the whole input before any traversal touches the tree.
func validate(s string) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 'a' || c > 'z' {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return &InvalidCharacterError{Input: s, Offset: i, Char: r}
		}
	}
	return nil
}
