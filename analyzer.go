package wordtrie

import (
	"strings"

	"github.com/oarkflow/wordtrie/utils"
)

// Analyzer turns free text into words the trie can store.
type Analyzer interface {
	Analyze(text string) []string
}

// AnalyzerFunc allows plain functions to satisfy the Analyzer interface.
type AnalyzerFunc func(text string) []string

// Analyze implements Analyzer by invoking the wrapped function.
func (fn AnalyzerFunc) Analyze(text string) []string {
	return fn(text)
}

// SimpleAnalyzer lower-cases ASCII text, splits it on anything that is not
// a letter and drops stop words and short tokens.
type SimpleAnalyzer struct {
	minLength       int
	stopWords       map[string]struct{}
	customTokenizer func(string) []string
}

// SimpleAnalyzerOption configures a SimpleAnalyzer.
type SimpleAnalyzerOption func(*SimpleAnalyzer)

// SimpleAnalyzerWithStopWords sets the words that are never emitted.
func SimpleAnalyzerWithStopWords(words ...string) SimpleAnalyzerOption {
	return func(sa *SimpleAnalyzer) {
		sa.stopWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			if w == "" {
				continue
			}
			sa.stopWords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// SimpleAnalyzerWithMinLength drops tokens shorter than n bytes.
func SimpleAnalyzerWithMinLength(n int) SimpleAnalyzerOption {
	return func(sa *SimpleAnalyzer) {
		sa.minLength = n
	}
}

// SimpleAnalyzerWithTokenizer installs a custom tokenizer function. Tokens
// it returns that are not made of a-z only are discarded.
func SimpleAnalyzerWithTokenizer(tokenizer func(string) []string) SimpleAnalyzerOption {
	return func(sa *SimpleAnalyzer) {
		sa.customTokenizer = tokenizer
	}
}

// NewSimpleAnalyzer returns a configured SimpleAnalyzer instance.
func NewSimpleAnalyzer(opts ...SimpleAnalyzerOption) *SimpleAnalyzer {
	sa := &SimpleAnalyzer{
		minLength: 1,
		stopWords: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(sa)
	}
	return sa
}

// Analyze returns the distinct words of text in first-seen order.
func (sa *SimpleAnalyzer) Analyze(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	tokens := sa.tokenize(utils.IfToLower(text))
	if len(tokens) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" || len(tok) < sa.minLength || !utils.IsLetters(tok) {
			continue
		}
		if _, skip := sa.stopWords[tok]; skip {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

func (sa *SimpleAnalyzer) tokenize(text string) []string {
	if sa.customTokenizer != nil {
		return sa.customTokenizer(text)
	}
	return utils.Tokenize(text)
}

var defaultAnalyzer Analyzer = NewSimpleAnalyzer()
