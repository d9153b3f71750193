package wordtrie

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/oarkflow/wordtrie/trie"
)

// Dictionary is a named, concurrency-safe word set backed by a trie.
type Dictionary struct {
	name     string
	mu       sync.RWMutex
	words    *trie.Trie
	analyzer Analyzer
	log      *zap.Logger
}

// DictionaryOption configures a Dictionary.
type DictionaryOption func(*Dictionary)

// WithAnalyzer sets the analyzer used by AddText and LoadText.
func WithAnalyzer(a Analyzer) DictionaryOption {
	return func(d *Dictionary) {
		if a != nil {
			d.analyzer = a
		}
	}
}

// WithLogger sets the logger of the dictionary and its trie.
func WithLogger(l *zap.Logger) DictionaryOption {
	return func(d *Dictionary) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDictionary creates an empty dictionary.
func NewDictionary(name string, opts ...DictionaryOption) *Dictionary {
	d := &Dictionary{
		name:     name,
		analyzer: defaultAnalyzer,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With(zap.String("dictionary", name))
	d.words = trie.New(trie.WithLogger(d.log))
	return d
}

// Name returns the dictionary name.
func (d *Dictionary) Name() string {
	return d.name
}

// Add inserts words and returns how many were not already present. It stops
// at the first invalid word; words before it stay inserted.
func (d *Dictionary) Add(words ...string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.add(words)
}

func (d *Dictionary) add(words []string) (int, error) {
	added, _, err := d.insert(words)
	return added, err
}

// insert stores words in order. stored counts the words that went in
// successfully, added those among them that were new.
func (d *Dictionary) insert(words []string) (added, stored int, err error) {
	for _, w := range words {
		before := d.words.Len()
		if err := d.words.Insert(w); err != nil {
			return added, stored, fmt.Errorf("dictionary %s: add %q: %w", d.name, w, err)
		}
		stored++
		if d.words.Len() > before {
			added++
		}
	}
	return added, stored, nil
}

// Remove deletes words and returns how many were present. It stops at the
// first invalid word.
func (d *Dictionary) Remove(words ...string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	removed := 0
	for _, w := range words {
		ok, err := d.words.Delete(w)
		if err != nil {
			return removed, fmt.Errorf("dictionary %s: remove %q: %w", d.name, w, err)
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

// Contains reports whether word is stored.
func (d *Dictionary) Contains(word string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words.Search(word)
}

// HasPrefix reports whether any stored word starts with prefix.
func (d *Dictionary) HasPrefix(prefix string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words.StartsWith(prefix)
}

// AddText runs text through the analyzer and adds the resulting words.
func (d *Dictionary) AddText(text string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.add(d.analyzer.Analyze(text))
}

// maxLineSize bounds a single line read by LoadText.
const maxLineSize = 16 << 20

// LoadStats summarises a LoadText or LoadSQL call. The counts are kept
// accurate when loading stops early.
type LoadStats struct {
	Lines      int `json:"lines"`
	Words      int `json:"words"`
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
}

// ingest analyzes one line or row value and adds its words.
func (d *Dictionary) ingest(stats *LoadStats, text string) error {
	stats.Lines++
	words := d.analyzer.Analyze(text)
	if len(words) == 0 {
		return nil
	}
	d.mu.Lock()
	added, stored, err := d.insert(words)
	d.mu.Unlock()
	stats.Words += len(words)
	stats.Added += added
	stats.Duplicates += stored - added
	return err
}

// LoadText adds every word the analyzer finds in r, line by line. The
// context is checked between lines; words added before cancellation stay.
// Lines longer than 16 MiB fail the load.
func (d *Dictionary) LoadText(ctx context.Context, r io.Reader) (LoadStats, error) {
	var stats LoadStats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := d.ingest(&stats, scanner.Text()); err != nil {
			return stats, err
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("dictionary %s: read: %w", d.name, err)
	}
	d.log.Info("text loaded",
		zap.Int("lines", stats.Lines),
		zap.Int("words", stats.Words),
		zap.Int("added", stats.Added))
	return stats, nil
}

// Stats describes the current contents of a dictionary.
type Stats struct {
	Name        string `json:"name"`
	Words       int    `json:"words"`
	Nodes       int    `json:"nodes"`
	Fingerprint uint64 `json:"fingerprint"`
}

// Stats returns word and node counts plus the trie fingerprint.
func (d *Dictionary) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Stats{
		Name:        d.name,
		Words:       d.words.Len(),
		Nodes:       d.words.NodeCount(),
		Fingerprint: d.words.Fingerprint(),
	}
}
