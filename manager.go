package wordtrie

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// ErrDictionaryNotFound is returned when a named dictionary does not exist.
var ErrDictionaryNotFound = errors.New("wordtrie: dictionary not found")

// Manager keeps a set of named dictionaries.
type Manager struct {
	dictionaries map[string]*Dictionary
	mutex        sync.RWMutex
	log          *zap.Logger
	options      []DictionaryOption
}

// NewManager creates an empty manager. opts are applied to every dictionary
// created through Open.
func NewManager(log *zap.Logger, opts ...DictionaryOption) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		dictionaries: make(map[string]*Dictionary),
		log:          log,
		options:      opts,
	}
}

// Add registers d under its name, replacing any dictionary of the same name.
func (m *Manager) Add(d *Dictionary) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.dictionaries[d.Name()] = d
}

// Open returns the dictionary called name, creating it if needed.
func (m *Manager) Open(name string) *Dictionary {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if d, ok := m.dictionaries[name]; ok {
		return d
	}
	opts := append([]DictionaryOption{WithLogger(m.log)}, m.options...)
	d := NewDictionary(name, opts...)
	m.dictionaries[name] = d
	m.log.Debug("dictionary created", zap.String("dictionary", name))
	return d
}

// Get returns the dictionary called name.
func (m *Manager) Get(name string) (*Dictionary, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	d, ok := m.dictionaries[name]
	return d, ok
}

// Lookup is Get with an error wrapping ErrDictionaryNotFound.
func (m *Manager) Lookup(name string) (*Dictionary, error) {
	d, ok := m.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, name)
	}
	return d, nil
}

// Delete drops the dictionary called name.
func (m *Manager) Delete(name string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.dictionaries, name)
}

// List returns the dictionary names in sorted order.
func (m *Manager) List() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	names := make([]string, 0, len(m.dictionaries))
	for name := range m.dictionaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Checksum digests every dictionary name together with its trie
// fingerprint. Managers holding the same words under the same names agree.
func (m *Manager) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, name := range m.List() {
		d, ok := m.Get(name)
		if !ok {
			continue
		}
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], d.Stats().Fingerprint)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
