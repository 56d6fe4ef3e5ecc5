// Package dict is a persistent String64-keyed dictionary.
//
// Keys are inline strings, so lookups hash and compare a single integer.
// Keys longer than eight bytes are truncated; two keys that share their
// first eight bytes name the same entry.
package dict

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"strn"
)

// schemaVersion is bumped whenever the on-disk payload changes shape.
const schemaVersion uint16 = 1

var (
	// ErrSchema is returned by Load for a file written by an incompatible version.
	ErrSchema = errors.New("dict: unsupported schema version")
	// ErrKeyTooLong is returned by PutExact for a key that does not fit in eight bytes.
	ErrKeyTooLong = errors.New("dict: key longer than 8 bytes")
)

// Dict maps String64 keys to string values. Safe for concurrent use.
type Dict struct {
	mu      sync.RWMutex
	entries map[strn.String64]string
}

// Entry is one key-value pair.
type Entry struct {
	Key   strn.String64 `msgpack:"k"`
	Value string        `msgpack:"v"`
}

type payload struct {
	Schema  uint16  `msgpack:"schema"`
	Entries []Entry `msgpack:"entries"`
}

func New() *Dict {
	return &Dict{entries: make(map[strn.String64]string)}
}

// Put stores value under key, replacing any previous value.
func (d *Dict) Put(key strn.String64, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[key] = value
}

// PutExact is Put for a textual key that must not be truncated.
func (d *Dict) PutExact(key, value string) (strn.String64, error) {
	if len(key) > strn.MaxLen64 {
		return 0, fmt.Errorf("%w: %q", ErrKeyTooLong, key)
	}
	k := strn.New64(key)
	d.Put(k, value)
	return k, nil
}

func (d *Dict) Get(key strn.String64) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.entries[key]
	return v, ok
}

// Delete removes key and reports whether it was present.
func (d *Dict) Delete(key strn.String64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.entries[key]
	delete(d.entries, key)
	return ok
}

func (d *Dict) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Keys returns the keys in integer order, which is not alphabetical.
func (d *Dict) Keys() []strn.String64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Sorted(maps.Keys(d.entries))
}

// Entries returns a snapshot of the dictionary in key order.
func (d *Dict) Entries() []Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Entry, 0, len(d.entries))
	for k, v := range d.entries {
		out = append(out, Entry{Key: k, Value: v})
	}
	slices.SortFunc(out, func(a, b Entry) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

// DefaultPath returns $XDG_CACHE_HOME/strn/dict.msgpack, falling back to ~/.cache.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "strn", "dict.msgpack"), nil
}

// Load reads a dictionary from path. A missing file yields an empty dictionary.
func Load(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}
	defer f.Close()

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("%s: %w %d", path, ErrSchema, p.Schema)
	}
	d := New()
	for _, e := range p.Entries {
		d.entries[e.Key] = e.Value
	}
	return d, nil
}

// Save writes the dictionary to path atomically.
func (d *Dict) Save(path string) error {
	p := payload{Schema: schemaVersion, Entries: d.Entries()}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		// already renamed on success
		_ = os.Remove(tmp)
	}()

	if err := msgpack.NewEncoder(f).Encode(&p); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
