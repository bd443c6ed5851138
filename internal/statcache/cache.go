// Package statcache persists a scheduling run's stage-timing report to
// disk, keyed by a digest of the scenario name and stage names (KeyFor), so
// repeated CLI runs over the same fixture can diff stage timings instead
// of only printing them (SPEC_FULL §A). Grounded on
// internal/driver/dcache.go's DiskCache/DiskPayload pattern: a sha256-keyed
// msgpack blob under $XDG_CACHE_HOME.
package statcache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"hdlsched/internal/observ"
)

const schemaVersion uint16 = 1

// Key is a content digest identifying one scheduling run's shape.
type Key [sha256.Size]byte

// KeyFor derives a Key from the scenario name and the set of stage names a
// run produced, so two runs over the same fixture that took the same
// pipeline shape (e.g. both did or didn't build an ico loop) hit the same
// cache entry, while a run whose shape changed gets a fresh slot.
func KeyFor(scenario string, stageNames []string) Key {
	h := sha256.New()
	fmt.Fprintf(h, "schema=%d;scenario=%s;", schemaVersion, scenario)
	for _, name := range stageNames {
		fmt.Fprintf(h, "%s;", name)
	}
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

// Payload is the cached artifact: schema version plus the stage report.
type Payload struct {
	Schema  uint16
	Report  observ.Report
	Options map[string]string
}

// Cache is a thread-safe sha256-keyed msgpack blob store under
// $XDG_CACHE_HOME/hdlsched.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes the cache directory, creating it if necessary.
func Open() (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, "hdlsched")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Key) string {
	return filepath.Join(c.dir, "runs", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes payload to disk.
func (c *Cache) Put(key Key, payload *Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload, reporting false if no entry
// exists for key.
func (c *Cache) Get(key Key) (*Payload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	return &payload, true, nil
}
