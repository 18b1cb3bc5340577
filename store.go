package growth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Keys of the two persisted records.
const (
	StatsKey = "stats"
	PostsKey = "posts"
)

// KV is the durable key-value primitive records are written to.
// Get returns an error matching fs.ErrNotExist when the key is absent.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// Store persists the stats and posts collections as full JSON snapshots.
//
// Reads never fail: an absent or unreadable record is replaced by the seed
// data. This also covers a record corrupted by an interrupted write.
type Store struct {
	kv  KV
	log *slog.Logger
}

// NewStore returns a Store over kv. A nil logger discards read failures.
func NewStore(kv KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{kv: kv, log: log}
}

func (s *Store) LoadStats() []DailyStat { return load(s, StatsKey, SeedStats) }
func (s *Store) LoadPosts() []Post      { return load(s, PostsKey, SeedPosts) }

func (s *Store) SaveStats(stats []DailyStat) error { return save(s, StatsKey, stats) }
func (s *Store) SavePosts(posts []Post) error      { return save(s, PostsKey, posts) }

// Clear removes both records. Absent records are not an error.
func (s *Store) Clear() error {
	var errs []error
	for _, key := range []string{StatsKey, PostsKey} {
		if err := s.kv.Remove(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("cannot remove %q: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func load[T any](s *Store, key string, seed func() []T) []T {
	data, err := s.kv.Get(key)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("record absent, using seed data", "key", key)
		return seed()
	}
	if err != nil {
		s.log.Warn("cannot read record, using seed data", "key", key, "error", err)
		return seed()
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("failed to parse record, using seed data", "key", key, "error", err)
		return seed()
	}
	if items == nil {
		// a literal "null" is not a collection.
		s.log.Warn("record is not an array, using seed data", "key", key)
		return seed()
	}
	return items
}

func save[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return &StorageWriteError{Key: key, Err: err}
	}
	if err := s.kv.Set(key, data); err != nil {
		return &StorageWriteError{Key: key, Err: err}
	}
	return nil
}

// DirKV stores each key as "<key>.json" in a folder, in a human-readable
// form that can live in a private git repository.
type DirKV struct {
	dir string
}

func NewDirKV(dir string) *DirKV { return &DirKV{dir: dir} }

func (d *DirKV) path(key string) string { return filepath.Join(d.dir, key+".json") }

func (d *DirKV) Get(key string) ([]byte, error) {
	return os.ReadFile(d.path(key))
}

func (d *DirKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("could not create data folder %q: %w", d.dir, err)
	}
	return os.WriteFile(d.path(key), value, 0644)
}

func (d *DirKV) Remove(key string) error {
	return os.Remove(d.path(key))
}

// MemKV is an in-memory KV.
type MemKV struct {
	mu sync.Mutex
	m  map[string][]byte
}

func NewMemKV() *MemKV { return &MemKV{m: make(map[string][]byte)} }

func (m *MemKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.m[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	return append([]byte(nil), v...), nil
}

func (m *MemKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.m[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemKV) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.m[key]; !ok {
		return fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	delete(m.m, key)
	return nil
}
