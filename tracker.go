package growth

import (
	"log/slog"
	"slices"
	"sync"
)

// Tracker is the single authoritative copy of the stats and posts for a
// session. Every mutation goes through it and is written through to the
// Store before it returns.
//
// A Tracker must be initialized before use. All other methods return
// ErrNotReady until then.
type Tracker struct {
	store *Store
	log   *slog.Logger

	// mu serializes writers, so each save is a full, ordered snapshot.
	mu    sync.RWMutex
	ready bool
	stats []DailyStat
	posts []Post
}

// NewTracker returns an uninitialized Tracker over store.
func NewTracker(store *Store, log *slog.Logger) *Tracker {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Tracker{store: store, log: log}
}

// Initialize loads both collections from the store. Only the first call
// loads; later calls do nothing.
func (t *Tracker) Initialize() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ready {
		return
	}
	t.stats = t.store.LoadStats()
	t.posts = t.store.LoadPosts()
	t.ready = true
	t.log.Debug("tracker ready", "stats", len(t.stats), "posts", len(t.posts))
}

// Ready reports whether Initialize has completed.
func (t *Tracker) Ready() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ready
}

// Stats returns a copy of all the stats in insertion order.
func (t *Tracker) Stats() ([]DailyStat, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.ready {
		return nil, ErrNotReady
	}
	return slices.Clone(t.stats), nil
}

// Posts returns a copy of all the posts in insertion order.
func (t *Tracker) Posts() ([]Post, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.ready {
		return nil, ErrNotReady
	}
	return slices.Clone(t.posts), nil
}

// AppendStat validates s, appends it and saves the stats collection.
// If the save fails, the append is undone and a *StorageWriteError is
// returned.
func (t *Tracker) AppendStat(s DailyStat) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready {
		return ErrNotReady
	}
	if err := s.Validate(); err != nil {
		return err
	}
	t.stats = append(t.stats, s)
	if err := t.store.SaveStats(t.stats); err != nil {
		t.stats = t.stats[:len(t.stats)-1]
		t.log.Error("stat not saved, append rolled back", "id", s.ID, "error", err)
		return err
	}
	return nil
}

// AppendPost validates p, appends it and saves the posts collection.
// The stored engagement rate must be the one NewPost derives from the
// counts.
// If the save fails, the append is undone and a *StorageWriteError is
// returned.
func (t *Tracker) AppendPost(p Post) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready {
		return ErrNotReady
	}
	if err := p.Validate(); err != nil {
		return err
	}
	t.posts = append(t.posts, p)
	if err := t.store.SavePosts(t.posts); err != nil {
		t.posts = t.posts[:len(t.posts)-1]
		t.log.Error("post not saved, append rolled back", "id", p.ID, "error", err)
		return err
	}
	return nil
}
