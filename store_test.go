package growth

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(NewDirKV(t.TempDir()), nil)

	stats := []DailyStat{
		{ID: "a", Date: "2024-01-01", Platform: YouTube, Followers: 10, Views: 3, Likes: 2, Comments: 1, PostsCount: 1},
		{ID: "b", Date: "2024-01-02", Platform: Instagram, Followers: 11},
	}
	posts := []Post{
		{ID: "p", Title: "Hook test", Platform: YouTube, Type: Video, Views: 100, Likes: 7, Comments: 3, EngagementRate: 10},
	}
	if err := store.SaveStats(stats); err != nil {
		t.Fatalf("SaveStats() = %v", err)
	}
	if err := store.SavePosts(posts); err != nil {
		t.Fatalf("SavePosts() = %v", err)
	}

	if diff := cmp.Diff(stats, store.LoadStats()); diff != "" {
		t.Errorf("LoadStats() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(posts, store.LoadPosts()); diff != "" {
		t.Errorf("LoadPosts() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreEmptyCollection(t *testing.T) {
	store := NewStore(NewMemKV(), nil)
	if err := store.SaveStats(nil); err != nil {
		t.Fatal(err)
	}
	got := store.LoadStats()
	if got == nil || len(got) != 0 {
		t.Errorf("LoadStats() = %v, want an empty collection", got)
	}
}

func TestStoreFallsBackToSeed(t *testing.T) {
	tests := []struct {
		name string
		data string // empty means absent
	}{
		{name: "absent"},
		{name: "not json", data: "{[oops"},
		{name: "truncated", data: `[{"id":"1","date":"2023-10-20","platform":"insta`},
		{name: "null", data: "null"},
		{name: "object", data: `{"id":"1"}`},
		{name: "unknown platform", data: `[{"id":"1","date":"2023-10-20","platform":"tiktok"}]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv := NewMemKV()
			if tc.data != "" {
				kv.Set(StatsKey, []byte(tc.data))
				kv.Set(PostsKey, []byte(tc.data))
			}
			store := NewStore(kv, nil)
			if diff := cmp.Diff(SeedStats(), store.LoadStats()); diff != "" {
				t.Errorf("LoadStats() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(SeedPosts(), store.LoadPosts()); diff != "" {
				t.Errorf("LoadPosts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStoreFileLayout(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(NewDirKV(dir), nil)
	if err := store.SaveStats(SeedStats()[:1]); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "stats.json"))
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"id":"1","date":"2023-10-20","platform":"instagram","followers":1200,"views":500,"likes":120,"comments":10,"postsCount":1}]`
	if string(data) != want {
		t.Errorf("stats.json = %s\nwant %s", data, want)
	}
}

func TestStoreClear(t *testing.T) {
	kv := NewMemKV()
	store := NewStore(kv, nil)
	if err := store.SaveStats(nil); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() = %v", err)
	}
	if _, err := kv.Get(StatsKey); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("stats record still present after Clear(): %v", err)
	}
	// clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() = %v", err)
	}
	if got := store.LoadStats(); len(got) != len(SeedStats()) {
		t.Errorf("LoadStats() after Clear() returned %d entries, want the seed", len(got))
	}
}

func TestSeedIsACopy(t *testing.T) {
	s := SeedStats()
	s[0].Followers = -1
	if SeedStats()[0].Followers != 1200 {
		t.Errorf("SeedStats() shares its backing array")
	}
}

// failingKV fails every write.
type failingKV struct {
	*MemKV
}

func (failingKV) Set(string, []byte) error { return errors.New("disk full") }

func TestStoreWriteError(t *testing.T) {
	store := NewStore(failingKV{NewMemKV()}, nil)
	err := store.SavePosts(SeedPosts())
	var werr *StorageWriteError
	if !errors.As(err, &werr) {
		t.Fatalf("SavePosts() = %v, want a *StorageWriteError", err)
	}
	if werr.Key != PostsKey {
		t.Errorf("Key = %q, want %q", werr.Key, PostsKey)
	}
}
