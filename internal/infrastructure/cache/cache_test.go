package cache

import (
	"path/filepath"
	"testing"
)

func TestKeyIsDeterministic(t *testing.T) {
	first := Key("list files", "macos", "zsh", "standard")
	second := Key("list files", "macos", "zsh", "standard")
	if first != second {
		t.Fatalf("Key() not deterministic: %s != %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("Key() length = %d, want 64 hex chars", len(first))
	}
}

func TestKeyChangesWithAnyField(t *testing.T) {
	base := Key("list files", "macos", "zsh", "standard")

	variants := map[string]string{
		"query": Key("list dirs", "macos", "zsh", "standard"),
		"os":    Key("list files", "linux", "zsh", "standard"),
		"shell": Key("list files", "macos", "bash", "standard"),
		"mode":  Key("list files", "macos", "zsh", "verbose"),
	}
	for field, key := range variants {
		if key == base {
			t.Errorf("changing %s did not change the key", field)
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	defer store.Close()

	key := Key("find large files", "linux", "bash", "standard")
	store.Put(key, "find . -type f -size +100M")

	got, ok := store.Get(key)
	if !ok {
		t.Fatal("Get() reported a miss after Put()")
	}
	if got != "find . -type f -size +100M" {
		t.Fatalf("Get() = %q", got)
	}
}

func TestStoreMissOnUnseenKey(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	defer store.Close()

	if got, ok := store.Get(Key("never stored", "linux", "bash", "standard")); ok {
		t.Fatalf("expected miss, got %q", got)
	}
}

func TestStoreLastWriterWins(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	defer store.Close()

	key := Key("show disk usage", "linux", "bash", "standard")
	store.Put(key, "df")
	store.Put(key, "df -h")

	if got, _ := store.Get(key); got != "df -h" {
		t.Fatalf("Get() after second Put() = %q, want %q", got, "df -h")
	}
}

func TestStoreDegradesWhenUnopenable(t *testing.T) {
	// A directory path cannot be opened as a database file.
	store := NewSQLiteStore(t.TempDir())
	defer store.Close()

	store.Put("k", "v")
	if _, ok := store.Get("k"); ok {
		t.Fatal("unopenable store must behave as always-miss")
	}
}
