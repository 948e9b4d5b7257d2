package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/knock-sh/knock/internal/domain"
)

func TestAddAndRecent(t *testing.T) {
	store := NewSQLiteStoreAt(filepath.Join(t.TempDir(), "history.db"))
	defer store.Close()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.HistoryRecord{
		{Timestamp: base, Query: "list files", Command: "ls -la"},
		{Timestamp: base.Add(time.Minute), Query: "disk usage", Command: "df -h"},
		{Timestamp: base.Add(2 * time.Minute), Query: "find large files", Command: "find . -size +100M"},
	}
	for _, rec := range records {
		if err := store.Add(rec); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	recent, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent(2) returned %d records", len(recent))
	}
	if recent[0].Query != "find large files" {
		t.Errorf("newest record first, got %q", recent[0].Query)
	}
}

func TestSearchMatchesQueryAndCommand(t *testing.T) {
	store := NewSQLiteStoreAt(filepath.Join(t.TempDir(), "history.db"))
	defer store.Close()

	store.Add(domain.HistoryRecord{Query: "list files", Command: "ls -la"})
	store.Add(domain.HistoryRecord{Query: "disk usage", Command: "df -h"})

	got, err := store.Search("disk")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || got[0].Command != "df -h" {
		t.Fatalf("Search(disk) = %+v", got)
	}
}
