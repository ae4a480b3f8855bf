package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/hey-go/internal/domain"
)

func entry(i int) domain.HistoryEntry {
	return domain.HistoryEntry{
		Timestamp: fmt.Sprintf("2026-01-01T00:00:%02d.000000+00:00", i%60),
		Query:     fmt.Sprintf("query %d", i),
		Command:   fmt.Sprintf("echo %d", i),
		Shell:     "bash",
	}
}

func TestFileStoreAppendCreatesPrettyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "share", "hey", "history.json")
	store := NewFileStore(path, nil)

	if err := store.Append(entry(1)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("history file not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n  {\n    \"timestamp\"") {
		t.Fatalf("expected indented JSON array, got %s", data)
	}
	var decoded []map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("history is not a JSON array: %v", err)
	}
	want := []map[string]string{{
		"timestamp": "2026-01-01T00:00:01.000000+00:00",
		"query":     "query 1",
		"command":   "echo 1",
		"shell":     "bash",
	}}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("file contents mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreEvictsOldestBeyondLimit(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.json"), nil)

	for i := 1; i <= 501; i++ {
		if err := store.Append(entry(i)); err != nil {
			t.Fatalf("Append(%d) error = %v", i, err)
		}
	}

	all, err := store.Recent(0)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(all) != 500 {
		t.Fatalf("expected 500 entries, got %d", len(all))
	}
	if all[0].Query != "query 2" {
		t.Fatalf("expected entry #2 first, got %q", all[0].Query)
	}
	if all[499].Query != "query 501" {
		t.Fatalf("expected entry #501 last, got %q", all[499].Query)
	}
}

func TestFileStoreRecent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.json"), nil)
	for i := 1; i <= 5; i++ {
		if err := store.Append(entry(i)); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if diff := cmp.Diff([]domain.HistoryEntry{entry(4), entry(5)}, recent); diff != "" {
		t.Fatalf("recent mismatch (-want +got):\n%s", diff)
	}

	all, _ := store.Recent(50)
	if len(all) != 5 {
		t.Fatalf("expected all 5 entries when n exceeds size, got %d", len(all))
	}
}

func TestFileStoreCorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{{{ not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path, nil)

	recent, err := store.Recent(20)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("expected empty history, got %+v", recent)
	}

	if err := store.Append(entry(7)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	recent, _ = store.Recent(20)
	if len(recent) != 1 || recent[0].Query != "query 7" {
		t.Fatalf("expected corrupt file to be replaced, got %+v", recent)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "history.json"), nil)
	recent, err := store.Recent(20)
	if err != nil || len(recent) != 0 {
		t.Fatalf("Recent() = %+v, %v", recent, err)
	}
}
