package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"movielog/internal/catalog"
	"movielog/internal/logging"
	"movielog/internal/services"
	"movielog/internal/testsupport"
)

func TestStoreWriteAndLoad(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := catalog.NewStore(cfg, logging.NewNop())

	record := testsupport.Record("Parasite", "2019-05-30", catalog.StatusWatched)
	record.Director = "Bong Joon Ho"
	record.Runtime = 132
	record.Genres = []string{"Thriller", "Drama"}

	path, err := store.Write(record, catalog.ComposeBody("Overview.", ""))
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if filepath.Base(path) != "Parasite-2019.md" {
		t.Fatalf("unexpected filename %q", filepath.Base(path))
	}
	if record.Name != "Parasite-2019" {
		t.Fatalf("record name = %q", record.Name)
	}

	loaded, body, err := store.Load("Parasite-2019")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Director != "Bong Joon Ho" || loaded.Runtime != 132 {
		t.Fatalf("unexpected record: %#v", loaded)
	}
	if body == "" {
		t.Fatal("expected body content")
	}

	withExt, _, err := store.Load("Parasite-2019.md")
	if err != nil {
		t.Fatalf("Load with extension returned error: %v", err)
	}
	if withExt.Title != loaded.Title {
		t.Fatalf("extension lookup mismatch: %q vs %q", withExt.Title, loaded.Title)
	}
}

func TestStoreWriteNeverOverwrites(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := catalog.NewStore(cfg, logging.NewNop())

	record := testsupport.Record("Parasite", "2019-05-30", catalog.StatusToWatch)
	path, err := store.Write(record, catalog.ComposeBody("First write.", ""))
	if err != nil {
		t.Fatalf("first Write returned error: %v", err)
	}
	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read record: %v", err)
	}

	again := testsupport.Record("Parasite", "2019-05-30", catalog.StatusWatched)
	if _, err := store.Write(again, catalog.ComposeBody("Second write.", "different")); err == nil {
		t.Fatal("expected already-exists error on second write")
	} else if services.Classify(err) != services.OutcomeExists {
		t.Fatalf("unexpected classification for %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("re-read record: %v", err)
	}
	if string(after) != string(original) {
		t.Fatal("existing record bytes changed on colliding write")
	}
}

func TestStoreListSkipsMalformedFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := catalog.NewStore(cfg, logging.NewNop())

	testsupport.WriteRecord(t, store.Dir(), testsupport.Record("Parasite", "2019-05-30", catalog.StatusWatched), "")
	testsupport.WriteRecord(t, store.Dir(), testsupport.Record("Heat", "1995-12-15", catalog.StatusToWatch), "")
	if err := os.WriteFile(filepath.Join(store.Dir(), "broken.md"), []byte("no front matter here"), 0o644); err != nil {
		t.Fatalf("write malformed file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(store.Dir(), "notes.txt"), []byte("not a record"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name == "" || records[1].Name == "" {
		t.Fatal("expected names populated on listed records")
	}
}

func TestStoreListMissingDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := catalog.NewStore(cfg, logging.NewNop())
	if err := os.RemoveAll(store.Dir()); err != nil {
		t.Fatalf("remove library dir: %v", err)
	}

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty library, got %d records", len(records))
	}
}
