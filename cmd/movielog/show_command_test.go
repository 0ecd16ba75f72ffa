package main

import (
	"os"
	"strings"
	"testing"

	"movielog/internal/catalog"
	"movielog/internal/testsupport"
)

func TestShowPrintsRawRecord(t *testing.T) {
	env := setupCLITestEnv(t)
	record := testsupport.Record("Parasite", "2019-05-30", catalog.StatusWatched)
	path := testsupport.WriteRecord(t, env.cfg.Paths.LibraryDir, record, "## Synopsis\n\nKim family.\n\n## My Notes\n\nGreat.")

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	for _, name := range []string{"Parasite-2019", "Parasite-2019.md", "parasite", "PARASITE"} {
		out, _, err := runCLI(t, env, "show", name)
		if err != nil {
			t.Fatalf("show %s: %v", name, err)
		}
		if out != string(want) {
			t.Fatalf("show %s did not print raw contents:\n%s", name, out)
		}
	}
}

func TestShowMissingRecord(t *testing.T) {
	env := setupCLITestEnv(t)
	record := testsupport.Record("Parasite", "2019-05-30", catalog.StatusWatched)
	testsupport.WriteRecord(t, env.cfg.Paths.LibraryDir, record, "")

	_, _, err := runCLI(t, env, "show", "Parasit")
	if err == nil || !strings.Contains(err.Error(), `no record named "Parasit"`) {
		t.Fatalf("expected missing record error, got %v", err)
	}
}
