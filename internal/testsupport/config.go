package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"movielog/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
// The library and log directories already exist, the TMDB key is a dummy,
// and the import throttle is zeroed so tests never sleep by accident.
// Callers mutate the returned value to shape the case under test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.TMDB.APIKey = "test"
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Import.DelayMS = 0

	for _, dir := range []string{cfg.Paths.LibraryDir, cfg.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	return &cfg
}
