package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"movielog/internal/config"
)

func TestLoadDefaultConfigUsesEnvTMDBKeyAndExpandsPaths(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Paths.LibraryDir != filepath.Join(tempHome, "movies") {
		t.Fatalf("unexpected library dir: %q", cfg.Paths.LibraryDir)
	}
	wantLogs := filepath.Join(tempHome, ".local", "share", "movielog", "logs")
	if cfg.Paths.LogDir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogs)
	}
	if cfg.TMDB.APIKey != "test-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != config.Default().TMDB.BaseURL {
		t.Fatalf("unexpected TMDB base url: %q", cfg.TMDB.BaseURL)
	}
	if !cfg.Import.SkipHeader {
		t.Fatal("expected header skipping by default")
	}
	if cfg.ImportDelay() != 250*time.Millisecond {
		t.Fatalf("unexpected import delay: %v", cfg.ImportDelay())
	}
	if cfg.Import.RetryAttempts != 0 {
		t.Fatalf("expected retries disabled by default, got %d", cfg.Import.RetryAttempts)
	}
	if cfg.Browse.PageSize != 15 {
		t.Fatalf("unexpected page size: %d", cfg.Browse.PageSize)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LibraryDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "movielog.toml")

	type payload struct {
		Paths struct {
			LibraryDir string `toml:"library_dir"`
		} `toml:"paths"`
		TMDB struct {
			APIKey  string `toml:"api_key"`
			BaseURL string `toml:"base_url"`
		} `toml:"tmdb"`
		Import struct {
			DelayMS    int  `toml:"delay_ms"`
			SkipHeader bool `toml:"skip_header"`
		} `toml:"import"`
	}
	custom := payload{}
	custom.Paths.LibraryDir = filepath.Join(tempDir, "library")
	custom.TMDB.APIKey = "abc123"
	custom.TMDB.BaseURL = "https://example.com/tmdb"
	custom.Import.DelayMS = 10
	custom.Import.SkipHeader = false
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.TMDB.APIKey != "abc123" {
		t.Fatalf("expected TMDB key from file, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != "https://example.com/tmdb" {
		t.Fatalf("expected TMDB base url override, got %q", cfg.TMDB.BaseURL)
	}
	if cfg.Paths.LibraryDir != custom.Paths.LibraryDir {
		t.Fatalf("expected library dir override, got %q", cfg.Paths.LibraryDir)
	}
	if cfg.ImportDelay() != 10*time.Millisecond {
		t.Fatalf("expected delay override, got %v", cfg.ImportDelay())
	}
	if cfg.Import.SkipHeader {
		t.Fatal("expected skip_header override to false")
	}
}

func TestEnvVarFillsEmptyAPIKeyOnly(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "movielog.toml")

	type payload struct {
		TMDB struct {
			APIKey string `toml:"api_key"`
		} `toml:"tmdb"`
	}
	custom := payload{}
	custom.TMDB.APIKey = "file-tmdb"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	t.Setenv("TMDB_API_KEY", "env-tmdb")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TMDB.APIKey != "file-tmdb" {
		t.Fatalf("expected file key to win when set, got %q", cfg.TMDB.APIKey)
	}

	custom.TMDB.APIKey = ""
	data, err = toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, _, _, err = config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TMDB.APIKey != "env-tmdb" {
		t.Fatalf("expected env fallback for empty key, got %q", cfg.TMDB.APIKey)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "your_tmdb_api_key_here") {
		t.Fatalf("sample config missing placeholder TMDB key: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Import.DelayMS != 250 {
		t.Fatalf("sample delay does not match default: %d", cfg.Import.DelayMS)
	}
	if cfg.Browse.PageSize != 15 {
		t.Fatalf("sample page size does not match default: %d", cfg.Browse.PageSize)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Import.DelayMS = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative delay")
	}

	cfg = config.Default()
	cfg.Import.RetryAttempts = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative retry attempts")
	}

	cfg = config.Default()
	cfg.Paths.LibraryDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty library dir")
	}

	cfg = config.Default()
	cfg.Browse.PageSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero page size")
	}
}

func TestNormalizeCoercesUnknownLogFormat(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "movielog.toml")
	body := "[logging]\nformat = \"xml\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected unknown format coerced to console, got %q", cfg.Logging.Format)
	}
}

func TestRequireTMDBKey(t *testing.T) {
	cfg := config.Default()
	cfg.TMDB.APIKey = ""
	err := cfg.RequireTMDBKey()
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if !strings.Contains(err.Error(), "TMDB_API_KEY") {
		t.Fatalf("expected hint about env var, got %v", err)
	}

	cfg.TMDB.APIKey = "abc"
	if err := cfg.RequireTMDBKey(); err != nil {
		t.Fatalf("unexpected error with key set: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/movies")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(tempHome, "movies") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
