package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"movielog/internal/config"
	"movielog/internal/fileutil"
	"movielog/internal/logging"
	"movielog/internal/services"
)

// Store reads and writes movie records under the configured library
// directory. Records are plain files; the store never mutates or deletes an
// existing one.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore constructs a store rooted at the configured library directory.
func NewStore(cfg *config.Config, logger *slog.Logger) *Store {
	return &Store{
		dir:    cfg.Paths.LibraryDir,
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
}

// Dir returns the library directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// Write creates a new record file and returns its path. The filename is
// derived from the record title and release date; if that file already
// exists the write is skipped and the error classifies as ErrAlreadyExists,
// leaving the original bytes untouched.
func (s *Store) Write(record *Record, body string) (string, error) {
	name := Filename(record.Title, record.ReleaseDate)
	path := filepath.Join(s.dir, name)
	data, err := Encode(record, body)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	if err := fileutil.WriteFileAtomicNoOverwrite(path, data, 0o644); err != nil {
		if errors.Is(err, fs.ErrExist) {
			record.Name = strings.TrimSuffix(name, RecordExtension)
			return path, services.Wrap(
				services.ErrAlreadyExists,
				"writing",
				"create record",
				name+" is already in the library",
				nil,
			)
		}
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	record.Name = strings.TrimSuffix(name, RecordExtension)
	return path, nil
}

// Load reads one record by filename base, with or without the extension.
func (s *Store) Load(name string) (*Record, string, error) {
	base := strings.TrimSuffix(name, RecordExtension)
	path := filepath.Join(s.dir, base+RecordExtension)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", base, err)
	}
	record, body, err := Decode(data)
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", base, err)
	}
	record.Name = base
	return record, body, nil
}

// Path returns the absolute path a record name refers to.
func (s *Store) Path(name string) string {
	base := strings.TrimSuffix(name, RecordExtension)
	return filepath.Join(s.dir, base+RecordExtension)
}

// List reads every record in the library, sorted by filename. Files that no
// longer parse are logged and skipped so one corrupt record cannot take down
// browsing. A missing library directory reads as an empty library.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read library %s: %w", s.dir, err)
	}
	logger := logging.WithContext(ctx, s.logger)
	records := make([]*Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), RecordExtension) {
			continue
		}
		record, _, err := s.Load(entry.Name())
		if err != nil {
			logger.Warn("skipping unreadable record",
				logging.String(logging.FieldPath, entry.Name()),
				logging.Error(err))
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
