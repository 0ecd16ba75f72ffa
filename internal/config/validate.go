package config

import (
	"errors"
)

// Validate ensures the configuration is usable. TMDB credentials are checked
// separately by RequireTMDBKey so read-only commands can run without them.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateImport(); err != nil {
		return err
	}
	return c.validateBrowse()
}

func (c *Config) validatePaths() error {
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateImport() error {
	if c.Import.DelayMS < 0 {
		return errors.New("import.delay_ms must be >= 0")
	}
	if c.Import.RetryAttempts < 0 {
		return errors.New("import.retry_attempts must be >= 0")
	}
	return nil
}

func (c *Config) validateBrowse() error {
	if c.Browse.PageSize < 1 {
		return errors.New("browse.page_size must be >= 1")
	}
	return nil
}
