package config

const (
	defaultLibraryDir    = "~/movies"
	defaultLogDir        = "~/.local/share/movielog/logs"
	defaultTMDBBaseURL   = "https://api.themoviedb.org/3"
	defaultImportDelayMS = 250
	defaultPageSize      = 15
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
		},
		TMDB: TMDB{
			BaseURL: defaultTMDBBaseURL,
		},
		Import: Import{
			DelayMS:    defaultImportDelayMS,
			SkipHeader: true,
		},
		Browse: Browse{
			PageSize: defaultPageSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
