package catalog

// Watch status values stored in record front matter. StatusWatched is only
// assigned on an exact, case-sensitive match during import; everything else
// lands in the to-watch pile.
const (
	StatusWatched = "watched"
	StatusToWatch = "to-watch"
)

// PosterBaseURL prefixes TMDB poster paths in the `poster` front matter field.
const PosterBaseURL = "https://image.tmdb.org/t/p/w500"

// RecordExtension is the on-disk suffix for library records.
const RecordExtension = ".md"

// Record is the YAML front matter of one library file. Struct order is the
// serialization order, so it must not be rearranged.
type Record struct {
	Title            string   `yaml:"title"`
	Year             int      `yaml:"year"`
	Director         string   `yaml:"director"`
	Runtime          int      `yaml:"runtime"`
	Genres           []string `yaml:"genres"`
	Rating           float64  `yaml:"rating"`
	Status           string   `yaml:"status"`
	DateWatched      string   `yaml:"date_watched"`
	Actors           []string `yaml:"actors"`
	Countries        []string `yaml:"countries"`
	OriginalLanguage string   `yaml:"original_language"`
	SpokenLanguages  []string `yaml:"spoken_languages"`
	ReleaseDate      string   `yaml:"release_date"`
	Poster           string   `yaml:"poster"`

	// Name is the filename base (without extension) the record was read from
	// or written to. It is derived state, never serialized.
	Name string `yaml:"-"`
}

// Watched reports whether the record counts toward watch statistics.
func (r *Record) Watched() bool {
	return r.Status == StatusWatched
}
