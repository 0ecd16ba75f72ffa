package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"movielog/internal/catalog"
	"movielog/internal/logging"
	"movielog/internal/services"
	"movielog/internal/tmdb"
)

// ResolvedMovie carries everything the writer needs for one record. It is
// produced per lookup and consumed immediately.
type ResolvedMovie struct {
	TMDBID           int64
	Title            string
	ReleaseDate      string
	Runtime          int
	Genres           []string
	Director         string
	Actors           []string
	OriginalLanguage string
	SpokenLanguages  []string
	Countries        []string
	Overview         string
	PosterPath       string
}

// Record converts the resolved metadata into a catalog record. The bulk
// import path passes rating 0 and an empty watch date; the interactive
// logger supplies real values.
func (m *ResolvedMovie) Record(status string, rating float64, dateWatched string) *catalog.Record {
	return &catalog.Record{
		Title:            m.Title,
		Year:             catalog.Year(m.ReleaseDate),
		Director:         m.Director,
		Runtime:          m.Runtime,
		Genres:           m.Genres,
		Rating:           rating,
		Status:           status,
		DateWatched:      dateWatched,
		Actors:           m.Actors,
		Countries:        m.Countries,
		OriginalLanguage: strings.ToUpper(m.OriginalLanguage),
		SpokenLanguages:  m.SpokenLanguages,
		ReleaseDate:      m.ReleaseDate,
		Poster:           catalog.PosterBaseURL + m.PosterPath,
	}
}

// Body renders the markdown body for the record using the movie overview.
func (m *ResolvedMovie) Body(notes string) string {
	return catalog.ComposeBody(m.Overview, notes)
}

// Resolver turns normalized entries into resolved movies by querying TMDB.
// Search relevance is trusted as-is: the first result wins, with no local
// re-ranking.
type Resolver struct {
	client  tmdb.Searcher
	logger  *slog.Logger
	retries int
	delay   time.Duration
	sleep   Sleeper
}

// ResolverOption adjusts resolver behavior.
type ResolverOption func(*Resolver)

// WithRetries enables retrying failed lookups. Attempts is the number of
// extra tries after the first; delay spaces them out. Zero attempts keeps
// the default single-try policy. Only transport failures retry; an empty
// result set never does.
func WithRetries(attempts int, delay time.Duration) ResolverOption {
	return func(r *Resolver) {
		if attempts > 0 {
			r.retries = attempts
		}
		r.delay = delay
	}
}

// WithResolverSleeper replaces the inter-attempt pause (used in tests).
func WithResolverSleeper(sleep Sleeper) ResolverOption {
	return func(r *Resolver) {
		if sleep != nil {
			r.sleep = sleep
		}
	}
}

// NewResolver constructs a resolver around a TMDB searcher.
func NewResolver(client tmdb.Searcher, logger *slog.Logger, opts ...ResolverOption) *Resolver {
	resolver := &Resolver{
		client: client,
		logger: logging.NewComponentLogger(logger, "resolver"),
		sleep:  SleepContext,
	}
	for _, opt := range opts {
		opt(resolver)
	}
	return resolver
}

// Resolve searches TMDB for the entry and fetches full metadata for the
// first match. Zero hits classify as not found; transport and decode
// failures classify as lookup failures.
func (r *Resolver) Resolve(ctx context.Context, entry Entry) (*ResolvedMovie, error) {
	var response *tmdb.Response
	err := r.withRetry(ctx, "search movie", func() error {
		var err error
		response, err = r.client.SearchMovie(ctx, entry.Title, entry.Year)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(response.Results) == 0 {
		return nil, services.Wrap(
			services.ErrNotFound,
			"resolving",
			"search movie",
			fmt.Sprintf("no TMDB results for %q", entry.Title),
			nil,
		)
	}
	return r.ResolveID(ctx, response.Results[0].ID)
}

// ResolveID fetches detail and credits for a known TMDB movie id. The
// interactive logger calls this directly after the user picks a candidate.
func (r *Resolver) ResolveID(ctx context.Context, movieID int64) (*ResolvedMovie, error) {
	var details *tmdb.MovieDetails
	err := r.withRetry(ctx, "fetch details", func() error {
		var err error
		details, err = r.client.GetMovieDetails(ctx, movieID)
		return err
	})
	if err != nil {
		return nil, err
	}

	var credits *tmdb.Credits
	err = r.withRetry(ctx, "fetch credits", func() error {
		var err error
		credits, err = r.client.GetMovieCredits(ctx, movieID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return buildResolved(details, credits), nil
}

func (r *Resolver) withRetry(ctx context.Context, operation string, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if attempt >= r.retries {
			break
		}
		r.logger.Debug("retrying TMDB lookup",
			logging.String("operation", operation),
			logging.Int("attempt", attempt+1),
			logging.Error(err))
		if sleepErr := r.sleep(ctx, r.delay); sleepErr != nil {
			return services.Wrap(services.ErrLookupFailed, "resolving", operation, "lookup interrupted", sleepErr)
		}
	}
	return services.Wrap(services.ErrLookupFailed, "resolving", operation, "TMDB request failed", err)
}

func buildResolved(details *tmdb.MovieDetails, credits *tmdb.Credits) *ResolvedMovie {
	genres := make([]string, 0, len(details.Genres))
	for _, genre := range details.Genres {
		genres = append(genres, genre.Name)
	}
	countries := make([]string, 0, len(details.ProductionCountries))
	for _, country := range details.ProductionCountries {
		countries = append(countries, country.Name)
	}
	languages := make([]string, 0, len(details.SpokenLanguages))
	for _, lang := range details.SpokenLanguages {
		languages = append(languages, lang.EnglishName)
	}

	director := "Unknown"
	for _, member := range credits.Crew {
		if member.Job == "Director" {
			director = member.Name
			break
		}
	}
	actors := make([]string, 0, 5)
	for _, member := range credits.Cast {
		if len(actors) == 5 {
			break
		}
		actors = append(actors, member.Name)
	}

	return &ResolvedMovie{
		TMDBID:           details.ID,
		Title:            details.Title,
		ReleaseDate:      details.ReleaseDate,
		Runtime:          details.Runtime,
		Genres:           genres,
		Director:         director,
		Actors:           actors,
		OriginalLanguage: details.OriginalLanguage,
		SpokenLanguages:  languages,
		Countries:        countries,
		Overview:         details.Overview,
		PosterPath:       details.PosterPath,
	}
}
