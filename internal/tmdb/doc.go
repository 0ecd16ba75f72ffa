// Package tmdb provides the minimal TMDB API client used for metadata
// enrichment.
//
// It authenticates requests and exposes movie search with an optional
// release-year hint, plus detail and credits retrieval for a selected
// identifier. Responses are strongly typed so the resolver can map them onto
// records. Options allow tests to supply custom HTTP clients without
// modifying production code.
package tmdb
