// Package stats aggregates watch statistics over the library: totals,
// average rating, a rating histogram, leaderboards for genres, directors,
// and languages, and a by-decade breakdown. Only watched records count.
package stats
