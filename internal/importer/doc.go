// Package importer turns spreadsheet rows into library records.
//
// The pipeline reads a CSV export, normalizes each row into a title, year
// hint, and watch status, resolves the movie against TMDB, and writes one
// record through the catalog store. Processing is strictly sequential with a
// flat throttle between rows, and every per-row failure is classified and
// logged without stopping the run. The resolver is also used on its own by
// the interactive log command, which swaps the first-result rule for a user
// selection.
package importer
