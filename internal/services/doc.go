// Package services defines shared utilities consumed by the import pipeline
// and the record-producing commands.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, source row numbers, and record names
//     for logging and tracing.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent report outcomes (skipped, not found, lookup failed,
//     already exists, setup).
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across commands.
package services
