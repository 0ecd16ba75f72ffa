// Package catalog owns the on-disk movie library: one markdown file per
// movie with YAML front matter, stored flat under the library directory.
//
// The Store handles reading and writing records, the codec round-trips the
// front matter and body sections, and filename derivation gives every movie
// a deterministic key so repeated imports stay idempotent. Search and browse
// helpers operate on loaded records in memory; the library itself is the
// single source of truth and is never indexed elsewhere.
//
// Records are write-once from this package's point of view: users edit or
// remove files by hand, and the store refuses to overwrite.
package catalog
