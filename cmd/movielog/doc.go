// Package main hosts the movielog CLI entrypoint and command graph.
//
// The Cobra-based command tree covers spreadsheet import, interactive
// logging, and the read-only library views (browse, search, stats, show),
// plus configuration scaffolding. It centralizes configuration resolution
// and structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
