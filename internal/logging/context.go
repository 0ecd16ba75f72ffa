package logging

import (
	"context"
	"log/slog"

	"movielog/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for import run identifiers.
	FieldRunID = "run_id"
	// FieldRow is the standardized structured logging key for 1-based source row numbers.
	FieldRow = "row"
	// FieldRecord is the standardized structured logging key for record names.
	FieldRecord = "record"
	// FieldTitle is the standardized structured logging key for movie titles.
	FieldTitle = "title"
	// FieldYear is the standardized structured logging key for release years.
	FieldYear = "year"
	// FieldOutcome is the standardized structured logging key for row outcome classes.
	FieldOutcome = "outcome"
	// FieldQuery is the standardized structured logging key for search queries.
	FieldQuery = "query"
	// FieldPath is the standardized structured logging key for filesystem paths.
	FieldPath = "path"
	// FieldCount is the standardized structured logging key for record counts.
	FieldCount = "count"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if row, ok := services.RowFromContext(ctx); ok {
		fields = append(fields, slog.Int(FieldRow, row))
	}
	if name, ok := services.RecordFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRecord, name))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
