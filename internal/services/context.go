package services

import "context"

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	rowKey    contextKey = "row"
	recordKey contextKey = "record"
)

// WithRunID annotates context with the import run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRow annotates context with the 1-based source row number.
func WithRow(ctx context.Context, row int) context.Context {
	if row <= 0 {
		return ctx
	}
	return context.WithValue(ctx, rowKey, row)
}

// RowFromContext extracts the source row number if present.
func RowFromContext(ctx context.Context) (int, bool) {
	switch v := ctx.Value(rowKey).(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}

// WithRecord annotates context with the record name being produced.
func WithRecord(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, recordKey, name)
}

// RecordFromContext extracts the record name if present.
func RecordFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(recordKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
