package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSkippedRow flags rows the normalizer drops before any lookup runs.
	ErrSkippedRow = errors.New("row skipped")
	// ErrNotFound flags searches that returned zero candidates.
	ErrNotFound = errors.New("no match found")
	// ErrLookupFailed flags transport or protocol failures talking to TMDB.
	ErrLookupFailed = errors.New("metadata lookup failed")
	// ErrAlreadyExists flags writes that found the target record in place.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrSetup flags failures that abort a run before any row is processed.
	ErrSetup = errors.New("setup failed")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later outcome classification. The marker should
// be one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrLookupFailed
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Outcome identifies the report bucket a pipeline error belongs to.
type Outcome string

const (
	OutcomeSkipped      Outcome = "skipped"
	OutcomeNotFound     Outcome = "not_found"
	OutcomeLookupFailed Outcome = "lookup_failed"
	OutcomeExists       Outcome = "already_exists"
	OutcomeSetup        Outcome = "setup_failed"
	OutcomeFailed       Outcome = "failed"
)

// Classify maps a row error to the outcome the import report should account
// it under. Unknown errors count as plain failures so a bug in one row can
// never halt the batch.
func Classify(err error) Outcome {
	switch {
	case errors.Is(err, ErrSkippedRow):
		return OutcomeSkipped
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrLookupFailed):
		return OutcomeLookupFailed
	case errors.Is(err, ErrAlreadyExists):
		return OutcomeExists
	case errors.Is(err, ErrSetup):
		return OutcomeSetup
	default:
		return OutcomeFailed
	}
}

// IsFatal reports whether the error must abort the whole run instead of the
// current row.
func IsFatal(err error) bool {
	return errors.Is(err, ErrSetup)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
