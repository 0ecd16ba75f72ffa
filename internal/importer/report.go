package importer

import (
	"movielog/internal/logging"
	"movielog/internal/services"
)

// Report accounts every row of one import run by outcome.
type Report struct {
	RunID         string
	Processed     int
	Written       int
	Skipped       int
	NotFound      int
	LookupFailed  int
	AlreadyExists int
	Failed        int
}

func (r *Report) account(outcome services.Outcome) {
	switch outcome {
	case services.OutcomeSkipped:
		r.Skipped++
	case services.OutcomeNotFound:
		r.NotFound++
	case services.OutcomeLookupFailed:
		r.LookupFailed++
	case services.OutcomeExists:
		r.AlreadyExists++
	default:
		r.Failed++
	}
}

// Problems reports how many rows ended in anything other than a write or a
// benign skip.
func (r *Report) Problems() int {
	return r.NotFound + r.LookupFailed + r.Failed
}

func (r *Report) attrs() []logging.Attr {
	return []logging.Attr{
		logging.Int("processed", r.Processed),
		logging.Int("written", r.Written),
		logging.Int("skipped", r.Skipped),
		logging.Int("not_found", r.NotFound),
		logging.Int("lookup_failed", r.LookupFailed),
		logging.Int("already_exists", r.AlreadyExists),
		logging.Int("failed", r.Failed),
	}
}
