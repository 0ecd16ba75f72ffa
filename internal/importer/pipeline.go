package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"movielog/internal/catalog"
	"movielog/internal/config"
	"movielog/internal/logging"
	"movielog/internal/services"
)

// Sleeper pauses between pipeline steps. Tests inject a recorder so the
// throttle can be asserted without real waiting.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext waits for the duration or until the context is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Pipeline drives a bulk import: read rows, normalize, resolve against TMDB,
// and write records, strictly one row at a time. Row failures are contained
// at the row boundary; only setup problems abort the run.
type Pipeline struct {
	cfg      *config.Config
	store    *catalog.Store
	resolver *Resolver
	logger   *slog.Logger
	sleep    Sleeper
}

// Option adjusts pipeline behavior.
type Option func(*Pipeline)

// WithSleeper replaces the inter-row throttle pause (used in tests).
func WithSleeper(sleep Sleeper) Option {
	return func(p *Pipeline) {
		if sleep != nil {
			p.sleep = sleep
		}
	}
}

// NewPipeline constructs the import pipeline.
func NewPipeline(cfg *config.Config, store *catalog.Store, resolver *Resolver, logger *slog.Logger, opts ...Option) *Pipeline {
	pipeline := &Pipeline{
		cfg:      cfg,
		store:    store,
		resolver: resolver,
		logger:   logging.NewComponentLogger(logger, "importer"),
		sleep:    SleepContext,
	}
	for _, opt := range opts {
		opt(pipeline)
	}
	return pipeline
}

// Run imports the spreadsheet at path. The returned report accounts every
// row; the error is non-nil only for setup failures or cancellation.
func (p *Pipeline) Run(ctx context.Context, path string) (*Report, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, p.logger)

	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrSetup, "importing", "ensure directories", "could not create library directories", err)
	}
	rows, err := ReadRows(path, p.cfg.Import.SkipHeader)
	if err != nil {
		return nil, services.Wrap(services.ErrSetup, "importing", "read spreadsheet", fmt.Sprintf("could not read %s", path), err)
	}

	report := &Report{RunID: runID}
	delay := p.cfg.ImportDelay()
	logger.Info("starting import",
		logging.String(logging.FieldPath, path),
		logging.Int(logging.FieldCount, len(rows)),
		logging.Duration("delay", delay))

	for i, row := range rows {
		if i > 0 && delay > 0 {
			if err := p.sleep(ctx, delay); err != nil {
				return report, err
			}
		}
		p.processRow(ctx, row, report)
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
	}

	logger.Info("import finished", logging.Args(report.attrs()...)...)
	return report, nil
}

func (p *Pipeline) processRow(ctx context.Context, row Row, report *Report) {
	ctx = services.WithRow(ctx, row.Number)
	report.Processed++

	err := p.runRow(ctx, row)
	if err == nil {
		report.Written++
		return
	}

	outcome := services.Classify(err)
	report.account(outcome)
	logger := logging.WithContext(ctx, p.logger)
	switch outcome {
	case services.OutcomeSkipped, services.OutcomeExists:
		logger.Info("row not written",
			logging.String(logging.FieldOutcome, string(outcome)),
			logging.Error(err))
	default:
		logger.Warn("row failed",
			logging.String(logging.FieldOutcome, string(outcome)),
			logging.Error(err))
	}
}

func (p *Pipeline) runRow(ctx context.Context, row Row) error {
	if row.Err != nil {
		return row.Err
	}
	entry, err := Normalize(row)
	if err != nil {
		return err
	}

	resolved, err := p.resolver.Resolve(ctx, entry)
	if err != nil {
		return err
	}

	record := resolved.Record(entry.Status, 0, "")
	ctx = services.WithRecord(ctx, catalog.Filename(resolved.Title, resolved.ReleaseDate))
	path, err := p.store.Write(record, resolved.Body(""))
	if err != nil {
		return err
	}

	logging.WithContext(ctx, p.logger).Info("record written",
		logging.String(logging.FieldTitle, resolved.Title),
		logging.String(logging.FieldPath, path))
	return nil
}
