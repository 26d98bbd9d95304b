package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/draftlab/nbadraft/internal/domain/draft"
	"github.com/draftlab/nbadraft/internal/platform/logging"
)

// DatasetSource produces the draft record sequence, whatever the raw text
// came from (cache file or network).
type DatasetSource interface {
	FetchRaw(ctx context.Context) (string, error)
	Parse(raw string) (*draft.Records, error)
}

// IngestService runs the load half of the pipeline: fetch, parse, recreate
// the table and bulk-insert every record. Strictly sequential; the first
// failure aborts the run.
type IngestService struct {
	source DatasetSource
	repo   draft.Repository
	logger *logging.Logger
}

func NewIngestService(source DatasetSource, repo draft.Repository, logger *logging.Logger) *IngestService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestService{source: source, repo: repo, logger: logger}
}

// Ingest returns the number of rows inserted.
func (s *IngestService) Ingest(ctx context.Context) (int, error) {
	started := time.Now()

	raw, err := s.source.FetchRaw(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	s.logger.Info("dataset fetched", "bytes", len(raw))

	records, err := s.source.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if err := s.repo.Reset(ctx); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	inserted, err := s.repo.BulkInsert(ctx, records)
	if err != nil {
		// A ragged or invalid row surfaces here: the sequence is lazy, so
		// parse failures show up while the insert consumes it.
		if records.Err() != nil {
			return 0, fmt.Errorf("%w: %v", ErrParse, records.Err())
		}
		return 0, fmt.Errorf("%w: %v", ErrInsert, err)
	}

	s.logger.Info("dataset ingested",
		"rows", inserted,
		"elapsed", time.Since(started),
	)
	return inserted, nil
}
