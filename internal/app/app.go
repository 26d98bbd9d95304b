package app

import (
	"github.com/jmoiron/sqlx"

	"github.com/draftlab/nbadraft/internal/config"
	"github.com/draftlab/nbadraft/internal/infrastructure/dataset"
	"github.com/draftlab/nbadraft/internal/infrastructure/repository/sqlite"
	"github.com/draftlab/nbadraft/internal/platform/logging"
	"github.com/draftlab/nbadraft/internal/usecase"
)

// Analyzer bundles the two services the driver runs in order: ingest, then
// report.
type Analyzer struct {
	Ingest *usecase.IngestService
	Report *usecase.ReportService

	db *sqlx.DB
}

func NewAnalyzer(cfg config.Config, logger *logging.Logger) (*Analyzer, error) {
	db, err := openDatabase(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	source := dataset.NewClient(dataset.ClientConfig{
		URL:       cfg.DatasetURL,
		CachePath: cfg.CachePath,
		Timeout:   cfg.HTTPTimeout,
		Logger:    logger,
	})
	repo := sqlite.NewPlayerRepository(db)

	return &Analyzer{
		Ingest: usecase.NewIngestService(source, repo, logger),
		Report: usecase.NewReportService(repo, logger),
		db:     db,
	}, nil
}

func (a *Analyzer) Close() error {
	return a.db.Close()
}
