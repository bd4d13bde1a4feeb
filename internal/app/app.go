package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/player-stats-etl/external/fbref"
	"github.com/riskibarqy/player-stats-etl/internal/config"
	"github.com/riskibarqy/player-stats-etl/internal/domain/playerstats"
	"github.com/riskibarqy/player-stats-etl/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/player-stats-etl/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/player-stats-etl/internal/platform/logging"
	"github.com/riskibarqy/player-stats-etl/internal/usecase"
)

type PipelineOptions struct {
	// DryRun keeps loaded records in memory instead of writing to Postgres.
	DryRun bool
}

// Pipeline bundles the ETL service with the resources it owns.
type Pipeline struct {
	Service *usecase.ETLService
	// Sink is set for dry runs and holds every record the run loaded.
	Sink *memory.PlayerDataRepository

	db *sqlx.DB
}

func NewPipeline(ctx context.Context, cfg config.Config, logger *logging.Logger, opts PipelineOptions) (*Pipeline, error) {
	if logger == nil {
		logger = logging.Default()
	}

	source := NewSource(cfg, logger)

	var (
		repo     playerstats.Repository
		pipeline = &Pipeline{}
	)
	if opts.DryRun {
		pipeline.Sink = memory.NewPlayerDataRepository()
		repo = pipeline.Sink
	} else {
		db, err := OpenDB(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		pipeline.db = db
		repo = postgres.NewPlayerDataRepository(db)
	}

	pipeline.Service = usecase.NewETLService(source, repo, cfg.Teams, usecase.ETLOptions{
		RequestDelay: cfg.FBRefRequestDelay,
		Logger:       logger.Named("etl"),
	})
	return pipeline, nil
}

func NewSource(cfg config.Config, logger *logging.Logger) *fbref.Client {
	return fbref.NewClient(fbref.ClientConfig{
		BaseURL:   cfg.FBRefBaseURL,
		Timeout:   cfg.FBRefTimeout,
		UserAgent: cfg.FBRefUserAgent,
		Logger:    logger.Named("fbref"),
	})
}

func (p *Pipeline) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}
