package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/player-stats-etl/internal/domain/playerstats"
	idgen "github.com/riskibarqy/player-stats-etl/internal/platform/id"
	"github.com/riskibarqy/player-stats-etl/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type ETLOptions struct {
	// RequestDelay pauses between consecutive squad page requests.
	RequestDelay time.Duration
	Logger       *logging.Logger
	IDGenerator  idgen.Generator
}

// ETLService runs extract, transform and load strictly in sequence. Each stage
// materializes its whole output before the next one starts.
type ETLService struct {
	source       playerstats.Source
	repo         playerstats.Repository
	teams        []playerstats.TeamRef
	requestDelay time.Duration
	logger       *logging.Logger
	idGen        idgen.Generator
	now          func() time.Time
}

type RunSummary struct {
	RunID                string
	Teams                int
	Extracted            int
	Loaded               int
	FlaggedNationalities int
	Duration             time.Duration
}

func NewETLService(
	source playerstats.Source,
	repo playerstats.Repository,
	teams []playerstats.TeamRef,
	opts ETLOptions,
) *ETLService {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	idGen := opts.IDGenerator
	if idGen == nil {
		idGen = idgen.NewRunGenerator()
	}

	return &ETLService{
		source:       source,
		repo:         repo,
		teams:        append([]playerstats.TeamRef(nil), teams...),
		requestDelay: opts.RequestDelay,
		logger:       logger,
		idGen:        idGen,
		now:          time.Now,
	}
}

func (s *ETLService) Teams() []playerstats.TeamRef {
	return append([]playerstats.TeamRef(nil), s.teams...)
}

// Extract fetches every team page in order. The first failure aborts the whole
// extraction; records gathered for earlier teams are discarded.
func (s *ETLService) Extract(ctx context.Context) ([]playerstats.RawRecord, error) {
	return s.extract(ctx, s.logger)
}

func (s *ETLService) extract(ctx context.Context, logger *logging.Logger) ([]playerstats.RawRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ETLService.Extract", attribute.Int("teams", len(s.teams)))
	defer span.End()

	if err := validateTeams(s.teams); err != nil {
		return nil, err
	}

	logger = logger.Named("extract")
	out := make([]playerstats.RawRecord, 0, len(s.teams)*32)
	for idx, team := range s.teams {
		if idx > 0 && s.requestDelay > 0 {
			if err := waitDelay(ctx, s.requestDelay); err != nil {
				return nil, fmt.Errorf("wait before team=%s: %w", team.Name, err)
			}
		}

		logger.InfoContext(ctx, "scraping squad page", "team", team.Name, "url", team.URL)
		records, err := s.source.FetchSquad(ctx, team)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "extract failed")
			return nil, fmt.Errorf("extract team=%s: %w", team.Name, err)
		}
		logger.InfoContext(ctx, "squad page extracted", "team", team.Name, "players", len(records))
		out = append(out, records...)
	}

	return out, nil
}

// Transform normalizes raw records one to one. Present nationalities that do not end
// in a three letter code are kept as extracted and counted in the second return value.
func (s *ETLService) Transform(ctx context.Context, raws []playerstats.RawRecord) ([]playerstats.Record, int) {
	return s.transform(ctx, s.logger, raws)
}

func (s *ETLService) transform(ctx context.Context, logger *logging.Logger, raws []playerstats.RawRecord) ([]playerstats.Record, int) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ETLService.Transform", attribute.Int("records", len(raws)))
	defer span.End()

	logger = logger.Named("transform")
	flagged := 0
	out := make([]playerstats.Record, 0, len(raws))
	for _, raw := range raws {
		record := playerstats.Normalize(raw)
		if !nationalityLooksValid(raw[playerstats.KeyNationality]) {
			flagged++
			logger.WarnContext(ctx, "unexpected nationality format",
				"team", record.Team,
				"player", record.PlayerName,
				"raw", raw[playerstats.KeyNationality],
				"normalized", record.Nationality,
			)
		}
		out = append(out, record)
	}

	return out, flagged
}

func (s *ETLService) Load(ctx context.Context, records []playerstats.Record) error {
	return s.load(ctx, s.logger, records)
}

func (s *ETLService) load(ctx context.Context, logger *logging.Logger, records []playerstats.Record) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ETLService.Load", attribute.Int("records", len(records)))
	defer span.End()

	if err := s.repo.EnsureSchema(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ensure schema failed")
		return fmt.Errorf("ensure player_data schema: %w", err)
	}
	if err := s.repo.InsertMany(ctx, records); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return fmt.Errorf("insert player data: %w", err)
	}

	logger.Named("load").InfoContext(ctx, "player data loaded", "rows", len(records))
	return nil
}

func (s *ETLService) Run(ctx context.Context) (RunSummary, error) {
	runID, err := s.idGen.NewID()
	if err != nil {
		return RunSummary{}, fmt.Errorf("generate run id: %w", err)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.ETLService.Run", attribute.String("run_id", runID))
	defer span.End()

	logger := s.logger.With("run_id", runID)
	startedAt := s.now()
	summary := RunSummary{RunID: runID, Teams: len(s.teams)}
	logger.InfoContext(ctx, "etl run started", "teams", summary.Teams)

	raws, err := s.extract(ctx, logger)
	if err != nil {
		return summary, err
	}
	summary.Extracted = len(raws)

	records, flagged := s.transform(ctx, logger, raws)
	summary.FlaggedNationalities = flagged

	if err := s.load(ctx, logger, records); err != nil {
		return summary, err
	}
	summary.Loaded = len(records)
	summary.Duration = s.now().Sub(startedAt)

	logger.InfoContext(ctx, "etl run finished",
		"teams", summary.Teams,
		"extracted", summary.Extracted,
		"loaded", summary.Loaded,
		"flagged_nationalities", summary.FlaggedNationalities,
		"duration", summary.Duration,
	)
	return summary, nil
}

func validateTeams(teams []playerstats.TeamRef) error {
	if len(teams) == 0 {
		return fmt.Errorf("%w: team list is empty", ErrInvalidInput)
	}
	for idx, team := range teams {
		if strings.TrimSpace(team.Name) == "" || strings.TrimSpace(team.URL) == "" {
			return fmt.Errorf("%w: team %d needs a name and url", ErrInvalidInput, idx)
		}
	}
	return nil
}

func nationalityLooksValid(raw string) bool {
	if raw == "" {
		return true
	}
	_, ok := playerstats.NationalityCode(raw)
	return ok
}

func waitDelay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
