package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/player-stats-etl/internal/domain/playerstats"
	qb "github.com/riskibarqy/player-stats-etl/internal/platform/querybuilder"
)

// PlayerDataRepository appends normalized records to player_data. There is no
// uniqueness key: each run adds a fresh set of rows.
type PlayerDataRepository struct {
	db *sqlx.DB
}

var _ playerstats.Repository = (*PlayerDataRepository)(nil)

func NewPlayerDataRepository(db *sqlx.DB) *PlayerDataRepository {
	return &PlayerDataRepository{db: db}
}

func (r *PlayerDataRepository) EnsureSchema(ctx context.Context) error {
	query, err := qb.CreateTableFromModel(playerDataTable, playerDataRowModel{})
	if err != nil {
		return fmt.Errorf("build create player_data query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create player_data table: %w", err)
	}
	return nil
}

func (r *PlayerDataRepository) InsertMany(ctx context.Context, records []playerstats.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert player data: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for idx, record := range records {
		query, args, err := qb.InsertModel(playerDataTable, toRowModel(record), "")
		if err != nil {
			return fmt.Errorf("build insert player data query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert player data row=%d team=%s player=%s: %w", idx, record.Team, record.PlayerName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert player data tx: %w", err)
	}

	return nil
}

func toRowModel(record playerstats.Record) playerDataRowModel {
	return playerDataRowModel{
		Team:        record.Team,
		PlayerName:  nullableString(record.PlayerName),
		URL:         nullableString(record.URL),
		Nationality: record.Nationality,
		Position:    nullableString(record.Position),
		Age:         nullableString(record.Age),
		Games:       nullableGames(record.Games),
	}
}
