package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/player-stats-etl/internal/config"
	"github.com/riskibarqy/player-stats-etl/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	dbPingTimeout        = 10 * time.Second
	maxTracedQueryLength = 256
)

// OpenDB opens a traced sqlx handle for the configured connection and verifies it
// answers a ping.
func OpenDB(ctx context.Context, db config.DatabaseConfig) (*sqlx.DB, error) {
	conn, err := otelsqlx.Open("postgres", db.DSN(),
		otelsql.WithDBName(db.Name()),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database conn_id=%s: %w", db.ConnID, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: ping database conn_id=%s: %w", usecase.ErrDependencyUnavailable, db.ConnID, err)
	}

	return conn, nil
}

// formatDBQueryForTrace collapses whitespace so the generated CREATE TABLE and the
// per-row INSERT into player_data show up as one line in span attributes.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
