package playerstats

import "context"

type Repository interface {
	EnsureSchema(ctx context.Context) error
	InsertMany(ctx context.Context, records []Record) error
}

// Source fetches a squad page and returns the raw records of players with appearances.
type Source interface {
	FetchSquad(ctx context.Context, team TeamRef) ([]RawRecord, error)
}
