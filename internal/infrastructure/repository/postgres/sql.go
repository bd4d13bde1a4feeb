package postgres

import "github.com/riskibarqy/player-stats-etl/internal/domain/playerstats"

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	v := value
	return &v
}

// nullableGames stores all-digit values as INT and anything else as NULL.
func nullableGames(value string) *int64 {
	n, ok := playerstats.ParseGames(value)
	if !ok {
		return nil
	}
	return &n
}
