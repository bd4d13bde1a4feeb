package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/player-stats-etl/internal/domain/playerstats"
)

// PlayerDataRepository keeps appended records in process memory.
type PlayerDataRepository struct {
	mu            sync.RWMutex
	schemaEnsured bool
	records       []playerstats.Record
}

var _ playerstats.Repository = (*PlayerDataRepository)(nil)

func NewPlayerDataRepository() *PlayerDataRepository {
	return &PlayerDataRepository{}
}

func (r *PlayerDataRepository) EnsureSchema(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.schemaEnsured = true
	return nil
}

func (r *PlayerDataRepository) InsertMany(ctx context.Context, records []playerstats.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, records...)
	return nil
}

func (r *PlayerDataRepository) SchemaEnsured() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.schemaEnsured
}

func (r *PlayerDataRepository) Records() []playerstats.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.Record, 0, len(r.records))
	out = append(out, r.records...)
	return out
}
