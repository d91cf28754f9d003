package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"minifeed/internal/db"
	"minifeed/internal/feed"
)

// PostgresStore keeps the snapshot as a single jsonb row. It goes through
// db.Querier so pgxmock pools can stand in during tests.
type PostgresStore struct {
	db db.Querier
}

func NewPostgresStore(q db.Querier) *PostgresStore {
	return &PostgresStore{db: q}
}

// Migrate creates the snapshot table.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			id smallint PRIMARY KEY,
			data jsonb NOT NULL
		)
	`)
	return err
}

func (s *PostgresStore) Load(ctx context.Context) (*feed.Snapshot, error) {
	var raw []byte
	err := s.db.QueryRow(ctx, `SELECT data FROM snapshots WHERE id=1`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		seed := Seed()
		if err := s.Save(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	if err != nil {
		return nil, err
	}

	var snap feed.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *PostgresStore) Save(ctx context.Context, snap *feed.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO snapshots (id, data) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data
	`, raw)
	return err
}
