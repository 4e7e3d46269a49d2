package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"marketplace/storefront/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStore struct {
	db  *pgxpool.Pool
	key string
}

// NewPostgresStore persists the cart as a JSON document in the carts table,
// one row per storage key.
func NewPostgresStore(db *pgxpool.Pool, key string) Store {
	return &postgresStore{
		db:  db,
		key: key,
	}
}

func (s *postgresStore) Load(ctx context.Context) ([]domain.CartLine, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT data FROM carts WHERE key = $1`, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // nothing stored yet
		}
		return nil, fmt.Errorf("failed to load cart %s: %w", s.key, err)
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart %s: %w", s.key, err)
	}
	return lines, nil
}

func (s *postgresStore) Save(ctx context.Context, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	query := `
	INSERT INTO carts (key, data)
	VALUES ($1, $2)
	ON CONFLICT (key)
	DO UPDATE SET data = $2`
	if _, err := s.db.Exec(ctx, query, s.key, data); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", s.key, err)
	}
	return nil
}
