package storage

import (
	"context"

	"marketplace/storefront/internal/domain"
)

// Store persists the whole cart under a single durable key. Load returns a
// nil slice when nothing has been stored yet and an error when the payload
// cannot be read or decoded; the cart store recovers from either by starting
// empty.
type Store interface {
	Load(ctx context.Context) ([]domain.CartLine, error)
	Save(ctx context.Context, lines []domain.CartLine) error
}
