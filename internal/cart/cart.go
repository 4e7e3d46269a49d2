package cart

import (
	"context"

	"marketplace/storefront/internal/catalog"
	"marketplace/storefront/internal/domain"
	"marketplace/storefront/internal/storage"

	log "github.com/sirupsen/logrus"
)

// Store owns the cart line items. Lines are insertion-ordered with at most
// one per product. Every mutation persists the whole cart and then notifies
// subscribers synchronously, so readers always observe the post-mutation
// state. Not safe for concurrent use: the storefront runs a single event
// loop.
type Store struct {
	catalog     *catalog.Catalog
	storage     storage.Store
	lines       []domain.CartLine
	subscribers []func()
}

// New builds a cart store, reloading any previously persisted cart. A
// missing, malformed, or unreadable payload yields an empty cart; loading
// never fails. Persisted lines for products no longer in the catalog are
// dropped.
func New(ctx context.Context, cat *catalog.Catalog, store storage.Store) *Store {
	s := &Store{
		catalog: cat,
		storage: store,
	}

	lines, err := store.Load(ctx)
	if err != nil {
		log.Warnf("Failed to load persisted cart, starting empty: %v", err)
		return s
	}
	for _, line := range lines {
		if line.Qty <= 0 {
			continue
		}
		if _, ok := cat.Get(line.ProductID); !ok {
			log.Warnf("Dropping persisted cart line for unknown product %d", line.ProductID)
			continue
		}
		if s.find(line.ProductID) != nil {
			continue
		}
		s.lines = append(s.lines, line)
	}
	return s
}

// Subscribe registers a callback invoked after every cart mutation, once the
// new state has been persisted.
func (s *Store) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

// Add merges qty into the product's line, clamped to available stock. A
// non-positive qty counts as one. Unknown product ids are ignored without
// touching any state.
func (s *Store) Add(ctx context.Context, productID, qty int) {
	product, ok := s.catalog.Get(productID)
	if !ok {
		log.Debugf("Ignoring add for unknown product %d", productID)
		return
	}
	if qty < 1 {
		qty = 1
	}

	if line := s.find(productID); line != nil {
		line.Qty = min(line.Qty+qty, product.Stock)
	} else if clamped := min(qty, product.Stock); clamped > 0 {
		s.lines = append(s.lines, domain.CartLine{ProductID: productID, Qty: clamped})
	}
	s.commit(ctx)
}

// SetQty sets a line's quantity directly. Zero or negative removes the line.
// Callers clamp to stock before calling, mirroring the clamp on the add path.
func (s *Store) SetQty(ctx context.Context, productID, qty int) {
	if qty <= 0 {
		s.drop(productID)
	} else if line := s.find(productID); line != nil {
		line.Qty = qty
	}
	s.commit(ctx)
}

// Remove deletes the product's line. Removing an absent line is a no-op, not
// an error.
func (s *Store) Remove(ctx context.Context, productID int) {
	s.drop(productID)
	s.commit(ctx)
}

// Increment raises a line's quantity by one, clamped to available stock.
func (s *Store) Increment(ctx context.Context, productID int) {
	line := s.find(productID)
	product, ok := s.catalog.Get(productID)
	if line == nil || !ok {
		return
	}
	s.SetQty(ctx, productID, min(line.Qty+1, product.Stock))
}

// Decrement lowers a line's quantity by one, removing the line at zero.
func (s *Store) Decrement(ctx context.Context, productID int) {
	if line := s.find(productID); line != nil {
		s.SetQty(ctx, productID, line.Qty-1)
	}
}

// TotalCount returns the summed quantity across all lines, for the header
// badge.
func (s *Store) TotalCount() int {
	total := 0
	for _, line := range s.lines {
		total += line.Qty
	}
	return total
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) find(productID int) *domain.CartLine {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return &s.lines[i]
		}
	}
	return nil
}

func (s *Store) drop(productID int) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// commit persists the full cart and dispatches subscribers. A failed save is
// logged and otherwise invisible: the in-memory state keeps the intended
// value and the next successful save catches up.
func (s *Store) commit(ctx context.Context) {
	if err := s.storage.Save(ctx, s.lines); err != nil {
		log.Warnf("Failed to persist cart: %v", err)
	}
	for _, fn := range s.subscribers {
		fn()
	}
}
