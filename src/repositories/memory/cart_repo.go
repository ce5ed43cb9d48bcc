package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// CartRepo keeps cart lines in memory, keyed by item id
type CartRepo struct {
	rows *table[models.CartItem]
}

// NewCartRepo creates an empty in-memory cart repository
func NewCartRepo() *CartRepo {
	return &CartRepo{rows: newTable[models.CartItem]()}
}

func byCartCreated(a, b models.CartItem) bool {
	return a.CreatedAt.Before(b.CreatedAt)
}

func (r *CartRepo) List(_ context.Context, cartID string) ([]models.CartItem, error) {
	return r.rows.filter(func(i models.CartItem) bool { return i.CartID == cartID }, byCartCreated), nil
}

func (r *CartRepo) Get(_ context.Context, cartID, id string) (*models.CartItem, error) {
	item, ok := r.rows.get(id)
	if !ok || item.CartID != cartID {
		return nil, repositories.ErrNotFound
	}
	return &item, nil
}

func (r *CartRepo) Add(_ context.Context, item *models.CartItem) error {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()
	r.rows.put(item.ID, *item)
	return nil
}

func (r *CartRepo) UpdateQuantity(_ context.Context, cartID, id string, quantity int) (*models.CartItem, error) {
	r.rows.mu.Lock()
	defer r.rows.mu.Unlock()
	item, ok := r.rows.rows[id]
	if !ok || item.CartID != cartID {
		return nil, repositories.ErrNotFound
	}
	item.Quantity = quantity
	r.rows.rows[id] = item
	return &item, nil
}

func (r *CartRepo) Remove(_ context.Context, cartID, id string) (bool, error) {
	r.rows.mu.Lock()
	defer r.rows.mu.Unlock()
	item, ok := r.rows.rows[id]
	if !ok || item.CartID != cartID {
		return false, nil
	}
	delete(r.rows.rows, id)
	return true, nil
}

func (r *CartRepo) Clear(_ context.Context, cartID string) error {
	r.rows.mu.Lock()
	defer r.rows.mu.Unlock()
	for id, item := range r.rows.rows {
		if item.CartID == cartID {
			delete(r.rows.rows, id)
		}
	}
	return nil
}
