package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// CartService manages cart lines; every call is scoped to one cart id
type CartService struct {
	repo repositories.CartRepository
}

// NewCartService creates a new cart service
func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (cs *CartService) List(ctx context.Context, cartID string) ([]models.CartItem, error) {
	items, err := cs.repo.List(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

func (cs *CartService) Get(ctx context.Context, cartID, id string) (*models.CartItem, error) {
	if !validID(id) {
		return nil, ErrCartItemNotFound
	}
	item, err := cs.repo.Get(ctx, cartID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}
	return item, nil
}

// Add puts a new line in the cart; quantity defaults to one
func (cs *CartService) Add(ctx context.Context, cartID string, item *models.CartItem) error {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	item.CartID = cartID
	if err := cs.repo.Add(ctx, item); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of a line; values below one are rejected untouched
func (cs *CartService) UpdateQuantity(ctx context.Context, cartID, id string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if !validID(id) {
		return nil, ErrCartItemNotFound
	}
	item, err := cs.repo.UpdateQuantity(ctx, cartID, id, quantity)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return item, nil
}

func (cs *CartService) Remove(ctx context.Context, cartID, id string) error {
	if !validID(id) {
		return ErrCartItemNotFound
	}
	removed, err := cs.repo.Remove(ctx, cartID, id)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if !removed {
		return ErrCartItemNotFound
	}
	return nil
}

func (cs *CartService) Clear(ctx context.Context, cartID string) error {
	if err := cs.repo.Clear(ctx, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
