package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartLine(name string) *models.CartItem {
	return &models.CartItem{
		ProductID:    uuid.NewString(),
		ProductName:  name,
		ProductPrice: decimal.RequireFromString("19.90"),
	}
}

func TestCartService_AddAndList(t *testing.T) {
	svc := NewCartService(memory.NewCartRepo())
	ctx := context.Background()

	line := newCartLine("Mouse")
	require.NoError(t, svc.Add(ctx, "cart-a", line))
	assert.Equal(t, 1, line.Quantity)
	assert.NotEmpty(t, line.ID)

	// adding the same product again creates a separate line
	require.NoError(t, svc.Add(ctx, "cart-a", &models.CartItem{ProductID: line.ProductID, ProductName: "Mouse", Quantity: 2}))

	items, err := svc.List(ctx, "cart-a")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	other, err := svc.List(ctx, "cart-b")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc := NewCartService(memory.NewCartRepo())
	ctx := context.Background()

	line := newCartLine("Keyboard")
	require.NoError(t, svc.Add(ctx, "cart-a", line))

	for _, q := range []int{0, -3} {
		_, err := svc.UpdateQuantity(ctx, "cart-a", line.ID, q)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}

	got, err := svc.Get(ctx, "cart-a", line.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity, "rejected updates leave the line untouched")

	updated, err := svc.UpdateQuantity(ctx, "cart-a", line.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	_, err = svc.UpdateQuantity(ctx, "cart-b", line.ID, 4)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	svc := NewCartService(memory.NewCartRepo())
	ctx := context.Background()

	a, b := newCartLine("A"), newCartLine("B")
	require.NoError(t, svc.Add(ctx, "cart-a", a))
	require.NoError(t, svc.Add(ctx, "cart-a", b))

	require.NoError(t, svc.Remove(ctx, "cart-a", a.ID))
	assert.ErrorIs(t, svc.Remove(ctx, "cart-a", a.ID), ErrCartItemNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, "cart-a", "nope"), ErrCartItemNotFound)

	require.NoError(t, svc.Clear(ctx, "cart-a"))
	items, err := svc.List(ctx, "cart-a")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_AddRejectsNegativeQuantity(t *testing.T) {
	svc := NewCartService(memory.NewCartRepo())
	line := newCartLine("X")
	line.Quantity = -1
	assert.ErrorIs(t, svc.Add(context.Background(), "cart-a", line), ErrInvalidQuantity)
}
