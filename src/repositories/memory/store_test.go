package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepo_EmailUniqueCaseInsensitive(t *testing.T) {
	repo := NewAdminRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.AdminUser{ID: uuid.New(), Email: "admin@x.com", IsActive: true}))
	err := repo.Create(ctx, &models.AdminUser{ID: uuid.New(), Email: "ADMIN@x.com"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	got, err := repo.GetByEmail(ctx, "Admin@X.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@x.com", got.Email)
}

func TestAdminRepo_DocumentNumberUnique(t *testing.T) {
	repo := NewAdminRepo()
	ctx := context.Background()
	first := &models.AdminUser{ID: uuid.New(), Email: "a@x.com", DocumentNumber: "111", IsActive: true}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &models.AdminUser{ID: uuid.New(), Email: "b@x.com", DocumentNumber: "111"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateDocument)

	// accounts without a document never collide
	require.NoError(t, repo.Create(ctx, &models.AdminUser{ID: uuid.New(), Email: "c@x.com"}))
	other := &models.AdminUser{ID: uuid.New(), Email: "d@x.com"}
	require.NoError(t, repo.Create(ctx, other))

	doc := "111"
	_, err = repo.Update(ctx, other.ID, models.AdminPatch{DocumentNumber: &doc})
	assert.ErrorIs(t, err, repositories.ErrDuplicateDocument)

	// rewriting an account's own document is not a collision
	_, err = repo.Update(ctx, first.ID, models.AdminPatch{DocumentNumber: &doc})
	assert.NoError(t, err)
}

func TestAdminRepo_GetByDocumentNumberSkipsInactive(t *testing.T) {
	repo := NewAdminRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.AdminUser{ID: uuid.New(), Email: "a@x.com", DocumentNumber: "111", IsActive: false}))

	_, err := repo.GetByDocumentNumber(ctx, "111")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestResetTokenRepo_MarkUsedOnlyOnce(t *testing.T) {
	repo := NewResetTokenRepo()
	ctx := context.Background()
	token := &models.ResetToken{ID: uuid.New(), AdminID: uuid.New(), Code: "012345", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, token))

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.MarkUsed(ctx, token.ID, time.Now())
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	_, err := repo.FindActiveByCode(ctx, "012345")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestResetTokenRepo_CodeUniqueWhileUnused(t *testing.T) {
	repo := NewResetTokenRepo()
	ctx := context.Background()
	first := &models.ResetToken{ID: uuid.New(), Code: "777777", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &models.ResetToken{ID: uuid.New(), Code: "777777"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	_, err = repo.MarkUsed(ctx, first.ID, time.Now())
	require.NoError(t, err)
	assert.NoError(t, repo.Create(ctx, &models.ResetToken{ID: uuid.New(), Code: "777777"}))
}

func TestResetTokenRepo_DeleteExpired(t *testing.T) {
	repo := NewResetTokenRepo()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, repo.Create(ctx, &models.ResetToken{ID: uuid.New(), Code: "000001", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Create(ctx, &models.ResetToken{ID: uuid.New(), Code: "000002", ExpiresAt: now.Add(time.Minute)}))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.FindActiveByCode(ctx, "000002")
	assert.NoError(t, err)
}

func TestCartRepo_IsolatesCarts(t *testing.T) {
	repo := NewCartRepo()
	ctx := context.Background()
	item := &models.CartItem{CartID: "a", ProductID: "p1", ProductName: "Polo", ProductPrice: decimal.NewFromInt(10), Quantity: 1}
	require.NoError(t, repo.Add(ctx, item))

	_, err := repo.Get(ctx, "b", item.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.UpdateQuantity(ctx, "b", item.ID, 5)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, repo.Clear(ctx, "b"))
	items, err := repo.List(ctx, "a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	removed, err := repo.Remove(ctx, "a", item.ID)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestProductRepo_ListByCategory(t *testing.T) {
	repo := NewProductRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "Zapatilla", Category: "zapatos"}))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "Laptop", Category: "laptops"}))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "Botin", Category: "zapatos"}))

	shoes, err := repo.List(ctx, "zapatos")
	require.NoError(t, err)
	require.Len(t, shoes, 2)
	assert.Equal(t, "Botin", shoes[0].Name)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
