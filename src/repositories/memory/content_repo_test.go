package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepo_NamesUniquePerKind(t *testing.T) {
	repo := NewCategoryRepo()
	ctx := context.Background()

	laptops := &models.Category{Kind: models.CategoryKindProduct, Name: "laptops"}
	require.NoError(t, repo.Create(ctx, laptops))
	assert.NotEmpty(t, laptops.ID)

	err := repo.Create(ctx, &models.Category{Kind: models.CategoryKindProduct, Name: "Laptops"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	// the food menu has its own namespace
	require.NoError(t, repo.Create(ctx, &models.Category{Kind: models.CategoryKindFood, Name: "laptops"}))

	products, err := repo.List(ctx, models.CategoryKindProduct)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCategoryRepo_RenameAndDeleteStayInKind(t *testing.T) {
	repo := NewCategoryRepo()
	ctx := context.Background()
	snacks := &models.Category{Kind: models.CategoryKindFood, Name: "snacks"}
	require.NoError(t, repo.Create(ctx, snacks))
	require.NoError(t, repo.Create(ctx, &models.Category{Kind: models.CategoryKindFood, Name: "postres"}))

	_, err := repo.Rename(ctx, models.CategoryKindProduct, snacks.ID, "x")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.Rename(ctx, models.CategoryKindFood, snacks.ID, "POSTRES")
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	renamed, err := repo.Rename(ctx, models.CategoryKindFood, snacks.ID, "Snacks")
	require.NoError(t, err)
	assert.Equal(t, "Snacks", renamed.Name)

	deleted, err := repo.Delete(ctx, models.CategoryKindProduct, snacks.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	deleted, err = repo.Delete(ctx, models.CategoryKindFood, snacks.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.Rename(ctx, models.CategoryKindFood, uuid.NewString(), "x")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSiteSettingRepo_UpsertReplacesValue(t *testing.T) {
	repo := NewSiteSettingRepo()
	ctx := context.Background()

	value := map[string]any{"siteName": "FLABEF", "logo": "/logo.png"}
	require.NoError(t, repo.Upsert(ctx, &models.SiteSetting{Key: "branding", Value: value}))
	value["siteName"] = "changed"

	got, err := repo.Get(ctx, "branding")
	require.NoError(t, err)
	assert.Equal(t, "FLABEF", got.Value["siteName"])
	assert.False(t, got.UpdatedAt.IsZero())

	require.NoError(t, repo.Upsert(ctx, &models.SiteSetting{Key: "branding", Value: map[string]any{"siteName": "New"}}))
	got, err = repo.Get(ctx, "branding")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"siteName": "New"}, got.Value)

	settings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, settings, 1)

	_, err = repo.Get(ctx, "tech_hero")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestFooterRepo_OnePerSection(t *testing.T) {
	repo := NewFooterRepo()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Footer{Section: models.FooterFood, Title: "Food"}))
	require.NoError(t, repo.Upsert(ctx, &models.Footer{Section: models.FooterTech, Title: "Tech"}))
	require.NoError(t, repo.Upsert(ctx, &models.Footer{Section: models.FooterFood, Title: "Food v2", SocialLinks: map[string]string{"tiktok": "https://tiktok.com/@flabef"}}))

	footers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, footers, 2)
	assert.Equal(t, models.FooterFood, footers[0].Section)
	assert.Equal(t, "Food v2", footers[0].Title)

	got, err := repo.Get(ctx, models.FooterFood)
	require.NoError(t, err)
	assert.Equal(t, "https://tiktok.com/@flabef", got.SocialLinks["tiktok"])

	_, err = repo.Get(ctx, models.FooterITServices)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
