package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories/memory"
	"github.com/khabaroff/flabef-storefront/src/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContent() *ContentService {
	return NewContentService(memory.NewCategoryRepo(), memory.NewSiteSettingRepo(), memory.NewFooterRepo())
}

func TestContentService_Categories(t *testing.T) {
	svc := newTestContent()
	ctx := context.Background()

	laptops, err := svc.CreateCategory(ctx, models.CategoryKindProduct, "  laptops ")
	require.NoError(t, err)
	assert.Equal(t, "laptops", laptops.Name)

	_, err = svc.CreateCategory(ctx, models.CategoryKindProduct, "LAPTOPS")
	assert.ErrorIs(t, err, ErrCategoryTaken)
	assert.Equal(t, KindConflict, KindOf(err))

	for _, name := range []string{"", "   ", strings.Repeat("c", MaxCategoryName+1)} {
		_, err = svc.CreateCategory(ctx, models.CategoryKindFood, name)
		assert.ErrorIs(t, err, ErrInvalidCategory)
	}
	_, err = svc.CreateCategory(ctx, models.CategoryKind("drinks"), "cafe")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	renamed, err := svc.RenameCategory(ctx, models.CategoryKindProduct, laptops.ID, "Laptops")
	require.NoError(t, err)
	assert.Equal(t, "Laptops", renamed.Name)

	_, err = svc.RenameCategory(ctx, models.CategoryKindProduct, "not-a-uuid", "x")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	_, err = svc.RenameCategory(ctx, models.CategoryKindFood, laptops.ID, "x")
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	require.NoError(t, svc.DeleteCategory(ctx, models.CategoryKindProduct, laptops.ID))
	assert.ErrorIs(t, svc.DeleteCategory(ctx, models.CategoryKindProduct, laptops.ID), ErrCategoryNotFound)
	assert.ErrorIs(t, svc.DeleteCategory(ctx, models.CategoryKindProduct, uuid.NewString()), ErrCategoryNotFound)
}

func TestContentService_Settings(t *testing.T) {
	svc := newTestContent()
	ctx := context.Background()

	_, err := svc.GetSetting(ctx, "branding")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	saved, err := svc.UpdateSetting(ctx, "branding", map[string]any{"siteName": "FLABEF"})
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.IsZero())

	got, err := svc.GetSetting(ctx, "branding")
	require.NoError(t, err)
	assert.Equal(t, "FLABEF", got.Value["siteName"])

	for _, key := range []string{"", "Branding", "tech-hero", strings.Repeat("k", 65)} {
		_, err = svc.UpdateSetting(ctx, key, map[string]any{})
		assert.ErrorIs(t, err, ErrInvalidSettingKey, key)
	}
	_, err = svc.UpdateSetting(ctx, "branding", nil)
	assert.ErrorIs(t, err, ErrInvalidSetting)

	all, err := svc.ListSettings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestContentService_Footers(t *testing.T) {
	svc := newTestContent()
	ctx := context.Background()

	_, err := svc.UpdateFooter(ctx, models.FooterSection("blog"), FooterInput{Title: "Blog"})
	assert.ErrorIs(t, err, ErrInvalidFooterSection)
	_, err = svc.GetFooter(ctx, models.FooterSection("blog"))
	assert.ErrorIs(t, err, ErrFooterNotFound)
	_, err = svc.GetFooter(ctx, models.FooterFood)
	assert.ErrorIs(t, err, ErrFooterNotFound)

	footer, err := svc.UpdateFooter(ctx, models.FooterFood, FooterInput{Title: " FLABEF Food ", Email: "food@flabef.com"})
	require.NoError(t, err)
	assert.Equal(t, "FLABEF Food", footer.Title)
	assert.NotNil(t, footer.SocialLinks)

	got, err := svc.GetFooter(ctx, models.FooterFood)
	require.NoError(t, err)
	assert.Equal(t, "food@flabef.com", got.Email)
}

func TestContentService_SeedDefaults(t *testing.T) {
	defaults, err := templates.LoadStorefrontDefaults()
	require.NoError(t, err)
	svc := newTestContent()
	ctx := context.Background()

	// an edited store is left alone on the next start
	_, err = svc.CreateCategory(ctx, models.CategoryKindFood, "cenas")
	require.NoError(t, err)

	require.NoError(t, svc.SeedDefaults(ctx, defaults))

	products, err := svc.ListCategories(ctx, models.CategoryKindProduct)
	require.NoError(t, err)
	assert.Len(t, products, len(defaults.ProductCategories))
	food, err := svc.ListCategories(ctx, models.CategoryKindFood)
	require.NoError(t, err)
	require.Len(t, food, 1)
	assert.Equal(t, "cenas", food[0].Name)

	settings, err := svc.ListSettings(ctx)
	require.NoError(t, err)
	assert.Len(t, settings, len(defaults.Settings))
	footers, err := svc.ListFooters(ctx)
	require.NoError(t, err)
	assert.Len(t, footers, 3)

	_, err = svc.UpdateSetting(ctx, "branding", map[string]any{"siteName": "Edited"})
	require.NoError(t, err)
	require.NoError(t, svc.SeedDefaults(ctx, defaults))
	branding, err := svc.GetSetting(ctx, "branding")
	require.NoError(t, err)
	assert.Equal(t, "Edited", branding.Value["siteName"])
}
