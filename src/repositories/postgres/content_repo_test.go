package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const categoryID = "0d3c6f1e-8a51-4c1b-9b7e-3f0c2a9d4e21"

func TestCategoryRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewCategoryRepo(mock)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, kind, name, created_at FROM categories WHERE kind = \$1 ORDER BY name`).
		WithArgs("food").
		WillReturnRows(mock.NewRows(categoryColumns).
			AddRow(categoryID, "food", "almuerzos", now))

	categories, err := repo.List(context.Background(), models.CategoryKindFood)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "almuerzos", categories[0].Name)
	assert.Equal(t, models.CategoryKindFood, categories[0].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepo_Create(t *testing.T) {
	t.Run("Should return the generated row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewCategoryRepo(mock)
		now := time.Now()

		mock.ExpectQuery(`INSERT INTO categories \(kind,name\) VALUES \(\$1,\$2\) RETURNING id, kind, name, created_at`).
			WithArgs("product", "laptops").
			WillReturnRows(mock.NewRows(categoryColumns).AddRow(categoryID, "product", "laptops", now))

		category := &models.Category{Kind: models.CategoryKindProduct, Name: "laptops"}
		require.NoError(t, repo.Create(context.Background(), category))
		assert.Equal(t, categoryID, category.ID)
		assert.Equal(t, now, category.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should map a reused name to ErrDuplicate", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewCategoryRepo(mock)

		mock.ExpectQuery("INSERT INTO categories").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "categories_kind_name_key"})

		err = repo.Create(context.Background(), &models.Category{Kind: models.CategoryKindProduct, Name: "Laptops"})
		assert.ErrorIs(t, err, repositories.ErrDuplicate)
		assert.NotErrorIs(t, err, repositories.ErrDuplicateDocument)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryRepo_RenameAndDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewCategoryRepo(mock)

	mock.ExpectQuery(`UPDATE categories SET name = \$1 WHERE id = \$2 AND kind = \$3 RETURNING`).
		WithArgs("bebidas", categoryID, "food").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1 AND kind = \$2`).
		WithArgs(categoryID, "food").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	_, err = repo.Rename(context.Background(), models.CategoryKindFood, categoryID, "bebidas")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	deleted, err := repo.Delete(context.Background(), models.CategoryKindFood, categoryID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSiteSettingRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewSiteSettingRepo(mock)
	saved := time.Now()
	value := map[string]any{"siteName": "FLABEF"}

	mock.ExpectQuery(`INSERT INTO site_settings \(key,value,updated_at\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(key\) DO UPDATE SET value = EXCLUDED.value`).
		WithArgs("branding", value, pgxmock.AnyArg()).
		WillReturnRows(mock.NewRows([]string{"updated_at"}).AddRow(saved))

	setting := &models.SiteSetting{Key: "branding", Value: value}
	require.NoError(t, repo.Upsert(context.Background(), setting))
	assert.Equal(t, saved, setting.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSiteSettingRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewSiteSettingRepo(mock)

	mock.ExpectQuery(`SELECT key, value, updated_at FROM site_settings WHERE key = \$1`).
		WithArgs("it_hero").
		WillReturnRows(mock.NewRows(siteSettingColumns).
			AddRow("it_hero", map[string]any{"title": "Soporte"}, time.Now()))
	mock.ExpectQuery(`SELECT key, value, updated_at FROM site_settings WHERE key = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.Get(context.Background(), "it_hero")
	require.NoError(t, err)
	assert.Equal(t, "Soporte", got.Value["title"])

	_, err = repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFooterRepo_UpsertAndList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewFooterRepo(mock)
	links := map[string]string{"whatsapp": "https://wa.me/51925330577"}
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO footers (.+) ON CONFLICT \(section\) DO UPDATE SET`).
		WithArgs("food", "FLABEF Food Service", "", "", "", "food@flabef.com", links, pgxmock.AnyArg()).
		WillReturnRows(mock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectQuery(`SELECT (.+) FROM footers ORDER BY section`).
		WillReturnRows(mock.NewRows(footerColumns).
			AddRow("food", "FLABEF Food Service", "", "", "", "food@flabef.com", links, now))

	footer := &models.Footer{Section: models.FooterFood, Title: "FLABEF Food Service", Email: "food@flabef.com", SocialLinks: links}
	require.NoError(t, repo.Upsert(context.Background(), footer))
	assert.Equal(t, now, footer.UpdatedAt)

	footers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, footers, 1)
	assert.Equal(t, models.FooterFood, footers[0].Section)
	assert.Equal(t, links, footers[0].SocialLinks)
	assert.NoError(t, mock.ExpectationsWereMet())
}
