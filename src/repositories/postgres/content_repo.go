package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/khabaroff/flabef-storefront/src/models"
)

var (
	categoryColumns    = []string{"id", "kind", "name", "created_at"}
	siteSettingColumns = []string{"key", "value", "updated_at"}
	footerColumns      = []string{"section", "title", "description", "address", "phone", "email", "social_links", "updated_at"}
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// CategoryRepo persists product and food categories in one table keyed by kind
type CategoryRepo struct {
	db DB
}

// NewCategoryRepo creates a new Postgres category repository
func NewCategoryRepo(db DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) List(ctx context.Context, kind models.CategoryKind) ([]models.Category, error) {
	sql, args, err := psql.Select(categoryColumns...).
		From("categories").
		Where(squirrel.Eq{"kind": string(kind)}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}
	categories := []models.Category{}
	if err := pgxscan.Select(ctx, r.db, &categories, sql, args...); err != nil {
		return nil, wrapErr("list categories", err)
	}
	return categories, nil
}

func (r *CategoryRepo) Create(ctx context.Context, category *models.Category) error {
	sql, args, err := psql.Insert("categories").
		Columns("kind", "name").
		Values(string(category.Kind), category.Name).
		Suffix("RETURNING " + joinColumns(categoryColumns)).
		ToSql()
	if err != nil {
		return err
	}
	if err := pgxscan.Get(ctx, r.db, category, sql, args...); err != nil {
		return wrapErr("insert category", err)
	}
	return nil
}

func (r *CategoryRepo) Rename(ctx context.Context, kind models.CategoryKind, id, name string) (*models.Category, error) {
	sql, args, err := psql.Update("categories").
		Set("name", name).
		Where(squirrel.Eq{"id": id, "kind": string(kind)}).
		Suffix("RETURNING " + joinColumns(categoryColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var category models.Category
	if err := pgxscan.Get(ctx, r.db, &category, sql, args...); err != nil {
		return nil, wrapErr("rename category", err)
	}
	return &category, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, kind models.CategoryKind, id string) (bool, error) {
	sql, args, err := psql.Delete("categories").
		Where(squirrel.Eq{"id": id, "kind": string(kind)}).
		ToSql()
	if err != nil {
		return false, err
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, wrapErr("delete category", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SiteSettingRepo persists storefront settings as JSONB documents
type SiteSettingRepo struct {
	db DB
}

// NewSiteSettingRepo creates a new Postgres settings repository
func NewSiteSettingRepo(db DB) *SiteSettingRepo {
	return &SiteSettingRepo{db: db}
}

func (r *SiteSettingRepo) List(ctx context.Context) ([]models.SiteSetting, error) {
	sql, args, err := psql.Select(siteSettingColumns...).From("site_settings").OrderBy("key").ToSql()
	if err != nil {
		return nil, err
	}
	settings := []models.SiteSetting{}
	if err := pgxscan.Select(ctx, r.db, &settings, sql, args...); err != nil {
		return nil, wrapErr("list site settings", err)
	}
	return settings, nil
}

func (r *SiteSettingRepo) Get(ctx context.Context, key string) (*models.SiteSetting, error) {
	sql, args, err := psql.Select(siteSettingColumns...).
		From("site_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var setting models.SiteSetting
	if err := pgxscan.Get(ctx, r.db, &setting, sql, args...); err != nil {
		return nil, wrapErr("get site setting", err)
	}
	return &setting, nil
}

func (r *SiteSettingRepo) Upsert(ctx context.Context, setting *models.SiteSetting) error {
	sql, args, err := psql.Insert("site_settings").
		Columns(siteSettingColumns...).
		Values(setting.Key, setting.Value, time.Now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at RETURNING updated_at").
		ToSql()
	if err != nil {
		return err
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&setting.UpdatedAt); err != nil {
		return wrapErr("upsert site setting", err)
	}
	return nil
}

// FooterRepo persists one footer per storefront section
type FooterRepo struct {
	db DB
}

// NewFooterRepo creates a new Postgres footer repository
func NewFooterRepo(db DB) *FooterRepo {
	return &FooterRepo{db: db}
}

func (r *FooterRepo) List(ctx context.Context) ([]models.Footer, error) {
	sql, args, err := psql.Select(footerColumns...).From("footers").OrderBy("section").ToSql()
	if err != nil {
		return nil, err
	}
	footers := []models.Footer{}
	if err := pgxscan.Select(ctx, r.db, &footers, sql, args...); err != nil {
		return nil, wrapErr("list footers", err)
	}
	return footers, nil
}

func (r *FooterRepo) Get(ctx context.Context, section models.FooterSection) (*models.Footer, error) {
	sql, args, err := psql.Select(footerColumns...).
		From("footers").
		Where(squirrel.Eq{"section": string(section)}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var footer models.Footer
	if err := pgxscan.Get(ctx, r.db, &footer, sql, args...); err != nil {
		return nil, wrapErr("get footer", err)
	}
	return &footer, nil
}

func (r *FooterRepo) Upsert(ctx context.Context, f *models.Footer) error {
	sql, args, err := psql.Insert("footers").
		Columns(footerColumns...).
		Values(string(f.Section), f.Title, f.Description, f.Address, f.Phone, f.Email, f.SocialLinks, time.Now()).
		Suffix(`ON CONFLICT (section) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			social_links = EXCLUDED.social_links,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return err
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&f.UpdatedAt); err != nil {
		return wrapErr("upsert footer", err)
	}
	return nil
}
