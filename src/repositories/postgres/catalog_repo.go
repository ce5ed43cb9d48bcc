package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/khabaroff/flabef-storefront/src/models"
)

var (
	productColumns   = []string{"id", "name", "description", "price", "category", "image", "featured", "in_stock"}
	itServiceColumns = []string{"id", "title", "description", "features", "icon", "available"}
	foodItemColumns  = []string{"id", "name", "description", "price", "category", "image", "available"}
)

// catalogTable holds the query plumbing shared by the three catalog tables
type catalogTable struct {
	db      DB
	table   string
	columns []string
}

func (t catalogTable) selectBuilder() squirrel.SelectBuilder {
	return squirrel.Select(t.columns...).From(t.table).PlaceholderFormat(squirrel.Dollar)
}

func (t catalogTable) list(ctx context.Context, dst any, category string) error {
	sb := t.selectBuilder()
	if category != "" {
		sb = sb.Where(squirrel.Eq{"category": category})
	}
	sql, args, err := sb.OrderBy("name").ToSql()
	if err != nil {
		return err
	}
	if err := pgxscan.Select(ctx, t.db, dst, sql, args...); err != nil {
		return wrapErr("list "+t.table, err)
	}
	return nil
}

func (t catalogTable) get(ctx context.Context, dst any, id string) error {
	sql, args, err := t.selectBuilder().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	if err := pgxscan.Get(ctx, t.db, dst, sql, args...); err != nil {
		return wrapErr("get "+t.table, err)
	}
	return nil
}

// insert stores values (id excluded) and scans the generated row into dst
func (t catalogTable) insert(ctx context.Context, dst any, values ...any) error {
	sql, args, err := squirrel.
		Insert(t.table).
		Columns(t.columns[1:]...).
		Values(values...).
		Suffix("RETURNING " + joinColumns(t.columns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	if err := pgxscan.Get(ctx, t.db, dst, sql, args...); err != nil {
		return wrapErr("insert "+t.table, err)
	}
	return nil
}

func (t catalogTable) update(ctx context.Context, dst any, id string, cols map[string]any) error {
	sql, args, err := squirrel.
		Update(t.table).
		SetMap(cols).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(t.columns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	if err := pgxscan.Get(ctx, t.db, dst, sql, args...); err != nil {
		return wrapErr("update "+t.table, err)
	}
	return nil
}

func (t catalogTable) delete(ctx context.Context, id string) (bool, error) {
	sql, args, err := squirrel.
		Delete(t.table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}
	tag, err := t.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, wrapErr("delete "+t.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ProductRepo persists products
type ProductRepo struct {
	t catalogTable
}

// NewProductRepo creates a new Postgres product repository
func NewProductRepo(db DB) *ProductRepo {
	return &ProductRepo{t: catalogTable{db: db, table: "products", columns: productColumns}}
}

func (r *ProductRepo) List(ctx context.Context, category string) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.t.list(ctx, &products, category); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.t.get(ctx, &p, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) error {
	return r.t.insert(ctx, p, p.Name, p.Description, p.Price, p.Category, p.Image, p.Featured, p.InStock)
}

func (r *ProductRepo) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	var p models.Product
	if err := r.t.update(ctx, &p, id, patch.Columns()); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.t.delete(ctx, id)
}

// ITServiceRepo persists IT service listings
type ITServiceRepo struct {
	t catalogTable
}

// NewITServiceRepo creates a new Postgres IT service repository
func NewITServiceRepo(db DB) *ITServiceRepo {
	return &ITServiceRepo{t: catalogTable{db: db, table: "it_services", columns: itServiceColumns}}
}

func (r *ITServiceRepo) List(ctx context.Context) ([]models.ITService, error) {
	services := []models.ITService{}
	if err := r.t.list(ctx, &services, ""); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ITServiceRepo) Get(ctx context.Context, id string) (*models.ITService, error) {
	var s models.ITService
	if err := r.t.get(ctx, &s, id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ITServiceRepo) Create(ctx context.Context, s *models.ITService) error {
	return r.t.insert(ctx, s, s.Title, s.Description, s.Features, s.Icon, s.Available)
}

func (r *ITServiceRepo) Update(ctx context.Context, id string, patch models.ITServicePatch) (*models.ITService, error) {
	var s models.ITService
	if err := r.t.update(ctx, &s, id, patch.Columns()); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ITServiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.t.delete(ctx, id)
}

// FoodItemRepo persists food menu items
type FoodItemRepo struct {
	t catalogTable
}

// NewFoodItemRepo creates a new Postgres food item repository
func NewFoodItemRepo(db DB) *FoodItemRepo {
	return &FoodItemRepo{t: catalogTable{db: db, table: "food_items", columns: foodItemColumns}}
}

func (r *FoodItemRepo) List(ctx context.Context, category string) ([]models.FoodItem, error) {
	items := []models.FoodItem{}
	if err := r.t.list(ctx, &items, category); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FoodItemRepo) Get(ctx context.Context, id string) (*models.FoodItem, error) {
	var f models.FoodItem
	if err := r.t.get(ctx, &f, id); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FoodItemRepo) Create(ctx context.Context, f *models.FoodItem) error {
	return r.t.insert(ctx, f, f.Name, f.Description, f.Price, f.Category, f.Image, f.Available)
}

func (r *FoodItemRepo) Update(ctx context.Context, id string, patch models.FoodItemPatch) (*models.FoodItem, error) {
	var f models.FoodItem
	if err := r.t.update(ctx, &f, id, patch.Columns()); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FoodItemRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.t.delete(ctx, id)
}
