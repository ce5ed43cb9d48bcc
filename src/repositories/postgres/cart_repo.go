package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/khabaroff/flabef-storefront/src/models"
)

var cartColumns = []string{
	"id",
	"cart_id",
	"product_id",
	"product_name",
	"product_price",
	"quantity",
	"image",
	"created_at",
}

// CartRepo persists cart lines keyed by cart id
type CartRepo struct {
	db DB
}

// NewCartRepo creates a new Postgres cart repository
func NewCartRepo(db DB) *CartRepo {
	return &CartRepo{db: db}
}

func selectCartBuilder() squirrel.SelectBuilder {
	return squirrel.Select(cartColumns...).From("cart_items").PlaceholderFormat(squirrel.Dollar)
}

func (r *CartRepo) List(ctx context.Context, cartID string) ([]models.CartItem, error) {
	sql, args, err := selectCartBuilder().
		Where(squirrel.Eq{"cart_id": cartID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := []models.CartItem{}
	if err := pgxscan.Select(ctx, r.db, &items, sql, args...); err != nil {
		return nil, wrapErr("list cart items", err)
	}
	return items, nil
}

func (r *CartRepo) Get(ctx context.Context, cartID, id string) (*models.CartItem, error) {
	sql, args, err := selectCartBuilder().
		Where(squirrel.Eq{"cart_id": cartID, "id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var item models.CartItem
	if err := pgxscan.Get(ctx, r.db, &item, sql, args...); err != nil {
		return nil, wrapErr("get cart item", err)
	}
	return &item, nil
}

func (r *CartRepo) Add(ctx context.Context, item *models.CartItem) error {
	sql, args, err := squirrel.
		Insert("cart_items").
		Columns(cartColumns[1:7]...).
		Values(item.CartID, item.ProductID, item.ProductName, item.ProductPrice, item.Quantity, item.Image).
		Suffix("RETURNING " + joinColumns(cartColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	if err := pgxscan.Get(ctx, r.db, item, sql, args...); err != nil {
		return wrapErr("insert cart item", err)
	}
	return nil
}

func (r *CartRepo) UpdateQuantity(ctx context.Context, cartID, id string, quantity int) (*models.CartItem, error) {
	sql, args, err := squirrel.
		Update("cart_items").
		Set("quantity", quantity).
		Where(squirrel.Eq{"cart_id": cartID, "id": id}).
		Suffix("RETURNING " + joinColumns(cartColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	var item models.CartItem
	if err := pgxscan.Get(ctx, r.db, &item, sql, args...); err != nil {
		return nil, wrapErr("update cart item", err)
	}
	return &item, nil
}

func (r *CartRepo) Remove(ctx context.Context, cartID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1 AND id = $2`, cartID, id)
	if err != nil {
		return false, wrapErr("remove cart item", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CartRepo) Clear(ctx context.Context, cartID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return wrapErr("clear cart", err)
	}
	return nil
}
