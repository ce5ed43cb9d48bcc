package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// DB is the subset of pgxpool.Pool the repositories need; pgxmock satisfies it too
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// NewSet wires every Postgres repository onto db
func NewSet(db DB) repositories.Set {
	return repositories.Set{
		Admins:     NewAdminRepo(db),
		Tokens:     NewResetTokenRepo(db),
		Products:   NewProductRepo(db),
		ITServices: NewITServiceRepo(db),
		FoodItems:  NewFoodItemRepo(db),
		Cart:       NewCartRepo(db),
		Contacts:   NewContactRepo(db),
		Categories: NewCategoryRepo(db),
		Settings:   NewSiteSettingRepo(db),
		Footers:    NewFooterRepo(db),
	}
}

// documentNumberKey is the partial unique index over admin_users.document_number
const documentNumberKey = "admin_users_document_number_key"

func uniqueViolation(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr, true
	}
	return nil, false
}

// wrapErr maps driver errors onto the repository sentinels
func wrapErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repositories.ErrNotFound
	}
	if pgErr, ok := uniqueViolation(err); ok {
		if pgErr.ConstraintName == documentNumberKey {
			return fmt.Errorf("%s: %w", op, repositories.ErrDuplicateDocument)
		}
		return fmt.Errorf("%s: %w", op, repositories.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
