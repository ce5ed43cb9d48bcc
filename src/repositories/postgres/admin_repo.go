package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

var adminColumns = []string{
	"id",
	"email",
	"password_hash",
	"role",
	"full_name",
	"document_type",
	"document_number",
	"recovery_email",
	"is_active",
	"created_by",
	"created_at",
	"updated_at",
}

func selectAdminBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(adminColumns...).
		From("admin_users").
		PlaceholderFormat(squirrel.Dollar)
}

// AdminRepo persists admin accounts
type AdminRepo struct {
	db DB
}

// NewAdminRepo creates a new Postgres admin repository
func NewAdminRepo(db DB) *AdminRepo {
	return &AdminRepo{db: db}
}

func (r *AdminRepo) Create(ctx context.Context, admin *models.AdminUser) error {
	sql, args, err := squirrel.
		Insert("admin_users").
		Columns(adminColumns...).
		Values(
			admin.ID,
			admin.Email,
			admin.PasswordHash,
			string(admin.Role),
			admin.FullName,
			admin.DocumentType,
			admin.DocumentNumber,
			admin.RecoveryEmail,
			admin.IsActive,
			admin.CreatedBy,
			admin.CreatedAt,
			admin.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapErr("insert admin", err)
	}
	return nil
}

func (r *AdminRepo) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*models.AdminUser, error) {
	sql, args, err := selectAdminBuilder().Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	var admin models.AdminUser
	if err := pgxscan.Get(ctx, r.db, &admin, sql, args...); err != nil {
		return nil, wrapErr(op, err)
	}
	return &admin, nil
}

func (r *AdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	return r.getOne(ctx, "get admin by id", squirrel.Eq{"id": id})
}

func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return r.getOne(ctx, "get admin by email", squirrel.Expr("lower(email) = lower(?)", email))
}

func (r *AdminRepo) GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.AdminUser, error) {
	return r.getOne(ctx, "get admin by document", squirrel.Eq{"document_number": documentNumber, "is_active": true})
}

func (r *AdminRepo) List(ctx context.Context) ([]models.AdminUser, error) {
	sql, args, err := selectAdminBuilder().OrderBy("created_at").ToSql()
	if err != nil {
		return nil, err
	}
	admins := []models.AdminUser{}
	if err := pgxscan.Select(ctx, r.db, &admins, sql, args...); err != nil {
		return nil, wrapErr("list admins", err)
	}
	return admins, nil
}

func (r *AdminRepo) Update(ctx context.Context, id uuid.UUID, patch models.AdminPatch) (*models.AdminUser, error) {
	cols := patch.Columns()
	cols["updated_at"] = time.Now()
	sql, args, err := squirrel.
		Update("admin_users").
		SetMap(cols).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(adminColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	var admin models.AdminUser
	if err := pgxscan.Get(ctx, r.db, &admin, sql, args...); err != nil {
		return nil, wrapErr("update admin", err)
	}
	return &admin, nil
}

func (r *AdminRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE admin_users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id)
	if err != nil {
		return wrapErr("update admin password", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *AdminRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete admin", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AdminRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return 0, wrapErr("count admins", err)
	}
	return count, nil
}
