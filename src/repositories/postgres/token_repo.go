package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
)

var tokenColumns = []string{
	"id",
	"admin_id",
	"code",
	"phone",
	"email",
	"expires_at",
	"used",
	"used_at",
	"created_at",
}

// ResetTokenRepo persists password recovery codes
type ResetTokenRepo struct {
	db DB
}

// NewResetTokenRepo creates a new Postgres reset token repository
func NewResetTokenRepo(db DB) *ResetTokenRepo {
	return &ResetTokenRepo{db: db}
}

// Create inserts the token; ErrDuplicate means the code is already held by an unused token
func (r *ResetTokenRepo) Create(ctx context.Context, token *models.ResetToken) error {
	sql, args, err := squirrel.
		Insert("password_reset_tokens").
		Columns(tokenColumns...).
		Values(
			token.ID,
			token.AdminID,
			token.Code,
			token.Phone,
			token.Email,
			token.ExpiresAt,
			token.Used,
			token.UsedAt,
			token.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapErr("insert reset token", err)
	}
	return nil
}

func (r *ResetTokenRepo) FindActiveByCode(ctx context.Context, code string) (*models.ResetToken, error) {
	sql, args, err := squirrel.
		Select(tokenColumns...).
		From("password_reset_tokens").
		Where(squirrel.Eq{"code": code, "used": false}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	var token models.ResetToken
	if err := pgxscan.Get(ctx, r.db, &token, sql, args...); err != nil {
		return nil, wrapErr("find reset token", err)
	}
	return &token, nil
}

// MarkUsed flips used only if nobody else did; the affected row count decides the race
func (r *ResetTokenRepo) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE password_reset_tokens SET used = TRUE, used_at = $1 WHERE id = $2 AND used = FALSE`,
		usedAt, id)
	if err != nil {
		return false, wrapErr("mark reset token used", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ResetTokenRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM password_reset_tokens WHERE expires_at < $1`, before)
	if err != nil {
		return 0, wrapErr("delete expired reset tokens", err)
	}
	return tag.RowsAffected(), nil
}
