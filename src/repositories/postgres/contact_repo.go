package postgres

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/khabaroff/flabef-storefront/src/models"
)

// ContactRepo persists contact form submissions
type ContactRepo struct {
	db DB
}

// NewContactRepo creates a new Postgres contact repository
func NewContactRepo(db DB) *ContactRepo {
	return &ContactRepo{db: db}
}

func (r *ContactRepo) Create(ctx context.Context, record *models.ContactRecord) error {
	const query = `
		INSERT INTO contact_requests (name, phone, message, service_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, record.Name, record.Phone, record.Message, string(record.ServiceType)).
		Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return wrapErr("insert contact request", err)
	}
	return nil
}

func (r *ContactRepo) List(ctx context.Context) ([]models.ContactRecord, error) {
	const query = `
		SELECT id, name, phone, message, service_type, created_at
		FROM contact_requests
		ORDER BY created_at DESC`
	records := []models.ContactRecord{}
	if err := pgxscan.Select(ctx, r.db, &records, query); err != nil {
		return nil, wrapErr("list contact requests", err)
	}
	return records, nil
}
