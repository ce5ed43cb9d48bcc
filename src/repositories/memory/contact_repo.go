package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
)

// ContactRepo keeps contact requests in memory
type ContactRepo struct {
	rows *table[models.ContactRecord]
}

// NewContactRepo creates an empty in-memory contact repository
func NewContactRepo() *ContactRepo {
	return &ContactRepo{rows: newTable[models.ContactRecord]()}
}

func (r *ContactRepo) Create(_ context.Context, record *models.ContactRecord) error {
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()
	r.rows.put(record.ID, *record)
	return nil
}

func (r *ContactRepo) List(_ context.Context) ([]models.ContactRecord, error) {
	return r.rows.filter(nil, func(a, b models.ContactRecord) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}
