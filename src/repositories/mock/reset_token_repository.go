package mock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// ResetTokenRepository is a mock implementation of repositories.ResetTokenRepository
type ResetTokenRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc           func(ctx context.Context, token *models.ResetToken) error
	FindActiveByCodeFunc func(ctx context.Context, code string) (*models.ResetToken, error)
	MarkUsedFunc         func(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error)
	DeleteExpiredFunc    func(ctx context.Context, before time.Time) (int64, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewResetTokenRepository creates a new mock reset token repository
func NewResetTokenRepository() *ResetTokenRepository {
	return &ResetTokenRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ResetTokenRepository) Create(ctx context.Context, token *models.ResetToken) error {
	m.Calls["Create"] = append(m.Calls["Create"], token)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *ResetTokenRepository) FindActiveByCode(ctx context.Context, code string) (*models.ResetToken, error) {
	m.Calls["FindActiveByCode"] = append(m.Calls["FindActiveByCode"], code)
	if m.FindActiveByCodeFunc != nil {
		return m.FindActiveByCodeFunc(ctx, code)
	}
	return nil, repositories.ErrNotFound
}

func (m *ResetTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error) {
	m.Calls["MarkUsed"] = append(m.Calls["MarkUsed"], id)
	if m.MarkUsedFunc != nil {
		return m.MarkUsedFunc(ctx, id, usedAt)
	}
	return true, nil
}

func (m *ResetTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	m.Calls["DeleteExpired"] = append(m.Calls["DeleteExpired"], before)
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, before)
	}
	return 0, nil
}

// Ensure ResetTokenRepository implements the interface
var _ repositories.ResetTokenRepository = (*ResetTokenRepository)(nil)
