package mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc              func(ctx context.Context, admin *models.AdminUser) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	GetByEmailFunc          func(ctx context.Context, email string) (*models.AdminUser, error)
	GetByDocumentNumberFunc func(ctx context.Context, documentNumber string) (*models.AdminUser, error)
	ListFunc                func(ctx context.Context) ([]models.AdminUser, error)
	UpdateFunc              func(ctx context.Context, id uuid.UUID, patch models.AdminPatch) (*models.AdminUser, error)
	UpdatePasswordFunc      func(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) (bool, error)
	CountFunc               func(ctx context.Context) (int, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	m.Calls["Create"] = append(m.Calls["Create"], admin)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

func (m *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	m.Calls["GetByEmail"] = append(m.Calls["GetByEmail"], email)
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.AdminUser, error) {
	m.Calls["GetByDocumentNumber"] = append(m.Calls["GetByDocumentNumber"], documentNumber)
	if m.GetByDocumentNumberFunc != nil {
		return m.GetByDocumentNumberFunc(ctx, documentNumber)
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) List(ctx context.Context) ([]models.AdminUser, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.AdminUser{}, nil
}

func (m *AdminRepository) Update(ctx context.Context, id uuid.UUID, patch models.AdminPatch) (*models.AdminUser, error) {
	m.Calls["Update"] = append(m.Calls["Update"], id, patch)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	m.Calls["UpdatePassword"] = append(m.Calls["UpdatePassword"], id, passwordHash)
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	return nil
}

func (m *AdminRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *AdminRepository) Count(ctx context.Context) (int, error) {
	m.Calls["Count"] = append(m.Calls["Count"], nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
