package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// AdminRepo keeps admin accounts in memory
type AdminRepo struct {
	// guards the email and document uniqueness checks across create and update
	mu     sync.Mutex
	admins *table[models.AdminUser]
}

// NewAdminRepo creates an empty in-memory admin repository
func NewAdminRepo() *AdminRepo {
	return &AdminRepo{admins: newTable[models.AdminUser]()}
}

func (r *AdminRepo) emailTaken(email string, except uuid.UUID) bool {
	matches := r.admins.filter(func(a models.AdminUser) bool {
		return a.ID != except && strings.EqualFold(a.Email, email)
	}, byAdminCreated)
	return len(matches) > 0
}

func (r *AdminRepo) documentTaken(documentNumber string, except uuid.UUID) bool {
	if documentNumber == "" {
		return false
	}
	matches := r.admins.filter(func(a models.AdminUser) bool {
		return a.ID != except && a.DocumentNumber == documentNumber
	}, byAdminCreated)
	return len(matches) > 0
}

func (r *AdminRepo) Create(_ context.Context, admin *models.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(admin.Email, uuid.Nil) {
		return repositories.ErrDuplicate
	}
	if r.documentTaken(admin.DocumentNumber, uuid.Nil) {
		return repositories.ErrDuplicateDocument
	}
	r.admins.put(admin.ID.String(), *admin)
	return nil
}

func (r *AdminRepo) GetByID(_ context.Context, id uuid.UUID) (*models.AdminUser, error) {
	admin, ok := r.admins.get(id.String())
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &admin, nil
}

func (r *AdminRepo) findOne(keep func(models.AdminUser) bool) (*models.AdminUser, error) {
	matches := r.admins.filter(keep, byAdminCreated)
	if len(matches) == 0 {
		return nil, repositories.ErrNotFound
	}
	return &matches[0], nil
}

func (r *AdminRepo) GetByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	return r.findOne(func(a models.AdminUser) bool { return strings.EqualFold(a.Email, email) })
}

func (r *AdminRepo) GetByDocumentNumber(_ context.Context, documentNumber string) (*models.AdminUser, error) {
	return r.findOne(func(a models.AdminUser) bool {
		return a.IsActive && a.DocumentNumber == documentNumber
	})
}

func (r *AdminRepo) List(_ context.Context) ([]models.AdminUser, error) {
	return r.admins.filter(nil, byAdminCreated), nil
}

func (r *AdminRepo) Update(_ context.Context, id uuid.UUID, patch models.AdminPatch) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if patch.Email != nil && r.emailTaken(*patch.Email, id) {
		return nil, repositories.ErrDuplicate
	}
	if patch.DocumentNumber != nil && r.documentTaken(*patch.DocumentNumber, id) {
		return nil, repositories.ErrDuplicateDocument
	}
	admin, ok := r.admins.update(id.String(), func(a *models.AdminUser) {
		patch.Apply(a)
		a.UpdatedAt = time.Now()
	})
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &admin, nil
}

func (r *AdminRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	_, ok := r.admins.update(id.String(), func(a *models.AdminUser) {
		a.PasswordHash = passwordHash
		a.UpdatedAt = time.Now()
	})
	if !ok {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *AdminRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	return r.admins.delete(id.String()), nil
}

func (r *AdminRepo) Count(_ context.Context) (int, error) {
	return r.admins.count(), nil
}

func byAdminCreated(a, b models.AdminUser) bool {
	return a.CreatedAt.Before(b.CreatedAt)
}
