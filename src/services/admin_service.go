package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/logging"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps login timing flat when the email is unknown
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("flabef-timing-guard"), bcrypt.DefaultCost)

// AdminService handles admin account operations
type AdminService struct {
	repo repositories.AdminRepository
	cost int
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.AdminRepository) *AdminService {
	return &AdminService{repo: repo, cost: bcrypt.DefaultCost}
}

// CreateAdminInput holds the fields of a new admin account
type CreateAdminInput struct {
	Email          string
	Password       string
	Role           models.Role
	FullName       string
	DocumentType   string
	DocumentNumber string
	RecoveryEmail  string
}

// UpdateAdminInput holds a partial admin update; nil fields are left untouched
type UpdateAdminInput struct {
	Email          *string
	Password       *string
	Role           *models.Role
	FullName       *string
	DocumentType   *string
	DocumentNumber *string
	RecoveryEmail  *string
	IsActive       *bool
}

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

// HashPassword validates and hashes a password without touching any account
func (as *AdminService) HashPassword(password string) (string, error) {
	return as.hash(password)
}

func (as *AdminService) hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), as.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CreateAdmin creates a new admin account with a hashed password
func (as *AdminService) CreateAdmin(ctx context.Context, in CreateAdminInput, createdBy *uuid.UUID) (*models.AdminUser, error) {
	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := as.hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &models.AdminUser{
		ID:             uuid.New(),
		Email:          strings.TrimSpace(in.Email),
		PasswordHash:   hash,
		Role:           in.Role,
		FullName:       in.FullName,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		RecoveryEmail:  in.RecoveryEmail,
		IsActive:       true,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := as.repo.Create(ctx, admin); err != nil {
		if dup := duplicateError(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	return admin, nil
}

// Authenticate verifies email and password of an active account
func (as *AdminService) Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error) {
	admin, err := as.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to load admin: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// GetAdmin retrieves an admin account by id
func (as *AdminService) GetAdmin(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	admin, err := as.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	return admin, nil
}

// ListAdmins returns every admin account
func (as *AdminService) ListAdmins(ctx context.Context) ([]models.AdminUser, error) {
	admins, err := as.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// UpdateAdmin applies a partial update; omitted fields keep their value
func (as *AdminService) UpdateAdmin(ctx context.Context, id uuid.UUID, in UpdateAdminInput) (*models.AdminUser, error) {
	patch := models.AdminPatch{
		Email:          in.Email,
		Role:           in.Role,
		FullName:       in.FullName,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		RecoveryEmail:  in.RecoveryEmail,
		IsActive:       in.IsActive,
	}
	if in.Role != nil && !in.Role.Valid() {
		return nil, ErrInvalidRole
	}
	if in.Password != nil {
		hash, err := as.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}
	if patch.Empty() {
		return nil, ErrEmptyUpdate
	}

	admin, err := as.repo.Update(ctx, id, patch)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrAdminNotFound
	case duplicateError(err) != nil:
		return nil, duplicateError(err)
	case err != nil:
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}
	return admin, nil
}

// duplicateError names the unique field an account write collided on
func duplicateError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicateDocument):
		return ErrDocumentTaken
	case errors.Is(err, repositories.ErrDuplicate):
		return ErrEmailTaken
	default:
		return nil
	}
}

// DeleteAdmin removes an account; actorID is the super admin performing the action
func (as *AdminService) DeleteAdmin(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return ErrSelfDelete
	}
	existed, err := as.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if !existed {
		return ErrAdminNotFound
	}
	return nil
}

// SetPasswordHash overwrites the password of an account with a hash from HashPassword
func (as *AdminService) SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	if err := as.repo.UpdatePassword(ctx, id, hash); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// EnsureSuperAdmin creates the bootstrap account when no admin exists yet
func (as *AdminService) EnsureSuperAdmin(ctx context.Context, in CreateAdminInput) (bool, error) {
	logger := logging.FromContext(ctx, "admin")

	count, err := as.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check admin users: %w", err)
	}
	if count > 0 {
		logger.Debug().Int("admins", count).Msg("Admins already exist, skipping bootstrap")
		return false, nil
	}

	in.Role = models.RoleSuperAdmin
	admin, err := as.CreateAdmin(ctx, in, nil)
	if err != nil {
		return false, err
	}
	logger.Info().Str("email", admin.Email).Msg("Bootstrap super admin created")
	return true, nil
}
