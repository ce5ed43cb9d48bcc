package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
	"github.com/khabaroff/flabef-storefront/src/repositories/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAdminService(repo repositories.AdminRepository) *AdminService {
	svc := NewAdminService(repo)
	svc.cost = bcrypt.MinCost
	return svc
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAdminService_CreateAdmin(t *testing.T) {
	repo := mock.NewAdminRepository()
	svc := newTestAdminService(repo)
	creator := uuid.New()

	admin, err := svc.CreateAdmin(context.Background(), CreateAdminInput{
		Email:          " editor@flabef.com ",
		Password:       "secret1",
		Role:           models.RoleEditor,
		FullName:       "Ed Itor",
		DocumentNumber: "87654321",
	}, &creator)

	require.NoError(t, err)
	assert.Equal(t, "editor@flabef.com", admin.Email)
	assert.True(t, admin.IsActive)
	assert.Equal(t, &creator, admin.CreatedBy)
	assert.NotEqual(t, "secret1", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secret1")))
	assert.Len(t, repo.Calls["Create"], 1)
}

func TestAdminService_CreateAdmin_Errors(t *testing.T) {
	t.Run("invalid role", func(t *testing.T) {
		repo := mock.NewAdminRepository()
		_, err := newTestAdminService(repo).CreateAdmin(context.Background(), CreateAdminInput{
			Email: "a@x.com", Password: "secret1", Role: models.Role("owner"),
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidRole)
		assert.Empty(t, repo.Calls["Create"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := mock.NewAdminRepository()
		repo.CreateFunc = func(ctx context.Context, admin *models.AdminUser) error {
			return repositories.ErrDuplicate
		}
		_, err := newTestAdminService(repo).CreateAdmin(context.Background(), CreateAdminInput{
			Email: "a@x.com", Password: "secret1", Role: models.RoleViewer,
		}, nil)
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Equal(t, KindConflict, KindOf(err))
	})

	t.Run("duplicate document number", func(t *testing.T) {
		repo := mock.NewAdminRepository()
		repo.CreateFunc = func(ctx context.Context, admin *models.AdminUser) error {
			return fmt.Errorf("insert admin: %w", repositories.ErrDuplicateDocument)
		}
		_, err := newTestAdminService(repo).CreateAdmin(context.Background(), CreateAdminInput{
			Email: "a@x.com", Password: "secret1", Role: models.RoleViewer, DocumentNumber: "12345678",
		}, nil)
		assert.ErrorIs(t, err, ErrDocumentTaken)
		assert.Equal(t, KindConflict, KindOf(err))
	})

	t.Run("overlong password", func(t *testing.T) {
		repo := mock.NewAdminRepository()
		_, err := newTestAdminService(repo).CreateAdmin(context.Background(), CreateAdminInput{
			Email: "a@x.com", Password: strings.Repeat("x", MaxPasswordBytes+1), Role: models.RoleViewer,
		}, nil)
		assert.ErrorIs(t, err, ErrPasswordTooLong)
		assert.Empty(t, repo.Calls["Create"])
	})
}

func TestAdminService_Authenticate(t *testing.T) {
	active := &models.AdminUser{
		ID: uuid.New(), Email: "admin@x.com", PasswordHash: hashed(t, "secret1"),
		Role: models.RoleSuperAdmin, IsActive: true,
	}
	inactive := *active
	inactive.IsActive = false

	tests := []struct {
		name     string
		stored   *models.AdminUser
		password string
		wantErr  error
	}{
		{name: "valid credentials", stored: active, password: "secret1"},
		{name: "wrong password", stored: active, password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown email", stored: nil, password: "secret1", wantErr: ErrInvalidCredentials},
		{name: "inactive account", stored: &inactive, password: "secret1", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewAdminRepository()
			if tt.stored != nil {
				repo.GetByEmailFunc = func(ctx context.Context, email string) (*models.AdminUser, error) {
					return tt.stored, nil
				}
			}

			admin, err := newTestAdminService(repo).Authenticate(context.Background(), "admin@x.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, admin)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, active.ID, admin.ID)
		})
	}
}

func TestAdminService_Authenticate_StoreFailure(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetByEmailFunc = func(ctx context.Context, email string) (*models.AdminUser, error) {
		return nil, errors.New("connection reset")
	}
	_, err := newTestAdminService(repo).Authenticate(context.Background(), "admin@x.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestAdminService_UpdateAdmin(t *testing.T) {
	id := uuid.New()

	t.Run("empty update", func(t *testing.T) {
		_, err := newTestAdminService(mock.NewAdminRepository()).UpdateAdmin(context.Background(), id, UpdateAdminInput{})
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("password is hashed", func(t *testing.T) {
		repo := mock.NewAdminRepository()
		var got models.AdminPatch
		repo.UpdateFunc = func(ctx context.Context, gotID uuid.UUID, patch models.AdminPatch) (*models.AdminUser, error) {
			got = patch
			return &models.AdminUser{ID: gotID}, nil
		}
		pw := "newsecret"
		name := "New Name"
		_, err := newTestAdminService(repo).UpdateAdmin(context.Background(), id, UpdateAdminInput{Password: &pw, FullName: &name})
		require.NoError(t, err)
		require.NotNil(t, got.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*got.PasswordHash), []byte(pw)))
		assert.Equal(t, "New Name", *got.FullName)
		assert.Nil(t, got.Email)
	})

	t.Run("invalid role", func(t *testing.T) {
		role := models.Role("root")
		_, err := newTestAdminService(mock.NewAdminRepository()).UpdateAdmin(context.Background(), id, UpdateAdminInput{Role: &role})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("not found", func(t *testing.T) {
		name := "x"
		repo := mock.NewAdminRepository()
		repo.UpdateFunc = func(ctx context.Context, gotID uuid.UUID, patch models.AdminPatch) (*models.AdminUser, error) {
			return nil, repositories.ErrNotFound
		}
		_, err := newTestAdminService(repo).UpdateAdmin(context.Background(), id, UpdateAdminInput{FullName: &name})
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})

	t.Run("document number taken", func(t *testing.T) {
		doc := "12345678"
		repo := mock.NewAdminRepository()
		repo.UpdateFunc = func(ctx context.Context, gotID uuid.UUID, patch models.AdminPatch) (*models.AdminUser, error) {
			return nil, repositories.ErrDuplicateDocument
		}
		_, err := newTestAdminService(repo).UpdateAdmin(context.Background(), id, UpdateAdminInput{DocumentNumber: &doc})
		assert.ErrorIs(t, err, ErrDocumentTaken)
	})
}

func TestAdminService_DeleteAdmin(t *testing.T) {
	actor := uuid.New()
	target := uuid.New()

	t.Run("self delete", func(t *testing.T) {
		repo := mock.NewAdminRepository()
		err := newTestAdminService(repo).DeleteAdmin(context.Background(), actor, actor)
		assert.ErrorIs(t, err, ErrSelfDelete)
		assert.Empty(t, repo.Calls["Delete"])
	})

	t.Run("missing", func(t *testing.T) {
		repo := mock.NewAdminRepository()
		err := newTestAdminService(repo).DeleteAdmin(context.Background(), actor, target)
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		repo := mock.NewAdminRepository()
		repo.DeleteFunc = func(ctx context.Context, id uuid.UUID) (bool, error) { return true, nil }
		assert.NoError(t, newTestAdminService(repo).DeleteAdmin(context.Background(), actor, target))
	})
}

func TestAdminService_EnsureSuperAdmin(t *testing.T) {
	t.Run("creates when empty", func(t *testing.T) {
		repo := mock.NewAdminRepository()
		var created *models.AdminUser
		repo.CreateFunc = func(ctx context.Context, admin *models.AdminUser) error {
			created = admin
			return nil
		}

		ok, err := newTestAdminService(repo).EnsureSuperAdmin(context.Background(), CreateAdminInput{
			Email: "admin@flabef.com", Password: "admin123", DocumentNumber: "12345678",
		})
		require.NoError(t, err)
		assert.True(t, ok)
		require.NotNil(t, created)
		assert.Equal(t, models.RoleSuperAdmin, created.Role)
	})

	t.Run("skips when admins exist", func(t *testing.T) {
		repo := mock.NewAdminRepository()
		repo.CountFunc = func(ctx context.Context) (int, error) { return 2, nil }

		ok, err := newTestAdminService(repo).EnsureSuperAdmin(context.Background(), CreateAdminInput{Email: "admin@flabef.com"})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, repo.Calls["Create"])
	})
}
