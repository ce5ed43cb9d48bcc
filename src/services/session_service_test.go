package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storedAdmin saves an active account in repo so sessions for it resolve
func storedAdmin(t *testing.T, repo *memory.AdminRepo, role models.Role) *models.AdminUser {
	t.Helper()
	admin := &models.AdminUser{
		ID:       uuid.New(),
		Email:    string(role) + "@x.com",
		Role:     role,
		FullName: "Ada Admin",
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), admin))
	return admin
}

func newRedisStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisSessionStore(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestSessionService_RedisLifecycle(t *testing.T) {
	store, mr := newRedisStore(t)
	accounts := memory.NewAdminRepo()
	svc := NewSessionService(store, accounts, "test-secret", time.Hour)
	ctx := context.Background()
	admin := storedAdmin(t, accounts, models.RoleEditor)

	token, session, err := svc.Create(ctx, admin)
	require.NoError(t, err)
	assert.True(t, mr.Exists("session:"+session.ID))
	assert.Equal(t, time.Hour, mr.TTL("session:"+session.ID))

	resolved, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, resolved.AdminID)
	assert.Equal(t, models.RoleEditor, resolved.Role)
	assert.Equal(t, "Ada Admin", resolved.FullName)

	require.NoError(t, svc.Destroy(ctx, token))
	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSessionService_RedisExpiry(t *testing.T) {
	store, mr := newRedisStore(t)
	accounts := memory.NewAdminRepo()
	svc := NewSessionService(store, accounts, "test-secret", time.Hour)
	ctx := context.Background()

	token, _, err := svc.Create(ctx, storedAdmin(t, accounts, models.RoleViewer))
	require.NoError(t, err)

	mr.FastForward(time.Hour + time.Second)
	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSessionService_RejectsBadTokens(t *testing.T) {
	accounts := memory.NewAdminRepo()
	svc := NewSessionService(NewMemorySessionStore(), accounts, "test-secret", time.Hour)
	other := NewSessionService(NewMemorySessionStore(), accounts, "other-secret", time.Hour)
	ctx := context.Background()

	foreign, _, err := other.Create(ctx, storedAdmin(t, accounts, models.RoleSuperAdmin))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":          "",
		"garbage":        "not-a-jwt",
		"foreign secret": foreign,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Resolve(ctx, token)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}

	assert.NoError(t, svc.Destroy(ctx, "not-a-jwt"))
}

func TestSessionService_FollowsAccountChanges(t *testing.T) {
	ctx := context.Background()
	accounts := memory.NewAdminRepo()
	store := NewMemorySessionStore()
	svc := NewSessionService(store, accounts, "test-secret", time.Hour)

	t.Run("demoted role applies to the live session", func(t *testing.T) {
		admin := storedAdmin(t, accounts, models.RoleEditor)
		token, _, err := svc.Create(ctx, admin)
		require.NoError(t, err)

		viewer := models.RoleViewer
		_, err = accounts.Update(ctx, admin.ID, models.AdminPatch{Role: &viewer})
		require.NoError(t, err)

		session, err := svc.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, models.RoleViewer, session.Role)
	})

	t.Run("deactivated account is signed out", func(t *testing.T) {
		admin := storedAdmin(t, accounts, models.RoleSuperAdmin)
		token, session, err := svc.Create(ctx, admin)
		require.NoError(t, err)

		inactive := false
		_, err = accounts.Update(ctx, admin.ID, models.AdminPatch{IsActive: &inactive})
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
		_, err = store.Get(ctx, session.ID)
		assert.ErrorIs(t, err, errSessionNotFound)
	})

	t.Run("deleted account is signed out", func(t *testing.T) {
		admin := storedAdmin(t, accounts, models.RoleViewer)
		token, _, err := svc.Create(ctx, admin)
		require.NoError(t, err)

		_, err = accounts.Delete(ctx, admin.ID)
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "a"}, time.Minute))
	require.NoError(t, store.Save(ctx, &Session{ID: "b"}, time.Hour))

	_, err := store.Get(ctx, "a")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, errSessionNotFound)

	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, store.Sweep())
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, errSessionNotFound)
}

func TestSession_HasRole(t *testing.T) {
	s := &Session{Role: models.RoleEditor}
	assert.True(t, s.HasRole(models.RoleSuperAdmin, models.RoleEditor))
	assert.False(t, s.HasRole(models.RoleSuperAdmin))
}
