package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// ResetTokenRepo keeps recovery codes in memory
type ResetTokenRepo struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]models.ResetToken
}

// NewResetTokenRepo creates an empty in-memory token repository
func NewResetTokenRepo() *ResetTokenRepo {
	return &ResetTokenRepo{tokens: make(map[uuid.UUID]models.ResetToken)}
}

func (r *ResetTokenRepo) Create(_ context.Context, token *models.ResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if !t.Used && t.Code == token.Code {
			return repositories.ErrDuplicate
		}
	}
	r.tokens[token.ID] = *token
	return nil
}

func (r *ResetTokenRepo) FindActiveByCode(_ context.Context, code string) (*models.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if !t.Used && t.Code == code {
			return &t, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *ResetTokenRepo) MarkUsed(_ context.Context, id uuid.UUID, usedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[id]
	if !ok || t.Used {
		return false, nil
	}
	t.Used = true
	t.UsedAt = &usedAt
	r.tokens[id] = t
	return true, nil
}

func (r *ResetTokenRepo) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, t := range r.tokens {
		if t.ExpiresAt.Before(before) {
			delete(r.tokens, id)
			n++
		}
	}
	return n, nil
}

// Age shifts every token's timestamps back by d; tests use it to simulate elapsed time
func (r *ResetTokenRepo) Age(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tokens {
		t.ExpiresAt = t.ExpiresAt.Add(-d)
		t.CreatedAt = t.CreatedAt.Add(-d)
		r.tokens[id] = t
	}
}
