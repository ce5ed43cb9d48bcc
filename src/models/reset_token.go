package models

import (
	"time"

	"github.com/google/uuid"
)

// ResetToken is a single-use password recovery code
type ResetToken struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	AdminID   uuid.UUID  `json:"adminId" db:"admin_id"`
	Code      string     `json:"-" db:"code"`
	Phone     *string    `json:"phone,omitempty" db:"phone"`
	Email     *string    `json:"email,omitempty" db:"email"`
	ExpiresAt time.Time  `json:"expiresAt" db:"expires_at"`
	Used      bool       `json:"used" db:"used"`
	UsedAt    *time.Time `json:"usedAt,omitempty" db:"used_at"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// Expired reports whether the token can no longer be redeemed at now
func (t *ResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Redeemable reports whether the token is unused and within its window
func (t *ResetToken) Redeemable(now time.Time) bool {
	return !t.Used && !t.Expired(now)
}
