package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser represents an admin user account
type AdminUser struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	PasswordHash   string     `json:"-" db:"password_hash"` // never expose
	Role           Role       `json:"role" db:"role"`
	FullName       string     `json:"fullName" db:"full_name"`
	DocumentType   string     `json:"documentType" db:"document_type"`
	DocumentNumber string     `json:"documentNumber" db:"document_number"`
	RecoveryEmail  string     `json:"recoveryEmail" db:"recovery_email"`
	IsActive       bool       `json:"isActive" db:"is_active"`
	CreatedBy      *uuid.UUID `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// AdminPatch carries the fields of a partial admin update; nil fields are left untouched
type AdminPatch struct {
	Email          *string
	PasswordHash   *string
	Role           *Role
	FullName       *string
	DocumentType   *string
	DocumentNumber *string
	RecoveryEmail  *string
	IsActive       *bool
}

// Empty reports whether the patch changes nothing
func (p AdminPatch) Empty() bool {
	return len(p.Columns()) == 0
}

// Columns maps the provided fields to their column names
func (p AdminPatch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.PasswordHash != nil {
		cols["password_hash"] = *p.PasswordHash
	}
	if p.Role != nil {
		cols["role"] = string(*p.Role)
	}
	if p.FullName != nil {
		cols["full_name"] = *p.FullName
	}
	if p.DocumentType != nil {
		cols["document_type"] = *p.DocumentType
	}
	if p.DocumentNumber != nil {
		cols["document_number"] = *p.DocumentNumber
	}
	if p.RecoveryEmail != nil {
		cols["recovery_email"] = *p.RecoveryEmail
	}
	if p.IsActive != nil {
		cols["is_active"] = *p.IsActive
	}
	return cols
}

// Apply merges the provided fields into a
func (p AdminPatch) Apply(a *AdminUser) {
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.PasswordHash != nil {
		a.PasswordHash = *p.PasswordHash
	}
	if p.Role != nil {
		a.Role = *p.Role
	}
	if p.FullName != nil {
		a.FullName = *p.FullName
	}
	if p.DocumentType != nil {
		a.DocumentType = *p.DocumentType
	}
	if p.DocumentNumber != nil {
		a.DocumentNumber = *p.DocumentNumber
	}
	if p.RecoveryEmail != nil {
		a.RecoveryEmail = *p.RecoveryEmail
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
}
