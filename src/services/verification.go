package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// errUnknownEmail marks an email-only lookup that matched nothing; callers
// answer it with the generic success message
var errUnknownEmail = errors.New("no account for email")

// Verifier checks identity claims before a recovery code is issued.
// Every failed check returns ErrInvalidVerification so callers cannot tell
// a missing account from a document mismatch.
type Verifier struct {
	admins repositories.AdminRepository
}

// NewVerifier creates a new verifier
func NewVerifier(admins repositories.AdminRepository) *Verifier {
	return &Verifier{admins: admins}
}

// VerifyDocument passes when an active account holds documentNumber
func (v *Verifier) VerifyDocument(ctx context.Context, documentNumber string) (*models.AdminUser, error) {
	documentNumber = strings.TrimSpace(documentNumber)
	if documentNumber == "" {
		return nil, ErrInvalidVerification
	}
	admin, err := v.admins.GetByDocumentNumber(ctx, documentNumber)
	if err != nil {
		return nil, v.lookupErr(err)
	}
	return admin, nil
}

// VerifyEmailAndDocument passes when the account for email holds exactly documentNumber
func (v *Verifier) VerifyEmailAndDocument(ctx context.Context, email, documentNumber string) (*models.AdminUser, error) {
	admin, err := v.admins.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, v.lookupErr(err)
	}
	if !admin.IsActive || admin.DocumentNumber == "" || admin.DocumentNumber != strings.TrimSpace(documentNumber) {
		return nil, ErrInvalidVerification
	}
	return admin, nil
}

// ResolveAccount finds the account a code request refers to. A document
// number wins over an email; when both are given they must belong to the
// same account. An email-only lookup that matches nothing yields errUnknownEmail.
func (v *Verifier) ResolveAccount(ctx context.Context, email, documentNumber string) (*models.AdminUser, error) {
	email = strings.TrimSpace(email)
	documentNumber = strings.TrimSpace(documentNumber)

	switch {
	case documentNumber != "":
		admin, err := v.VerifyDocument(ctx, documentNumber)
		if err != nil {
			return nil, err
		}
		if email != "" && !ownsEmail(admin, email) {
			return nil, ErrInvalidVerification
		}
		return admin, nil

	case email != "":
		admin, err := v.admins.GetByEmail(ctx, email)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errUnknownEmail
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load admin: %w", err)
		}
		if !admin.IsActive {
			return nil, errUnknownEmail
		}
		return admin, nil

	default:
		return nil, ErrIdentityRequired
	}
}

func (v *Verifier) lookupErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrInvalidVerification
	}
	return fmt.Errorf("failed to load admin: %w", err)
}

// ownsEmail reports whether email is the login or recovery address of admin
func ownsEmail(admin *models.AdminUser, email string) bool {
	return strings.EqualFold(admin.Email, email) ||
		(admin.RecoveryEmail != "" && strings.EqualFold(admin.RecoveryEmail, email))
}
