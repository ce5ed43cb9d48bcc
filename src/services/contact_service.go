package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// ContactService stores contact form submissions, encrypting phone and message at rest
type ContactService struct {
	repo      repositories.ContactRepository
	encryptor *Encryptor
}

// NewContactService creates a new contact service; a nil encryptor stores plaintext
func NewContactService(repo repositories.ContactRepository, encryptor *Encryptor) *ContactService {
	return &ContactService{repo: repo, encryptor: encryptor}
}

// Create validates and stores a contact request; the returned value holds plaintext
func (cs *ContactService) Create(ctx context.Context, req *models.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if !req.ServiceType.Valid() {
		return ErrInvalidServiceType
	}

	phone, err := cs.encryptor.SealField(FieldContactPhone, req.Phone)
	if err != nil {
		return err
	}
	message, err := cs.encryptor.SealField(FieldContactMessage, req.Message)
	if err != nil {
		return err
	}

	record := &models.ContactRecord{
		Name:        req.Name,
		Phone:       phone,
		Message:     message,
		ServiceType: req.ServiceType,
	}
	if err := cs.repo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to create contact request: %w", err)
	}

	req.ID = record.ID
	req.CreatedAt = record.CreatedAt
	return nil
}

// List returns every contact request, decrypted, newest first
func (cs *ContactService) List(ctx context.Context) ([]models.ContactRequest, error) {
	records, err := cs.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}

	out := make([]models.ContactRequest, 0, len(records))
	for _, r := range records {
		out = append(out, models.ContactRequest{
			ID:          r.ID,
			Name:        r.Name,
			Phone:       cs.encryptor.OpenField(FieldContactPhone, r.Phone),
			Message:     cs.encryptor.OpenField(FieldContactMessage, r.Message),
			ServiceType: r.ServiceType,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}
