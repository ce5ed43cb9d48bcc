package models

import (
	"time"
)

// ContactRequest is a message left through the storefront contact form
type ContactRequest struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Message     string      `json:"message"`
	ServiceType ServiceType `json:"serviceType"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ContactRecord is the stored form of a ContactRequest; Phone and Message may be ciphertext
type ContactRecord struct {
	ID          string      `db:"id"`
	Name        string      `db:"name"`
	Phone       []byte      `db:"phone"`
	Message     []byte      `db:"message"`
	ServiceType ServiceType `db:"service_type"`
	CreatedAt   time.Time   `db:"created_at"`
}
