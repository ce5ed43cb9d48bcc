package models

import "time"

// CategoryKind tells product categories apart from food menu categories
type CategoryKind string

const (
	CategoryKindProduct CategoryKind = "product"
	CategoryKindFood    CategoryKind = "food"
)

// Valid reports whether k is a known category list
func (k CategoryKind) Valid() bool {
	return k == CategoryKindProduct || k == CategoryKindFood
}

// Category is a named filter offered by the product or food catalog
type Category struct {
	ID        string       `json:"id" db:"id"`
	Kind      CategoryKind `json:"-" db:"kind"`
	Name      string       `json:"name" db:"name"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
}

// SiteSetting is one block of editable storefront copy, e.g. branding or a hero banner
type SiteSetting struct {
	Key       string         `json:"key" db:"key"`
	Value     map[string]any `json:"value" db:"value"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`
}

// FooterSection names the storefront section a footer belongs to
type FooterSection string

const (
	FooterTech       FooterSection = "tech"
	FooterITServices FooterSection = "it_services"
	FooterFood       FooterSection = "food"
)

// Valid reports whether s is one of the storefront sections
func (s FooterSection) Valid() bool {
	switch s {
	case FooterTech, FooterITServices, FooterFood:
		return true
	}
	return false
}

// Footer is the contact block shown at the bottom of a storefront section
type Footer struct {
	Section     FooterSection     `json:"section" db:"section"`
	Title       string            `json:"title" db:"title"`
	Description string            `json:"description" db:"description"`
	Address     string            `json:"address" db:"address"`
	Phone       string            `json:"phone" db:"phone"`
	Email       string            `json:"email" db:"email"`
	SocialLinks map[string]string `json:"socialLinks" db:"social_links"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`
}
