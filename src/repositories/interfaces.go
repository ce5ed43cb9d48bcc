package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
)

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint was violated
	ErrDuplicate = errors.New("duplicate record")

	// ErrDuplicateDocument is the ErrDuplicate raised for a reused admin document number
	ErrDuplicateDocument = fmt.Errorf("%w: document number", ErrDuplicate)
)

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.AdminUser, error)
	List(ctx context.Context) ([]models.AdminUser, error)
	Update(ctx context.Context, id uuid.UUID, patch models.AdminPatch) (*models.AdminUser, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
}

// ResetTokenRepository defines the interface for recovery code data access
type ResetTokenRepository interface {
	Create(ctx context.Context, token *models.ResetToken) error
	// FindActiveByCode returns the unused token holding code, expired or not
	FindActiveByCode(ctx context.Context, code string) (*models.ResetToken, error)
	// MarkUsed claims the token; false means another request claimed it first
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	List(ctx context.Context, category string) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ITServiceRepository defines the interface for IT service data access
type ITServiceRepository interface {
	List(ctx context.Context) ([]models.ITService, error)
	Get(ctx context.Context, id string) (*models.ITService, error)
	Create(ctx context.Context, service *models.ITService) error
	Update(ctx context.Context, id string, patch models.ITServicePatch) (*models.ITService, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// FoodItemRepository defines the interface for food menu data access
type FoodItemRepository interface {
	List(ctx context.Context, category string) ([]models.FoodItem, error)
	Get(ctx context.Context, id string) (*models.FoodItem, error)
	Create(ctx context.Context, item *models.FoodItem) error
	Update(ctx context.Context, id string, patch models.FoodItemPatch) (*models.FoodItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CartRepository defines the interface for cart data access, scoped by cart id
type CartRepository interface {
	List(ctx context.Context, cartID string) ([]models.CartItem, error)
	Get(ctx context.Context, cartID, id string) (*models.CartItem, error)
	Add(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, cartID, id string, quantity int) (*models.CartItem, error)
	Remove(ctx context.Context, cartID, id string) (bool, error)
	Clear(ctx context.Context, cartID string) error
}

// ContactRepository defines the interface for contact request data access
type ContactRepository interface {
	Create(ctx context.Context, record *models.ContactRecord) error
	List(ctx context.Context) ([]models.ContactRecord, error)
}

// CategoryRepository defines the interface for catalog category data access.
// Names are unique per kind, ignoring case.
type CategoryRepository interface {
	List(ctx context.Context, kind models.CategoryKind) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Rename(ctx context.Context, kind models.CategoryKind, id, name string) (*models.Category, error)
	Delete(ctx context.Context, kind models.CategoryKind, id string) (bool, error)
}

// SiteSettingRepository defines the interface for storefront settings, keyed by name
type SiteSettingRepository interface {
	List(ctx context.Context) ([]models.SiteSetting, error)
	Get(ctx context.Context, key string) (*models.SiteSetting, error)
	// Upsert replaces the value stored under setting.Key, creating it when missing
	Upsert(ctx context.Context, setting *models.SiteSetting) error
}

// FooterRepository defines the interface for per-section footers
type FooterRepository interface {
	List(ctx context.Context) ([]models.Footer, error)
	Get(ctx context.Context, section models.FooterSection) (*models.Footer, error)
	Upsert(ctx context.Context, footer *models.Footer) error
}

// Set bundles one implementation of every repository
type Set struct {
	Admins     AdminRepository
	Tokens     ResetTokenRepository
	Products   ProductRepository
	ITServices ITServiceRepository
	FoodItems  FoodItemRepository
	Cart       CartRepository
	Contacts   ContactRepository
	Categories CategoryRepository
	Settings   SiteSettingRepository
	Footers    FooterRepository
}
