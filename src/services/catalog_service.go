package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// CategoryAll lists every category
const CategoryAll = "all"

type patch interface {
	Empty() bool
}

// catalogRepo is the part of the catalog repositories shared by every entity
type catalogRepo[T any, P patch] interface {
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// validID rejects ids that cannot exist so they report not found instead of a driver error
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func getEntity[T any, P patch](ctx context.Context, repo catalogRepo[T, P], id string, notFound *Error) (*T, error) {
	if !validID(id) {
		return nil, notFound
	}
	v, err := repo.Get(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	return v, nil
}

func updateEntity[T any, P patch](ctx context.Context, repo catalogRepo[T, P], id string, p P, notFound *Error) (*T, error) {
	if p.Empty() {
		return nil, ErrEmptyUpdate
	}
	if !validID(id) {
		return nil, notFound
	}
	v, err := repo.Update(ctx, id, p)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	return v, nil
}

func deleteEntity[T any, P patch](ctx context.Context, repo catalogRepo[T, P], id string, notFound *Error) error {
	if !validID(id) {
		return notFound
	}
	existed, err := repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if !existed {
		return notFound
	}
	return nil
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, CategoryAll) {
		return ""
	}
	return category
}

// CatalogService handles products, IT services and food items
type CatalogService struct {
	products   repositories.ProductRepository
	itServices repositories.ITServiceRepository
	foodItems  repositories.FoodItemRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(products repositories.ProductRepository, itServices repositories.ITServiceRepository, foodItems repositories.FoodItemRepository) *CatalogService {
	return &CatalogService{products: products, itServices: itServices, foodItems: foodItems}
}

// ListProducts lists products, optionally filtered by category
func (cs *CatalogService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := cs.products.List(ctx, normalizeCategory(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (cs *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return getEntity[models.Product, models.ProductPatch](ctx, cs.products, id, ErrProductNotFound)
}

func (cs *CatalogService) CreateProduct(ctx context.Context, p *models.Product) error {
	if err := cs.products.Create(ctx, p); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (cs *CatalogService) UpdateProduct(ctx context.Context, id string, p models.ProductPatch) (*models.Product, error) {
	return updateEntity[models.Product, models.ProductPatch](ctx, cs.products, id, p, ErrProductNotFound)
}

func (cs *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return deleteEntity[models.Product, models.ProductPatch](ctx, cs.products, id, ErrProductNotFound)
}

// ListITServices lists every IT service
func (cs *CatalogService) ListITServices(ctx context.Context) ([]models.ITService, error) {
	services, err := cs.itServices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list it services: %w", err)
	}
	return services, nil
}

func (cs *CatalogService) GetITService(ctx context.Context, id string) (*models.ITService, error) {
	return getEntity[models.ITService, models.ITServicePatch](ctx, cs.itServices, id, ErrITServiceNotFound)
}

func (cs *CatalogService) CreateITService(ctx context.Context, s *models.ITService) error {
	if s.Features == nil {
		s.Features = []string{}
	}
	if err := cs.itServices.Create(ctx, s); err != nil {
		return fmt.Errorf("failed to create it service: %w", err)
	}
	return nil
}

func (cs *CatalogService) UpdateITService(ctx context.Context, id string, p models.ITServicePatch) (*models.ITService, error) {
	return updateEntity[models.ITService, models.ITServicePatch](ctx, cs.itServices, id, p, ErrITServiceNotFound)
}

func (cs *CatalogService) DeleteITService(ctx context.Context, id string) error {
	return deleteEntity[models.ITService, models.ITServicePatch](ctx, cs.itServices, id, ErrITServiceNotFound)
}

// ListFoodItems lists the menu, optionally filtered by category
func (cs *CatalogService) ListFoodItems(ctx context.Context, category string) ([]models.FoodItem, error) {
	items, err := cs.foodItems.List(ctx, normalizeCategory(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}
	return items, nil
}

func (cs *CatalogService) GetFoodItem(ctx context.Context, id string) (*models.FoodItem, error) {
	return getEntity[models.FoodItem, models.FoodItemPatch](ctx, cs.foodItems, id, ErrFoodItemNotFound)
}

func (cs *CatalogService) CreateFoodItem(ctx context.Context, f *models.FoodItem) error {
	if err := cs.foodItems.Create(ctx, f); err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}
	return nil
}

func (cs *CatalogService) UpdateFoodItem(ctx context.Context, id string, p models.FoodItemPatch) (*models.FoodItem, error) {
	return updateEntity[models.FoodItem, models.FoodItemPatch](ctx, cs.foodItems, id, p, ErrFoodItemNotFound)
}

func (cs *CatalogService) DeleteFoodItem(ctx context.Context, id string) error {
	return deleteEntity[models.FoodItem, models.FoodItemPatch](ctx, cs.foodItems, id, ErrFoodItemNotFound)
}
