package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// ProductRepo keeps products in memory
type ProductRepo struct {
	rows *table[models.Product]
}

// NewProductRepo creates an empty in-memory product repository
func NewProductRepo() *ProductRepo {
	return &ProductRepo{rows: newTable[models.Product]()}
}

func (r *ProductRepo) List(_ context.Context, category string) ([]models.Product, error) {
	return r.rows.filter(func(p models.Product) bool {
		return category == "" || p.Category == category
	}, func(a, b models.Product) bool { return a.Name < b.Name }), nil
}

func (r *ProductRepo) Get(_ context.Context, id string) (*models.Product, error) {
	p, ok := r.rows.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r *ProductRepo) Create(_ context.Context, p *models.Product) error {
	p.ID = uuid.NewString()
	r.rows.put(p.ID, *p)
	return nil
}

func (r *ProductRepo) Update(_ context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	p, ok := r.rows.update(id, patch.Apply)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) (bool, error) {
	return r.rows.delete(id), nil
}

// ITServiceRepo keeps IT service listings in memory
type ITServiceRepo struct {
	rows *table[models.ITService]
}

// NewITServiceRepo creates an empty in-memory IT service repository
func NewITServiceRepo() *ITServiceRepo {
	return &ITServiceRepo{rows: newTable[models.ITService]()}
}

func (r *ITServiceRepo) List(_ context.Context) ([]models.ITService, error) {
	return r.rows.filter(nil, func(a, b models.ITService) bool { return a.Title < b.Title }), nil
}

func (r *ITServiceRepo) Get(_ context.Context, id string) (*models.ITService, error) {
	s, ok := r.rows.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (r *ITServiceRepo) Create(_ context.Context, s *models.ITService) error {
	s.ID = uuid.NewString()
	if s.Features == nil {
		s.Features = []string{}
	}
	r.rows.put(s.ID, *s)
	return nil
}

func (r *ITServiceRepo) Update(_ context.Context, id string, patch models.ITServicePatch) (*models.ITService, error) {
	s, ok := r.rows.update(id, patch.Apply)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (r *ITServiceRepo) Delete(_ context.Context, id string) (bool, error) {
	return r.rows.delete(id), nil
}

// FoodItemRepo keeps the food menu in memory
type FoodItemRepo struct {
	rows *table[models.FoodItem]
}

// NewFoodItemRepo creates an empty in-memory food item repository
func NewFoodItemRepo() *FoodItemRepo {
	return &FoodItemRepo{rows: newTable[models.FoodItem]()}
}

func (r *FoodItemRepo) List(_ context.Context, category string) ([]models.FoodItem, error) {
	return r.rows.filter(func(f models.FoodItem) bool {
		return category == "" || f.Category == category
	}, func(a, b models.FoodItem) bool { return a.Name < b.Name }), nil
}

func (r *FoodItemRepo) Get(_ context.Context, id string) (*models.FoodItem, error) {
	f, ok := r.rows.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &f, nil
}

func (r *FoodItemRepo) Create(_ context.Context, f *models.FoodItem) error {
	f.ID = uuid.NewString()
	r.rows.put(f.ID, *f)
	return nil
}

func (r *FoodItemRepo) Update(_ context.Context, id string, patch models.FoodItemPatch) (*models.FoodItem, error) {
	f, ok := r.rows.update(id, patch.Apply)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &f, nil
}

func (r *FoodItemRepo) Delete(_ context.Context, id string) (bool, error) {
	return r.rows.delete(id), nil
}
