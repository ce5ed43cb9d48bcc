package models

import (
	"github.com/shopspring/decimal"
)

// Product is an apparel or tech catalog entry
type Product struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Category    string          `json:"category" db:"category"`
	Image       string          `json:"image" db:"image"`
	Featured    bool            `json:"featured" db:"featured"`
	InStock     bool            `json:"inStock" db:"in_stock"`
}

// ProductPatch is a partial product update
type ProductPatch struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Image       *string          `json:"image"`
	Featured    *bool            `json:"featured"`
	InStock     *bool            `json:"inStock"`
}

func (p ProductPatch) Empty() bool { return len(p.Columns()) == 0 }

func (p ProductPatch) Columns() map[string]any {
	cols := make(map[string]any)
	setIf(cols, "name", p.Name)
	setIf(cols, "description", p.Description)
	setIf(cols, "price", p.Price)
	setIf(cols, "category", p.Category)
	setIf(cols, "image", p.Image)
	setIf(cols, "featured", p.Featured)
	setIf(cols, "in_stock", p.InStock)
	return cols
}

func (p ProductPatch) Apply(dst *Product) {
	applyIf(&dst.Name, p.Name)
	applyIf(&dst.Description, p.Description)
	applyIf(&dst.Price, p.Price)
	applyIf(&dst.Category, p.Category)
	applyIf(&dst.Image, p.Image)
	applyIf(&dst.Featured, p.Featured)
	applyIf(&dst.InStock, p.InStock)
}

// ITService is an IT service listing
type ITService struct {
	ID          string   `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Description string   `json:"description" db:"description"`
	Features    []string `json:"features" db:"features"`
	Icon        string   `json:"icon" db:"icon"`
	Available   bool     `json:"available" db:"available"`
}

// ITServicePatch is a partial IT service update
type ITServicePatch struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string   `json:"description" binding:"omitempty,min=1"`
	Features    *[]string `json:"features" binding:"omitempty,dive,required"`
	Icon        *string   `json:"icon"`
	Available   *bool     `json:"available"`
}

func (p ITServicePatch) Empty() bool { return len(p.Columns()) == 0 }

func (p ITServicePatch) Columns() map[string]any {
	cols := make(map[string]any)
	setIf(cols, "title", p.Title)
	setIf(cols, "description", p.Description)
	setIf(cols, "features", p.Features)
	setIf(cols, "icon", p.Icon)
	setIf(cols, "available", p.Available)
	return cols
}

func (p ITServicePatch) Apply(dst *ITService) {
	applyIf(&dst.Title, p.Title)
	applyIf(&dst.Description, p.Description)
	if p.Features != nil {
		dst.Features = append([]string(nil), (*p.Features)...)
	}
	applyIf(&dst.Icon, p.Icon)
	applyIf(&dst.Available, p.Available)
}

// FoodItem is a food menu entry
type FoodItem struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Category    string          `json:"category" db:"category"`
	Image       string          `json:"image" db:"image"`
	Available   bool            `json:"available" db:"available"`
}

// FoodItemPatch is a partial food item update
type FoodItemPatch struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Image       *string          `json:"image"`
	Available   *bool            `json:"available"`
}

func (p FoodItemPatch) Empty() bool { return len(p.Columns()) == 0 }

func (p FoodItemPatch) Columns() map[string]any {
	cols := make(map[string]any)
	setIf(cols, "name", p.Name)
	setIf(cols, "description", p.Description)
	setIf(cols, "price", p.Price)
	setIf(cols, "category", p.Category)
	setIf(cols, "image", p.Image)
	setIf(cols, "available", p.Available)
	return cols
}

func (p FoodItemPatch) Apply(dst *FoodItem) {
	applyIf(&dst.Name, p.Name)
	applyIf(&dst.Description, p.Description)
	applyIf(&dst.Price, p.Price)
	applyIf(&dst.Category, p.Category)
	applyIf(&dst.Image, p.Image)
	applyIf(&dst.Available, p.Available)
}

func setIf[T any](cols map[string]any, column string, v *T) {
	if v != nil {
		cols[column] = *v
	}
}

func applyIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
