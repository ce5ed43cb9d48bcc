package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a shopping cart
type CartItem struct {
	ID           string          `json:"id" db:"id"`
	CartID       string          `json:"-" db:"cart_id"`
	ProductID    string          `json:"productId" db:"product_id"`
	ProductName  string          `json:"productName" db:"product_name"`
	ProductPrice decimal.Decimal `json:"productPrice" db:"product_price"`
	Quantity     int             `json:"quantity" db:"quantity"`
	Image        string          `json:"image" db:"image"`
	CreatedAt    time.Time       `json:"-" db:"created_at"`
}
