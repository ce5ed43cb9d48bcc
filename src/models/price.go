package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimals a price is rendered with
const PriceScale = 2

// FormatPrice renders d with exactly PriceScale decimals ("10" becomes "10.00")
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(PriceScale)
}

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Price string `json:"price"`
	}{plain(p), FormatPrice(p.Price)})
}

func (f FoodItem) MarshalJSON() ([]byte, error) {
	type plain FoodItem
	return json.Marshal(struct {
		plain
		Price string `json:"price"`
	}{plain(f), FormatPrice(f.Price)})
}

func (c CartItem) MarshalJSON() ([]byte, error) {
	type plain CartItem
	return json.Marshal(struct {
		plain
		ProductPrice string `json:"productPrice"`
	}{plain(c), FormatPrice(c.ProductPrice)})
}
