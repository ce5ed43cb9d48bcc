package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/flabef-storefront/src/middleware"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/services"
	"github.com/shopspring/decimal"
)

// CartHandler serves the shopping cart of the current visitor
type CartHandler struct {
	cart *services.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart *services.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// AddCartItemRequest represents a new cart line
type AddCartItemRequest struct {
	ProductID    string           `json:"productId" binding:"required"`
	ProductName  string           `json:"productName" binding:"required"`
	ProductPrice *decimal.Decimal `json:"productPrice" binding:"required"`
	Quantity     int              `json:"quantity" binding:"omitempty,min=1"`
	Image        string           `json:"image"`
}

// UpdateCartItemRequest carries the new quantity of a line
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=1"`
}

func (h *CartHandler) HandleList(c *gin.Context) {
	items, err := h.cart.List(c.Request.Context(), middleware.GetCartID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) HandleGet(c *gin.Context) {
	item, err := h.cart.Get(c.Request.Context(), middleware.GetCartID(c), c.Param("id"))
	respondWith(c, http.StatusOK, item, err)
}

// HandleAdd adds a line to the cart; adding a product twice creates two lines
func (h *CartHandler) HandleAdd(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductPrice.IsNegative() {
		respondBadRequest(c, "Invalid cart item data")
		return
	}

	item := &models.CartItem{
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		ProductPrice: *req.ProductPrice,
		Quantity:     req.Quantity,
		Image:        req.Image,
	}
	err := h.cart.Add(c.Request.Context(), middleware.GetCartID(c), item)
	respondWith(c, http.StatusCreated, item, err)
}

// HandleUpdateQuantity sets the quantity of a line; non-numeric or < 1 is rejected
func (h *CartHandler) HandleUpdateQuantity(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.ErrInvalidQuantity)
		return
	}

	item, err := h.cart.UpdateQuantity(c.Request.Context(), middleware.GetCartID(c), c.Param("id"), *req.Quantity)
	respondWith(c, http.StatusOK, item, err)
}

func (h *CartHandler) HandleRemove(c *gin.Context) {
	respondDeleted(c, h.cart.Remove(c.Request.Context(), middleware.GetCartID(c), c.Param("id")))
}

func (h *CartHandler) HandleClear(c *gin.Context) {
	respondDeleted(c, h.cart.Clear(c.Request.Context(), middleware.GetCartID(c)))
}
