package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/services"
	"github.com/shopspring/decimal"
)

const (
	invalidProductData  = "Invalid product data"
	invalidServiceData  = "Invalid service data"
	invalidFoodItemData = "Invalid food item data"
)

// CatalogHandler serves products, IT services and food items
type CatalogHandler struct {
	catalog *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ProductRequest represents the request body for a new product
type ProductRequest struct {
	Name        string           `json:"name" binding:"required,max=255"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Category    string           `json:"category" binding:"required,max=100"`
	Image       string           `json:"image"`
	Featured    bool             `json:"featured"`
	InStock     *bool            `json:"inStock"`
}

// ITServiceRequest represents the request body for a new IT service
type ITServiceRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	Features    []string `json:"features" binding:"omitempty,dive,required"`
	Icon        string   `json:"icon"`
}

// FoodItemRequest represents the request body for a new food item
type FoodItemRequest struct {
	Name        string           `json:"name" binding:"required,max=255"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Category    string           `json:"category" binding:"required,max=100"`
	Image       string           `json:"image"`
	Available   *bool            `json:"available"`
}

func validPrice(p *decimal.Decimal) bool {
	return p == nil || !p.IsNegative()
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// respondWith writes v with status or maps err
func respondWith[T any](c *gin.Context, status int, v *T, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, v)
}

func respondDeleted(c *gin.Context, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleListProducts lists products; ?category= filters, "all" or empty means everything
func (ch *CatalogHandler) HandleListProducts(c *gin.Context) {
	products, err := ch.catalog.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ch *CatalogHandler) HandleGetProduct(c *gin.Context) {
	p, err := ch.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	respondWith(c, http.StatusOK, p, err)
}

func (ch *CatalogHandler) HandleCreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validPrice(req.Price) {
		respondBadRequest(c, invalidProductData)
		return
	}

	p := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Featured:    req.Featured,
		InStock:     boolOr(req.InStock, true),
	}
	err := ch.catalog.CreateProduct(c.Request.Context(), p)
	respondWith(c, http.StatusCreated, p, err)
}

func (ch *CatalogHandler) HandleUpdateProduct(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil || !validPrice(patch.Price) {
		respondBadRequest(c, invalidProductData)
		return
	}
	p, err := ch.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	respondWith(c, http.StatusOK, p, err)
}

func (ch *CatalogHandler) HandleDeleteProduct(c *gin.Context) {
	respondDeleted(c, ch.catalog.DeleteProduct(c.Request.Context(), c.Param("id")))
}

// HandleListITServices lists every IT service
func (ch *CatalogHandler) HandleListITServices(c *gin.Context) {
	list, err := ch.catalog.ListITServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ch *CatalogHandler) HandleGetITService(c *gin.Context) {
	s, err := ch.catalog.GetITService(c.Request.Context(), c.Param("id"))
	respondWith(c, http.StatusOK, s, err)
}

func (ch *CatalogHandler) HandleCreateITService(c *gin.Context) {
	var req ITServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, invalidServiceData)
		return
	}

	s := &models.ITService{
		Title:       req.Title,
		Description: req.Description,
		Features:    req.Features,
		Icon:        req.Icon,
	}
	err := ch.catalog.CreateITService(c.Request.Context(), s)
	respondWith(c, http.StatusCreated, s, err)
}

func (ch *CatalogHandler) HandleUpdateITService(c *gin.Context) {
	var patch models.ITServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, invalidServiceData)
		return
	}
	s, err := ch.catalog.UpdateITService(c.Request.Context(), c.Param("id"), patch)
	respondWith(c, http.StatusOK, s, err)
}

func (ch *CatalogHandler) HandleDeleteITService(c *gin.Context) {
	respondDeleted(c, ch.catalog.DeleteITService(c.Request.Context(), c.Param("id")))
}

// HandleListFoodItems lists the menu; ?category= filters, "all" or empty means everything
func (ch *CatalogHandler) HandleListFoodItems(c *gin.Context) {
	items, err := ch.catalog.ListFoodItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ch *CatalogHandler) HandleGetFoodItem(c *gin.Context) {
	f, err := ch.catalog.GetFoodItem(c.Request.Context(), c.Param("id"))
	respondWith(c, http.StatusOK, f, err)
}

func (ch *CatalogHandler) HandleCreateFoodItem(c *gin.Context) {
	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validPrice(req.Price) {
		respondBadRequest(c, invalidFoodItemData)
		return
	}

	f := &models.FoodItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Available:   boolOr(req.Available, true),
	}
	err := ch.catalog.CreateFoodItem(c.Request.Context(), f)
	respondWith(c, http.StatusCreated, f, err)
}

func (ch *CatalogHandler) HandleUpdateFoodItem(c *gin.Context) {
	var patch models.FoodItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil || !validPrice(patch.Price) {
		respondBadRequest(c, invalidFoodItemData)
		return
	}
	f, err := ch.catalog.UpdateFoodItem(c.Request.Context(), c.Param("id"), patch)
	respondWith(c, http.StatusOK, f, err)
}

func (ch *CatalogHandler) HandleDeleteFoodItem(c *gin.Context) {
	respondDeleted(c, ch.catalog.DeleteFoodItem(c.Request.Context(), c.Param("id")))
}
