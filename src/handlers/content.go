package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/services"
)

const (
	invalidCategoryData = "Invalid category data"
	invalidSettingData  = "Invalid setting data"
	invalidFooterData   = "Invalid footer data"
)

// ContentHandler serves categories, site settings and section footers
type ContentHandler struct {
	content *services.ContentService
}

// NewContentHandler creates a new storefront content handler
func NewContentHandler(content *services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// CategoryRequest represents the request body for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// SettingRequest carries the new value of a site setting
type SettingRequest struct {
	Value map[string]any `json:"value" binding:"required"`
}

// FooterRequest represents the request body for a section footer
type FooterRequest struct {
	Title       string            `json:"title" binding:"required,max=255"`
	Description string            `json:"description" binding:"max=1000"`
	Address     string            `json:"address" binding:"max=255"`
	Phone       string            `json:"phone" binding:"max=50"`
	Email       string            `json:"email" binding:"omitempty,email"`
	SocialLinks map[string]string `json:"socialLinks" binding:"omitempty,dive,url"`
}

// HandleListCategories lists the categories of one catalog
func (h *ContentHandler) HandleListCategories(kind models.CategoryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := h.content.ListCategories(c.Request.Context(), kind)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func (h *ContentHandler) HandleCreateCategory(kind models.CategoryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, invalidCategoryData)
			return
		}
		category, err := h.content.CreateCategory(c.Request.Context(), kind, req.Name)
		respondWith(c, http.StatusCreated, category, err)
	}
}

func (h *ContentHandler) HandleRenameCategory(kind models.CategoryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, invalidCategoryData)
			return
		}
		category, err := h.content.RenameCategory(c.Request.Context(), kind, c.Param("id"), req.Name)
		respondWith(c, http.StatusOK, category, err)
	}
}

func (h *ContentHandler) HandleDeleteCategory(kind models.CategoryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondDeleted(c, h.content.DeleteCategory(c.Request.Context(), kind, c.Param("id")))
	}
}

// HandleListSettings returns every site setting
func (h *ContentHandler) HandleListSettings(c *gin.Context) {
	settings, err := h.content.ListSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *ContentHandler) HandleGetSetting(c *gin.Context) {
	setting, err := h.content.GetSetting(c.Request.Context(), c.Param("key"))
	respondWith(c, http.StatusOK, setting, err)
}

// HandleUpdateSetting replaces the value of a setting
func (h *ContentHandler) HandleUpdateSetting(c *gin.Context) {
	var req SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, invalidSettingData)
		return
	}
	setting, err := h.content.UpdateSetting(c.Request.Context(), c.Param("key"), req.Value)
	respondWith(c, http.StatusOK, setting, err)
}

// HandleListFooters returns the footer of every section
func (h *ContentHandler) HandleListFooters(c *gin.Context) {
	footers, err := h.content.ListFooters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, footers)
}

func (h *ContentHandler) HandleGetFooter(c *gin.Context) {
	footer, err := h.content.GetFooter(c.Request.Context(), models.FooterSection(c.Param("section")))
	respondWith(c, http.StatusOK, footer, err)
}

func (h *ContentHandler) HandleUpdateFooter(c *gin.Context) {
	var req FooterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, invalidFooterData)
		return
	}
	footer, err := h.content.UpdateFooter(c.Request.Context(), models.FooterSection(c.Param("section")), services.FooterInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		SocialLinks: req.SocialLinks,
	})
	respondWith(c, http.StatusOK, footer, err)
}
