package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/services"
)

// ContactHandler serves the public contact form and its admin listing
type ContactHandler struct {
	contacts *services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// ContactRequestBody represents a contact form submission
type ContactRequestBody struct {
	Name        string             `json:"name" binding:"required,max=255"`
	Phone       string             `json:"phone" binding:"required,max=50"`
	Message     string             `json:"message" binding:"required,max=5000"`
	ServiceType models.ServiceType `json:"serviceType" binding:"required"`
}

// HandleCreate stores a contact request
func (h *ContactHandler) HandleCreate(c *gin.Context) {
	var body ContactRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, services.ErrInvalidServiceType)
		return
	}

	req := &models.ContactRequest{
		Name:        body.Name,
		Phone:       body.Phone,
		Message:     body.Message,
		ServiceType: body.ServiceType,
	}
	if err := h.contacts.Create(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// HandleList returns every contact request, newest first
func (h *ContactHandler) HandleList(c *gin.Context) {
	list, err := h.contacts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
