package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/middleware"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/services"
)

const invalidAdminData = "Invalid admin data"

// AdminHandler handles admin account management
type AdminHandler struct {
	admins *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admins *services.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// CreateAdminRequest represents the request body for a new admin
type CreateAdminRequest struct {
	Email          string      `json:"email" binding:"required,email"`
	Password       string      `json:"password" binding:"required,min=6,max=72"`
	Role           models.Role `json:"role" binding:"required,oneof=super_admin editor viewer"`
	FullName       string      `json:"fullName" binding:"required,max=255"`
	DocumentType   string      `json:"documentType" binding:"omitempty,max=20"`
	DocumentNumber string      `json:"documentNumber" binding:"omitempty,docnumber"`
	RecoveryEmail  string      `json:"recoveryEmail" binding:"omitempty,email"`
}

// UpdateAdminRequest represents a partial admin update
type UpdateAdminRequest struct {
	Email          *string      `json:"email" binding:"omitempty,email"`
	Password       *string      `json:"password" binding:"omitempty,min=6,max=72"`
	Role           *models.Role `json:"role" binding:"omitempty,oneof=super_admin editor viewer"`
	FullName       *string      `json:"fullName" binding:"omitempty,max=255"`
	DocumentType   *string      `json:"documentType" binding:"omitempty,max=20"`
	DocumentNumber *string      `json:"documentNumber" binding:"omitempty,docnumber"`
	RecoveryEmail  *string      `json:"recoveryEmail" binding:"omitempty,email"`
	IsActive       *bool        `json:"isActive"`
}

// parseAdminID answers unknown ids the same way as missing accounts
func parseAdminID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrAdminNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// HandleList returns every admin account
func (ah *AdminHandler) HandleList(c *gin.Context) {
	admins, err := ah.admins.ListAdmins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

// HandleGet returns one admin account
func (ah *AdminHandler) HandleGet(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}
	admin, err := ah.admins.GetAdmin(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// HandleCreate creates an admin account on behalf of the signed-in super admin
func (ah *AdminHandler) HandleCreate(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, invalidAdminData)
		return
	}

	var createdBy *uuid.UUID
	if session := middleware.GetSession(c); session != nil {
		createdBy = &session.AdminID
	}

	admin, err := ah.admins.CreateAdmin(c.Request.Context(), services.CreateAdminInput{
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		FullName:       req.FullName,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		RecoveryEmail:  req.RecoveryEmail,
	}, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// HandleUpdate applies a partial update to an admin account
func (ah *AdminHandler) HandleUpdate(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}

	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, invalidAdminData)
		return
	}

	admin, err := ah.admins.UpdateAdmin(c.Request.Context(), id, services.UpdateAdminInput{
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		FullName:       req.FullName,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		RecoveryEmail:  req.RecoveryEmail,
		IsActive:       req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// HandleDelete removes an admin account; super admins cannot delete themselves
func (ah *AdminHandler) HandleDelete(c *gin.Context) {
	id, ok := parseAdminID(c)
	if !ok {
		return
	}
	session := middleware.GetSession(c)
	if session == nil {
		respondError(c, services.ErrUnauthorized)
		return
	}

	if err := ah.admins.DeleteAdmin(c.Request.Context(), session.AdminID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
