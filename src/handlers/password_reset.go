package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/flabef-storefront/src/services"
)

// PasswordResetHandler serves the password recovery flow
type PasswordResetHandler struct {
	recovery *services.RecoveryService
}

// NewPasswordResetHandler creates a new password reset handler
func NewPasswordResetHandler(recovery *services.RecoveryService) *PasswordResetHandler {
	return &PasswordResetHandler{recovery: recovery}
}

// VerifyDocumentSimpleRequest carries a bare document number
type VerifyDocumentSimpleRequest struct {
	DocumentNumber string `json:"documentNumber" binding:"required,docnumber"`
}

// VerifyDocumentRequest carries an email and document number pair
type VerifyDocumentRequest struct {
	Email          string `json:"email" binding:"required,email"`
	DocumentNumber string `json:"documentNumber" binding:"required,docnumber"`
}

// RequestSMSCodeRequest asks for a code by SMS
type RequestSMSCodeRequest struct {
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone" binding:"required,min=7,max=20"`
	DocumentNumber string `json:"documentNumber" binding:"omitempty,docnumber"`
}

// RequestEmailCodeRequest asks for a code by email
type RequestEmailCodeRequest struct {
	Email          string `json:"email" binding:"required,email"`
	AdminEmail     string `json:"adminEmail" binding:"omitempty,email"`
	DocumentNumber string `json:"documentNumber" binding:"omitempty,docnumber"`
}

// RedeemCodeRequest carries a recovery code and the new password
type RedeemCodeRequest struct {
	Code        string `json:"code" binding:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=72"`
}

// HandleVerifyDocumentSimple checks that an active account holds the document number
func (h *PasswordResetHandler) HandleVerifyDocumentSimple(c *gin.Context) {
	var req VerifyDocumentSimpleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, services.ErrInvalidVerification.Message)
		return
	}

	if err := h.recovery.VerifyDocument(c.Request.Context(), req.DocumentNumber); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document verified"})
}

// HandleVerifyDocument checks that the account for email holds the document number
func (h *PasswordResetHandler) HandleVerifyDocument(c *gin.Context) {
	var req VerifyDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, services.ErrInvalidVerification.Message)
		return
	}

	if err := h.recovery.VerifyEmailAndDocument(c.Request.Context(), req.Email, req.DocumentNumber); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document verified"})
}

// HandleRequestSMS issues a recovery code and texts it
func (h *PasswordResetHandler) HandleRequestSMS(c *gin.Context) {
	var req RequestSMSCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fieldFailed(err, "Phone") {
			respondBadRequest(c, "A valid phone number is required")
			return
		}
		respondBadRequest(c, services.ErrInvalidVerification.Message)
		return
	}

	result, err := h.recovery.RequestSMSCode(c.Request.Context(), services.SMSCodeRequest{
		Email:          req.Email,
		Phone:          req.Phone,
		DocumentNumber: req.DocumentNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondIssued(c, result)
}

// HandleRequestEmail issues a recovery code and emails it
func (h *PasswordResetHandler) HandleRequestEmail(c *gin.Context) {
	var req RequestEmailCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, services.ErrInvalidVerification.Message)
		return
	}

	result, err := h.recovery.RequestEmailCode(c.Request.Context(), services.EmailCodeRequest{
		Email:          req.Email,
		AdminEmail:     req.AdminEmail,
		DocumentNumber: req.DocumentNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondIssued(c, result)
}

func respondIssued(c *gin.Context, result *services.IssueResult) {
	body := gin.H{"message": result.Message}
	if result.Code != "" {
		body["code"] = result.Code
	}
	c.JSON(http.StatusOK, body)
}

// HandleVerifyCode redeems a recovery code and sets the new password
func (h *PasswordResetHandler) HandleVerifyCode(c *gin.Context) {
	var req RedeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fe := fieldError(err, "NewPassword"); fe != nil {
			if fe.Tag() == "max" {
				respondBadRequest(c, services.ErrPasswordTooLong.Message)
				return
			}
			respondBadRequest(c, "Password must be at least 6 characters")
			return
		}
		respondBadRequest(c, services.ErrInvalidCode.Message)
		return
	}

	if err := h.recovery.RedeemCode(c.Request.Context(), req.Code, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
