package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/flabef-storefront/src/middleware"
	"github.com/khabaroff/flabef-storefront/src/services"
)

// AuthHandler handles admin sign-in and sign-out
type AuthHandler struct {
	admins       *services.AdminService
	sessions     *services.SessionService
	analytics    *services.AnalyticsService
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(admins *services.AdminService, sessions *services.SessionService, analytics *services.AnalyticsService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		admins:       admins,
		sessions:     sessions,
		analytics:    analytics,
		secureCookie: secureCookie,
	}
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CurrentUserResponse is the public view of the signed-in admin
type CurrentUserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

func (ah *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		services.SessionCookieName,
		token,
		maxAge,
		"/",
		"",
		ah.secureCookie,
		true, // HttpOnly
	)
}

// HandleLogin authenticates an admin and starts a session
func (ah *AuthHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Email and password are required")
		return
	}

	admin, err := ah.admins.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, _, err := ah.sessions.Create(c.Request.Context(), admin)
	if err != nil {
		respondError(c, err)
		return
	}

	ah.setSessionCookie(c, token, int(ah.sessions.TTL().Seconds()))
	ah.analytics.TrackAdminLogin(c.Request.Context(), admin.Email, string(admin.Role))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    admin,
	})
}

// HandleLogout destroys the current session and clears the cookie
func (ah *AuthHandler) HandleLogout(c *gin.Context) {
	if token := middleware.SessionToken(c); strings.TrimSpace(token) != "" {
		if err := ah.sessions.Destroy(c.Request.Context(), token); err != nil {
			respondError(c, err)
			return
		}
	}

	ah.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// HandleCurrentUser returns the signed-in admin; it runs behind RequireSession
func (ah *AuthHandler) HandleCurrentUser(c *gin.Context) {
	session := middleware.GetSession(c)
	if session == nil {
		respondError(c, services.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, CurrentUserResponse{
		ID:       session.AdminID.String(),
		Email:    session.Email,
		Role:     string(session.Role),
		FullName: session.FullName,
	})
}
