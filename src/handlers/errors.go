package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/flabef-storefront/src/services"
	"github.com/rs/zerolog"
)

// internalErrorMessage is the only body an unclassified failure ever gets
const internalErrorMessage = "Internal server error"

// statusFor maps a service error kind to an HTTP status
func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindInvalid, services.KindExpired:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindAuth:
		return http.StatusUnauthorized
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindConflict:
		return http.StatusConflict
	case services.KindDelivery:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {error: message}. Classified errors carry a
// client-safe message; anything else is logged and answered with a fixed 500.
func respondError(c *gin.Context, err error) {
	kind := services.KindOf(err)
	status := statusFor(kind)

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(status, gin.H{"error": internalErrorMessage})
		return
	}

	var se *services.Error
	if !errors.As(err, &se) {
		c.JSON(status, gin.H{"error": internalErrorMessage})
		return
	}
	if se.Err != nil {
		zerolog.Ctx(c.Request.Context()).Warn().Err(se.Err).Int("status", status).Msg(se.Message)
	}
	c.JSON(status, gin.H{"error": se.Message})
}

// respondBadRequest answers a malformed body with a fixed message
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
