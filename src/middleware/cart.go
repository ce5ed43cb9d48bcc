package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/config"
	"github.com/khabaroff/flabef-storefront/src/models"
)

const (
	// CartIDKey is the context key for the cart id
	CartIDKey = "cart_id"

	// CartCookieName is the anonymous cart cookie
	CartCookieName = "cart_id"

	cartCookieMaxAge = 30 * 24 * 60 * 60
)

// CartMiddleware resolves the cart a request operates on. In global scope every
// client shares one cart; otherwise an anonymous cookie is issued on first access.
func CartMiddleware(scope string, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if scope == config.CartScopeGlobal {
			c.Set(CartIDKey, models.GlobalCartID)
			c.Next()
			return
		}

		cartID, err := c.Cookie(CartCookieName)
		if err == nil {
			_, err = uuid.Parse(cartID)
		}
		if err != nil {
			cartID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CartCookieName, cartID, cartCookieMaxAge, "/", "", secureCookie, true)
		}

		c.Set(CartIDKey, cartID)
		c.Next()
	}
}

// GetCartID retrieves the cart id from context
func GetCartID(c *gin.Context) string {
	return c.GetString(CartIDKey)
}
