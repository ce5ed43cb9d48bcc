// Package server assembles the HTTP router: middleware chain, route table and access rules.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/khabaroff/flabef-storefront/src/handlers"
	"github.com/khabaroff/flabef-storefront/src/metrics"
	"github.com/khabaroff/flabef-storefront/src/middleware"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/services"
)

// Version is reported by GET /info
const Version = "1.0.0"

// Deps holds everything the router needs
type Deps struct {
	Admins    *services.AdminService
	Sessions  *services.SessionService
	Recovery  *services.RecoveryService
	Catalog   *services.CatalogService
	Cart      *services.CartService
	Contacts  *services.ContactService
	Content   *services.ContentService
	Analytics *services.AnalyticsService
	Metrics   *metrics.Metrics

	HealthChecks   map[string]handlers.HealthCheck
	StorageDriver  string
	AllowedOrigins []string
	CartScope      string
	SecureCookies  bool
}

// NewRouter builds the gin engine with every route registered
func NewRouter(d Deps) *gin.Engine {
	handlers.RegisterValidators()

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(d.Metrics.GinMiddleware())

	corsConfig := cors.Config{
		AllowOrigins:     d.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(d.AllowedOrigins) == 0 {
		// same-origin only
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	}
	router.Use(cors.New(corsConfig))

	healthHandler := handlers.NewHealthHandler(d.HealthChecks, d.StorageDriver, Version)
	authHandler := handlers.NewAuthHandler(d.Admins, d.Sessions, d.Analytics, d.SecureCookies)
	adminHandler := handlers.NewAdminHandler(d.Admins)
	resetHandler := handlers.NewPasswordResetHandler(d.Recovery)
	catalogHandler := handlers.NewCatalogHandler(d.Catalog)
	cartHandler := handlers.NewCartHandler(d.Cart)
	contactHandler := handlers.NewContactHandler(d.Contacts)
	contentHandler := handlers.NewContentHandler(d.Content)

	requireSession := middleware.RequireSession(d.Sessions)
	editors := middleware.RequireRole(models.RoleSuperAdmin, models.RoleEditor)
	superAdmins := middleware.RequireRole(models.RoleSuperAdmin)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)
	router.GET("/info", healthHandler.HandleInfo)
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	api := router.Group("/api")

	// Session
	api.POST("/login", authHandler.HandleLogin)
	api.POST("/logout", authHandler.HandleLogout)
	api.GET("/auth/user", requireSession, authHandler.HandleCurrentUser)

	// Password recovery
	reset := api.Group("/password-reset")
	{
		reset.POST("/verify-document-simple", resetHandler.HandleVerifyDocumentSimple)
		reset.POST("/verify-document", resetHandler.HandleVerifyDocument)
		reset.POST("/request-sms", resetHandler.HandleRequestSMS)
		reset.POST("/request-email", resetHandler.HandleRequestEmail)
		reset.POST("/verify", resetHandler.HandleVerifyCode)
	}

	// Catalog: reads are public, writes need an editor session
	api.GET("/products", catalogHandler.HandleListProducts)
	api.GET("/products/:id", catalogHandler.HandleGetProduct)
	api.POST("/products", requireSession, editors, catalogHandler.HandleCreateProduct)
	api.PUT("/products/:id", requireSession, editors, catalogHandler.HandleUpdateProduct)
	api.DELETE("/products/:id", requireSession, editors, catalogHandler.HandleDeleteProduct)

	api.GET("/it-services", catalogHandler.HandleListITServices)
	api.GET("/it-services/:id", catalogHandler.HandleGetITService)
	api.POST("/it-services", requireSession, editors, catalogHandler.HandleCreateITService)
	api.PUT("/it-services/:id", requireSession, editors, catalogHandler.HandleUpdateITService)
	api.DELETE("/it-services/:id", requireSession, editors, catalogHandler.HandleDeleteITService)

	api.GET("/food-items", catalogHandler.HandleListFoodItems)
	api.GET("/food-items/:id", catalogHandler.HandleGetFoodItem)
	api.POST("/food-items", requireSession, editors, catalogHandler.HandleCreateFoodItem)
	api.PUT("/food-items/:id", requireSession, editors, catalogHandler.HandleUpdateFoodItem)
	api.DELETE("/food-items/:id", requireSession, editors, catalogHandler.HandleDeleteFoodItem)

	// Categories, site settings and footers: reads are public, writes need an editor session
	for path, kind := range map[string]models.CategoryKind{
		"/product-categories": models.CategoryKindProduct,
		"/food-categories":    models.CategoryKindFood,
	} {
		categories := api.Group(path)
		categories.GET("", contentHandler.HandleListCategories(kind))
		categories.POST("", requireSession, editors, contentHandler.HandleCreateCategory(kind))
		categories.PUT("/:id", requireSession, editors, contentHandler.HandleRenameCategory(kind))
		categories.DELETE("/:id", requireSession, editors, contentHandler.HandleDeleteCategory(kind))
	}

	api.GET("/settings", contentHandler.HandleListSettings)
	api.GET("/settings/:key", contentHandler.HandleGetSetting)
	api.PUT("/settings/:key", requireSession, editors, contentHandler.HandleUpdateSetting)

	api.GET("/footers", contentHandler.HandleListFooters)
	api.GET("/footers/:section", contentHandler.HandleGetFooter)
	api.PUT("/footers/:section", requireSession, editors, contentHandler.HandleUpdateFooter)

	// Cart
	cart := api.Group("/cart", middleware.CartMiddleware(d.CartScope, d.SecureCookies))
	{
		cart.GET("", cartHandler.HandleList)
		cart.POST("", cartHandler.HandleAdd)
		cart.DELETE("", cartHandler.HandleClear)
		cart.GET("/:id", cartHandler.HandleGet)
		cart.PATCH("/:id", cartHandler.HandleUpdateQuantity)
		cart.DELETE("/:id", cartHandler.HandleRemove)
	}

	// Contact form
	api.POST("/contact", middleware.ContactRateLimitMiddleware(), contactHandler.HandleCreate)
	api.GET("/contact", requireSession, editors, contactHandler.HandleList)

	// Admin management
	admins := api.Group("/admins", requireSession, superAdmins)
	{
		admins.GET("", adminHandler.HandleList)
		admins.POST("", adminHandler.HandleCreate)
		admins.GET("/:id", adminHandler.HandleGet)
		admins.PUT("/:id", adminHandler.HandleUpdate)
		admins.DELETE("/:id", adminHandler.HandleDelete)
	}

	return router
}
