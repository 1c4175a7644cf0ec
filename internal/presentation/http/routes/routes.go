package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rodamoinho/recibos-api/internal/config"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/handler"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/middleware"
	"github.com/rodamoinho/recibos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Profile   *handler.ProfileHandler
	Signature *handler.SignatureHandler
	Receipt   *handler.ReceiptHandler
	History   *handler.HistoryHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)
		v1.GET("/payers", h.Receipt.Payers)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.POST("/auth/logout", h.Auth.Logout)

	// Provider profile
	profile := protected.Group("/profile")
	{
		profile.GET("", h.Profile.Get)
		profile.PUT("", h.Profile.Update)
		profile.GET("/logo", h.Profile.GetLogo)
		profile.POST("/logo", h.Profile.UploadLogo)
		profile.DELETE("/logo", h.Profile.RemoveLogo)
	}

	// Signature capture
	sig := protected.Group("/signature")
	{
		sig.GET("", h.Signature.Status)
		sig.POST("/events", h.Signature.Apply)
		sig.DELETE("", h.Signature.Clear)
	}

	// Receipts
	receipts := protected.Group("/receipts")
	{
		receipts.POST("", h.Receipt.Finalize)
		receipts.POST("/draft", h.Receipt.NewDraft)
		receipts.POST("/totals", h.Receipt.Totals)
		receipts.POST("/preview", h.Receipt.Preview)
		receipts.POST("/enhance", h.Receipt.Enhance)
		receipts.GET("/history", h.History.List)
		receipts.DELETE("/history/:number", h.History.Remove)
	}
}
