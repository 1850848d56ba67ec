package router

import (
	"github.com/gin-gonic/gin"

	"renty/internal/config"
	"renty/internal/handler"
	"renty/internal/middleware"
	"renty/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	tenantH *handler.TenantHandler,
	reviewH *handler.ReviewHandler,
	verificationH *handler.VerificationHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/signup", authH.Signup)
	auth.POST("/login", authH.Login)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.Auth(authSvc))

	tenants := protected.Group("/tenants")
	tenants.GET("/search", tenantH.Search)
	tenants.GET("/:id", tenantH.GetByID)
	tenants.POST("", tenantH.Create)

	protected.POST("/reviews", reviewH.Create)
	protected.POST("/leases/verify", verificationH.VerifyLease)

	return r
}
