package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/amirhossein-jamali/rewards-pool/docs"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/identity"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler served by the API
type Handlers struct {
	Auth       *handler.AuthHandler
	Access     *handler.AccessHandler
	User       *handler.UserHandler
	Pool       *handler.PoolHandler
	Settlement *handler.SettlementHandler
	Article    *handler.ArticleHandler
	Health     *handler.HealthHandler
}

// Guards holds what the authentication middleware needs
type Guards struct {
	Identity identity.Provider
	Access   usecase.AccessUseCase
	Logger   coreport.Logger
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, guards Guards, enableSwagger bool) {
	authenticated := middleware.Authenticate(guards.Identity, guards.Logger)
	adminOnly := middleware.RequireRole(guards.Access, guards.Logger, entity.RoleAdmin)
	editors := middleware.RequireRole(guards.Access, guards.Logger, entity.RoleAdmin, entity.RoleAuthor)

	router.GET("/health", h.Health.Health)
	if enableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))
	}

	// Auth routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", h.Auth.SignUp)
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.POST("/federated", h.Auth.Federated)
		authRoutes.POST("/logout", h.Auth.Logout)
	}
	router.POST("/onboarding", authenticated, h.Auth.Onboarding)

	// GET /access?page=dashboard
	router.GET("/access", middleware.OptionalAuthenticate(guards.Identity), h.Access.Check)

	// Published articles
	router.GET("/articles", h.Article.ListPublished)
	router.GET("/articles/:slug", h.Article.GetPublished)

	// Account ledger
	meRoutes := router.Group("/me", authenticated)
	{
		meRoutes.GET("/dashboard", h.User.GetDashboard)
		meRoutes.GET("/referrals", h.User.ListReferrals)
	}

	// Conversion pool
	poolRoutes := router.Group("/pool", authenticated)
	{
		poolRoutes.POST("/conversions", h.Pool.SubmitConversion)
		poolRoutes.GET("/conversions", h.Pool.ListConversions)
		poolRoutes.GET("/status", h.Pool.GetPoolStatus)
	}

	// Settlement admin
	adminRoutes := router.Group("/admin", authenticated, adminOnly)
	{
		adminRoutes.GET("/pool", h.Settlement.GetPoolStatus)
		adminRoutes.PUT("/pool/settlement", h.Settlement.SetNextSettlementTime)
		adminRoutes.PUT("/pool/rate", h.Settlement.SetConversionRate)
		adminRoutes.GET("/pool/pending", h.Settlement.ListPendingConversions)
		adminRoutes.POST("/pool/settle", h.Settlement.TriggerSettlement)
		adminRoutes.POST("/referral-earnings", h.User.CreditReferral)
	}

	// Content store, open to authors as well
	cmsRoutes := router.Group("/admin/articles", authenticated, editors)
	{
		cmsRoutes.GET("", h.Article.List)
		cmsRoutes.GET("/:id", h.Article.Get)
		cmsRoutes.POST("", h.Article.Create)
		cmsRoutes.PUT("/:id", h.Article.Update)
		cmsRoutes.DELETE("/:id", h.Article.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	// Request ID first so every later middleware can log it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
