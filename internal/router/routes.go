package router

import (
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/agent"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/auth"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/banner"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/booking"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/campaign"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/content"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/meta"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/poster"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/product"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/settings"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/imaging"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/mail"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/token"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/spot"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/upload"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies are the external services built in main
type Dependencies struct {
	DB           *gorm.DB
	Health       meta.Pinger
	Storage      storage.Storage
	Mail         mail.Sender
	TokenManager token.Manager
}

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, deps Dependencies) {
	db := deps.DB

	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, deps.Health)
	router.GET("/health", metaHandler.Health)

	// repository
	activityRepository := activity.NewActivityRepository()
	userRepository := user.NewUserRepository()
	bannerRepository := banner.NewBannerRepository()
	spotRepository := spot.NewSpotRepository()
	productRepository := product.NewProductRepository()
	posterRepository := poster.NewPosterRepository()
	agentRepository := agent.NewAgentRepository()
	bookingRepository := booking.NewBookingRepository()
	contentRepository := content.NewContentRepository()
	settingsRepository := settings.NewSettingsRepository()

	// service
	activityService := activity.NewActivityService(db, activityRepository)
	authService := auth.NewAuthService(db, userRepository, deps.TokenManager, activityService)
	userService := user.NewUserService(db, userRepository, activityService)
	bannerService := banner.NewBannerService(db, bannerRepository, deps.Storage, activityService)
	spotService := spot.NewSpotService(db, spotRepository, deps.Storage, activityService)
	productService := product.NewProductService(db, productRepository, deps.Storage, activityService)
	posterService := poster.NewPosterService(db, posterRepository, deps.Storage, activityService)
	agentService := agent.NewAgentService(db, agentRepository, deps.Storage, activityService)
	campaignService := campaign.NewCampaignService(db, posterRepository, agentRepository, deps.Storage, deps.Mail, activityService, campaign.Options{
		Concurrency: cfg.Mail.Concurrency,
		Logo: imaging.Options{
			Scale:    cfg.Mail.LogoScale,
			Margin:   cfg.Mail.LogoMargin,
			Position: imaging.ParsePosition(cfg.Mail.LogoPosition),
		},
	})
	bookingService := booking.NewBookingService(db, bookingRepository, productRepository, activityService)
	contentService := content.NewContentService(db, contentRepository, activityService)
	settingsService := settings.NewSettingsService(db, settingsRepository, deps.Storage, activityService)
	uploadService := upload.NewUploadService(deps.Storage, activityService, cfg.Upload.MaxBytes)

	// handler
	activityHandler := activity.NewActivityHandler(activityService)
	authHandler := auth.NewAuthHandler(authService)
	userHandler := user.NewUserHandler(userService)
	bannerHandler := banner.NewBannerHandler(bannerService)
	spotHandler := spot.NewSpotHandler(spotService)
	productHandler := product.NewProductHandler(productService)
	posterHandler := poster.NewPosterHandler(posterService)
	agentHandler := agent.NewAgentHandler(agentService)
	campaignHandler := campaign.NewCampaignHandler(campaignService)
	bookingHandler := booking.NewBookingHandler(bookingService)
	contentHandler := content.NewContentHandler(contentService)
	settingsHandler := settings.NewSettingsHandler(settingsService)
	uploadHandler := upload.NewUploadHandler(uploadService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/login", authHandler.Login)
		authV1.POST("/refresh", authHandler.Refresh)
	}

	publicV1 := router.Group("/api/v1/public")
	{
		publicV1.POST("/bookings", bookingHandler.CreatePublic)
		publicV1.GET("/contents/:key", contentHandler.GetPublic)
		publicV1.GET("/settings", settingsHandler.Get)
	}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWT(deps.TokenManager))

	usersV1 := v1.Group("/users")
	{
		usersV1.GET("/me", userHandler.GetMe)
		usersV1.PUT("/me/password", userHandler.ChangePassword)

		adminOnly := usersV1.Group("", middleware.RequireRole(model.RoleAdmin))
		adminOnly.GET("", userHandler.List)
		adminOnly.POST("", userHandler.Create)
		adminOnly.GET("/:id", userHandler.Get)
		adminOnly.PUT("/:id", userHandler.Update)
		adminOnly.DELETE("/:id", userHandler.Delete)
	}

	bannersV1 := v1.Group("/banners")
	{
		bannersV1.GET("", bannerHandler.List)
		bannersV1.POST("", bannerHandler.Create)
		bannersV1.PUT("/order", bannerHandler.Reorder)
		bannersV1.GET("/:id", bannerHandler.Get)
		bannersV1.PUT("/:id", bannerHandler.Update)
		bannersV1.DELETE("/:id", bannerHandler.Delete)
	}

	spotsV1 := v1.Group("/spots")
	{
		spotsV1.GET("", spotHandler.List)
		spotsV1.POST("", spotHandler.Create)
		spotsV1.GET("/:id", spotHandler.Get)
		spotsV1.PUT("/:id", spotHandler.Update)
		spotsV1.DELETE("/:id", spotHandler.Delete)
	}

	productsV1 := v1.Group("/products")
	{
		productsV1.GET("", productHandler.List)
		productsV1.POST("", productHandler.Create)
		productsV1.PUT("/order", productHandler.Reorder)
		productsV1.GET("/:id", productHandler.Get)
		productsV1.PUT("/:id", productHandler.Update)
		productsV1.DELETE("/:id", productHandler.Delete)
	}

	postersV1 := v1.Group("/posters")
	{
		postersV1.GET("", posterHandler.List)
		postersV1.POST("", posterHandler.Create)
		postersV1.PUT("/order", posterHandler.Reorder)
		postersV1.GET("/:id", posterHandler.Get)
		postersV1.PUT("/:id", posterHandler.Update)
		postersV1.DELETE("/:id", posterHandler.Delete)
	}

	agentsV1 := v1.Group("/agents")
	{
		agentsV1.GET("", agentHandler.List)
		agentsV1.POST("", agentHandler.Create)
		agentsV1.POST("/emails", campaignHandler.Send)
		agentsV1.GET("/:id", agentHandler.Get)
		agentsV1.PUT("/:id", agentHandler.Update)
		agentsV1.DELETE("/:id", agentHandler.Delete)
	}

	bookingsV1 := v1.Group("/bookings")
	{
		bookingsV1.GET("", bookingHandler.List)
		bookingsV1.POST("", bookingHandler.Create)
		bookingsV1.GET("/:id", bookingHandler.Get)
		bookingsV1.PUT("/:id", bookingHandler.Update)
		bookingsV1.PATCH("/:id/status", bookingHandler.ChangeStatus)
		bookingsV1.DELETE("/:id", bookingHandler.Delete)
	}

	contentsV1 := v1.Group("/contents")
	{
		contentsV1.GET("", contentHandler.List)
		contentsV1.GET("/:key", contentHandler.Get)
		contentsV1.PUT("/:key", contentHandler.Upsert)
		contentsV1.DELETE("/:key", contentHandler.Delete)
	}

	settingsV1 := v1.Group("/settings")
	{
		settingsV1.GET("", settingsHandler.Get)
		settingsV1.PUT("", settingsHandler.Update)
	}

	activityV1 := v1.Group("/activity-logs")
	{
		activityV1.GET("", activityHandler.List)
		activityV1.POST("", activityHandler.Create)
	}

	filesV1 := v1.Group("/files")
	{
		filesV1.POST("", uploadHandler.Upload)
		filesV1.DELETE("", uploadHandler.Delete)
	}
}
