package router

import (
	"github.com/foodiespot/foodiespot-backend/config"
	"github.com/foodiespot/foodiespot-backend/internal/app/controller"
	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"github.com/foodiespot/foodiespot-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController      *controller.AuthController
	shopController      *controller.ShopController
	menuController      *controller.MenuController
	reviewController    *controller.ReviewController
	dashboardController *controller.DashboardController
	uploadController    *controller.UploadController
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	shopController *controller.ShopController,
	menuController *controller.MenuController,
	reviewController *controller.ReviewController,
	dashboardController *controller.DashboardController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:      authController,
		shopController:      shopController,
		menuController:      menuController,
		reviewController:    reviewController,
		dashboardController: dashboardController,
		uploadController:    uploadController,
		authMiddleware:      authMiddleware,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "FoodieSpot API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		// Browsing is public: guests can list shops, open a shop page
		// and read its reviews without signing in
		shops := v1.Group("/shops")
		{
			shops.GET("", r.shopController.ListShops)
			shops.GET("/:id", r.shopController.GetShopByID)
			shops.GET("/:id/reviews", r.reviewController.ListShopReviews)

			shops.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleShopOwner),
				r.shopController.CreateShop,
			)
			shops.PUT("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleShopOwner),
				r.shopController.UpdateShop,
			)
			shops.POST("/:id/items",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleShopOwner),
				r.menuController.CreateItem,
			)
			shops.POST("/:id/reviews",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleCustomer),
				r.reviewController.CreateReview,
			)
		}

		items := v1.Group("/items")
		items.Use(r.authMiddleware.Authenticate())
		items.Use(r.authMiddleware.RequireRole(model.RoleShopOwner))
		{
			items.PUT("/:id", r.menuController.UpdateItem)
			items.DELETE("/:id", r.menuController.DeleteItem)
			items.PATCH("/:id/stock", r.menuController.ToggleStock)
		}

		dashboard := v1.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		dashboard.Use(r.authMiddleware.RequireRole(model.RoleShopOwner))
		{
			dashboard.GET("/shop", r.dashboardController.GetMyShop)
			dashboard.GET("/reviews/export", r.dashboardController.ExportReviews)
		}

		uploads := v1.Group("/uploads")
		uploads.Use(r.authMiddleware.Authenticate())
		uploads.Use(r.authMiddleware.RequireRole(model.RoleShopOwner))
		{
			uploads.POST("/presign", r.uploadController.Presign)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
