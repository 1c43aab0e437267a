// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clothify/clothify-backend/internal/config"
	"github.com/clothify/clothify-backend/internal/handlers"
	"github.com/clothify/clothify-backend/internal/middleware"
	"github.com/clothify/clothify-backend/internal/services"
	"github.com/clothify/clothify-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	categoryService := services.NewCategoryService(db)
	reviewService := services.NewReviewService(db)
	wishlistService := services.NewWishlistService(db)
	cartService := services.NewCartService(db)
	orderService := services.NewOrderService(db)
	paymentService := services.NewPaymentService(db, cfg)
	reportService := services.NewReportService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, paymentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	adminHandler := handlers.NewAdminHandler(reportService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Activation link shim, served at the root so emailed URLs stay short
	r.GET("/activate/:uid/:token", authHandler.Activate)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Category routes: reads are public, writes are staff-only
		categories := v1.Group("/categories")
		{
			categories.GET("", middleware.OptionalAuth(), categoryHandler.GetCategories)
			categories.GET("/:id", middleware.OptionalAuth(), categoryHandler.GetCategory)

			staff := categories.Group("")
			staff.Use(middleware.AuthRequired(), middleware.StaffRequired())
			{
				staff.POST("", categoryHandler.CreateCategory)
				staff.PUT("/:id", categoryHandler.UpdateCategory)
				staff.DELETE("/:id", categoryHandler.DeleteCategory)
			}
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/latest", middleware.OptionalAuth(), productHandler.GetLatestProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)
			products.GET("/:id/images", middleware.OptionalAuth(), productHandler.GetProductImages)
			products.GET("/:id/images/:imageId", middleware.OptionalAuth(), productHandler.GetProductImage)

			staff := products.Group("")
			staff.Use(middleware.AuthRequired(), middleware.StaffRequired())
			{
				staff.POST("", productHandler.CreateProduct)
				staff.PUT("/:id", productHandler.UpdateProduct)
				staff.DELETE("/:id", productHandler.DeleteProduct)
				staff.POST("/:id/images", middleware.UploadRateLimit(), productHandler.AddProductImage)
				staff.DELETE("/:id/images/:imageId", productHandler.DeleteProductImage)
			}

			// Review routes nested under their product
			reviews := products.Group("/:id/reviews")
			reviews.Use(middleware.AuthRequired())
			{
				reviews.GET("", reviewHandler.GetProductReviews)
				reviews.POST("", reviewHandler.CreateReview)
				reviews.GET("/:reviewId", reviewHandler.GetReview)
				reviews.PUT("/:reviewId", reviewHandler.UpdateReview)
				reviews.DELETE("/:reviewId", reviewHandler.DeleteReview)
			}
		}

		// The caller's own reviews across all products
		v1.GET("/reviews/mine", middleware.AuthRequired(), reviewHandler.GetMyReviews)

		// Wishlist routes
		wishlist := v1.Group("/wishlist")
		wishlist.Use(middleware.AuthRequired())
		{
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.POST("", wishlistHandler.AddWishlistItem)
			wishlist.GET("/:id", wishlistHandler.GetWishlistItem)
			wishlist.DELETE("/:id", wishlistHandler.RemoveWishlistItem)
		}

		// Cart routes
		carts := v1.Group("/carts")
		carts.Use(middleware.AuthRequired())
		{
			carts.POST("", cartHandler.CreateCart)
			carts.GET("", cartHandler.GetCarts)
			carts.GET("/:id", cartHandler.GetCart)
			carts.DELETE("/:id", cartHandler.DeleteCart)

			carts.GET("/:id/items", cartHandler.GetCartItems)
			carts.POST("/:id/items", cartHandler.AddCartItem)
			carts.GET("/:id/items/:itemId", cartHandler.GetCartItem)
			carts.PATCH("/:id/items/:itemId", cartHandler.UpdateCartItem)
			carts.DELETE("/:id/items/:itemId", cartHandler.RemoveCartItem)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.Checkout)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/pay", orderHandler.PayOrder)
			orders.POST("/:id/refund", middleware.StaffRequired(), paymentHandler.RefundOrder)
		}

		// Payment routes
		payments := v1.Group("/payments")
		payments.Use(middleware.AuthRequired())
		{
			payments.POST("/confirm", paymentHandler.ConfirmPayment)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.StaffRequired())
		{
			admin.GET("/statistics", adminHandler.GetStatistics)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
