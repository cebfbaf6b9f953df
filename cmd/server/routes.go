package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"velora.backend/internal/interfaces/http/handlers"
	"velora.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	kycHandler      *handlers.KycHandler
	productHandler  *handlers.ProductHandler
	cartHandler     *handlers.CartHandler
	favoriteHandler *handlers.FavoriteHandler
	sliderHandler   *handlers.SliderHandler
	orderHandler    *handlers.OrderHandler
	adminHandler    *handlers.AdminHandler
	authMiddleware  gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine, origin string) {
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", d.authHandler.Signup)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/check-token", d.authHandler.CheckToken)
			auth.GET("/google", d.authHandler.GoogleRedirect)
			auth.GET("/google/callback", d.authHandler.GoogleCallback)
			auth.POST("/forgot-password", d.authHandler.ForgotPassword)
			auth.POST("/verify-code", d.authHandler.VerifyCode)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
		}

		// Catalog routes (public, published products only)
		products := v1.Group("/products")
		{
			products.GET("", d.productHandler.List)
			products.GET("/:id", d.productHandler.Get)
		}

		// Homepage slider (public)
		v1.GET("/slider", d.sliderHandler.List)

		// KYC routes (protected)
		kyc := v1.Group("/kyc")
		kyc.Use(d.authMiddleware)
		{
			kyc.POST("", d.kycHandler.Submit)
			kyc.GET("/status", d.kycHandler.Status)
		}

		// Cart routes (protected)
		cart := v1.Group("/cart")
		cart.Use(d.authMiddleware)
		{
			cart.GET("", d.cartHandler.List)
			cart.POST("", d.cartHandler.Add)
			cart.PATCH("/:id", d.cartHandler.UpdateQuantity)
			cart.DELETE("/:id", d.cartHandler.Remove)
		}

		// Favorite routes (protected)
		favorites := v1.Group("/favorites")
		favorites.Use(d.authMiddleware)
		{
			favorites.GET("", d.favoriteHandler.List)
			favorites.POST("/:productId", d.favoriteHandler.Add)
			favorites.DELETE("/:productId", d.favoriteHandler.Remove)
		}

		// Order routes (protected)
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.POST("/checkout", middleware.IdempotencyMiddleware(), d.orderHandler.Checkout)
			orders.GET("", d.orderHandler.List)
			orders.GET("/:id", d.orderHandler.Get)
		}

		// Admin routes (role checked on verified claims, never on request fields)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.Stats)
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)

			admin.GET("/products", d.productHandler.AdminList)
			admin.POST("/products", d.productHandler.Create)
			admin.PUT("/products/:id", d.productHandler.Update)
			admin.DELETE("/products/:id", d.productHandler.Delete)

			admin.GET("/kyc", d.kycHandler.List)
			admin.PATCH("/kyc/:id", d.kycHandler.Decide)

			admin.POST("/slider", d.sliderHandler.Add)
			admin.PATCH("/slider/:id", d.sliderHandler.Move)
			admin.DELETE("/slider/:id", d.sliderHandler.Remove)
		}
	}
}
