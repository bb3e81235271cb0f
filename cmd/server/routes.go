package main

import (
	"net/http"

	"agrioptimize.backend/internal/interfaces/http/handlers"
	"github.com/gin-gonic/gin"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	userHandler      *handlers.UserHandler
	farmerHandler    *handlers.FarmerHandler
	farmInfoHandler  *handlers.FarmInfoHandler
	assistantHandler *handlers.AssistantHandler
	authMiddleware   gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", d.authHandler.Signup)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/dashboard", d.authMiddleware, d.authHandler.Dashboard)
		}

		// User account routes
		users := api.Group("/users")
		{
			users.POST("/register", d.userHandler.Register)
			users.GET("/profile", d.authMiddleware, d.userHandler.Profile)
		}

		// Farmer profile routes (protected)
		farmers := api.Group("/farmers")
		farmers.Use(d.authMiddleware)
		{
			farmers.POST("", d.farmerHandler.Create)
			farmers.GET("/me", d.farmerHandler.GetMe)
			farmers.PUT("/me", d.farmerHandler.UpdateMe)
		}

		// Farm info routes (protected)
		farmInfo := api.Group("/farminfo")
		farmInfo.Use(d.authMiddleware)
		{
			farmInfo.POST("", d.farmInfoHandler.Create)
			farmInfo.GET("/me", d.farmInfoHandler.GetMe)
			farmInfo.PUT("/me", d.farmInfoHandler.UpdateMe)
			farmInfo.GET("/me/weather", d.farmInfoHandler.Weather)
		}

		// Assistant route (protected)
		api.POST("/assistant", d.authMiddleware, d.assistantHandler.Chat)
	}
}

// applyCORSMiddleware reflects the request origin so browser clients on any
// host can call the API with credentials.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "agrioptimize-backend",
			"version": "0.1.0",
		})
	})
}
