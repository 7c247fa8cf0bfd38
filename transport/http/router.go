package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/service"
)

// SetupRouter sets up the Gin router
func SetupRouter(authService *service.AuthService, docService *service.DocumentService) *gin.Engine {
	router := gin.Default()
	router.Use(MetricsMiddleware())

	handlers := NewHandlers(authService, docService)

	router.GET("/metrics", MetricsHandler())

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/challenge", handlers.Challenge)
		auth.POST("/login", handlers.Login)
	}

	// Protected API routes
	api := router.Group("/api")
	api.Use(AuthMiddleware(authService))
	{
		api.GET("/me", handlers.Me)
		api.POST("/documents", handlers.CreateDocument)
		api.GET("/documents", handlers.ListDocuments)
		api.GET("/documents/:id", handlers.GetDocument)
		api.PUT("/documents/:id", handlers.UpdateDocument)
		api.DELETE("/documents/:id", handlers.DeleteDocument)
	}

	return router
}
