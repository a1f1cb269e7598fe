package router

import (
	"github.com/labstack/echo/v4"

	"procurehub/internal/adapter/api/handler"
	"procurehub/internal/adapter/api/middleware"
)

// SetupProductRouter sets up product and category routes
func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler, authMiddleware *middleware.AuthMiddleware) {
	// Public browsing
	e.GET("/api/v1/products", productHandler.ListProducts)
	e.GET("/api/v1/products/:id", productHandler.GetProduct)
	e.GET("/api/v1/categories", productHandler.ListCategories)

	protected := e.Group("/api/v1")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/products", productHandler.CreateProduct)
	protected.GET("/my-products", productHandler.ListMyProducts)
	protected.DELETE("/products/:id", productHandler.DeleteProduct)
	protected.POST("/categories", productHandler.CreateCategory)
}
