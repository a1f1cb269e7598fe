package router

import (
	"github.com/labstack/echo/v4"

	"procurehub/internal/adapter/api/handler"
	"procurehub/internal/adapter/api/middleware"
)

// SetupBidRouter sets up bid routes. Creating a bid is addressed by the
// seller and product it targets, mirroring how buyers reach the form.
func SetupBidRouter(e *echo.Echo, bidHandler *handler.BidHandler, authMiddleware *middleware.AuthMiddleware) {
	protected := e.Group("/api/v1")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/bids/:sellerId/:productId", bidHandler.CreateBid)
	protected.GET("/bids", bidHandler.ListBids)
	protected.DELETE("/bids/:id", bidHandler.DeleteBid)
}
