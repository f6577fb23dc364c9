package routes

import (
	"freelancehub/internal/handlers"
	"freelancehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBidRoutes sets up routes for the bid lifecycle
func SetupBidRoutes(r *gin.RouterGroup, bidHandler *handlers.BidHandler, jwtSecret string) {
	authed := r.Group("")
	authed.Use(middleware.AuthRequired(jwtSecret))
	{
		authed.POST("/bid/new", bidHandler.CreateBid)
		authed.GET("/bid/:id", bidHandler.GetBid)
		authed.GET("/bids/me", bidHandler.GetMyBids)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/bids", bidHandler.GetAllBids)
		admin.PUT("/bid/:id", bidHandler.UpdateBidStatus)
		admin.DELETE("/bid/:id", bidHandler.DeleteBid)
	}
}
