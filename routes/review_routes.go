package routes

import (
	"freelancehub/internal/handlers"
	"freelancehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupReviewRoutes sets up project and user review routes
func SetupReviewRoutes(r *gin.RouterGroup, reviewHandler *handlers.ReviewHandler, jwtSecret string) {
	auth := middleware.AuthRequired(jwtSecret)

	r.PUT("/review", auth, reviewHandler.UpsertProjectReview)
	r.GET("/reviews", reviewHandler.GetProjectReviews)
	r.DELETE("/reviews", auth, reviewHandler.DeleteProjectReview)

	r.PUT("/user/review", auth, reviewHandler.UpsertUserReview)
	r.GET("/user/reviews", reviewHandler.GetUserReviews)
	r.DELETE("/user/reviews", auth, reviewHandler.DeleteUserReview)
}
