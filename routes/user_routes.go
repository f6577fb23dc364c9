package routes

import (
	"freelancehub/internal/handlers"
	"freelancehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up profile self-service, password recovery and
// the admin user-management routes
func SetupUserRoutes(r *gin.RouterGroup, userHandler *handlers.UserHandler, jwtSecret string) {
	auth := middleware.AuthRequired(jwtSecret)

	r.PUT("/me/update", auth, userHandler.UpdateProfile)
	r.PUT("/password/update", auth, userHandler.UpdatePassword)

	r.POST("/password/forgot", userHandler.ForgotPassword)
	r.PUT("/password/reset/:token", userHandler.ResetPassword)

	admin := r.Group("/admin", auth, middleware.AdminRequired())
	{
		admin.GET("/users", userHandler.ListUsers)
		admin.GET("/user/:id", userHandler.GetUser)
		admin.PUT("/user/:id", userHandler.UpdateUser)
		admin.DELETE("/user/:id", userHandler.DeleteUser)
	}
}
