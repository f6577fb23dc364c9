package routes

import (
	"freelancehub/internal/handlers"
	"freelancehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupEarningRoutes sets up earnings ledger routes
func SetupEarningRoutes(r *gin.RouterGroup, earningHandler *handlers.EarningHandler, jwtSecret string) {
	r.POST("/earnings", earningHandler.RecordEarning)
	r.GET("/user/earning", middleware.AuthRequired(jwtSecret), earningHandler.GetMyEarnings)
	r.GET("/admin/earning", middleware.AuthRequired(jwtSecret), middleware.AdminRequired(), earningHandler.GetAllEarnings)
}
