package routes

import (
	"freelancehub/internal/handlers"
	"freelancehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupProjectRoutes sets up project catalog routes. Ownership checks
// for updates and deletes live in the service layer.
func SetupProjectRoutes(r *gin.RouterGroup, projectHandler *handlers.ProjectHandler, jwtSecret string) {
	auth := middleware.AuthRequired(jwtSecret)

	r.GET("/projects", projectHandler.ListProjects)
	r.GET("/project/:id", projectHandler.GetProject)

	r.POST("/project/new", auth, projectHandler.CreateProject)
	r.PUT("/project/:id", auth, projectHandler.UpdateProject)
	r.DELETE("/project/:id", auth, projectHandler.DeleteProject)

	r.GET("/admin/projects", auth, middleware.AdminRequired(), projectHandler.ListAllProjects)
}
