package handlers

import (
	"mime/multipart"
	"strconv"

	"freelancehub/internal/middleware"
	"freelancehub/internal/repositories/interfaces"
	"freelancehub/internal/services"
	"freelancehub/internal/utils"
	"freelancehub/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject publishes a new project with optional images
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var request validators.ProjectCreateRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateProjectCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	images, err := h.formImages(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid image upload: "+err.Error())
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), actorID, &services.CreateProjectRequest{
		Name:        request.Name,
		Title:       request.Title,
		Description: request.Description,
		Price:       request.Price,
		Category:    request.Category,
		Images:      images,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Project created successfully", project)
}

// GetProject retrieves a single project with its poster
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Project retrieved successfully", project)
}

// ListProjects returns a filtered, paginated project listing
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := &interfaces.ProjectFilter{
		Category: c.Query("category"),
		MinPrice: queryFloat(c, "minPrice"),
		MaxPrice: queryFloat(c, "maxPrice"),
	}

	projects, total, err := h.projectService.ListProjects(c.Request.Context(), filter, params)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
		Total:      total,
		Count:      len(projects),
	}

	utils.SuccessResponseWithMeta(c, "Projects retrieved successfully", projects, meta)
}

// ListAllProjects returns every project without pagination. Admin only.
func (h *ProjectHandler) ListAllProjects(c *gin.Context) {
	projects, err := h.projectService.ListAllProjects(c.Request.Context())
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Projects retrieved successfully", projects)
}

// UpdateProject edits a project. Only the poster may edit.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid project ID")
		return
	}

	var request validators.ProjectUpdateRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateProjectUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	images, err := h.formImages(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid image upload: "+err.Error())
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), actorID, projectID, &services.UpdateProjectRequest{
		Title:       request.Title,
		Description: request.Description,
		Price:       request.Price,
		Category:    request.Category,
		Images:      images,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Project updated successfully", project)
}

// DeleteProject removes a project. Poster or admin.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid project ID")
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), actorID, projectID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Project deleted successfully", nil)
}

// formImages pulls the uploaded files out of the multipart form. A
// request without a form or without images is not an error.
func (h *ProjectHandler) formImages(c *gin.Context) ([]*services.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}

	uploads := make([]*services.ImageUpload, 0, len(files))
	for _, file := range files {
		upload, err := openUpload(file)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, nil
}

func openUpload(file *multipart.FileHeader) (*services.ImageUpload, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, err
	}

	return &services.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Reader:      reader,
	}, nil
}

func queryFloat(c *gin.Context, key string) float64 {
	value, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0
	}
	return value
}
