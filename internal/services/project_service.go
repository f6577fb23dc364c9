package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"freelancehub/internal/models"
	"freelancehub/internal/repositories/interfaces"
	"freelancehub/internal/utils"
	"freelancehub/pkg/logger"
	"freelancehub/pkg/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectService interface {
	CreateProject(ctx context.Context, actorID primitive.ObjectID, request *CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id primitive.ObjectID) (*models.ProjectDetails, error)
	ListProjects(ctx context.Context, filter *interfaces.ProjectFilter, params *utils.PaginationParams) ([]*models.Project, int64, error)
	ListAllProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, actorID, projectID primitive.ObjectID, request *UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, actorID, projectID primitive.ObjectID) error
}

type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Images      []*ImageUpload
}

type UpdateProjectRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Images      []*ImageUpload
}

// ImageUpload is one file pulled out of a multipart form, not yet stored.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type projectService struct {
	projectRepo interfaces.ProjectRepository
	userRepo    interfaces.UserRepository
	storage     storage.StorageProvider
	logger      *logger.Logger
}

func NewProjectService(projectRepo interfaces.ProjectRepository, userRepo interfaces.UserRepository, storageProvider storage.StorageProvider, log *logger.Logger) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		storage:     storageProvider,
		logger:      log,
	}
}

func (s *projectService) CreateProject(ctx context.Context, actorID primitive.ObjectID, request *CreateProjectRequest) (*models.Project, error) {
	if request.Price <= 0 || request.Price > utils.MaxProjectPrice {
		return nil, fmt.Errorf("invalid project price: %w", utils.ErrInvalidInput)
	}

	images, err := s.uploadImages(ctx, request.Images)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:        request.Name,
		Title:       request.Title,
		Description: request.Description,
		Price:       request.Price,
		Category:    request.Category,
		Images:      images,
		PostedBy:    actorID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"project_id": project.ID.Hex(),
		"posted_by":  actorID.Hex(),
	}).Info("project created")

	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, id primitive.ObjectID) (*models.ProjectDetails, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &models.ProjectDetails{Project: project}

	poster, err := s.userRepo.GetByID(ctx, project.PostedBy)
	if err == nil {
		details.PostedBy = poster.Summary()
	} else if !utils.IsNotFound(err) {
		return nil, err
	}

	return details, nil
}

func (s *projectService) ListProjects(ctx context.Context, filter *interfaces.ProjectFilter, params *utils.PaginationParams) ([]*models.Project, int64, error) {
	return s.projectRepo.List(ctx, filter, params)
}

func (s *projectService) ListAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projectRepo.ListAll(ctx)
}

func (s *projectService) UpdateProject(ctx context.Context, actorID, projectID primitive.ObjectID, request *UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if project.PostedBy != actorID {
		return nil, fmt.Errorf("only the poster may modify a project: %w", utils.ErrForbidden)
	}

	updates := map[string]interface{}{}
	if request.Title != "" {
		updates["title"] = request.Title
	}
	if request.Description != "" {
		updates["description"] = request.Description
	}
	if request.Price > 0 {
		if request.Price > utils.MaxProjectPrice {
			return nil, fmt.Errorf("invalid project price: %w", utils.ErrInvalidInput)
		}
		updates["price"] = request.Price
	}
	if request.Category != "" {
		updates["category"] = request.Category
	}

	if len(request.Images) > 0 {
		s.removeImages(ctx, project.Images)
		images, err := s.uploadImages(ctx, request.Images)
		if err != nil {
			return nil, err
		}
		updates["images"] = images
	}

	if len(updates) == 0 {
		return project, nil
	}

	if err := s.projectRepo.Update(ctx, projectID, updates); err != nil {
		return nil, err
	}

	return s.projectRepo.GetByID(ctx, projectID)
}

func (s *projectService) DeleteProject(ctx context.Context, actorID, projectID primitive.ObjectID) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if project.PostedBy != actorID && !actor.IsAdmin() {
		return fmt.Errorf("only the poster or an admin may delete a project: %w", utils.ErrForbidden)
	}

	s.removeImages(ctx, project.Images)

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"project_id": projectID.Hex(),
		"actor_id":   actorID.Hex(),
	}).Info("project deleted")

	return nil
}

func (s *projectService) uploadImages(ctx context.Context, uploads []*ImageUpload) ([]models.ProjectImage, error) {
	images := make([]models.ProjectImage, 0, len(uploads))
	for _, upload := range uploads {
		if upload.Size > utils.MaxImageSize {
			return nil, fmt.Errorf("image %s exceeds the size limit: %w", upload.Filename, utils.ErrInvalidInput)
		}

		key := "projects/" + uuid.NewString() + path.Ext(upload.Filename)
		response, err := s.storage.Upload(ctx, &storage.UploadRequest{
			Key:         key,
			Reader:      upload.Reader,
			ContentType: upload.ContentType,
			Size:        upload.Size,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}

		images = append(images, models.ProjectImage{
			PublicID: response.Key,
			URL:      response.URL,
		})
	}
	return images, nil
}

// removeImages is best effort: an orphaned object in storage is not worth
// failing the request over.
func (s *projectService) removeImages(ctx context.Context, images []models.ProjectImage) {
	for _, image := range images {
		if err := s.storage.Delete(ctx, image.PublicID); err != nil {
			s.logger.WithFields(map[string]interface{}{
				"key":   image.PublicID,
				"error": err.Error(),
			}).Warn("failed to delete stored image")
		}
	}
}
