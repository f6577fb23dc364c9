package handlers

import (
	"freelancehub/internal/middleware"
	"freelancehub/internal/services"
	"freelancehub/internal/utils"
	"freelancehub/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// UpsertProjectReview creates or replaces the caller's review of a project
func (h *ReviewHandler) UpsertProjectReview(c *gin.Context) {
	var request validators.ProjectReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateProjectReview(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	authorID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	projectID, _ := primitive.ObjectIDFromHex(request.ProjectID)
	err := h.reviewService.UpsertProjectReview(c.Request.Context(), authorID, &services.ReviewRequest{
		ParentID: projectID,
		Rating:   request.Rating,
		Comment:  request.Comment,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Review saved successfully", nil)
}

// GetProjectReviews lists a project's reviews
func (h *ReviewHandler) GetProjectReviews(c *gin.Context) {
	projectID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid project ID")
		return
	}

	reviews, err := h.reviewService.ListProjectReviews(c.Request.Context(), projectID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Reviews retrieved successfully", reviews)
}

// DeleteProjectReview removes one review from a project
func (h *ReviewHandler) DeleteProjectReview(c *gin.Context) {
	request := validators.ReviewDeleteRequest{
		ProjectID: c.Query("projectId"),
		ReviewID:  c.Query("id"),
	}

	if errs := validators.ValidateReviewDelete(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	projectID, _ := primitive.ObjectIDFromHex(request.ProjectID)
	reviewID, _ := primitive.ObjectIDFromHex(request.ReviewID)

	if err := h.reviewService.RemoveProjectReview(c.Request.Context(), projectID, reviewID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Review deleted successfully", nil)
}

// UpsertUserReview creates or replaces the caller's review of another user
func (h *ReviewHandler) UpsertUserReview(c *gin.Context) {
	var request validators.UserReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateUserReview(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	authorID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(request.UserID)
	err := h.reviewService.UpsertUserReview(c.Request.Context(), authorID, &services.ReviewRequest{
		ParentID: userID,
		Rating:   request.Rating,
		Comment:  request.Comment,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Review saved successfully", nil)
}

// DeleteUserReview removes one review from a user's profile
func (h *ReviewHandler) DeleteUserReview(c *gin.Context) {
	request := validators.UserReviewDeleteRequest{
		UserID:   c.Query("userId"),
		ReviewID: c.Query("id"),
	}

	if errs := validators.ValidateUserReviewDelete(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	userID, _ := primitive.ObjectIDFromHex(request.UserID)
	reviewID, _ := primitive.ObjectIDFromHex(request.ReviewID)

	if err := h.reviewService.RemoveUserReview(c.Request.Context(), userID, reviewID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Review deleted successfully", nil)
}

// GetUserReviews lists the reviews left on a user's profile
func (h *ReviewHandler) GetUserReviews(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	reviews, err := h.reviewService.ListUserReviews(c.Request.Context(), userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Reviews retrieved successfully", reviews)
}
