package handlers

import (
	"freelancehub/internal/middleware"
	"freelancehub/internal/services"
	"freelancehub/internal/utils"
	"freelancehub/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UpdateProfile updates the authenticated user's own profile fields
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var request validators.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateUpdateProfile(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	userID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &services.UpdateProfileRequest{
		Name:                 request.Name,
		Email:                request.Email,
		ProfessionalHeadline: request.ProfessionalHeadline,
		Country:              request.Country,
		AccountNo:            request.AccountNo,
		UpiID:                request.UpiID,
		Avatar:               request.Avatar,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile updated successfully", user)
}

// UpdatePassword rotates the authenticated user's password and re-issues
// the session
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var request validators.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateUpdatePassword(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	userID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	response, err := h.userService.UpdatePassword(c.Request.Context(), userID, &services.UpdatePasswordRequest{
		OldPassword:     request.OldPassword,
		NewPassword:     request.NewPassword,
		ConfirmPassword: request.ConfirmPassword,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	setSessionCookie(c, response.Token.AccessToken)
	utils.SuccessResponse(c, "Password updated successfully", response)
}

// ForgotPassword emails a reset link to the account's address
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var request validators.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateForgotPassword(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	if err := h.userService.ForgotPassword(c.Request.Context(), request.Email); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Recovery email sent successfully", nil)
}

// ResetPassword redeems a reset token and signs the user back in
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var request validators.ResetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateResetPassword(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	response, err := h.userService.ResetPassword(c.Request.Context(), c.Param("token"), &services.ResetPasswordRequest{
		Password:        request.Password,
		ConfirmPassword: request.ConfirmPassword,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	setSessionCookie(c, response.Token.AccessToken)
	utils.SuccessResponse(c, "Password reset successfully", response)
}

// ListUsers returns a paginated user listing. Admin only.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
		Total:      total,
		Count:      len(users),
	}

	utils.SuccessResponseWithMeta(c, "Users retrieved successfully", users, meta)
}

// GetUser returns a single user. Admin only.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "User retrieved successfully", user)
}

// UpdateUser changes a user's name, email or role. Admin only.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	var request validators.AdminUserUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateAdminUserUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, &services.AdminUserUpdateRequest{
		Name:  request.Name,
		Email: request.Email,
		Role:  request.Role,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "User updated successfully", user)
}

// DeleteUser removes a user account. Admin only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "User deleted successfully", nil)
}
