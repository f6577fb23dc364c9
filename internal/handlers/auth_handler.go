package handlers

import (
	"freelancehub/internal/middleware"
	"freelancehub/internal/services"
	"freelancehub/internal/utils"
	"freelancehub/internal/validators"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account and returns a token pair
func (h *AuthHandler) Register(c *gin.Context) {
	var request validators.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateRegister(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	response, err := h.authService.Register(c.Request.Context(), &services.RegisterRequest{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Country:  request.Country,
		Avatar:   request.Avatar,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	setSessionCookie(c, response.Token.AccessToken)
	utils.CreatedResponse(c, "Account created successfully", response)
}

// Login authenticates a user and returns a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var request validators.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateLogin(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &services.LoginRequest{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	setSessionCookie(c, response.Token.AccessToken)
	utils.SuccessResponse(c, "Login successful", response)
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	utils.SuccessResponse(c, "Logout successful", nil)
}

// GetProfile returns the authenticated user's profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile retrieved successfully", user)
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(utils.SessionCookieName, token, int(utils.SessionCookieMaxAge.Seconds()), "/", "", false, true)
}

func validationDetails(errs validators.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, err := range errs {
		details[err.Field] = err.Message
	}
	return details
}
