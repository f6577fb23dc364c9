package handlers

import (
	"freelancehub/internal/middleware"
	"freelancehub/internal/services"
	"freelancehub/internal/utils"
	"freelancehub/internal/validators"

	"github.com/gin-gonic/gin"
)

type EarningHandler struct {
	earningService services.EarningService
}

func NewEarningHandler(earningService services.EarningService) *EarningHandler {
	return &EarningHandler{
		earningService: earningService,
	}
}

// RecordEarning books a completed payout for a user. The route is open,
// matching the legacy contract; see the route registration.
func (h *EarningHandler) RecordEarning(c *gin.Context) {
	var request validators.EarningCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateEarningCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	earning, err := h.earningService.RecordEarning(c.Request.Context(), &services.RecordEarningRequest{
		UserID: request.UserID,
		Amount: request.Amount,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Earning recorded successfully", earning)
}

// GetMyEarnings returns the authenticated user's earnings and their total
func (h *EarningHandler) GetMyEarnings(c *gin.Context) {
	userID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	summary, err := h.earningService.GetUserEarnings(c.Request.Context(), userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Earnings retrieved successfully", summary)
}

// GetAllEarnings returns every earning and the platform total. Admin only.
func (h *EarningHandler) GetAllEarnings(c *gin.Context) {
	summary, err := h.earningService.GetAllEarnings(c.Request.Context())
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Earnings retrieved successfully", summary)
}
