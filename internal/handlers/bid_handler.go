package handlers

import (
	"freelancehub/internal/middleware"
	"freelancehub/internal/services"
	"freelancehub/internal/utils"
	"freelancehub/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BidHandler struct {
	bidService services.BidService
}

func NewBidHandler(bidService services.BidService) *BidHandler {
	return &BidHandler{
		bidService: bidService,
	}
}

// CreateBid submits a new bid for one or more projects
func (h *BidHandler) CreateBid(c *gin.Context) {
	var request validators.BidCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateBidCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	bidderID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bid, err := h.bidService.CreateBid(c.Request.Context(), bidderID, &services.CreateBidRequest{
		Proposal:  request.Proposal,
		BidsItems: request.BidsItems,
		File:      request.File,
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Bid submitted successfully", bid)
}

// GetBid retrieves a single bid with its projects and bidder
func (h *BidHandler) GetBid(c *gin.Context) {
	bidID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bid ID")
		return
	}

	bid, err := h.bidService.GetBid(c.Request.Context(), bidID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Bid retrieved successfully", bid)
}

// GetMyBids lists the authenticated user's bids
func (h *BidHandler) GetMyBids(c *gin.Context) {
	userID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bids, err := h.bidService.GetUserBids(c.Request.Context(), userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Bids retrieved successfully", bids)
}

// GetAllBids lists every bid, newest first. Admin only.
func (h *BidHandler) GetAllBids(c *gin.Context) {
	bids, err := h.bidService.GetAllBids(c.Request.Context())
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Bids retrieved successfully", bids)
}

// UpdateBidStatus moves a bid to a new lifecycle status. Admin only.
func (h *BidHandler) UpdateBidStatus(c *gin.Context) {
	bidID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bid ID")
		return
	}

	var request validators.BidStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateBidStatus(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.bidService.TransitionStatus(c.Request.Context(), bidID, request.Response, actorID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Bid status updated successfully", nil)
}

// DeleteBid removes a bid. Admin only.
func (h *BidHandler) DeleteBid(c *gin.Context) {
	bidID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bid ID")
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.bidService.DeleteBid(c.Request.Context(), bidID, actorID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Bid deleted successfully", nil)
}
