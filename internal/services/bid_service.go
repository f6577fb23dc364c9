package services

import (
	"context"
	"fmt"
	"time"

	"freelancehub/internal/models"
	"freelancehub/internal/repositories/interfaces"
	"freelancehub/internal/utils"
	"freelancehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BidService governs the bid lifecycle: creation in Pending, the
// admin-driven status transitions, and deletion. Role checks happen in
// the middleware before any of these are reached; the actor id is
// carried for audit logging only.
type BidService interface {
	CreateBid(ctx context.Context, bidderID primitive.ObjectID, request *CreateBidRequest) (*models.BidDetails, error)
	GetBid(ctx context.Context, id primitive.ObjectID) (*models.BidDetails, error)
	GetUserBids(ctx context.Context, userID primitive.ObjectID) ([]*models.Bid, error)
	GetAllBids(ctx context.Context) ([]*models.Bid, error)
	TransitionStatus(ctx context.Context, bidID primitive.ObjectID, requestedStatus string, actorID primitive.ObjectID) error
	DeleteBid(ctx context.Context, bidID primitive.ObjectID, actorID primitive.ObjectID) error
}

// CreateBidRequest is the single accepted input shape for a new bid.
type CreateBidRequest struct {
	Proposal  string   `json:"proposal" validate:"required,max=5000"`
	BidsItems []string `json:"bids_items" validate:"required,min=1,dive,object_id"`
	File      string   `json:"file"`
}

type bidService struct {
	bidRepo     interfaces.BidRepository
	projectRepo interfaces.ProjectRepository
	userRepo    interfaces.UserRepository
	logger      *logger.Logger
}

func NewBidService(bidRepo interfaces.BidRepository, projectRepo interfaces.ProjectRepository, userRepo interfaces.UserRepository, log *logger.Logger) BidService {
	return &bidService{
		bidRepo:     bidRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

func (s *bidService) CreateBid(ctx context.Context, bidderID primitive.ObjectID, request *CreateBidRequest) (*models.BidDetails, error) {
	if request.Proposal == "" {
		return nil, fmt.Errorf("proposal is required: %w", utils.ErrInvalidInput)
	}
	if len(request.BidsItems) == 0 {
		return nil, fmt.Errorf("at least one project reference is required: %w", utils.ErrInvalidInput)
	}
	if len(request.BidsItems) > utils.MaxBidItems {
		return nil, fmt.Errorf("too many project references: %w", utils.ErrInvalidInput)
	}

	itemIDs := make([]primitive.ObjectID, 0, len(request.BidsItems))
	seen := make(map[primitive.ObjectID]bool, len(request.BidsItems))
	for _, raw := range request.BidsItems {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid project id %q: %w", raw, utils.ErrInvalidInput)
		}
		if !seen[id] {
			seen[id] = true
			itemIDs = append(itemIDs, id)
		}
	}

	projects, err := s.projectRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	if len(projects) != len(itemIDs) {
		return nil, fmt.Errorf("one or more referenced projects do not exist: %w", utils.ErrNotFound)
	}

	bid := &models.Bid{
		Proposal:  request.Proposal,
		BidsItems: itemIDs,
		User:      bidderID,
		Response:  models.BidResponsePending,
		File:      request.File,
	}

	if err := s.bidRepo.Create(ctx, bid); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"bid_id":    bid.ID.Hex(),
		"bidder_id": bidderID.Hex(),
		"projects":  len(itemIDs),
	}).Info("bid created")

	return s.resolveBid(ctx, bid, projects)
}

func (s *bidService) GetBid(ctx context.Context, id primitive.ObjectID) (*models.BidDetails, error) {
	bid, err := s.bidRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.GetByIDs(ctx, bid.BidsItems)
	if err != nil {
		return nil, err
	}

	return s.resolveBid(ctx, bid, projects)
}

func (s *bidService) GetUserBids(ctx context.Context, userID primitive.ObjectID) ([]*models.Bid, error) {
	return s.bidRepo.GetByUserID(ctx, userID)
}

func (s *bidService) GetAllBids(ctx context.Context) ([]*models.Bid, error) {
	return s.bidRepo.GetAll(ctx)
}

// TransitionStatus applies the state machine rule: the requested status
// must be a known state, and an already approved bid can never be
// approved again. Moving out of Approved (to Rejected or back to
// Pending) stays legal, as it always has been. The approval timestamp is
// only stamped on a transition into Approved.
func (s *bidService) TransitionStatus(ctx context.Context, bidID primitive.ObjectID, requestedStatus string, actorID primitive.ObjectID) error {
	status, ok := models.ParseBidResponse(requestedStatus)
	if !ok {
		return fmt.Errorf("invalid status value %q: %w", requestedStatus, utils.ErrInvalidInput)
	}

	var approvedAt *time.Time
	if status == models.BidResponseApproved {
		now := time.Now()
		approvedAt = &now
	}

	if err := s.bidRepo.UpdateStatus(ctx, bidID, status, approvedAt); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"bid_id":   bidID.Hex(),
		"status":   status,
		"actor_id": actorID.Hex(),
	}).Info("bid status updated")

	return nil
}

// DeleteBid removes the bid document. Earnings recorded for the bidder
// are untouched: deleting a bid never reverses a payout.
func (s *bidService) DeleteBid(ctx context.Context, bidID primitive.ObjectID, actorID primitive.ObjectID) error {
	if err := s.bidRepo.Delete(ctx, bidID); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"bid_id":   bidID.Hex(),
		"actor_id": actorID.Hex(),
	}).Info("bid deleted")

	return nil
}

func (s *bidService) resolveBid(ctx context.Context, bid *models.Bid, projects []*models.Project) (*models.BidDetails, error) {
	details := &models.BidDetails{
		Bid:      bid,
		Projects: make([]*models.ProjectSummary, 0, len(projects)),
	}
	for _, project := range projects {
		details.Projects = append(details.Projects, project.Summary())
	}

	user, err := s.userRepo.GetByID(ctx, bid.User)
	if err != nil {
		if utils.IsNotFound(err) {
			// Bidder account deleted after the bid; the bid still renders.
			return details, nil
		}
		return nil, err
	}
	details.User = user.Summary()

	return details, nil
}
