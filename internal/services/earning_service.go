package services

import (
	"context"
	"fmt"

	"freelancehub/internal/models"
	"freelancehub/internal/repositories/interfaces"
	"freelancehub/internal/utils"
	"freelancehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EarningService is the append-only payout ledger. Rows are never
// updated or deleted, and summaries over an empty scope yield a zero
// total rather than an error.
type EarningService interface {
	RecordEarning(ctx context.Context, request *RecordEarningRequest) (*models.Earning, error)
	GetUserEarnings(ctx context.Context, userID primitive.ObjectID) (*models.EarningSummary, error)
	GetAllEarnings(ctx context.Context) (*models.EarningSummary, error)
}

type RecordEarningRequest struct {
	UserID string  `json:"user_id" validate:"required,object_id"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type earningService struct {
	earningRepo interfaces.EarningRepository
	userRepo    interfaces.UserRepository
	logger      *logger.Logger
}

func NewEarningService(earningRepo interfaces.EarningRepository, userRepo interfaces.UserRepository, log *logger.Logger) EarningService {
	return &earningService{
		earningRepo: earningRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

func (s *earningService) RecordEarning(ctx context.Context, request *RecordEarningRequest) (*models.Earning, error) {
	if request.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", utils.ErrInvalidInput)
	}

	userID, err := primitive.ObjectIDFromHex(request.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", utils.ErrInvalidInput)
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", utils.MsgUserNotFound, utils.ErrNotFound)
	}

	earning := &models.Earning{
		User:   userID,
		Amount: request.Amount,
	}

	if err := s.earningRepo.Create(ctx, earning); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"earning_id": earning.ID.Hex(),
		"user_id":    userID.Hex(),
		"amount":     earning.Amount,
	}).Info("earning recorded")

	return earning, nil
}

func (s *earningService) GetUserEarnings(ctx context.Context, userID primitive.ObjectID) (*models.EarningSummary, error) {
	earnings, err := s.earningRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.earningRepo.TotalByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.EarningSummary{
		Earnings:    emptyIfNil(earnings),
		TotalAmount: total,
	}, nil
}

func (s *earningService) GetAllEarnings(ctx context.Context) (*models.EarningSummary, error) {
	earnings, err := s.earningRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	total, err := s.earningRepo.TotalAll(ctx)
	if err != nil {
		return nil, err
	}

	return &models.EarningSummary{
		Earnings:    emptyIfNil(earnings),
		TotalAmount: total,
	}, nil
}

func emptyIfNil(earnings []*models.Earning) []*models.Earning {
	if earnings == nil {
		return []*models.Earning{}
	}
	return earnings
}
