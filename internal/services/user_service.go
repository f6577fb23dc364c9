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
	"golang.org/x/crypto/bcrypt"
)

// ResetTokenTTL bounds how long a password reset token stays redeemable.
const ResetTokenTTL = 15 * time.Minute

// UserService covers profile self-service, password recovery and the
// admin user-management surface.
type UserService interface {
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, request *UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, userID primitive.ObjectID, request *UpdatePasswordRequest) (*AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, request *ResetPasswordRequest) (*AuthResponse, error)

	ListUsers(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, request *AdminUserUpdateRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

type UpdateProfileRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	ProfessionalHeadline string `json:"professionalHeadline"`
	Country              string `json:"country"`
	AccountNo            string `json:"accountNo"`
	UpiID                string `json:"upiId"`
	Avatar               string `json:"avatar"`
}

type UpdatePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type AdminUserUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type userService struct {
	userRepo     interfaces.UserRepository
	emailService EmailService
	jwtSecret    string
	baseURL      string
	logger       *logger.Logger
}

func NewUserService(userRepo interfaces.UserRepository, emailService EmailService, jwtSecret, baseURL string, log *logger.Logger) UserService {
	return &userService{
		userRepo:     userRepo,
		emailService: emailService,
		jwtSecret:    jwtSecret,
		baseURL:      baseURL,
		logger:       log,
	}
}

func (s *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, request *UpdateProfileRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if request.Name != "" {
		updates["name"] = request.Name
	}
	if request.Email != "" {
		updates["email"] = utils.NormalizeEmail(request.Email)
	}
	if request.ProfessionalHeadline != "" {
		updates["professional_headline"] = request.ProfessionalHeadline
	}
	if request.Country != "" {
		updates["country"] = request.Country
	}
	if request.AccountNo != "" {
		updates["account_no"] = request.AccountNo
	}
	if request.UpiID != "" {
		updates["upi_id"] = request.UpiID
	}
	if request.Avatar != "" {
		updates["avatar"] = request.Avatar
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("no profile fields to update: %w", utils.ErrInvalidInput)
	}

	if err := s.userRepo.Update(ctx, userID, updates); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", userID.Hex()).Info("profile updated")

	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdatePassword(ctx context.Context, userID primitive.ObjectID, request *UpdatePasswordRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.OldPassword)); err != nil {
		return nil, fmt.Errorf("old password is incorrect: %w", utils.ErrInvalidInput)
	}

	if request.NewPassword != request.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match: %w", utils.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.Update(ctx, user.ID, map[string]interface{}{"password": string(hash)}); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID.Hex()).Info("password updated")

	return s.issueSession(user)
}

func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}

	token := utils.GeneratePasswordResetToken()
	expire := time.Now().Add(ResetTokenTTL)

	err = s.userRepo.Update(ctx, user.ID, map[string]interface{}{
		"reset_password_token":  utils.HashResetToken(token),
		"reset_password_expire": expire,
	})
	if err != nil {
		return err
	}

	link := utils.CreatePasswordResetLink(s.baseURL, token)
	body := fmt.Sprintf(
		"Your password reset token is:\n\n%s\n\nIf you have not requested this email then, please ignore it.",
		link,
	)

	if err := s.emailService.SendEmail(ctx, user.Email, utils.AppName+" Password Recovery", body); err != nil {
		// The token must not stay redeemable when the user never got it.
		if clearErr := s.clearResetToken(ctx, user.ID); clearErr != nil {
			s.logger.WithError(clearErr).WithField("user_id", user.ID.Hex()).Error("failed to clear reset token")
		}
		return err
	}

	s.logger.WithField("user_id", user.ID.Hex()).Info("password recovery email sent")

	return nil
}

func (s *userService) ResetPassword(ctx context.Context, token string, request *ResetPasswordRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByResetToken(ctx, utils.HashResetToken(token))
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, fmt.Errorf("reset password token is invalid or has expired: %w", utils.ErrInvalidInput)
		}
		return nil, err
	}

	if request.Password != request.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match: %w", utils.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.userRepo.Update(ctx, user.ID, map[string]interface{}{
		"password":              string(hash),
		"reset_password_token":  "",
		"reset_password_expire": nil,
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID.Hex()).Info("password reset")

	return s.issueSession(user)
}

func (s *userService) ListUsers(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error) {
	return s.userRepo.List(ctx, params)
}

func (s *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) UpdateUser(ctx context.Context, id primitive.ObjectID, request *AdminUserUpdateRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if request.Name != "" {
		updates["name"] = request.Name
	}
	if request.Email != "" {
		updates["email"] = utils.NormalizeEmail(request.Email)
	}
	if request.Role != "" {
		role := models.UserRole(request.Role)
		if role != models.UserRoleUser && role != models.UserRoleAdmin {
			return nil, fmt.Errorf("unknown role %q: %w", request.Role, utils.ErrInvalidInput)
		}
		updates["role"] = role
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("no user fields to update: %w", utils.ErrInvalidInput)
	}

	if err := s.userRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("user_id", id.Hex()).Info("user deleted")

	return nil
}

func (s *userService) clearResetToken(ctx context.Context, userID primitive.ObjectID) error {
	return s.userRepo.Update(ctx, userID, map[string]interface{}{
		"reset_password_token":  "",
		"reset_password_expire": nil,
	})
}

// issueSession hands back a fresh token pair after a credential change,
// so the caller stays signed in.
func (s *userService) issueSession(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateTokenPair(user.ID, string(user.Role), user.Email, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{User: user, Token: token}, nil
}
