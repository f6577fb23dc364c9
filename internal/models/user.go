package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                 string             `json:"name" bson:"name" validate:"required,min=2,max=50"`
	Email                string             `json:"email" bson:"email" validate:"required,email"`
	Password             string             `json:"-" bson:"password"`
	Avatar               string             `json:"avatar" bson:"avatar"`
	Country              string             `json:"country" bson:"country"`
	ProfessionalHeadline string             `json:"professional_headline" bson:"professional_headline"`
	AccountNo            string             `json:"account_no" bson:"account_no"`
	UpiID                string             `json:"upi_id" bson:"upi_id"`
	Skills               []string           `json:"skills" bson:"skills"`
	Role                 UserRole           `json:"role" bson:"role" default:"user"`
	Ratings              float64            `json:"ratings" bson:"ratings"`
	NumOfReviews         int                `json:"num_of_reviews" bson:"num_of_reviews"`
	Reviews              []Review           `json:"reviews" bson:"reviews"`
	ReviewVersion        int64              `json:"-" bson:"review_version"`
	ResetPasswordToken   string             `json:"-" bson:"reset_password_token,omitempty"`
	ResetPasswordExpire  *time.Time         `json:"-" bson:"reset_password_expire,omitempty"`
	LastLoginAt          *time.Time         `json:"last_login_at" bson:"last_login_at"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at" bson:"updated_at"`
}

// UserSummary is the identity snapshot resolved into bids, projects and
// review listings for display.
type UserSummary struct {
	ID     primitive.ObjectID `json:"id" bson:"_id"`
	Name   string             `json:"name" bson:"name"`
	Email  string             `json:"email" bson:"email"`
	Avatar string             `json:"avatar" bson:"avatar"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
