package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectImage struct {
	PublicID string `json:"public_id" bson:"public_id"`
	URL      string `json:"url" bson:"url"`
}

type Project struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" validate:"required"`
	Title         string             `json:"title" bson:"title" validate:"required,max=200"`
	Description   string             `json:"description" bson:"description" validate:"required"`
	Price         float64            `json:"price" bson:"price" validate:"required,gt=0"`
	Category      string             `json:"category" bson:"category" validate:"required"`
	Images        []ProjectImage     `json:"images" bson:"images"`
	PostedBy      primitive.ObjectID `json:"posted_by" bson:"posted_by"`
	Ratings       float64            `json:"ratings" bson:"ratings"`
	NumOfReviews  int                `json:"num_of_reviews" bson:"num_of_reviews"`
	Reviews       []Review           `json:"reviews" bson:"reviews"`
	ReviewVersion int64              `json:"-" bson:"review_version"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProjectSummary is what bid listings resolve project references into.
type ProjectSummary struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Title    string             `json:"title" bson:"title"`
	Price    float64            `json:"price" bson:"price"`
	Category string             `json:"category" bson:"category"`
}

func (p *Project) Summary() *ProjectSummary {
	return &ProjectSummary{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Category: p.Category,
	}
}

// ProjectDetails is a project with its poster resolved for display.
type ProjectDetails struct {
	Project  *Project     `json:"project"`
	PostedBy *UserSummary `json:"posted_by,omitempty"`
}
