package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Earning is an immutable payout record. Rows are only ever appended;
// nothing in the system updates or deletes one.
type Earning struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User       primitive.ObjectID `json:"user" bson:"user" validate:"required"`
	Amount     float64            `json:"amount" bson:"amount" validate:"required,gt=0"`
	ReceivedAt time.Time          `json:"received_at" bson:"received_at"`
}

// EarningSummary is a set of earning rows together with their sum. An
// empty set sums to zero; it is not an error.
type EarningSummary struct {
	Earnings    []*Earning `json:"earnings"`
	TotalAmount float64    `json:"total_amount"`
}
