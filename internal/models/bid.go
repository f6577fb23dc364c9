package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BidResponse is the approval state of a bid. A bid starts Pending and is
// moved by an administrator. Re-approving an already approved bid is the
// one transition that is always rejected.
type BidResponse string

const (
	BidResponsePending  BidResponse = "Pending"
	BidResponseApproved BidResponse = "Approved"
	BidResponseRejected BidResponse = "Rejected"
)

// ParseBidResponse maps a request string onto the status enum. Anything
// outside the three known states is rejected.
func ParseBidResponse(s string) (BidResponse, bool) {
	switch BidResponse(s) {
	case BidResponsePending, BidResponseApproved, BidResponseRejected:
		return BidResponse(s), true
	}
	return "", false
}

type Bid struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Proposal    string               `json:"proposal" bson:"proposal" validate:"required,max=5000"`
	BidsItems   []primitive.ObjectID `json:"bids_items" bson:"bids_items" validate:"required,min=1"`
	User        primitive.ObjectID   `json:"user" bson:"user"`
	Response    BidResponse          `json:"response" bson:"response" default:"Pending"`
	File        string               `json:"file" bson:"file"`
	ApprovedAt  *time.Time           `json:"approved_at" bson:"approved_at"`
	CompletedAt time.Time            `json:"completed_at" bson:"completed_at"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
}

// BidDetails is a bid with its bidder and project references resolved.
type BidDetails struct {
	Bid      *Bid              `json:"bid"`
	User     *UserSummary      `json:"user,omitempty"`
	Projects []*ProjectSummary `json:"projects,omitempty"`
}
