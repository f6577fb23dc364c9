package validators

import "freelancehub/internal/utils"

type BidCreateRequest struct {
	Proposal  string   `json:"proposal" validate:"required,max=5000"`
	BidsItems []string `json:"bidsItems" validate:"required,min=1,dive,object_id"`
	File      string   `json:"file" validate:"omitempty,max=1000"`
}

type BidStatusRequest struct {
	Response string `json:"response" validate:"required,bid_status"`
}

func ValidateBidCreate(req *BidCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if len(req.BidsItems) > utils.MaxBidItems {
		errors = append(errors, ValidationError{
			Field:   "BidsItems",
			Tag:     "max",
			Message: "Too many projects attached to one bid",
		})
	}

	return errors
}

func ValidateBidStatus(req *BidStatusRequest) ValidationErrors {
	return ValidateStruct(req)
}
