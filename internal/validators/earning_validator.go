package validators

type EarningCreateRequest struct {
	UserID string  `json:"userId" validate:"required,object_id"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func ValidateEarningCreate(req *EarningCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}
