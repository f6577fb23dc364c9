package validators

type ProjectReviewRequest struct {
	ProjectID string `json:"projectId" validate:"required,object_id"`
	Rating    int    `json:"rating" validate:"required,rating_value"`
	Comment   string `json:"comment" validate:"omitempty,max=1000"`
}

type UserReviewRequest struct {
	UserID  string `json:"userId" validate:"required,object_id"`
	Rating  int    `json:"rating" validate:"required,rating_value"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

type ReviewDeleteRequest struct {
	ProjectID string `json:"projectId" validate:"required,object_id"`
	ReviewID  string `json:"id" validate:"required,object_id"`
}

func ValidateProjectReview(req *ProjectReviewRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateUserReview(req *UserReviewRequest) ValidationErrors {
	return ValidateStruct(req)
}

type UserReviewDeleteRequest struct {
	UserID   string `json:"userId" validate:"required,object_id"`
	ReviewID string `json:"id" validate:"required,object_id"`
}

func ValidateReviewDelete(req *ReviewDeleteRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateUserReviewDelete(req *UserReviewDeleteRequest) ValidationErrors {
	return ValidateStruct(req)
}
