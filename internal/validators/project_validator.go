package validators

type ProjectCreateRequest struct {
	Name        string  `form:"name" validate:"required,min=2,max=100"`
	Title       string  `form:"title" validate:"required,max=200"`
	Description string  `form:"description" validate:"required,max=5000"`
	Price       float64 `form:"price" validate:"required,gt=0"`
	Category    string  `form:"category" validate:"required,max=100"`
}

type ProjectUpdateRequest struct {
	Title       string  `form:"title" validate:"omitempty,max=200"`
	Description string  `form:"description" validate:"omitempty,max=5000"`
	Price       float64 `form:"price" validate:"omitempty,gt=0"`
	Category    string  `form:"category" validate:"omitempty,max=100"`
}

func ValidateProjectCreate(req *ProjectCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateProjectUpdate(req *ProjectUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
