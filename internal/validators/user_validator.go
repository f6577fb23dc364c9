package validators

type UpdateProfileRequest struct {
	Name                 string `json:"name" validate:"omitempty,min=2,max=50"`
	Email                string `json:"email" validate:"omitempty,email"`
	ProfessionalHeadline string `json:"professionalHeadline" validate:"omitempty,max=200"`
	Country              string `json:"country" validate:"omitempty,max=100"`
	AccountNo            string `json:"accountNo" validate:"omitempty,max=50"`
	UpiID                string `json:"upiId" validate:"omitempty,max=100"`
	Avatar               string `json:"avatar" validate:"omitempty,max=1000"`
}

type UpdatePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strong_password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password" validate:"required,strong_password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type AdminUserUpdateRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=50"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role" validate:"omitempty,oneof=user admin"`
}

func ValidateUpdateProfile(req *UpdateProfileRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateUpdatePassword(req *UpdatePasswordRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateForgotPassword(req *ForgotPasswordRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateResetPassword(req *ResetPasswordRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateAdminUserUpdate(req *AdminUserUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
