package request

import "guytogo/internal/usecase"

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r SignUpRequest) ToInput() usecase.SignUpInput {
	return usecase.SignUpInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest leaves omitted fields unchanged.
type UpdateProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

func (r UpdateProfileRequest) ToUpdate() usecase.ProfileUpdate {
	return usecase.ProfileUpdate{Name: r.Name, Email: r.Email, NewPassword: r.NewPassword}
}
