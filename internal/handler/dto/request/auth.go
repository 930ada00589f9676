package request

import (
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Email: r.Email, Password: r.Password}
}

// RefreshRequest may be empty when the refresh token travels as a cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type SignupRequest struct {
	ProfileRequest
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (r *SignupRequest) ToDomain() user.SignupInput {
	return user.SignupInput{
		ProfileInput:         r.ProfileRequest.ToDomain(),
		Password:             r.Password,
		PasswordConfirmation: r.PasswordConfirmation,
	}
}
