package domain

import "errors"

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageFailedRegister  = "failed to register user"
	MessageFailedLogin     = "failed to login"

	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user is inactive")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email,max=320"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		IsActive bool   `json:"is_active"`
	}

	LoginResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
)
