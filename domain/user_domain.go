package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login success"
	MessageSuccessGetMe          = "success get user detail"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessForgotPassword = "reset password email sent if account exists"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to get user detail"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedForgotPassword = "failed to process forgot password"
	MessageFailedResetPassword  = "failed to reset password"

	ErrCredentialExist    = errors.New("username or email already registered")
	ErrCredentialsInvalid = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordNotMatch   = errors.New("current password does not match")
	ErrPasswordRequired   = errors.New("current password is required to set a new password")
)

type (
	UserRegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=30"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6,max=100"`
	}

	UserLoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	// UserUpdateRequest is a patch: nil means the field was not supplied
	// and keeps its stored value.
	UserUpdateRequest struct {
		Username        *string `json:"username" validate:"omitempty,min=3,max=30"`
		Email           *string `json:"email" validate:"omitempty,email"`
		CurrentPassword *string `json:"current_password"`
		NewPassword     *string `json:"new_password" validate:"omitempty,min=6,max=100"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=6,max=100"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}

	UserLoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
