package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateBook = "recipe book created successfully"
	MessageSuccessUpdateBook = "recipe book updated successfully"
	MessageSuccessDeleteBook = "recipe book deleted successfully"
	MessageSuccessGetBook    = "success get recipe book detail"
	MessageSuccessGetBooks   = "success get recipe books"

	MessageFailedCreateBook = "failed to create recipe book"
	MessageFailedUpdateBook = "failed to update recipe book"
	MessageFailedDeleteBook = "failed to delete recipe book"
	MessageFailedGetBook    = "failed to get recipe book detail"
	MessageFailedGetBooks   = "failed to get recipe books"

	ErrRecipeBookNotFound     = errors.New("recipe book not found")
	ErrUnauthorizedBookAccess = errors.New("unauthorized access to recipe book")
	ErrBookNameRequired       = errors.New("recipe book name is required")
)

type (
	CreateRecipeBookRequest struct {
		Name        string   `json:"name" validate:"required"`
		Description string   `json:"description"`
		IsPublic    bool     `json:"is_public"`
		RecipeIDs   []string `json:"recipe_ids" validate:"omitempty,dive,uuid"`
	}

	// UpdateRecipeBookRequest is a patch: nil means "leave unchanged".
	// RecipeIDs distinguishes absent (nil pointer) from supplied-empty
	// (pointer to empty slice, which clears the membership list); when
	// supplied it replaces the membership list wholesale.
	UpdateRecipeBookRequest struct {
		Name        *string   `json:"name" validate:"omitempty,min=1"`
		Description *string   `json:"description"`
		IsPublic    *bool     `json:"is_public"`
		RecipeIDs   *[]string `json:"recipe_ids"`
	}

	RecipeBookResponse struct {
		ID            string    `json:"id"`
		UserID        string    `json:"user_id"`
		OwnerUsername string    `json:"owner_username,omitempty"`
		Name          string    `json:"name"`
		Description   string    `json:"description"`
		IsPublic      bool      `json:"is_public"`
		RecipeIDs     []string  `json:"recipe_ids"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}
)
