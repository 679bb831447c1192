package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessForkRecipe   = "recipe forked successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
	MessageSuccessGetRecipe    = "success get recipe detail"
	MessageSuccessGetRecipes   = "success get recipes"
	MessageSuccessLikeRecipe   = "recipe like updated successfully"
	MessageSuccessUploadImage  = "recipe image uploaded successfully"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedForkRecipe   = "failed to fork recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedGetRecipe    = "failed to get recipe detail"
	MessageFailedGetRecipes   = "failed to get recipes"
	MessageFailedLikeRecipe   = "failed to update recipe like"
	MessageFailedUploadImage  = "failed to upload recipe image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrForkOwnRecipe            = errors.New("cannot fork your own recipe")
	ErrTitleRequired            = errors.New("recipe title is required")
	ErrNoIngredients            = errors.New("recipe must have at least one ingredient")
	ErrInvalidQuantity          = errors.New("ingredient quantity must be greater than zero")
	ErrInvalidFilter            = errors.New("invalid recipe filter")
)

const (
	RecipeFilterAll       = "all"
	RecipeFilterFavourite = "favourite"
	RecipeFilterCooked    = "cooked"
)

type (
	Ingredient struct {
		Name     string  `json:"name" validate:"required"`
		Unit     string  `json:"unit" validate:"required"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
	}

	CreateRecipeRequest struct {
		Title        string       `json:"title" validate:"required"`
		Description  string       `json:"description"`
		Ingredients  []Ingredient `json:"ingredients" validate:"required,min=1,dive"`
		Instructions []string     `json:"instructions" validate:"dive,required"`
		Tags         []string     `json:"tags"`
		IsPublic     bool         `json:"is_public"`
		Cooked       bool         `json:"cooked"`
		Favourite    bool         `json:"favourite"`
	}

	// ForkRecipeRequest carries the forker's own copy of the recipe body;
	// the original recipe id comes from the URL path.
	ForkRecipeRequest struct {
		Title        string       `json:"title" validate:"required"`
		Description  string       `json:"description"`
		Ingredients  []Ingredient `json:"ingredients" validate:"required,min=1,dive"`
		Instructions []string     `json:"instructions" validate:"dive,required"`
		Tags         []string     `json:"tags"`
		IsPublic     bool         `json:"is_public"`
		Cooked       bool         `json:"cooked"`
		Favourite    bool         `json:"favourite"`
	}

	// UpdateRecipeRequest is a patch: nil pointers and nil slices mean
	// "leave unchanged". Tag changes are expressed as two sets; additions
	// are applied before deletions.
	UpdateRecipeRequest struct {
		Title        *string      `json:"title" validate:"omitempty,min=1"`
		Description  *string      `json:"description"`
		Ingredients  []Ingredient `json:"ingredients" validate:"omitempty,min=1,dive"`
		Instructions []string     `json:"instructions" validate:"omitempty,dive,required"`
		TagsToAdd    []string     `json:"tags_to_add"`
		TagsToDelete []string     `json:"tags_to_delete"`
		IsPublic     *bool        `json:"is_public"`
		Cooked       *bool        `json:"cooked"`
		Favourite    *bool        `json:"favourite"`
	}

	RecipeResponse struct {
		ID               string       `json:"id"`
		UserID           string       `json:"user_id"`
		AuthorUsername   string       `json:"author_username,omitempty"`
		OriginalRecipeID string       `json:"original_recipe_id,omitempty"`
		Title            string       `json:"title"`
		Description      string       `json:"description"`
		Ingredients      []Ingredient `json:"ingredients"`
		Instructions     []string     `json:"instructions"`
		Tags             []string     `json:"tags"`
		ImageURL         string       `json:"image_url,omitempty"`
		IsPublic         bool         `json:"is_public"`
		Cooked           bool         `json:"cooked"`
		Favourite        bool         `json:"favourite"`
		LikeCount        int          `json:"like_count"`
		CreatedAt        time.Time    `json:"created_at"`
		UpdatedAt        time.Time    `json:"updated_at"`
	}

	RecipeSummary struct {
		ID             string `json:"id"`
		Title          string `json:"title"`
		AuthorUsername string `json:"author_username,omitempty"`
	}

	// RecipeDetailResponse resolves the fork parent at read time. A fork
	// whose original has since been deleted keeps its original_recipe_id
	// but reports original_available=false.
	RecipeDetailResponse struct {
		RecipeResponse
		OriginalAvailable bool           `json:"original_available"`
		Original          *RecipeSummary `json:"original,omitempty"`
	}
)
