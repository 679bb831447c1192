package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils/storage"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		ForkRecipe(ctx context.Context, originalID string, req domain.ForkRecipeRequest, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error)
		GetUserRecipes(ctx context.Context, userID string, filter string) ([]domain.RecipeResponse, error)
		LikeRecipe(ctx context.Context, id string) error
		UnlikeRecipe(ctx context.Context, id string) error
		UploadRecipeImage(ctx context.Context, id string, userID string, file *multipart.FileHeader) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func validateRecipeBody(title string, ingredients []domain.Ingredient) error {
	if strings.TrimSpace(title) == "" {
		return domain.ErrTitleRequired
	}
	if len(ingredients) == 0 {
		return domain.ErrNoIngredients
	}
	for _, ingredient := range ingredients {
		if ingredient.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
	}
	return nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if err := validateRecipeBody(req.Title, req.Ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       userUUID,
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  marshalJSON(req.Ingredients),
		Instructions: marshalJSON(req.Instructions),
		Tags:         marshalJSON(req.Tags),
		IsPublic:     req.IsPublic,
		Cooked:       req.Cooked,
		Favourite:    req.Favourite,
		LikeCount:    0,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) ForkRecipe(ctx context.Context, originalID string, req domain.ForkRecipeRequest, userID string) (domain.RecipeResponse, error) {
	original, err := s.recipeRepository.GetRecipeByID(ctx, originalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if original.UserID.String() == userID {
		return domain.RecipeResponse{}, domain.ErrForkOwnRecipe
	}

	if err := validateRecipeBody(req.Title, req.Ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	// The fork is a new entity with its own id; the original row is never
	// touched.
	originalRecipeID := original.ID
	fork := &entities.Recipe{
		ID:               uuid.New(),
		UserID:           userUUID,
		OriginalRecipeID: &originalRecipeID,
		Title:            req.Title,
		Description:      req.Description,
		Ingredients:      marshalJSON(req.Ingredients),
		Instructions:     marshalJSON(req.Instructions),
		Tags:             marshalJSON(req.Tags),
		IsPublic:         req.IsPublic,
		Cooked:           req.Cooked,
		Favourite:        req.Favourite,
		LikeCount:        0,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, fork); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(fork), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	updated, err := s.recipeRepository.UpdateRecipe(ctx, id, func(recipe *entities.Recipe) error {
		if recipe.UserID.String() != userID {
			return domain.ErrUnauthorizedRecipeAccess
		}

		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				return domain.ErrTitleRequired
			}
			recipe.Title = *req.Title
		}
		if req.Description != nil {
			recipe.Description = *req.Description
		}
		if req.Ingredients != nil {
			for _, ingredient := range req.Ingredients {
				if ingredient.Quantity <= 0 {
					return domain.ErrInvalidQuantity
				}
			}
			recipe.Ingredients = marshalJSON(req.Ingredients)
		}
		if req.Instructions != nil {
			recipe.Instructions = marshalJSON(req.Instructions)
		}
		if req.IsPublic != nil {
			recipe.IsPublic = *req.IsPublic
		}
		if req.Cooked != nil {
			recipe.Cooked = *req.Cooked
		}
		if req.Favourite != nil {
			recipe.Favourite = *req.Favourite
		}

		if len(req.TagsToAdd) > 0 || len(req.TagsToDelete) > 0 {
			recipe.Tags = marshalJSON(applyTagChanges(unmarshalTags(recipe.Tags), req.TagsToAdd, req.TagsToDelete))
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(updated), nil
}

// applyTagChanges applies additions before deletions, so a tag named in both
// sets ends up removed.
func applyTagChanges(current, toAdd, toDelete []string) []string {
	result := make([]string, 0, len(current)+len(toAdd))
	seen := make(map[string]bool)

	for _, tag := range current {
		if !seen[tag] {
			seen[tag] = true
			result = append(result, tag)
		}
	}
	for _, tag := range toAdd {
		if !seen[tag] {
			seen[tag] = true
			result = append(result, tag)
		}
	}

	deleted := make(map[string]bool)
	for _, tag := range toDelete {
		deleted[tag] = true
	}

	final := result[:0]
	for _, tag := range result {
		if !deleted[tag] {
			final = append(final, tag)
		}
	}
	return final
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if recipe.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	// Forks of this recipe keep their original_recipe_id; read paths treat
	// the missing parent as unavailable.
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeWithAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	detail := domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe),
	}

	if recipe.OriginalRecipeID != nil {
		original, err := s.recipeRepository.GetRecipeWithAuthor(ctx, recipe.OriginalRecipeID.String())
		if err == nil {
			summary := domain.RecipeSummary{
				ID:    original.ID.String(),
				Title: original.Title,
			}
			if original.User != nil {
				summary.AuthorUsername = original.User.Username
			}
			detail.OriginalAvailable = true
			detail.Original = &summary
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, err
		}
	}

	return detail, nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, userID string, filter string) ([]domain.RecipeResponse, error) {
	switch filter {
	case domain.RecipeFilterAll, domain.RecipeFilterFavourite, domain.RecipeFilterCooked:
	default:
		return nil, domain.ErrInvalidFilter
	}

	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result, nil
}

func (s *recipeService) LikeRecipe(ctx context.Context, id string) error {
	if err := s.recipeRepository.UpdateLikeCount(ctx, id, 1); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) UnlikeRecipe(ctx context.Context, id string) error {
	if err := s.recipeRepository.UpdateLikeCount(ctx, id, -1); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id string, userID string, file *multipart.FileHeader) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	if recipe.UserID.String() != userID {
		return "", domain.ErrUnauthorizedRecipeAccess
	}

	imageURL, err := s.s3.UploadFile("recipes", file)
	if err != nil {
		return "", err
	}

	oldImageURL := recipe.ImageURL

	if _, err := s.recipeRepository.UpdateRecipe(ctx, id, func(recipe *entities.Recipe) error {
		recipe.ImageURL = imageURL
		return nil
	}); err != nil {
		return "", err
	}

	if oldImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(oldImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return imageURL, nil
}

func marshalJSON(v any) string {
	data, _ := json.Marshal(v)
	return string(data)
}

func unmarshalTags(raw string) []string {
	var tags []string
	if raw == "" {
		return tags
	}
	_ = json.Unmarshal([]byte(raw), &tags)
	return tags
}

func unmarshalIngredients(raw string) []domain.Ingredient {
	var ingredients []domain.Ingredient
	if raw == "" {
		return ingredients
	}
	_ = json.Unmarshal([]byte(raw), &ingredients)
	return ingredients
}

func unmarshalInstructions(raw string) []string {
	var instructions []string
	if raw == "" {
		return instructions
	}
	_ = json.Unmarshal([]byte(raw), &instructions)
	return instructions
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	response := domain.RecipeResponse{
		ID:           recipe.ID.String(),
		UserID:       recipe.UserID.String(),
		Title:        recipe.Title,
		Description:  recipe.Description,
		Ingredients:  unmarshalIngredients(recipe.Ingredients),
		Instructions: unmarshalInstructions(recipe.Instructions),
		Tags:         unmarshalTags(recipe.Tags),
		ImageURL:     recipe.ImageURL,
		IsPublic:     recipe.IsPublic,
		Cooked:       recipe.Cooked,
		Favourite:    recipe.Favourite,
		LikeCount:    recipe.LikeCount,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}
	if recipe.OriginalRecipeID != nil {
		response.OriginalRecipeID = recipe.OriginalRecipeID.String()
	}
	if recipe.User != nil {
		response.AuthorUsername = recipe.User.Username
	}
	return response
}
