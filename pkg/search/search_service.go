package search

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/recipebook"
	"context"
	"encoding/json"
	"strings"
)

type (
	SearchService interface {
		Search(ctx context.Context, term string, searchType string) (domain.SearchResponse, error)
	}

	searchService struct {
		searchRepository SearchRepository
		bookRepository   recipebook.RecipeBookRepository
	}
)

func NewSearchService(searchRepository SearchRepository, bookRepository recipebook.RecipeBookRepository) SearchService {
	return &searchService{
		searchRepository: searchRepository,
		bookRepository:   bookRepository,
	}
}

func (s *searchService) Search(ctx context.Context, term string, searchType string) (domain.SearchResponse, error) {
	empty := domain.SearchResponse{
		Recipes:     []domain.RecipeResponse{},
		RecipeBooks: []domain.RecipeBookResponse{},
	}

	term = strings.TrimSpace(term)
	if term == "" {
		// Blank terms never hit the store.
		return empty, nil
	}

	var (
		recipes []*entities.Recipe
		books   []*entities.RecipeBook
		err     error
	)

	switch searchType {
	case domain.SearchTypeTitle:
		recipes, err = s.searchRepository.SearchRecipesByTitle(ctx, term)
		if err != nil {
			return empty, err
		}
		books, err = s.searchRepository.SearchBooksByName(ctx, term)
		if err != nil {
			return empty, err
		}
	case domain.SearchTypeAuthor:
		recipes, err = s.searchRepository.SearchRecipesByAuthor(ctx, term)
		if err != nil {
			return empty, err
		}
		books, err = s.searchRepository.SearchBooksByOwner(ctx, term)
		if err != nil {
			return empty, err
		}
	default:
		return empty, domain.ErrInvalidSearchType
	}

	response := domain.SearchResponse{
		Recipes:     make([]domain.RecipeResponse, 0, len(recipes)),
		RecipeBooks: make([]domain.RecipeBookResponse, 0, len(books)),
	}

	for _, recipe := range recipes {
		response.Recipes = append(response.Recipes, toSearchRecipeResponse(recipe))
	}

	for _, book := range books {
		recipeIDs, err := s.bookRepository.GetBookRecipeIDs(ctx, book.ID.String())
		if err != nil {
			return empty, err
		}
		ids := make([]string, 0, len(recipeIDs))
		for _, recipeID := range recipeIDs {
			ids = append(ids, recipeID.String())
		}

		bookResponse := domain.RecipeBookResponse{
			ID:          book.ID.String(),
			UserID:      book.UserID.String(),
			Name:        book.Name,
			Description: book.Description,
			IsPublic:    book.IsPublic,
			RecipeIDs:   ids,
			CreatedAt:   book.CreatedAt,
			UpdatedAt:   book.UpdatedAt,
		}
		if book.User != nil {
			bookResponse.OwnerUsername = book.User.Username
		}
		response.RecipeBooks = append(response.RecipeBooks, bookResponse)
	}

	response.TotalRecipes = len(response.Recipes)
	response.TotalRecipeBooks = len(response.RecipeBooks)
	return response, nil
}

func toSearchRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	var ingredients []domain.Ingredient
	var instructions []string
	var tags []string
	_ = json.Unmarshal([]byte(recipe.Ingredients), &ingredients)
	_ = json.Unmarshal([]byte(recipe.Instructions), &instructions)
	_ = json.Unmarshal([]byte(recipe.Tags), &tags)

	response := domain.RecipeResponse{
		ID:           recipe.ID.String(),
		UserID:       recipe.UserID.String(),
		Title:        recipe.Title,
		Description:  recipe.Description,
		Ingredients:  ingredients,
		Instructions: instructions,
		Tags:         tags,
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
