package domain

import "errors"

var (
	MessageSuccessSearch = "search completed successfully"
	MessageFailedSearch  = "failed to search"

	ErrInvalidSearchType = errors.New("search type must be title or author")
)

const (
	SearchTypeTitle  = "title"
	SearchTypeAuthor = "author"
)

type SearchResponse struct {
	Recipes          []RecipeResponse     `json:"recipes"`
	RecipeBooks      []RecipeBookResponse `json:"recipe_books"`
	TotalRecipes     int                  `json:"total_recipes"`
	TotalRecipeBooks int                  `json:"total_recipe_books"`
}
