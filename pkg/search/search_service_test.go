package search

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearchRepository struct {
	recipes []*entities.Recipe
	books   []*entities.RecipeBook
	queries int
}

func (f *fakeSearchRepository) SearchRecipesByTitle(_ context.Context, term string) ([]*entities.Recipe, error) {
	f.queries++
	var result []*entities.Recipe
	for _, recipe := range f.recipes {
		if recipe.IsPublic && strings.Contains(strings.ToLower(recipe.Title), strings.ToLower(term)) {
			result = append(result, recipe)
		}
	}
	return result, nil
}

func (f *fakeSearchRepository) SearchRecipesByAuthor(_ context.Context, term string) ([]*entities.Recipe, error) {
	f.queries++
	var result []*entities.Recipe
	for _, recipe := range f.recipes {
		if recipe.User == nil {
			continue
		}
		if recipe.IsPublic && strings.Contains(strings.ToLower(recipe.User.Username), strings.ToLower(term)) {
			result = append(result, recipe)
		}
	}
	return result, nil
}

func (f *fakeSearchRepository) SearchBooksByName(_ context.Context, term string) ([]*entities.RecipeBook, error) {
	f.queries++
	var result []*entities.RecipeBook
	for _, book := range f.books {
		if book.IsPublic && strings.Contains(strings.ToLower(book.Name), strings.ToLower(term)) {
			result = append(result, book)
		}
	}
	return result, nil
}

func (f *fakeSearchRepository) SearchBooksByOwner(_ context.Context, term string) ([]*entities.RecipeBook, error) {
	f.queries++
	var result []*entities.RecipeBook
	for _, book := range f.books {
		if book.User == nil {
			continue
		}
		if book.IsPublic && strings.Contains(strings.ToLower(book.User.Username), strings.ToLower(term)) {
			result = append(result, book)
		}
	}
	return result, nil
}

type fakeBookRepository struct{}

func (f *fakeBookRepository) CreateBook(_ context.Context, _ *entities.RecipeBook, _ []uuid.UUID) error {
	return nil
}

func (f *fakeBookRepository) GetBookByID(_ context.Context, _ string) (*entities.RecipeBook, error) {
	return nil, nil
}

func (f *fakeBookRepository) GetBooksByUser(_ context.Context, _ string) ([]*entities.RecipeBook, error) {
	return nil, nil
}

func (f *fakeBookRepository) GetBookRecipeIDs(_ context.Context, _ string) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeBookRepository) UpdateBook(_ context.Context, _ string, _ func(book *entities.RecipeBook) error, _ []uuid.UUID, _ bool) (*entities.RecipeBook, error) {
	return nil, nil
}

func (f *fakeBookRepository) DeleteBook(_ context.Context, _ string) error {
	return nil
}

func seedRepository() *fakeSearchRepository {
	alice := &entities.User{ID: uuid.New(), Username: "alice"}
	bob := &entities.User{ID: uuid.New(), Username: "bob"}

	return &fakeSearchRepository{
		recipes: []*entities.Recipe{
			{ID: uuid.New(), UserID: alice.ID, User: alice, Title: "Tomato Soup", IsPublic: true, Ingredients: `[]`, Instructions: `[]`, Tags: `[]`},
			{ID: uuid.New(), UserID: bob.ID, User: bob, Title: "Beef Stew", IsPublic: true, Ingredients: `[]`, Instructions: `[]`, Tags: `[]`},
			{ID: uuid.New(), UserID: bob.ID, User: bob, Title: "Secret Soup", IsPublic: false, Ingredients: `[]`, Instructions: `[]`, Tags: `[]`},
		},
		books: []*entities.RecipeBook{
			{ID: uuid.New(), UserID: alice.ID, User: alice, Name: "Soup Collection", IsPublic: true},
		},
	}
}

func TestSearchBlankTerm(t *testing.T) {
	repo := seedRepository()
	service := NewSearchService(repo, &fakeBookRepository{})

	res, err := service.Search(context.Background(), "   ", domain.SearchTypeTitle)
	require.NoError(t, err)
	assert.Empty(t, res.Recipes)
	assert.Empty(t, res.RecipeBooks)
	assert.Equal(t, 0, res.TotalRecipes)
	assert.Equal(t, 0, res.TotalRecipeBooks)
	assert.Equal(t, 0, repo.queries)
}

func TestSearchByTitle(t *testing.T) {
	repo := seedRepository()
	service := NewSearchService(repo, &fakeBookRepository{})

	res, err := service.Search(context.Background(), "soup", domain.SearchTypeTitle)
	require.NoError(t, err)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, "Tomato Soup", res.Recipes[0].Title)
	require.Len(t, res.RecipeBooks, 1)
	assert.Equal(t, "Soup Collection", res.RecipeBooks[0].Name)
	assert.Equal(t, 1, res.TotalRecipes)
	assert.Equal(t, 1, res.TotalRecipeBooks)
}

func TestSearchByAuthor(t *testing.T) {
	repo := seedRepository()
	service := NewSearchService(repo, &fakeBookRepository{})

	res, err := service.Search(context.Background(), "bob", domain.SearchTypeAuthor)
	require.NoError(t, err)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, "Beef Stew", res.Recipes[0].Title)
	assert.Empty(t, res.RecipeBooks)
}

func TestSearchInvalidType(t *testing.T) {
	repo := seedRepository()
	service := NewSearchService(repo, &fakeBookRepository{})

	_, err := service.Search(context.Background(), "soup", "description")
	assert.ErrorIs(t, err, domain.ErrInvalidSearchType)
}
