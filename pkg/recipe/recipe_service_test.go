package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes map[uuid.UUID]entities.Recipe
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: make(map[uuid.UUID]entities.Recipe)}
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = recipe.CreatedAt
	f.recipes[recipe.ID] = *recipe
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	recipe, ok := f.recipes[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &recipe, nil
}

func (f *fakeRecipeRepository) GetRecipeWithAuthor(ctx context.Context, id string) (*entities.Recipe, error) {
	return f.GetRecipeByID(ctx, id)
}

func (f *fakeRecipeRepository) GetRecipesByUser(_ context.Context, userID string, filter string) ([]*entities.Recipe, error) {
	var result []*entities.Recipe
	for id := range f.recipes {
		recipe := f.recipes[id]
		if recipe.UserID.String() != userID {
			continue
		}
		if filter == domain.RecipeFilterFavourite && !recipe.Favourite {
			continue
		}
		if filter == domain.RecipeFilterCooked && !recipe.Cooked {
			continue
		}
		result = append(result, &recipe)
	}
	return result, nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, id string, mutate func(recipe *entities.Recipe) error) (*entities.Recipe, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	recipe, ok := f.recipes[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// mutate runs against a copy; the stored row only changes on success,
	// mirroring transaction rollback.
	if err := mutate(&recipe); err != nil {
		return nil, err
	}
	recipe.UpdatedAt = time.Now()
	f.recipes[parsed] = recipe
	return &recipe, nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	if _, ok := f.recipes[parsed]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.recipes, parsed)
	return nil
}

func (f *fakeRecipeRepository) UpdateLikeCount(_ context.Context, id string, delta int) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	recipe, ok := f.recipes[parsed]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	recipe.LikeCount += delta
	if recipe.LikeCount < 0 {
		recipe.LikeCount = 0
	}
	f.recipes[parsed] = recipe
	return nil
}

type fakeS3 struct {
	deleted []string
}

func (f *fakeS3) UploadFile(folder string, file *multipart.FileHeader) (string, error) {
	return "https://bucket.s3.region.amazonaws.com/" + folder + "/" + file.Filename, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	marker := ".amazonaws.com/"
	idx := strings.Index(link, marker)
	if idx == -1 {
		return ""
	}
	return link[idx+len(marker):]
}

func newTestRecipeService() (RecipeService, *fakeRecipeRepository) {
	repo := newFakeRecipeRepository()
	return NewRecipeService(repo, &fakeS3{}), repo
}

func validCreateRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:       "Soup",
		Description: "A simple soup",
		Ingredients: []domain.Ingredient{
			{Name: "Water", Unit: "ml", Quantity: 500},
			{Name: "Salt", Unit: "g", Quantity: 5},
		},
		Instructions: []string{"Boil water", "Add salt"},
		Tags:         []string{"easy"},
		IsPublic:     true,
	}
}

func TestCreateRecipe(t *testing.T) {
	service, _ := newTestRecipeService()
	authorID := uuid.New().String()

	res, err := service.CreateRecipe(context.Background(), validCreateRequest(), authorID)
	require.NoError(t, err)
	assert.Equal(t, authorID, res.UserID)
	assert.Empty(t, res.OriginalRecipeID)
	assert.Equal(t, 0, res.LikeCount)
	assert.Len(t, res.Ingredients, 2)
}

func TestCreateRecipeValidation(t *testing.T) {
	service, _ := newTestRecipeService()
	authorID := uuid.New().String()

	req := validCreateRequest()
	req.Title = "  "
	_, err := service.CreateRecipe(context.Background(), req, authorID)
	assert.ErrorIs(t, err, domain.ErrTitleRequired)

	req = validCreateRequest()
	req.Ingredients = nil
	_, err = service.CreateRecipe(context.Background(), req, authorID)
	assert.ErrorIs(t, err, domain.ErrNoIngredients)

	req = validCreateRequest()
	req.Ingredients[0].Quantity = 0
	_, err = service.CreateRecipe(context.Background(), req, authorID)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestForkRecipe(t *testing.T) {
	service, repo := newTestRecipeService()
	authorID := uuid.New().String()
	forkerID := uuid.New().String()

	original, err := service.CreateRecipe(context.Background(), validCreateRequest(), authorID)
	require.NoError(t, err)

	originalBefore, err := repo.GetRecipeByID(context.Background(), original.ID)
	require.NoError(t, err)

	forkReq := domain.ForkRecipeRequest{
		Title:       "Soup (my version)",
		Ingredients: []domain.Ingredient{{Name: "Water", Unit: "ml", Quantity: 600}},
	}
	fork, err := service.ForkRecipe(context.Background(), original.ID, forkReq, forkerID)
	require.NoError(t, err)

	assert.Equal(t, original.ID, fork.OriginalRecipeID)
	assert.NotEqual(t, original.ID, fork.ID)
	assert.Equal(t, forkerID, fork.UserID)

	originalAfter, err := repo.GetRecipeByID(context.Background(), original.ID)
	require.NoError(t, err)
	assert.Equal(t, originalBefore.UpdatedAt, originalAfter.UpdatedAt)
	assert.Equal(t, originalBefore.Title, originalAfter.Title)
}

func TestForkOwnRecipe(t *testing.T) {
	service, _ := newTestRecipeService()
	authorID := uuid.New().String()

	original, err := service.CreateRecipe(context.Background(), validCreateRequest(), authorID)
	require.NoError(t, err)

	forkReq := domain.ForkRecipeRequest{
		Title:       "Copy of my own soup",
		Ingredients: []domain.Ingredient{{Name: "Water", Unit: "ml", Quantity: 500}},
	}
	_, err = service.ForkRecipe(context.Background(), original.ID, forkReq, authorID)
	assert.ErrorIs(t, err, domain.ErrForkOwnRecipe)
}

func TestForkMissingRecipe(t *testing.T) {
	service, _ := newTestRecipeService()

	forkReq := domain.ForkRecipeRequest{
		Title:       "Ghost soup",
		Ingredients: []domain.Ingredient{{Name: "Water", Unit: "ml", Quantity: 500}},
	}
	_, err := service.ForkRecipe(context.Background(), uuid.New().String(), forkReq, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestUpdateRecipeNonAuthor(t *testing.T) {
	service, repo := newTestRecipeService()
	authorID := uuid.New().String()

	created, err := service.CreateRecipe(context.Background(), validCreateRequest(), authorID)
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{Title: &newTitle}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	stored, err := repo.GetRecipeByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", stored.Title)
}

func TestUpdateRecipeTagIdempotence(t *testing.T) {
	service, _ := newTestRecipeService()
	authorID := uuid.New().String()

	created, err := service.CreateRecipe(context.Background(), validCreateRequest(), authorID)
	require.NoError(t, err)

	req := domain.UpdateRecipeRequest{TagsToAdd: []string{"vegan"}}
	first, err := service.UpdateRecipe(context.Background(), created.ID, req, authorID)
	require.NoError(t, err)

	second, err := service.UpdateRecipe(context.Background(), created.ID, req, authorID)
	require.NoError(t, err)

	assert.ElementsMatch(t, first.Tags, second.Tags)
	assert.ElementsMatch(t, []string{"easy", "vegan"}, second.Tags)
}

func TestUpdateRecipeTagAddBeforeDelete(t *testing.T) {
	service, _ := newTestRecipeService()
	authorID := uuid.New().String()

	req := validCreateRequest()
	req.Tags = []string{"a"}
	created, err := service.CreateRecipe(context.Background(), req, authorID)
	require.NoError(t, err)

	updated, err := service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{
		TagsToAdd:    []string{"b"},
		TagsToDelete: []string{"b"},
	}, authorID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, updated.Tags)
}

func TestDeleteRecipeLeavesForkDangling(t *testing.T) {
	service, _ := newTestRecipeService()
	authorID := uuid.New().String()
	forkerID := uuid.New().String()

	original, err := service.CreateRecipe(context.Background(), validCreateRequest(), authorID)
	require.NoError(t, err)

	fork, err := service.ForkRecipe(context.Background(), original.ID, domain.ForkRecipeRequest{
		Title:       "Forked soup",
		Ingredients: []domain.Ingredient{{Name: "Water", Unit: "ml", Quantity: 500}},
	}, forkerID)
	require.NoError(t, err)

	detail, err := service.GetRecipeDetail(context.Background(), fork.ID)
	require.NoError(t, err)
	assert.True(t, detail.OriginalAvailable)

	require.NoError(t, service.DeleteRecipe(context.Background(), original.ID, authorID))

	detail, err = service.GetRecipeDetail(context.Background(), fork.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ID, detail.OriginalRecipeID)
	assert.False(t, detail.OriginalAvailable)
	assert.Nil(t, detail.Original)
}

func TestDeleteRecipeNonAuthor(t *testing.T) {
	service, repo := newTestRecipeService()
	authorID := uuid.New().String()

	created, err := service.CreateRecipe(context.Background(), validCreateRequest(), authorID)
	require.NoError(t, err)

	err = service.DeleteRecipe(context.Background(), created.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	_, err = repo.GetRecipeByID(context.Background(), created.ID)
	assert.NoError(t, err)
}

func TestLikeCountFloor(t *testing.T) {
	service, repo := newTestRecipeService()
	authorID := uuid.New().String()

	created, err := service.CreateRecipe(context.Background(), validCreateRequest(), authorID)
	require.NoError(t, err)

	require.NoError(t, service.UnlikeRecipe(context.Background(), created.ID))
	require.NoError(t, service.LikeRecipe(context.Background(), created.ID))
	require.NoError(t, service.LikeRecipe(context.Background(), created.ID))
	require.NoError(t, service.UnlikeRecipe(context.Background(), created.ID))

	stored, err := repo.GetRecipeByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.LikeCount)
}

func TestGetUserRecipesFilter(t *testing.T) {
	service, _ := newTestRecipeService()
	authorID := uuid.New().String()

	favourite := validCreateRequest()
	favourite.Favourite = true
	_, err := service.CreateRecipe(context.Background(), favourite, authorID)
	require.NoError(t, err)

	cooked := validCreateRequest()
	cooked.Title = "Stew"
	cooked.Cooked = true
	_, err = service.CreateRecipe(context.Background(), cooked, authorID)
	require.NoError(t, err)

	all, err := service.GetUserRecipes(context.Background(), authorID, domain.RecipeFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	favourites, err := service.GetUserRecipes(context.Background(), authorID, domain.RecipeFilterFavourite)
	require.NoError(t, err)
	require.Len(t, favourites, 1)
	assert.Equal(t, "Soup", favourites[0].Title)

	_, err = service.GetUserRecipes(context.Background(), authorID, "liked")
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}
