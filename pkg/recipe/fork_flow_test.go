package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/jwt"
	"Recipe-Share-Backend/pkg/user"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[uuid.UUID]entities.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	u, ok := f.users[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for id := range f.users {
		u := f.users[id]
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for id := range f.users {
		u := f.users[id]
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CheckCredentialExist(_ context.Context, username, email string) (bool, error) {
	for _, u := range f.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, u *entities.User) error {
	u.UpdatedAt = time.Now()
	f.users[u.ID] = *u
	return nil
}

// Register two users, let the second fork the first one's recipe, and check
// the fork lineage end to end at the service layer.
func TestForkFlow(t *testing.T) {
	ctx := context.Background()

	userService := user.NewUserService(&fakeUserRepository{users: make(map[uuid.UUID]entities.User)}, jwt.NewJWTService())
	recipeService, recipeRepo := newTestRecipeService()

	userA, err := userService.Register(ctx, domain.UserRegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	loginA, err := userService.Login(ctx, domain.UserLoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, loginA.Token)

	created, err := recipeService.CreateRecipe(ctx, validCreateRequest(), userA.ID)
	require.NoError(t, err)
	require.Equal(t, "Soup", created.Title)

	userB, err := userService.Register(ctx, domain.UserRegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret456",
	})
	require.NoError(t, err)

	loginB, err := userService.Login(ctx, domain.UserLoginRequest{Username: "bob", Password: "secret456"})
	require.NoError(t, err)
	require.NotEmpty(t, loginB.Token)

	originalBefore, err := recipeRepo.GetRecipeByID(ctx, created.ID)
	require.NoError(t, err)

	fork, err := recipeService.ForkRecipe(ctx, created.ID, domain.ForkRecipeRequest{
		Title:       "Soup",
		Ingredients: []domain.Ingredient{{Name: "Water", Unit: "ml", Quantity: 500}},
	}, userB.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, fork.OriginalRecipeID)
	assert.Equal(t, userB.ID, fork.UserID)

	originalAfter, err := recipeRepo.GetRecipeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, originalBefore.UpdatedAt, originalAfter.UpdatedAt)
	assert.Equal(t, originalBefore.Ingredients, originalAfter.Ingredients)
}
