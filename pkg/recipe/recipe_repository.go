package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeWithAuthor(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID string, filter string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, mutate func(recipe *entities.Recipe) error) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		UpdateLikeCount(ctx context.Context, id string, delta int) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeWithAuthor(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID string, filter string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID)

	switch filter {
	case domain.RecipeFilterFavourite:
		query = query.Where("favourite = ?", true)
	case domain.RecipeFilterCooked:
		query = query.Where("cooked = ?", true)
	}

	if err := query.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

// UpdateRecipe runs mutate against a row locked with SELECT ... FOR UPDATE so
// concurrent updates to the same recipe serialize instead of interleaving.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, id string, mutate func(recipe *entities.Recipe) error) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&recipe).Error; err != nil {
			return err
		}
		if err := mutate(&recipe); err != nil {
			return err
		}
		return tx.Save(&recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) UpdateLikeCount(ctx context.Context, id string, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("like_count", gorm.Expr("GREATEST(like_count + ?, 0)", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
