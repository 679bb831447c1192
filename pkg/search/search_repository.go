package search

import (
	"Recipe-Share-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SearchRepository interface {
		SearchRecipesByTitle(ctx context.Context, term string) ([]*entities.Recipe, error)
		SearchRecipesByAuthor(ctx context.Context, term string) ([]*entities.Recipe, error)
		SearchBooksByName(ctx context.Context, term string) ([]*entities.RecipeBook, error)
		SearchBooksByOwner(ctx context.Context, term string) ([]*entities.RecipeBook, error)
	}

	searchRepository struct {
		db *gorm.DB
	}
)

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) SearchRecipesByTitle(ctx context.Context, term string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_public = ?", true).
		Where("title ILIKE ?", "%"+term+"%").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *searchRepository) SearchRecipesByAuthor(ctx context.Context, term string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("recipes.is_public = ?", true).
		Where("users.username ILIKE ?", "%"+term+"%").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *searchRepository) SearchBooksByName(ctx context.Context, term string) ([]*entities.RecipeBook, error) {
	var books []*entities.RecipeBook
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_public = ?", true).
		Where("name ILIKE ?", "%"+term+"%").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *searchRepository) SearchBooksByOwner(ctx context.Context, term string) ([]*entities.RecipeBook, error) {
	var books []*entities.RecipeBook
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = recipe_books.user_id").
		Where("recipe_books.is_public = ?", true).
		Where("users.username ILIKE ?", "%"+term+"%").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}
