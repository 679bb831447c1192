package recipebook

import (
	"Recipe-Share-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeBookRepository interface {
		CreateBook(ctx context.Context, book *entities.RecipeBook, recipeIDs []uuid.UUID) error
		GetBookByID(ctx context.Context, id string) (*entities.RecipeBook, error)
		GetBooksByUser(ctx context.Context, userID string) ([]*entities.RecipeBook, error)
		GetBookRecipeIDs(ctx context.Context, bookID string) ([]uuid.UUID, error)
		UpdateBook(ctx context.Context, id string, mutate func(book *entities.RecipeBook) error, replaceRecipeIDs []uuid.UUID, replaceMembership bool) (*entities.RecipeBook, error)
		DeleteBook(ctx context.Context, id string) error
	}

	recipeBookRepository struct {
		db *gorm.DB
	}
)

func NewRecipeBookRepository(db *gorm.DB) RecipeBookRepository {
	return &recipeBookRepository{db: db}
}

func (r *recipeBookRepository) CreateBook(ctx context.Context, book *entities.RecipeBook, recipeIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(book).Error; err != nil {
			return err
		}
		return insertEntries(tx, book.ID, recipeIDs)
	})
}

func (r *recipeBookRepository) GetBookByID(ctx context.Context, id string) (*entities.RecipeBook, error) {
	var book entities.RecipeBook
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *recipeBookRepository) GetBooksByUser(ctx context.Context, userID string) ([]*entities.RecipeBook, error) {
	var books []*entities.RecipeBook
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *recipeBookRepository) GetBookRecipeIDs(ctx context.Context, bookID string) ([]uuid.UUID, error) {
	var entries []entities.RecipeBookEntry
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	recipeIDs := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		recipeIDs = append(recipeIDs, entry.RecipeID)
	}
	return recipeIDs, nil
}

// UpdateBook locks the book row for the whole transaction so two concurrent
// updates to the same book serialize. When replaceMembership is set the
// membership list is replaced wholesale.
func (r *recipeBookRepository) UpdateBook(ctx context.Context, id string, mutate func(book *entities.RecipeBook) error, replaceRecipeIDs []uuid.UUID, replaceMembership bool) (*entities.RecipeBook, error) {
	var book entities.RecipeBook
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&book).Error; err != nil {
			return err
		}
		if err := mutate(&book); err != nil {
			return err
		}
		if err := tx.Save(&book).Error; err != nil {
			return err
		}
		if replaceMembership {
			if err := tx.Where("book_id = ?", book.ID).Delete(&entities.RecipeBookEntry{}).Error; err != nil {
				return err
			}
			if err := insertEntries(tx, book.ID, replaceRecipeIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *recipeBookRepository) DeleteBook(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&entities.RecipeBookEntry{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entities.RecipeBook{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func insertEntries(tx *gorm.DB, bookID uuid.UUID, recipeIDs []uuid.UUID) error {
	now := time.Now()
	for _, recipeID := range recipeIDs {
		entry := entities.RecipeBookEntry{
			ID:        uuid.New(),
			BookID:    bookID,
			RecipeID:  recipeID,
			CreatedAt: now,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}
