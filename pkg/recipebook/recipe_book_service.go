package recipebook

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeBookService interface {
		CreateBook(ctx context.Context, req domain.CreateRecipeBookRequest, userID string) (domain.RecipeBookResponse, error)
		UpdateBook(ctx context.Context, id string, req domain.UpdateRecipeBookRequest, userID string) (domain.RecipeBookResponse, error)
		DeleteBook(ctx context.Context, id string, userID string) error
		GetBook(ctx context.Context, id string) (domain.RecipeBookResponse, error)
		GetUserBooks(ctx context.Context, userID string) ([]domain.RecipeBookResponse, error)
	}

	recipeBookService struct {
		bookRepository RecipeBookRepository
	}
)

func NewRecipeBookService(bookRepository RecipeBookRepository) RecipeBookService {
	return &recipeBookService{bookRepository: bookRepository}
}

func (s *recipeBookService) CreateBook(ctx context.Context, req domain.CreateRecipeBookRequest, userID string) (domain.RecipeBookResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.RecipeBookResponse{}, domain.ErrBookNameRequired
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeBookResponse{}, domain.ErrParseUUID
	}

	recipeIDs, err := parseRecipeIDs(req.RecipeIDs)
	if err != nil {
		return domain.RecipeBookResponse{}, err
	}

	book := &entities.RecipeBook{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}

	if err := s.bookRepository.CreateBook(ctx, book, recipeIDs); err != nil {
		return domain.RecipeBookResponse{}, err
	}

	return toRecipeBookResponse(book, recipeIDs), nil
}

func (s *recipeBookService) UpdateBook(ctx context.Context, id string, req domain.UpdateRecipeBookRequest, userID string) (domain.RecipeBookResponse, error) {
	var recipeIDs []uuid.UUID
	replaceMembership := false
	if req.RecipeIDs != nil {
		parsed, err := parseRecipeIDs(*req.RecipeIDs)
		if err != nil {
			return domain.RecipeBookResponse{}, err
		}
		recipeIDs = parsed
		replaceMembership = true
	}

	updated, err := s.bookRepository.UpdateBook(ctx, id, func(book *entities.RecipeBook) error {
		if book.UserID.String() != userID {
			return domain.ErrUnauthorizedBookAccess
		}
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				return domain.ErrBookNameRequired
			}
			book.Name = *req.Name
		}
		if req.Description != nil {
			book.Description = *req.Description
		}
		if req.IsPublic != nil {
			book.IsPublic = *req.IsPublic
		}
		return nil
	}, recipeIDs, replaceMembership)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeBookResponse{}, domain.ErrRecipeBookNotFound
		}
		return domain.RecipeBookResponse{}, err
	}

	if !replaceMembership {
		recipeIDs, err = s.bookRepository.GetBookRecipeIDs(ctx, id)
		if err != nil {
			return domain.RecipeBookResponse{}, err
		}
	}

	return toRecipeBookResponse(updated, recipeIDs), nil
}

func (s *recipeBookService) DeleteBook(ctx context.Context, id string, userID string) error {
	book, err := s.bookRepository.GetBookByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeBookNotFound
		}
		return err
	}

	if book.UserID.String() != userID {
		return domain.ErrUnauthorizedBookAccess
	}

	// Deleting a book removes the book and its membership rows only; the
	// recipes it references are untouched.
	return s.bookRepository.DeleteBook(ctx, id)
}

func (s *recipeBookService) GetBook(ctx context.Context, id string) (domain.RecipeBookResponse, error) {
	book, err := s.bookRepository.GetBookByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeBookResponse{}, domain.ErrRecipeBookNotFound
		}
		return domain.RecipeBookResponse{}, err
	}

	recipeIDs, err := s.bookRepository.GetBookRecipeIDs(ctx, id)
	if err != nil {
		return domain.RecipeBookResponse{}, err
	}

	return toRecipeBookResponse(book, recipeIDs), nil
}

func (s *recipeBookService) GetUserBooks(ctx context.Context, userID string) ([]domain.RecipeBookResponse, error) {
	books, err := s.bookRepository.GetBooksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeBookResponse, 0, len(books))
	for _, book := range books {
		recipeIDs, err := s.bookRepository.GetBookRecipeIDs(ctx, book.ID.String())
		if err != nil {
			return nil, err
		}
		result = append(result, toRecipeBookResponse(book, recipeIDs))
	}
	return result, nil
}

// parseRecipeIDs validates and deduplicates while preserving first-seen
// order; duplicates in the request collapse silently.
func parseRecipeIDs(ids []string) ([]uuid.UUID, error) {
	result := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if seen[parsed] {
			continue
		}
		seen[parsed] = true
		result = append(result, parsed)
	}
	return result, nil
}

func toRecipeBookResponse(book *entities.RecipeBook, recipeIDs []uuid.UUID) domain.RecipeBookResponse {
	ids := make([]string, 0, len(recipeIDs))
	for _, recipeID := range recipeIDs {
		ids = append(ids, recipeID.String())
	}

	response := domain.RecipeBookResponse{
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
		response.OwnerUsername = book.User.Username
	}
	return response
}
