package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/recipebook"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeBookHandler interface {
		CreateBook(c *fiber.Ctx) error
		UpdateBook(c *fiber.Ctx) error
		DeleteBook(c *fiber.Ctx) error
		GetBook(c *fiber.Ctx) error
		GetUserBooks(c *fiber.Ctx) error
	}

	recipeBookHandler struct {
		bookService recipebook.RecipeBookService
		validator   *validator.Validate
	}
)

func NewRecipeBookHandler(bookService recipebook.RecipeBookService, validator *validator.Validate) RecipeBookHandler {
	return &recipeBookHandler{
		bookService: bookService,
		validator:   validator,
	}
}

func bookErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeBookNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedBookAccess):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func (h *recipeBookHandler) CreateBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeBookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBook, err)
	}

	res, err := h.bookService.CreateBook(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, bookErrorStatus(err), domain.MessageFailedCreateBook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBook)
}

func (h *recipeBookHandler) UpdateBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bookID := c.Params("id")
	req := new(domain.UpdateRecipeBookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBook, err)
	}

	res, err := h.bookService.UpdateBook(c.Context(), bookID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, bookErrorStatus(err), domain.MessageFailedUpdateBook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateBook)
}

func (h *recipeBookHandler) DeleteBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bookID := c.Params("id")

	if err := h.bookService.DeleteBook(c.Context(), bookID, userID); err != nil {
		return presenters.ErrorResponse(c, bookErrorStatus(err), domain.MessageFailedDeleteBook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBook)
}

func (h *recipeBookHandler) GetBook(c *fiber.Ctx) error {
	bookID := c.Params("id")

	res, err := h.bookService.GetBook(c.Context(), bookID)
	if err != nil {
		return presenters.ErrorResponse(c, bookErrorStatus(err), domain.MessageFailedGetBook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBook)
}

func (h *recipeBookHandler) GetUserBooks(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.bookService.GetUserBooks(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, bookErrorStatus(err), domain.MessageFailedGetBooks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBooks)
}
