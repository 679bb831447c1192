package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/search"

	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		Search(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
	}
)

func NewSearchHandler(searchService search.SearchService) SearchHandler {
	return &searchHandler{searchService: searchService}
}

func (h *searchHandler) Search(c *fiber.Ctx) error {
	term := c.Query("term", "")
	searchType := c.Query("type", domain.SearchTypeTitle)

	res, err := h.searchService.Search(c.Context(), term, searchType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearch)
}
