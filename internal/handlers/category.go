package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/asmaaEbeed/trivia/internal/models"
	"github.com/asmaaEbeed/trivia/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	trivia *services.TriviaService
}

func NewCategoryHandler(trivia *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{trivia: trivia}
}

type CategoryListResponse struct {
	Success         bool            `json:"success"`
	Categories      map[uint]string `json:"categories"`
	StatusCode      int             `json:"status_code"`
	TotalCategories int             `json:"total_categories"`
	StatusMessage   string          `json:"status_message"`
}

type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"totalQuestions"`
	CurrentCategory *models.Category  `json:"currentCategory"`
	StatusMessage   string            `json:"status_message"`
}

// ListCategories godoc
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoryListResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.trivia.ListCategories()
	if err != nil {
		respondError(c, 422)
		return
	}
	if len(categories) == 0 {
		respondError(c, 404)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Success:         true,
		Categories:      categoryMap(categories),
		StatusCode:      200,
		TotalCategories: len(categories),
		StatusMessage:   "OK",
	})
}

// QuestionsByCategory godoc
// @Summary      List questions in a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, 404)
		return
	}

	category, err := h.trivia.GetCategory(uint(categoryID))
	if errors.Is(err, services.ErrCategoryNotFound) {
		respondError(c, 404)
		return
	}
	if err != nil {
		respondError(c, 422)
		return
	}

	questions, err := h.trivia.QuestionsByCategory(uint(categoryID))
	if err != nil {
		respondError(c, 422)
		return
	}

	current := services.Paginate(pageParam(c), questions)
	if len(current) == 0 {
		respondError(c, 404)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(questions),
		CurrentCategory: category,
		StatusMessage:   "OK",
	})
}
