package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/asmaaEbeed/trivia/internal/models"
	"github.com/asmaaEbeed/trivia/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	trivia *services.TriviaService
}

func NewQuestionHandler(trivia *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{trivia: trivia}
}

type QuestionListResponse struct {
	Success         bool              `json:"success"`
	StatusCode      int               `json:"status_code"`
	StatusMessage   string            `json:"status_message"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory []uint            `json:"current_category"`
	Categories      map[uint]string   `json:"categories"`
}

type DeleteQuestionResponse struct {
	Success        bool              `json:"success"`
	Deleted        uint              `json:"deleted"`
	Question       []models.Question `json:"question"`
	TotalQuestions int               `json:"total_questions"`
	StatusMessage  string            `json:"status_message"`
}

type CreateQuestionResponse struct {
	Success        bool              `json:"success"`
	Question       []models.Question `json:"question"`
	TotalQuestions int               `json:"total_questions"`
	StatusMessage  string            `json:"status_message"`
}

type SearchQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	CurrentCategory []uint            `json:"currentCategory"`
	TotalQuestions  int               `json:"totalQuestions"`
	StatusMessage   string            `json:"status_message"`
}

// ListQuestions godoc
// @Summary      List questions, ten per page
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.trivia.ListQuestions()
	if err != nil {
		respondError(c, 422)
		return
	}
	categories, err := h.trivia.ListCategories()
	if err != nil {
		respondError(c, 422)
		return
	}

	current := services.Paginate(pageParam(c), questions)
	if len(current) == 0 {
		respondError(c, 404)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		StatusCode:      200,
		StatusMessage:   "OK",
		Questions:       current,
		TotalQuestions:  len(questions),
		CurrentCategory: pageCategoryIDs(current),
		Categories:      categoryMap(categories),
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteQuestionResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, 404)
		return
	}

	// An absent question surfaces as 422, not 404: the missing-row case
	// goes through the same catch-all as any other store failure here.
	if err := h.trivia.DeleteQuestion(uint(questionID)); err != nil {
		respondError(c, 422)
		return
	}

	remaining, err := h.trivia.ListQuestions()
	if err != nil {
		respondError(c, 422)
		return
	}

	c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:        true,
		Deleted:        uint(questionID),
		Question:       services.Paginate(pageParam(c), remaining),
		TotalQuestions: len(remaining),
		StatusMessage:  "OK",
	})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Success      200 {object} CreateQuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, 400)
		return
	}

	// Only fields explicitly sent as "" are rejected; absent fields pass.
	for _, key := range []string{"question", "answer", "difficulty", "category"} {
		if val, ok := body[key]; ok && val == "" {
			respondError(c, 422)
			return
		}
	}

	difficulty, ok := toInt(body["difficulty"])
	if !ok {
		respondError(c, 422)
		return
	}
	category, ok := toInt(body["category"])
	if !ok || category < 0 {
		respondError(c, 422)
		return
	}

	input := services.QuestionInput{
		Text:       stringField(body, "question"),
		Answer:     stringField(body, "answer"),
		Difficulty: difficulty,
		CategoryID: uint(category),
	}
	if _, err := h.trivia.CreateQuestion(input); err != nil {
		respondError(c, 422)
		return
	}

	questions, err := h.trivia.ListQuestions()
	if err != nil {
		respondError(c, 422)
		return
	}

	c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:        true,
		Question:       services.Paginate(pageParam(c), questions),
		TotalQuestions: len(questions),
		StatusMessage:  "OK",
	})
}

// SearchQuestions godoc
// @Summary      Search questions by substring of their text
// @Tags         questions
// @Accept       json
// @Produce      json
// @Success      200 {object} SearchQuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, 400)
		return
	}

	// A request without searchTerm has always been a hard failure, the
	// client never sends one.
	term, ok := body["searchTerm"]
	if !ok {
		respondError(c, 500)
		return
	}

	matches, err := h.trivia.SearchQuestions(fmt.Sprintf("%v", term))
	if err != nil {
		respondError(c, 500)
		return
	}

	current := services.Paginate(pageParam(c), matches)

	// Zero matches is a successful, empty response.
	c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:         true,
		Questions:       current,
		CurrentCategory: pageCategoryIDs(current),
		TotalQuestions:  len(matches),
		StatusMessage:   "OK",
	})
}

func stringField(body map[string]interface{}, key string) string {
	if val, ok := body[key].(string); ok {
		return val
	}
	return ""
}

// toInt accepts the numeric shapes a JSON body can carry: absent, a number,
// or a numeric string.
func toInt(val interface{}) (int, bool) {
	switch v := val.(type) {
	case nil:
		return 0, true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
