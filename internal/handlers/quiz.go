package handlers

import (
	"net/http"

	"github.com/asmaaEbeed/trivia/internal/models"
	"github.com/asmaaEbeed/trivia/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	trivia   *services.TriviaService
	selector *services.QuizSelector
}

func NewQuizHandler(trivia *services.TriviaService, selector *services.QuizSelector) *QuizHandler {
	return &QuizHandler{trivia: trivia, selector: selector}
}

type PlayQuizRequest struct {
	QuizCategory struct {
		ID uint `json:"id"`
	} `json:"quiz_category"`
	PreviousQuestions []uint `json:"previous_questions"`
}

// PlayQuiz godoc
// @Summary      Get the next quiz question
// @Description  Returns a random question from the chosen category (0 means all) that is not in previous_questions. A null question means the pool is exhausted.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body PlayQuizRequest true "Category and previously asked question ids"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400)
		return
	}

	pool, err := h.poolFor(req.QuizCategory.ID)
	if err != nil {
		respondError(c, 422)
		return
	}
	if len(pool) == 0 {
		respondError(c, 404)
		return
	}

	question := h.selector.Next(pool, req.PreviousQuestions)
	if question == nil {
		// Every question has been asked, signal end of quiz.
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"question": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"question":       question,
		"status_message": "OK",
	})
}

func (h *QuizHandler) poolFor(categoryID uint) ([]models.Question, error) {
	if categoryID == 0 {
		return h.trivia.ListQuestions()
	}
	return h.trivia.QuestionsByCategory(categoryID)
}
