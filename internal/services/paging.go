package services

import "github.com/asmaaEbeed/trivia/internal/models"

const QuestionsPerPage = 10

// Paginate returns the 1-based page of questions. Pages outside the
// available range come back empty, never as an error.
func Paginate(page int, questions []models.Question) []models.Question {
	if page < 1 {
		return []models.Question{}
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []models.Question{}
	}

	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
