package services

import (
	"math/rand"

	"github.com/asmaaEbeed/trivia/internal/models"
)

type QuizSelector struct{}

func NewQuizSelector() *QuizSelector {
	return &QuizSelector{}
}

// Next picks one question from pool uniformly at random among those whose id
// is not in previous. A nil result means the pool is exhausted. Selection is
// stateless, each call is independent.
func (s *QuizSelector) Next(pool []models.Question, previous []uint) *models.Question {
	seen := make(map[uint]bool, len(previous))
	for _, id := range previous {
		seen[id] = true
	}

	var candidates []models.Question
	for _, q := range pool {
		if !seen[q.ID] {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	question := candidates[rand.Intn(len(candidates))]
	return &question
}
