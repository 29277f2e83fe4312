package services

import (
	"errors"
	"strings"

	"github.com/asmaaEbeed/trivia/internal/models"

	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type TriviaService struct {
	db *gorm.DB

	// When set, creating a question whose category id has no row is
	// rejected instead of stored as a dangling reference.
	validateCategoryRefs bool
}

func NewTriviaService(db *gorm.DB, validateCategoryRefs bool) *TriviaService {
	return &TriviaService{db: db, validateCategoryRefs: validateCategoryRefs}
}

type QuestionInput struct {
	Text       string
	Answer     string
	Difficulty int
	CategoryID uint
}

func (s *TriviaService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *TriviaService) GetCategory(categoryID uint) (*models.Category, error) {
	var category models.Category
	err := s.db.First(&category, categoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *TriviaService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *TriviaService) GetQuestion(questionID uint) (*models.Question, error) {
	var question models.Question
	err := s.db.First(&question, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *TriviaService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	if s.validateCategoryRefs {
		if _, err := s.GetCategory(input.CategoryID); err != nil {
			return nil, err
		}
	}

	question := models.Question{
		Text:       input.Text,
		Answer:     input.Answer,
		Difficulty: input.Difficulty,
		CategoryID: input.CategoryID,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// UpdateQuestion is a store primitive with no route behind it; the client
// application has no edit screen.
func (s *TriviaService) UpdateQuestion(questionID uint, input QuestionInput) (*models.Question, error) {
	question, err := s.GetQuestion(questionID)
	if err != nil {
		return nil, err
	}

	question.Text = input.Text
	question.Answer = input.Answer
	question.Difficulty = input.Difficulty
	question.CategoryID = input.CategoryID
	if err := s.db.Save(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

func (s *TriviaService) DeleteQuestion(questionID uint) error {
	result := s.db.Delete(&models.Question{}, questionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// SearchQuestions matches the term as a case-insensitive substring of the
// question text. LOWER/LIKE keeps the query portable across drivers.
func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	var questions []models.Question
	pattern := "%" + strings.ToLower(term) + "%"
	err := s.db.Where("LOWER(question) LIKE ?", pattern).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *TriviaService) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category_id = ?", categoryID).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
