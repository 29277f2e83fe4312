package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/asmaaEbeed/trivia/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func TestSearchQuestionsCaseInsensitive(t *testing.T) {
	db := testDB(t)
	svc := NewTriviaService(db, false)

	seed := []models.Question{
		{Text: "What is the Boiling point of water?", Answer: "100C", Difficulty: 1, CategoryID: 1},
		{Text: "Who painted the Mona Lisa?", Answer: "Da Vinci", Difficulty: 2, CategoryID: 2},
		{Text: "What is the capital of France?", Answer: "Paris", Difficulty: 1, CategoryID: 3},
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	cases := []struct {
		term string
		want int
	}{
		{"what", 2},
		{"WHAT", 2},
		{"mona lisa", 1},
		{"penguin", 0},
	}
	for _, c := range cases {
		got, err := svc.SearchQuestions(c.term)
		if err != nil {
			t.Fatalf("SearchQuestions(%q): %v", c.term, err)
		}
		if len(got) != c.want {
			t.Fatalf("SearchQuestions(%q) matched %d, want %d", c.term, len(got), c.want)
		}
	}
}

func TestDeleteQuestionMissingRow(t *testing.T) {
	db := testDB(t)
	svc := NewTriviaService(db, false)

	if err := svc.DeleteQuestion(42); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("DeleteQuestion(42) = %v, want ErrQuestionNotFound", err)
	}
}

func TestCreateQuestionValidatesCategoryWhenEnabled(t *testing.T) {
	db := testDB(t)
	if err := db.Create(&models.Category{Type: "Science"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	strict := NewTriviaService(db, true)
	input := QuestionInput{Text: "q", Answer: "a", Difficulty: 1, CategoryID: 9}
	if _, err := strict.CreateQuestion(input); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("CreateQuestion with dangling ref = %v, want ErrCategoryNotFound", err)
	}

	input.CategoryID = 1
	if _, err := strict.CreateQuestion(input); err != nil {
		t.Fatalf("CreateQuestion with existing ref: %v", err)
	}
}

func TestUpdateQuestion(t *testing.T) {
	db := testDB(t)
	svc := NewTriviaService(db, false)

	created, err := svc.CreateQuestion(QuestionInput{Text: "old", Answer: "old", Difficulty: 1, CategoryID: 1})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	updated, err := svc.UpdateQuestion(created.ID, QuestionInput{Text: "new", Answer: "new", Difficulty: 3, CategoryID: 2})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	if updated.Text != "new" || updated.Difficulty != 3 || updated.CategoryID != 2 {
		t.Fatalf("updated question = %+v", updated)
	}

	if _, err := svc.UpdateQuestion(999, QuestionInput{}); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("UpdateQuestion(999) = %v, want ErrQuestionNotFound", err)
	}
}
