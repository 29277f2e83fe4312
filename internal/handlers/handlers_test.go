package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asmaaEbeed/trivia/internal/models"
	"github.com/asmaaEbeed/trivia/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest builds the full router over a fresh in-memory database. Each
// test gets its own database, named after the test to keep them isolated.
func setupTest(t *testing.T, validateCategoryRefs bool) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	trivia := services.NewTriviaService(db, validateCategoryRefs)
	r := gin.New()
	Register(r, NewCategoryHandler(trivia), NewQuestionHandler(trivia), NewQuizHandler(trivia, services.NewQuizSelector()))
	return r, db
}

// seedTrivia inserts three categories and twelve questions: questions 1-5 in
// category 1, 6-10 in category 2, 11-12 in category 3.
func seedTrivia(t *testing.T, db *gorm.DB) {
	t.Helper()

	categories := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "Geography"},
	}
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	var questions []models.Question
	for i := 1; i <= 12; i++ {
		text := fmt.Sprintf("Trivia question number %d?", i)
		if i == 3 {
			text = "What is the capital of Egypt?"
		}
		questions = append(questions, models.Question{
			Text:       text,
			Answer:     fmt.Sprintf("Answer %d", i),
			Difficulty: i%5 + 1,
			CategoryID: uint((i-1)/5 + 1),
		})
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("seed questions: %v", err)
	}
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if raw, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(raw))
	} else if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func wantError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Fatalf("success = %v, want false", body["success"])
	}
	if body["error"] != float64(status) {
		t.Fatalf("error = %v, want %d", body["error"], status)
	}
	if body["message"] != message {
		t.Fatalf("message = %q, want %q", body["message"], message)
	}
}

func TestUnknownRoute(t *testing.T) {
	r, _ := setupTest(t, false)
	w := doRequest(t, r, http.MethodGet, "/nothing-here", nil)
	wantError(t, w, 404, "Resource not found")
}

func TestMethodNotAllowed(t *testing.T) {
	r, db := setupTest(t, false)
	seedTrivia(t, db)

	w := doRequest(t, r, http.MethodPut, "/questions", nil)
	wantError(t, w, 405, "not found")
}
