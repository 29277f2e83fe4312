package handlers

import "github.com/gin-gonic/gin"

// Register wires every API route onto the engine along with the fallback
// handlers that keep the 404/405 envelopes uniform.
func Register(r *gin.Engine, categories *CategoryHandler, questions *QuestionHandler, quizzes *QuizHandler) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(NoRoute)
	r.NoMethod(NoMethod)

	r.GET("/categories", categories.ListCategories)
	r.GET("/categories/:id/questions", categories.QuestionsByCategory)

	r.GET("/questions", questions.ListQuestions)
	r.POST("/questions", questions.CreateQuestion)
	r.DELETE("/questions/:id", questions.DeleteQuestion)
	r.POST("/questions/search", questions.SearchQuestions)

	r.POST("/quizzes", quizzes.PlayQuiz)
}
