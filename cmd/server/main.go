package main

import (
	"log"

	"github.com/asmaaEbeed/trivia/internal/config"
	"github.com/asmaaEbeed/trivia/internal/database"
	"github.com/asmaaEbeed/trivia/internal/handlers"
	"github.com/asmaaEbeed/trivia/internal/services"

	_ "github.com/asmaaEbeed/trivia/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Trivia API
// @version         1.0
// @description     REST API serving trivia categories, questions and quiz rounds
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db)

	triviaService := services.NewTriviaService(db, cfg.ValidateCategoryRefs)
	selector := services.NewQuizSelector()

	categoryHandler := handlers.NewCategoryHandler(triviaService)
	questionHandler := handlers.NewQuestionHandler(triviaService)
	quizHandler := handlers.NewQuizHandler(triviaService, selector)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "PUT", "POST", "OPTIONS", "DELETE", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.Register(r, categoryHandler, questionHandler, quizHandler)

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
