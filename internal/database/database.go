package database

import (
	"fmt"
	"log"

	"github.com/asmaaEbeed/trivia/internal/config"
	"github.com/asmaaEbeed/trivia/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

// Seed inserts the default category set when the table is empty. Categories
// are read-only through the API, so this is the only place they come from.
func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count categories: %v", err)
	}
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "Geography"},
		{Type: "History"},
		{Type: "Entertainment"},
		{Type: "Sports"},
	}
	if err := db.Create(&categories).Error; err != nil {
		log.Fatalf("failed to seed categories: %v", err)
	}
	log.Printf("seeded %d categories", len(categories))
}
