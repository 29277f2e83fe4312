package models

type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Difficulty int    `gorm:"not null;default:1" json:"difficulty"`
	CategoryID uint   `gorm:"index" json:"category"`
}
