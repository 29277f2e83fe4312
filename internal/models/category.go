package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"column:cat_type;size:255;not null" json:"cat_type"`
}
