package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	Title string    `gorm:"size:255;not null" json:"title"`
	Start time.Time `gorm:"index" json:"start"`
	End   time.Time `json:"end"`
	Color string    `gorm:"size:50" json:"color"`
}
