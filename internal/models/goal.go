package models

import "gorm.io/gorm"

// MaxGoals — límite de objetivos mensuales visibles en el dashboard
const MaxGoals = 3

type Goal struct {
	gorm.Model
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}
