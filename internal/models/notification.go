package models

import "time"

// Notification — entrada del feed de notificaciones. Solo se escribe: nunca
// se actualiza después de crearse.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
