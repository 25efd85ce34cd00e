package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskAssignee — copia desnormalizada del usuario asignado en el momento de
// la asignación (no es una referencia viva).
type TaskAssignee struct {
	UserID   uint   `json:"userId"`
	FullName string `json:"fullName"`
	PhotoURL string `json:"photoUrl"`
}

type Task struct {
	gorm.Model
	ProjectID uint `gorm:"index;not null" json:"projectId"`

	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	IsDone      bool       `json:"isDone"`

	AssignedUsers []TaskAssignee `gorm:"serializer:json" json:"assignedUsers"`
}
