package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

type Project struct {
	gorm.Model
	ClientID uint   `gorm:"index" json:"clientId"`
	Client   Client `json:"-"`

	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	IsArchived  bool       `json:"isArchived"`

	// IDs de los usuarios asignados al proyecto
	AssignedUsers []uint `gorm:"serializer:json" json:"assignedUsers"`
}

// Progress calcula el porcentaje de tareas completadas. No se guarda en la
// BD: se recalcula con las tareas vivas en cada lectura.
func Progress(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.IsDone {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(tasks)) * 100))
}
