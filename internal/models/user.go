package models

import "gorm.io/gorm"

type UserRole string
type UserStatus string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"

	// los registros nuevos quedan pendientes hasta que un admin los apruebe
	StatusPending  UserStatus = "pending"
	StatusAccepted UserStatus = "accepted"
)

type User struct {
	gorm.Model
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FullName     string     `gorm:"size:255" json:"fullName"`
	Sector       string     `gorm:"size:100" json:"sector"`
	PhotoURL     string     `gorm:"size:512" json:"photoUrl"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);not null" json:"status"`
}
