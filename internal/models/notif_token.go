package models

import "time"

// NotifToken — token FCM de un dispositivo registrado. Si un envío contra el
// token falla, el registro se elimina: un fallo se trata como prueba de que
// el token ya no es válido.
type NotifToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Token  string `gorm:"uniqueIndex;size:512;not null" json:"token"`
	UserID uint   `gorm:"index" json:"userId"`
	Device string `gorm:"size:512" json:"device"`
}
