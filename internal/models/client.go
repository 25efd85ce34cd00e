package models

import "gorm.io/gorm"

// Contact — un dato de contacto del cliente (teléfono, email, instagram...)
type Contact struct {
	Type  string `json:"type"` // phone / email / instagram / website / whatsapp
	Value string `json:"value"`
	Link  string `json:"link,omitempty"`
}

type Client struct {
	gorm.Model
	Name        string `gorm:"size:255;not null" json:"name"`
	Slogan      string `gorm:"size:255" json:"slogan"`
	Description string `gorm:"type:text" json:"description"`
	Services    string `gorm:"type:text" json:"services"`
	Persons     string `gorm:"type:text" json:"persons"`
	Email       string `gorm:"size:255" json:"email"`

	// identidad de marca
	Brandwords string `gorm:"size:255" json:"brandwords"`
	Fonts      string `gorm:"size:255" json:"fonts"`
	Color      string `gorm:"size:50" json:"color"`
	PhotoURL   string `gorm:"size:512" json:"photoUrl"`
	Banner     string `gorm:"size:512" json:"banner"`

	Contacts []Contact `gorm:"serializer:json" json:"contact"`

	Projects []Project `json:"-"`
}
