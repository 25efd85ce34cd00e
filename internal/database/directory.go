package database

import (
	"context"

	"agencyx/internal/models"

	"gorm.io/gorm"
)

// Directory expone las consultas que necesitan los triggers de notificación.
type Directory struct {
	DB *gorm.DB
}

func (d Directory) ClientName(ctx context.Context, id uint) (string, error) {
	var client models.Client
	if err := d.DB.WithContext(ctx).Select("name").First(&client, id).Error; err != nil {
		return "", err
	}
	return client.Name, nil
}

func (d Directory) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := d.DB.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
