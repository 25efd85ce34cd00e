package notify

import (
	"context"
	"time"

	"agencyx/internal/models"

	"gorm.io/gorm"
)

// GormStore implementa TokenStore y Recorder sobre la BD principal.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListTokens(ctx context.Context) ([]string, error) {
	var tokens []string
	if err := s.db.WithContext(ctx).
		Model(&models.NotifToken{}).
		Pluck("token", &tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (s *GormStore) DeleteTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("token IN ?", tokens).
		Delete(&models.NotifToken{}).Error
}

func (s *GormStore) SaveNotification(ctx context.Context, title, body string, ts time.Time) error {
	record := models.Notification{
		Title:     title,
		Body:      body,
		Timestamp: ts,
	}
	return s.db.WithContext(ctx).Create(&record).Error
}
