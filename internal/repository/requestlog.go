package repository

import (
	"context"

	"brightline/internal/models"
	"brightline/internal/storage"
)

type RequestLogRepository struct {
	db *storage.Database
}

func NewRequestLogRepository(db *storage.Database) *RequestLogRepository {
	return &RequestLogRepository{db: db}
}

// Inserts multiple request logs (for batch insertion)
func (r *RequestLogRepository) CreateBatch(ctx context.Context, logs []models.RequestLog) error {
	if len(logs) == 0 {
		return nil
	}

	return r.db.DB.WithContext(ctx).Create(&logs).Error
}
