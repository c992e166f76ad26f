package repository

import (
	"context"

	"brightline/internal/models"
	"brightline/internal/storage"
)

// Listing never returns more than this many rows, regardless of what the
// caller asks for. There is no pagination beyond the cap.
const maxListLimit = 50

type SLARepository struct {
	db *storage.Database
}

func NewSLARepository(db *storage.Database) *SLARepository {
	return &SLARepository{db: db}
}

// Create inserts a new agreement and populates sla.ID and sla.CreatedAt.
func (r *SLARepository) Create(ctx context.Context, sla *models.SLA) error {
	return r.db.DB.WithContext(ctx).Create(sla).Error
}

// ListRecent returns agreements newest-first, capped at 50 rows.
func (r *SLARepository) ListRecent(ctx context.Context, limit int) ([]models.SLA, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	var slas []models.SLA
	err := r.db.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&slas).Error

	return slas, err
}
