package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"aryavats2/interview-coach/internal/models"
)

// InterviewRepository is append-only: records are never updated or deleted.
type InterviewRepository interface {
	Create(ctx context.Context, record *models.InterviewRecord) error
	ListRecent(ctx context.Context, limit int) ([]models.InterviewRecord, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(ctx context.Context, record *models.InterviewRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return errors.Wrap(err, "failed to create interview record")
	}
	return nil
}

// ListRecent returns records newest first. A limit <= 0 returns all rows.
func (r *interviewRepository) ListRecent(ctx context.Context, limit int) ([]models.InterviewRecord, error) {
	var records []models.InterviewRecord
	query := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list interview records")
	}
	return records, nil
}
