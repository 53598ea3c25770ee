package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"aryavats2/interview-coach/internal/models"
)

type ChatRepository interface {
	Create(ctx context.Context, turn *models.ChatTurn) error
	ListRecent(ctx context.Context, limit int) ([]models.ChatTurn, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, turn *models.ChatTurn) error {
	if err := r.db.WithContext(ctx).Create(turn).Error; err != nil {
		return errors.Wrap(err, "failed to create chat turn")
	}
	return nil
}

// ListRecent returns turns ordered by id descending. A limit <= 0 returns all rows.
func (r *chatRepository) ListRecent(ctx context.Context, limit int) ([]models.ChatTurn, error) {
	var turns []models.ChatTurn
	query := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&turns).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chat history")
	}
	return turns, nil
}
