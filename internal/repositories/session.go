package repositories

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aryavats2/interview-coach/internal/models"
)

type SessionRepository interface {
	SaveDocument(ctx context.Context, sessionID, text string) error
	// DocumentText returns "" when the session has no uploaded document.
	DocumentText(ctx context.Context, sessionID string) (string, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) SaveDocument(ctx context.Context, sessionID, text string) error {
	if sessionID == "" {
		return errors.New("empty session id")
	}

	session := models.ChatSession{
		SessionID:    sessionID,
		DocumentText: text,
		UpdatedAt:    time.Now(),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document_text", "updated_at"}),
	}).Create(&session).Error
	if err != nil {
		return errors.Wrap(err, "failed to save session document")
	}
	return nil
}

func (r *sessionRepository) DocumentText(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", nil
	}

	var sessions []models.ChatSession
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Limit(1).
		Find(&sessions).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to load session document")
	}

	if len(sessions) == 0 {
		return "", nil
	}
	return sessions[0].DocumentText, nil
}
