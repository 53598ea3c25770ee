package models

import "time"

type ChatTurn struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserMessage string    `gorm:"type:text" json:"user_message"`
	BotReply    string    `gorm:"type:text" json:"bot_reply"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ChatTurn) TableName() string {
	return "chat_history"
}

// ChatSession holds the text of the last document uploaded in one session.
// It is the only row type that is overwritten.
type ChatSession struct {
	SessionID    string    `gorm:"type:varchar(64);primaryKey" json:"session_id"`
	DocumentText string    `gorm:"type:text" json:"document_text"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
