package models

import "time"

// RatingAIRated is the label stored on every evaluated answer.
const RatingAIRated = "AI Rated"

type InterviewRecord struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Question     string    `gorm:"type:text" json:"question"`
	UserResponse string    `gorm:"type:text" json:"user_response"`
	Rating       string    `gorm:"type:text" json:"rating"`
	Feedback     string    `gorm:"type:text" json:"feedback"`
	CreatedAt    time.Time `json:"created_at"`
}

func (InterviewRecord) TableName() string {
	return "interview_history"
}
