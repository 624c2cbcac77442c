package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuizSubmission is an audit record of one play of a questionnaire.
type QuizSubmission struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	UserID          uint            `json:"user_id" gorm:"not null;index"`
	User            User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	QuestionnaireID uint            `json:"questionnaire_id" gorm:"not null;index"`
	Questionnaire   Questionnaire   `json:"questionnaire,omitempty" gorm:"foreignKey:QuestionnaireID"`
	Score           decimal.Decimal `json:"score" gorm:"type:decimal(10,2);not null;default:0"`
	MaxScore        decimal.Decimal `json:"max_score" gorm:"type:decimal(10,2);not null;default:0"`
	Answers         []QuizAnswer    `json:"answers,omitempty" gorm:"foreignKey:QuizSubmissionID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `json:"created_at"`
}

// QuizAnswer records one answer the player selected during a submission.
type QuizAnswer struct {
	ID               uint `gorm:"primarykey" json:"id"`
	QuizSubmissionID uint `json:"quiz_submission_id" gorm:"not null;index"`
	QuestionID       uint `json:"question_id" gorm:"not null"`
	AnswerID         uint `json:"answer_id" gorm:"not null"`
}
