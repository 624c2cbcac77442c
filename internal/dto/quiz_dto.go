package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuizScoreRequest maps question ids to the answer ids the player selected.
type QuizScoreRequest struct {
	Answers map[uint][]uint `json:"answers"`
}

type QuizScoreResponse struct {
	Score    decimal.Decimal `json:"score"`
	MaxScore decimal.Decimal `json:"max_score"`
	Percent  int             `json:"percent"`
}

// QuizSnapshotDTO is the playable read model. DemoMode is set when the owner
// plays their own unpublished questionnaire.
type QuizSnapshotDTO struct {
	Questionnaire QuestionnaireDetailDTO `json:"questionnaire"`
	DemoMode      bool                   `json:"demo_mode"`
}

type SubmissionResponseDTO struct {
	ID                uint            `json:"id"`
	QuestionnaireID   uint            `json:"questionnaire_id"`
	QuestionnaireName string          `json:"questionnaire_name,omitempty"`
	Score             decimal.Decimal `json:"score"`
	MaxScore          decimal.Decimal `json:"max_score"`
	Percent           int             `json:"percent"`
	CreatedAt         time.Time       `json:"created_at"`
}
