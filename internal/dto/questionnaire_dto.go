package dto

import "github.com/shopspring/decimal"

// AnswerSaveDTO is one authored answer of a MULTIPLE_CHOICE question.
type AnswerSaveDTO struct {
	Label     string           `json:"label" binding:"required,max=250"`
	IsCorrect bool             `json:"is_correct"`
	Weight    *decimal.Decimal `json:"weight"` // defaults to 1 when omitted
}

// QuestionSaveDTO is one authored question. TRUE_FALSE questions carry
// CorrectIsTrue/Weight and their answer pair is generated server-side;
// MULTIPLE_CHOICE questions carry their answers explicitly.
type QuestionSaveDTO struct {
	Label         string           `json:"label" binding:"required,max=250"`
	AnswerType    string           `json:"answer_type" binding:"required,oneof=TRUE_FALSE MULTIPLE_CHOICE"`
	CorrectIsTrue *bool            `json:"correct_is_true"`
	Weight        *decimal.Decimal `json:"weight"`
	Answers       []AnswerSaveDTO  `json:"answers" binding:"omitempty,dive"`
}

// QuestionnaireSaveDTO creates or wholesale-replaces a questionnaire with its
// question tree. Questions are numbered 1..N in request order.
type QuestionnaireSaveDTO struct {
	Name      string            `json:"name" binding:"required,max=50"`
	ThemeID   uint              `json:"theme_id" binding:"required"`
	Published bool              `json:"published"`
	Questions []QuestionSaveDTO `json:"questions" binding:"omitempty,dive"`
}

type AnswerResponseDTO struct {
	ID        uint            `json:"id"`
	Label     string          `json:"label"`
	IsCorrect bool            `json:"is_correct"`
	Weight    decimal.Decimal `json:"weight"`
}

type QuestionResponseDTO struct {
	ID              uint                `json:"id"`
	QuestionnaireID uint                `json:"questionnaire_id"`
	Number          int                 `json:"number"`
	Label           string              `json:"label"`
	AnswerType      string              `json:"answer_type"`
	Answers         []AnswerResponseDTO `json:"answers,omitempty"`
}

// QuestionnaireSummaryDTO is used for dashboard listings.
type QuestionnaireSummaryDTO struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	ThemeID       uint          `json:"theme_id"`
	ThemeName     string        `json:"theme_name"`
	UserID        uint          `json:"user_id"`
	Published     bool          `json:"published"`
	QuestionCount int           `json:"question_count"`
	Owner         *UserResponse `json:"owner,omitempty"`
}

// QuestionnaireDetailDTO is the full tree: questions ordered by number, each
// with its answers.
type QuestionnaireDetailDTO struct {
	ID            uint                  `json:"id"`
	Name          string                `json:"name"`
	ThemeID       uint                  `json:"theme_id"`
	ThemeName     string                `json:"theme_name"`
	UserID        uint                  `json:"user_id"`
	Published     bool                  `json:"published"`
	QuestionCount int                   `json:"question_count"`
	Questions     []QuestionResponseDTO `json:"questions,omitempty"`
}

type ForkResponseDTO struct {
	ID uint `json:"id"`
}
