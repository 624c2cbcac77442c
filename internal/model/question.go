package model

const (
	AnswerTypeTrueFalse      = "TRUE_FALSE"
	AnswerTypeMultipleChoice = "MULTIPLE_CHOICE"
)

type Question struct {
	ID              uint     `gorm:"primarykey" json:"id"`
	QuestionnaireID uint     `json:"questionnaire_id" gorm:"not null;index"`
	Number          int      `json:"number" gorm:"not null"` // 1-based play/display order
	Label           string   `json:"label" gorm:"size:250;not null"`
	AnswerType      string   `json:"answer_type" gorm:"size:20;not null;default:'TRUE_FALSE'"`
	Answers         []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}
