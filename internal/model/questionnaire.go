package model

import "time"

type Questionnaire struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Name          string     `json:"name" gorm:"size:50;not null"`
	ThemeID       uint       `json:"theme_id" gorm:"not null;index"`
	Theme         Theme      `json:"theme,omitempty" gorm:"foreignKey:ThemeID"`
	UserID        uint       `json:"user_id" gorm:"not null;index"`
	User          User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Published     bool       `json:"published" gorm:"not null;default:false;index"`
	QuestionCount int        `json:"question_count" gorm:"not null;default:0"`
	Questions     []Question `json:"questions,omitempty" gorm:"foreignKey:QuestionnaireID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
