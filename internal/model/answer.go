package model

import "github.com/shopspring/decimal"

type Answer struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	QuestionID uint            `json:"question_id" gorm:"not null;index"`
	Label      string          `json:"label" gorm:"size:250;not null"`
	IsCorrect  bool            `json:"is_correct" gorm:"not null;default:false"`
	Weight     decimal.Decimal `json:"weight" gorm:"type:decimal(10,2);not null;default:1"`
}
