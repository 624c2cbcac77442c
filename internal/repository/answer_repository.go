package repository

import (
	"quizforge/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByQuestion(questionID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByQuestion(questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Where("question_id = ?", questionID).
		Order("id ASC").
		Find(&answers).Error
	return answers, err
}
