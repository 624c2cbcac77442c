package repository

import (
	"quizforge/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	// FindByIDWithAnswers loads the question together with its answers.
	FindByIDWithAnswers(id uint) (*model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByIDWithAnswers(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}
