package repository

import (
	"quizforge/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository interface {
	FindByUser(userID uint) ([]model.QuizSubmission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) FindByUser(userID uint) ([]model.QuizSubmission, error) {
	var subs []model.QuizSubmission
	err := r.db.
		Preload("Questionnaire").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}
