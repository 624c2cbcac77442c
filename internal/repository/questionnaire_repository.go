package repository

import (
	"quizforge/internal/model"

	"gorm.io/gorm"
)

type QuestionnaireRepository interface {
	FindByID(id uint) (*model.Questionnaire, error)
	// FindByIDFull loads the whole tree: theme, questions ordered by number,
	// and each question's answers.
	FindByIDFull(id uint) (*model.Questionnaire, error)
	FindByUser(userID uint) ([]model.Questionnaire, error)
	FindPublishedByOthers(userID uint) ([]model.Questionnaire, error)
	// TogglePublishedOwned flips the published flag only when the row belongs
	// to userID, in a single statement. Returns the number of rows affected;
	// zero means "not found or not permitted".
	TogglePublishedOwned(id, userID uint) (int64, error)
}

type questionnaireRepository struct {
	db *gorm.DB
}

func NewQuestionnaireRepository(db *gorm.DB) QuestionnaireRepository {
	return &questionnaireRepository{db: db}
}

func (r *questionnaireRepository) FindByID(id uint) (*model.Questionnaire, error) {
	var q model.Questionnaire
	if err := r.db.Preload("Theme").First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionnaireRepository) FindByIDFull(id uint) (*model.Questionnaire, error) {
	var q model.Questionnaire
	err := r.db.
		Preload("Theme").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.number ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionnaireRepository) FindByUser(userID uint) ([]model.Questionnaire, error) {
	var qs []model.Questionnaire
	err := r.db.
		Preload("Theme").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&qs).Error
	return qs, err
}

func (r *questionnaireRepository) FindPublishedByOthers(userID uint) ([]model.Questionnaire, error) {
	var qs []model.Questionnaire
	err := r.db.
		Preload("Theme").
		Preload("User").
		Where("published = ? AND user_id <> ?", true, userID).
		Order("id DESC").
		Find(&qs).Error
	return qs, err
}

func (r *questionnaireRepository) TogglePublishedOwned(id, userID uint) (int64, error) {
	res := r.db.Model(&model.Questionnaire{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("published", gorm.Expr("NOT published"))
	return res.RowsAffected, res.Error
}
