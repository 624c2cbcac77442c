package repository

import (
	"errors"

	"quizforge/internal/model"

	"gorm.io/gorm"
)

type PreferenceRepository interface {
	// FindByUser returns the user's preference row, creating the default one
	// when it does not exist yet.
	FindByUser(userID uint) (*model.UserPreference, error)
	Save(pref *model.UserPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) FindByUser(userID uint) (*model.UserPreference, error) {
	var pref model.UserPreference
	err := r.db.First(&pref, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = model.UserPreference{
			UserID:   userID,
			Theme:    model.ThemeModeLight,
			Language: model.LanguageFrench,
		}
		if err := r.db.Create(&pref).Error; err != nil {
			return nil, err
		}
		return &pref, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) Save(pref *model.UserPreference) error {
	return r.db.Save(pref).Error
}
