package repository

import (
	"quizforge/internal/model"

	"gorm.io/gorm"
)

type ThemeRepository interface {
	Create(theme *model.Theme) error
	FindAll() ([]model.Theme, error)
}

type themeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

func (r *themeRepository) Create(theme *model.Theme) error {
	return r.db.Create(theme).Error
}

func (r *themeRepository) FindAll() ([]model.Theme, error) {
	var themes []model.Theme
	if err := r.db.Order("name ASC").Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}
