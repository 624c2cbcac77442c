package service

import (
	"fmt"
	"strings"

	"quizforge/internal/apperr"
	"quizforge/internal/dto"
	"quizforge/internal/model"
	"quizforge/internal/repository"
)

type ThemeService interface {
	List() ([]dto.ThemeResponse, error)
	Create(req dto.ThemeCreateRequest) (*dto.ThemeResponse, error)
}

type themeService struct {
	themeRepo repository.ThemeRepository
}

func NewThemeService(themeRepo repository.ThemeRepository) ThemeService {
	return &themeService{themeRepo: themeRepo}
}

func (s *themeService) List() ([]dto.ThemeResponse, error) {
	themes, err := s.themeRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("fetching themes: %w", err)
	}
	out := make([]dto.ThemeResponse, 0, len(themes))
	for _, t := range themes {
		out = append(out, dto.ThemeResponse{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

func (s *themeService) Create(req dto.ThemeCreateRequest) (*dto.ThemeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validationf("theme name must not be empty")
	}
	theme := model.Theme{Name: name}
	if err := s.themeRepo.Create(&theme); err != nil {
		return nil, fmt.Errorf("creating theme: %w", err)
	}
	return &dto.ThemeResponse{ID: theme.ID, Name: theme.Name}, nil
}
