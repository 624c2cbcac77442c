package service

import (
	"fmt"

	"quizforge/internal/dto"
	"quizforge/internal/model"
	"quizforge/internal/repository"
)

type PreferencesService interface {
	Get(userID uint) (*dto.PreferenceResponse, error)
	ToggleTheme(userID uint) (*dto.PreferenceResponse, error)
	ToggleLanguage(userID uint) (*dto.PreferenceResponse, error)
}

type preferencesService struct {
	prefRepo repository.PreferenceRepository
}

func NewPreferencesService(prefRepo repository.PreferenceRepository) PreferencesService {
	return &preferencesService{prefRepo: prefRepo}
}

func (s *preferencesService) Get(userID uint) (*dto.PreferenceResponse, error) {
	pref, err := s.prefRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching preferences: %w", err)
	}
	return &dto.PreferenceResponse{Theme: pref.Theme, Language: pref.Language}, nil
}

func (s *preferencesService) ToggleTheme(userID uint) (*dto.PreferenceResponse, error) {
	pref, err := s.prefRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching preferences: %w", err)
	}
	if pref.Theme == model.ThemeModeLight {
		pref.Theme = model.ThemeModeDark
	} else {
		pref.Theme = model.ThemeModeLight
	}
	if err := s.prefRepo.Save(pref); err != nil {
		return nil, fmt.Errorf("saving preferences: %w", err)
	}
	return &dto.PreferenceResponse{Theme: pref.Theme, Language: pref.Language}, nil
}

func (s *preferencesService) ToggleLanguage(userID uint) (*dto.PreferenceResponse, error) {
	pref, err := s.prefRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching preferences: %w", err)
	}
	if pref.Language == model.LanguageFrench {
		pref.Language = model.LanguageEnglish
	} else {
		pref.Language = model.LanguageFrench
	}
	if err := s.prefRepo.Save(pref); err != nil {
		return nil, fmt.Errorf("saving preferences: %w", err)
	}
	return &dto.PreferenceResponse{Theme: pref.Theme, Language: pref.Language}, nil
}
