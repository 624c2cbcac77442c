package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizforge/internal/model"
	"quizforge/internal/repository"
)

func TestPreferencesDefaultOnFirstAccess(t *testing.T) {
	db := testDB(t)
	svc := NewPreferencesService(repository.NewPreferenceRepository(db))
	user := seedUser(t, db, "ada@example.com")

	pref, err := svc.Get(user.ID)
	require.NoError(t, err)

	assert.Equal(t, model.ThemeModeLight, pref.Theme)
	assert.Equal(t, model.LanguageFrench, pref.Language)
}

func TestToggleTheme(t *testing.T) {
	db := testDB(t)
	svc := NewPreferencesService(repository.NewPreferenceRepository(db))
	user := seedUser(t, db, "ada@example.com")

	pref, err := svc.ToggleTheme(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeModeDark, pref.Theme)

	pref, err = svc.ToggleTheme(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeModeLight, pref.Theme)
}

func TestToggleLanguage(t *testing.T) {
	db := testDB(t)
	svc := NewPreferencesService(repository.NewPreferenceRepository(db))
	user := seedUser(t, db, "ada@example.com")

	pref, err := svc.ToggleLanguage(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LanguageEnglish, pref.Language)

	pref, err = svc.ToggleLanguage(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LanguageFrench, pref.Language)

	// Toggling one axis leaves the other alone.
	assert.Equal(t, model.ThemeModeLight, pref.Theme)
}
