package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizforge/internal/apperr"
	"quizforge/internal/repository"
)

func TestExportPDF(t *testing.T) {
	db := testDB(t)
	svc := NewPDFService(repository.NewQuestionnaireRepository(db))
	owner := seedUser(t, db, "owner@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	content, filename, err := svc.Export(detail.ID, owner.ID)
	require.NoError(t, err)

	assert.Contains(t, filename, ".pdf")
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestExportPDFVisibility(t *testing.T) {
	db := testDB(t)
	svc := NewPDFService(repository.NewQuestionnaireRepository(db))
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	_, _, err = svc.Export(detail.ID, other.ID)
	assert.ErrorIs(t, err, apperr.ErrPermission)

	_, _, err = svc.Export(99999, other.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
