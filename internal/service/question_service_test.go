package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quizforge/internal/apperr"
	"quizforge/internal/dto"
	"quizforge/internal/model"
	"quizforge/internal/repository"
)

func newQuestionService(db *gorm.DB) QuestionService {
	return NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewPreferenceRepository(db),
		db,
	)
}

func TestAddQuestionAppendsAtNextNumber(t *testing.T) {
	db := testDB(t)
	qSvc := newQuestionService(db)
	owner := seedUser(t, db, "owner@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	added, err := qSvc.Add(detail.ID, owner.ID, dto.QuestionSaveDTO{
		Label:         "Berlin is in Germany",
		AnswerType:    model.AnswerTypeTrueFalse,
		CorrectIsTrue: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, added.Number)
	require.Len(t, added.Answers, 2)
	// Weight defaults to 1 when the author leaves it out.
	assert.True(t, added.Answers[0].Weight.Equal(dec("1")))

	var q model.Questionnaire
	require.NoError(t, db.First(&q, detail.ID).Error)
	assert.Equal(t, 3, q.QuestionCount)
}

func TestAddQuestionByNonOwner(t *testing.T) {
	db := testDB(t)
	qSvc := newQuestionService(db)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	_, err = qSvc.Add(detail.ID, other.ID, dto.QuestionSaveDTO{
		Label:         "Berlin is in Germany",
		AnswerType:    model.AnswerTypeTrueFalse,
		CorrectIsTrue: boolPtr(true),
	})
	assert.ErrorIs(t, err, apperr.ErrPermission)

	var q model.Questionnaire
	require.NoError(t, db.First(&q, detail.ID).Error)
	assert.Equal(t, 2, q.QuestionCount, "failed add must not bump the count")
}

func TestAddTrueFalseUsesAuthorLanguage(t *testing.T) {
	db := testDB(t)
	qSvc := newQuestionService(db)
	owner := seedUser(t, db, "owner@example.com")
	theme := seedTheme(t, db, "Geography")

	require.NoError(t, db.Create(&model.UserPreference{
		UserID:   owner.ID,
		Theme:    model.ThemeModeLight,
		Language: model.LanguageEnglish,
	}).Error)

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	added, err := qSvc.Add(detail.ID, owner.ID, dto.QuestionSaveDTO{
		Label:         "Berlin is in Germany",
		AnswerType:    model.AnswerTypeTrueFalse,
		CorrectIsTrue: boolPtr(false),
		Weight:        decPtr("5"),
	})
	require.NoError(t, err)

	require.Len(t, added.Answers, 2)
	assert.Equal(t, "True", added.Answers[0].Label)
	assert.False(t, added.Answers[0].IsCorrect)
	assert.True(t, added.Answers[0].Weight.IsZero())
	assert.Equal(t, "False", added.Answers[1].Label)
	assert.True(t, added.Answers[1].IsCorrect)
	assert.True(t, added.Answers[1].Weight.Equal(dec("5")))
}

func TestEditSwitchingTypeDiscardsAnswers(t *testing.T) {
	db := testDB(t)
	qSvc := newQuestionService(db)
	owner := seedUser(t, db, "owner@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)
	mc := detail.Questions[1]
	require.Len(t, mc.Answers, 3)

	edited, err := qSvc.Edit(mc.ID, owner.ID, dto.QuestionSaveDTO{
		Label:         "Rome is the capital of Italy",
		AnswerType:    model.AnswerTypeTrueFalse,
		CorrectIsTrue: boolPtr(true),
		Weight:        decPtr("2"),
	})
	require.NoError(t, err)

	assert.Equal(t, model.AnswerTypeTrueFalse, edited.AnswerType)
	assert.Equal(t, "Rome is the capital of Italy", edited.Label)
	require.Len(t, edited.Answers, 2)

	// The three multiple choice answers are gone from storage.
	var count int64
	require.NoError(t, db.Model(&model.Answer{}).Where("question_id = ?", mc.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestEditByNonOwner(t *testing.T) {
	db := testDB(t)
	qSvc := newQuestionService(db)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	_, err = qSvc.Edit(detail.Questions[0].ID, other.ID, dto.QuestionSaveDTO{
		Label:         "Hijacked",
		AnswerType:    model.AnswerTypeTrueFalse,
		CorrectIsTrue: boolPtr(false),
	})
	assert.ErrorIs(t, err, apperr.ErrPermission)

	var q model.Question
	require.NoError(t, db.First(&q, detail.Questions[0].ID).Error)
	assert.Equal(t, "Paris is in France", q.Label)
}

func TestRemoveQuestionRenumbers(t *testing.T) {
	db := testDB(t)
	qSvc := newQuestionService(db)
	owner := seedUser(t, db, "owner@example.com")
	theme := seedTheme(t, db, "Geography")

	qnSvc := newQuestionnaireService(db)
	detail, err := qnSvc.Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	require.NoError(t, qSvc.Remove(detail.Questions[0].ID, owner.ID))

	fresh, err := qnSvc.Get(detail.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.QuestionCount)
	require.Len(t, fresh.Questions, 1)
	// The surviving question moved up to keep numbers contiguous.
	assert.Equal(t, 1, fresh.Questions[0].Number)
	assert.Equal(t, "Which cities are capitals?", fresh.Questions[0].Label)

	var answerCount int64
	require.NoError(t, db.Model(&model.Answer{}).
		Where("question_id = ?", detail.Questions[0].ID).
		Count(&answerCount).Error)
	assert.Zero(t, answerCount)
}

func TestRemoveQuestionByNonOwner(t *testing.T) {
	db := testDB(t)
	qSvc := newQuestionService(db)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	err = qSvc.Remove(detail.Questions[0].ID, other.ID)
	assert.ErrorIs(t, err, apperr.ErrPermission)
}

func TestDistributePersistsFlatReplacement(t *testing.T) {
	db := testDB(t)
	qSvc := newQuestionService(db)
	owner := seedUser(t, db, "owner@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)
	mc := detail.Questions[1]

	out, err := qSvc.Distribute(mc.ID, owner.ID, dec("4"))
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.True(t, out[0].Weight.Equal(dec("4")))
	assert.True(t, out[1].Weight.IsZero())
	assert.True(t, out[2].Weight.Equal(dec("4")))

	var answers []model.Answer
	require.NoError(t, db.Where("question_id = ?", mc.ID).Order("id ASC").Find(&answers).Error)
	assert.True(t, answers[0].Weight.Equal(dec("4")))
	assert.True(t, answers[1].Weight.IsZero())
	assert.True(t, answers[2].Weight.Equal(dec("4")))
}

func TestDistributeNoCorrectAnswerMutatesNothing(t *testing.T) {
	db := testDB(t)
	qSvc := newQuestionService(db)
	owner := seedUser(t, db, "owner@example.com")
	theme := seedTheme(t, db, "Geography")

	req := geoQuizSave(theme.ID, false)
	req.Questions[1].Answers[0].IsCorrect = false
	req.Questions[1].Answers[2].IsCorrect = false

	detail, err := newQuestionnaireService(db).Create(owner.ID, req)
	require.NoError(t, err)
	mc := detail.Questions[1]

	_, err = qSvc.Distribute(mc.ID, owner.ID, dec("4"))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var answers []model.Answer
	require.NoError(t, db.Where("question_id = ?", mc.ID).Order("id ASC").Find(&answers).Error)
	assert.True(t, answers[0].Weight.Equal(dec("2")))
	assert.True(t, answers[2].Weight.Equal(dec("3")))
}

func TestDistributeByNonOwner(t *testing.T) {
	db := testDB(t)
	qSvc := newQuestionService(db)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	_, err = qSvc.Distribute(detail.Questions[1].ID, other.ID, dec("4"))
	assert.ErrorIs(t, err, apperr.ErrPermission)
}
