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

func newQuizService(db *gorm.DB) QuizService {
	return NewQuizService(
		repository.NewQuestionnaireRepository(db),
		repository.NewSubmissionRepository(db),
		db,
	)
}

func TestPlayDemoModeForOwnerDraft(t *testing.T) {
	db := testDB(t)
	quizSvc := newQuizService(db)
	owner := seedUser(t, db, "owner@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	snapshot, err := quizSvc.Play(detail.ID, owner.ID)
	require.NoError(t, err)

	assert.True(t, snapshot.DemoMode)
	assert.Len(t, snapshot.Questionnaire.Questions, 2)
}

func TestPlayPublishedIsNotDemo(t *testing.T) {
	db := testDB(t)
	quizSvc := newQuizService(db)
	owner := seedUser(t, db, "owner@example.com")
	player := seedUser(t, db, "player@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, true))
	require.NoError(t, err)

	snapshot, err := quizSvc.Play(detail.ID, player.ID)
	require.NoError(t, err)
	assert.False(t, snapshot.DemoMode)
}

func TestPlayUnpublishedByOtherUser(t *testing.T) {
	db := testDB(t)
	quizSvc := newQuizService(db)
	owner := seedUser(t, db, "owner@example.com")
	player := seedUser(t, db, "player@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, false))
	require.NoError(t, err)

	_, err = quizSvc.Play(detail.ID, player.ID)
	assert.ErrorIs(t, err, apperr.ErrPermission)

	_, err = quizSvc.Play(99999, player.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPlayEmptyQuestionnaire(t *testing.T) {
	db := testDB(t)
	quizSvc := newQuizService(db)
	owner := seedUser(t, db, "owner@example.com")
	theme := seedTheme(t, db, "Geography")

	empty := dto.QuestionnaireSaveDTO{Name: "Empty", ThemeID: theme.ID, Published: true}
	detail, err := newQuestionnaireService(db).Create(owner.ID, empty)
	require.NoError(t, err)

	_, err = quizSvc.Play(detail.ID, owner.ID)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestScorePersistsSubmission(t *testing.T) {
	db := testDB(t)
	quizSvc := newQuizService(db)
	owner := seedUser(t, db, "owner@example.com")
	player := seedUser(t, db, "player@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, true))
	require.NoError(t, err)

	// Select every correct answer.
	selection := map[uint][]uint{}
	for _, q := range detail.Questions {
		for _, a := range q.Answers {
			if a.IsCorrect {
				selection[q.ID] = append(selection[q.ID], a.ID)
			}
		}
	}

	resp, err := quizSvc.Score(detail.ID, player.ID, dto.QuizScoreRequest{Answers: selection})
	require.NoError(t, err)

	assert.True(t, resp.Score.Equal(dec("6")), "score = %s", resp.Score)
	assert.True(t, resp.MaxScore.Equal(dec("6")))
	assert.Equal(t, 100, resp.Percent)

	var submissions []model.QuizSubmission
	require.NoError(t, db.Preload("Answers").Where("user_id = ?", player.ID).Find(&submissions).Error)
	require.Len(t, submissions, 1)
	assert.Equal(t, detail.ID, submissions[0].QuestionnaireID)
	assert.True(t, submissions[0].Score.Equal(dec("6")))
	assert.Len(t, submissions[0].Answers, 3)
}

func TestScoreWrongSelection(t *testing.T) {
	db := testDB(t)
	quizSvc := newQuizService(db)
	owner := seedUser(t, db, "owner@example.com")
	player := seedUser(t, db, "player@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, true))
	require.NoError(t, err)

	selection := map[uint][]uint{}
	for _, q := range detail.Questions {
		for _, a := range q.Answers {
			if !a.IsCorrect {
				selection[q.ID] = append(selection[q.ID], a.ID)
			}
		}
	}

	resp, err := quizSvc.Score(detail.ID, player.ID, dto.QuizScoreRequest{Answers: selection})
	require.NoError(t, err)

	assert.True(t, resp.Score.IsZero())
	assert.True(t, resp.MaxScore.Equal(dec("6")))
	assert.Equal(t, 0, resp.Percent)
}

func TestSubmissionsHistory(t *testing.T) {
	db := testDB(t)
	quizSvc := newQuizService(db)
	owner := seedUser(t, db, "owner@example.com")
	player := seedUser(t, db, "player@example.com")
	theme := seedTheme(t, db, "Geography")

	detail, err := newQuestionnaireService(db).Create(owner.ID, geoQuizSave(theme.ID, true))
	require.NoError(t, err)

	_, err = quizSvc.Score(detail.ID, player.ID, dto.QuizScoreRequest{Answers: map[uint][]uint{}})
	require.NoError(t, err)

	history, err := quizSvc.Submissions(player.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)

	assert.Equal(t, detail.ID, history[0].QuestionnaireID)
	assert.Equal(t, "Geo Quiz", history[0].QuestionnaireName)
	assert.True(t, history[0].Score.IsZero())
	assert.True(t, history[0].MaxScore.Equal(dec("6")))
	assert.Equal(t, 0, history[0].Percent)

	// Other users see their own history only.
	other, err := quizSvc.Submissions(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, other)
}
