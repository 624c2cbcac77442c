package service

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quizforge/internal/dto"
	"quizforge/internal/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.UserPreference{},
		&model.Theme{},
		&model.Questionnaire{},
		&model.Question{},
		&model.Answer{},
		&model.QuizSubmission{},
		&model.QuizAnswer{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{Email: email, Password: "irrelevant-hash"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedTheme(t *testing.T, db *gorm.DB, name string) *model.Theme {
	t.Helper()
	theme := model.Theme{Name: name}
	require.NoError(t, db.Create(&theme).Error)
	return &theme
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func boolPtr(b bool) *bool { return &b }

// geoQuizSave is the canonical two-question authoring payload used across the
// service tests: one true/false question worth 1 point and one multiple
// choice question with weights 2, 0 and 3.
func geoQuizSave(themeID uint, published bool) dto.QuestionnaireSaveDTO {
	return dto.QuestionnaireSaveDTO{
		Name:      "Geo Quiz",
		ThemeID:   themeID,
		Published: published,
		Questions: []dto.QuestionSaveDTO{
			{
				Label:         "Paris is in France",
				AnswerType:    model.AnswerTypeTrueFalse,
				CorrectIsTrue: boolPtr(true),
				Weight:        decPtr("1"),
			},
			{
				Label:      "Which cities are capitals?",
				AnswerType: model.AnswerTypeMultipleChoice,
				Answers: []dto.AnswerSaveDTO{
					{Label: "Paris", IsCorrect: true, Weight: decPtr("2")},
					{Label: "Lyon", IsCorrect: false, Weight: decPtr("0")},
					{Label: "Rome", IsCorrect: true, Weight: decPtr("3")},
				},
			},
		},
	}
}
