package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quizforge/internal/apperr"
	"quizforge/internal/dto"
	"quizforge/internal/model"
	"quizforge/internal/repository"
)

const testSecret = "test-secret"

func newAuthService(db *gorm.DB) AuthService {
	return NewAuthService(repository.NewUserRepository(db), db, testSecret, time.Hour)
}

func TestRegisterCreatesUserWithDefaultPreferences(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)

	first := "Ada"
	resp, err := svc.Register(dto.RegisterRequest{
		Email:     "ada@example.com",
		Password:  "s3cret-pass",
		FirstName: &first,
	})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", resp.Email)
	require.NotNil(t, resp.FirstName)
	assert.Equal(t, "Ada", *resp.FirstName)

	// The password is stored hashed, never verbatim.
	var user model.User
	require.NoError(t, db.First(&user, resp.ID).Error)
	assert.NotEqual(t, "s3cret-pass", user.Password)

	var pref model.UserPreference
	require.NoError(t, db.First(&pref, "user_id = ?", resp.ID).Error)
	assert.Equal(t, model.ThemeModeLight, pref.Theme)
	assert.Equal(t, model.LanguageFrench, pref.Language)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)

	req := dto.RegisterRequest{Email: "ada@example.com", Password: "s3cret-pass"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestLoginIssuesValidToken(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)

	registered, err := svc.Register(dto.RegisterRequest{Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	resp, err := svc.Login(dto.LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resp.User.ID)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(registered.ID), claims["user_id"])
	assert.Equal(t, "ada@example.com", claims["email"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(dto.RegisterRequest{Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	// Wrong password and unknown email fail the same way.
	_, err = svc.Login(dto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperr.ErrPermission)

	_, err = svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperr.ErrPermission)
}

func TestProfile(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)

	registered, err := svc.Register(dto.RegisterRequest{Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	profile, err := svc.Profile(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", profile.Email)

	_, err = svc.Profile(99999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
