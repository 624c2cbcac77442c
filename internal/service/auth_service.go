package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizforge/internal/apperr"
	"quizforge/internal/dto"
	"quizforge/internal/model"
	"quizforge/internal/repository"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(userID uint) (*dto.UserResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	db        *gorm.DB
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, db *gorm.DB, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:  userRepo,
		db:        db,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: email lookup failed")
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, apperr.Validationf("email %s is already registered", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	// The user and their default preference row are created together.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		pref := model.UserPreference{
			UserID:   user.ID,
			Theme:    model.ThemeModeLight,
			Language: model.LanguageFrench,
		}
		return tx.Create(&pref).Error
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: transaction failed")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	return &resp, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Permissionf("invalid credentials")
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Permissionf("invalid credentials")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: token signing failed")
		return nil, fmt.Errorf("signing token: %w", err)
	}

	var userResp dto.UserResponse
	if err := copier.Copy(&userResp, user); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: userResp}, nil
}

func (s *authService) Profile(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %d", userID)
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	return &resp, nil
}
