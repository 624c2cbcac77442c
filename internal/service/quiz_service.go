package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"quizforge/internal/apperr"
	"quizforge/internal/dto"
	"quizforge/internal/model"
	"quizforge/internal/repository"
	"quizforge/internal/scoring"
)

type QuizService interface {
	// Play returns the playable snapshot of a questionnaire. Owners may play
	// their own unpublished questionnaire in demo mode.
	Play(questionnaireID, userID uint) (*dto.QuizSnapshotDTO, error)
	// Score runs the scoring engine over the player's selection and persists
	// the submission with its selected answers in one transaction.
	Score(questionnaireID, userID uint, req dto.QuizScoreRequest) (*dto.QuizScoreResponse, error)
	Submissions(userID uint) ([]dto.SubmissionResponseDTO, error)
}

type quizService struct {
	questionnaireRepo repository.QuestionnaireRepository
	submissionRepo    repository.SubmissionRepository
	db                *gorm.DB
}

func NewQuizService(
	questionnaireRepo repository.QuestionnaireRepository,
	submissionRepo repository.SubmissionRepository,
	db *gorm.DB,
) QuizService {
	return &quizService{
		questionnaireRepo: questionnaireRepo,
		submissionRepo:    submissionRepo,
		db:                db,
	}
}

func (s *quizService) loadPlayable(questionnaireID, userID uint) (*model.Questionnaire, bool, error) {
	q, err := s.questionnaireRepo.FindByIDFull(questionnaireID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperr.NotFoundf("questionnaire %d", questionnaireID)
		}
		return nil, false, fmt.Errorf("fetching questionnaire %d: %w", questionnaireID, err)
	}

	demo := false
	if !q.Published {
		if q.UserID != userID {
			return nil, false, apperr.Permissionf("questionnaire %d is not published", questionnaireID)
		}
		demo = true
	}
	return q, demo, nil
}

func (s *quizService) Play(questionnaireID, userID uint) (*dto.QuizSnapshotDTO, error) {
	q, demo, err := s.loadPlayable(questionnaireID, userID)
	if err != nil {
		return nil, err
	}
	if len(q.Questions) == 0 {
		return nil, apperr.Validationf("questionnaire %d has no questions", questionnaireID)
	}
	return &dto.QuizSnapshotDTO{Questionnaire: *toDetailDTO(q), DemoMode: demo}, nil
}

func (s *quizService) Score(questionnaireID, userID uint, req dto.QuizScoreRequest) (*dto.QuizScoreResponse, error) {
	q, _, err := s.loadPlayable(questionnaireID, userID)
	if err != nil {
		return nil, err
	}

	result := scoring.Calculate(q.Questions, scoring.Selection(req.Answers))

	submission := model.QuizSubmission{
		UserID:          userID,
		QuestionnaireID: questionnaireID,
		Score:           result.Score,
		MaxScore:        result.MaxScore,
	}
	for questionID, answerIDs := range req.Answers {
		for _, answerID := range answerIDs {
			submission.Answers = append(submission.Answers, model.QuizAnswer{
				QuestionID: questionID,
				AnswerID:   answerID,
			})
		}
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&submission).Error
	}); err != nil {
		log.Error().Err(err).Uint("questionnaireID", questionnaireID).Uint("userID", userID).Msg("Score: persisting submission failed")
		return nil, fmt.Errorf("saving submission: %w", err)
	}

	return &dto.QuizScoreResponse{
		Score:    result.Score,
		MaxScore: result.MaxScore,
		Percent:  result.Percent,
	}, nil
}

func (s *quizService) Submissions(userID uint) ([]dto.SubmissionResponseDTO, error) {
	subs, err := s.submissionRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching submissions: %w", err)
	}

	out := make([]dto.SubmissionResponseDTO, 0, len(subs))
	for _, sub := range subs {
		out = append(out, dto.SubmissionResponseDTO{
			ID:                sub.ID,
			QuestionnaireID:   sub.QuestionnaireID,
			QuestionnaireName: sub.Questionnaire.Name,
			Score:             sub.Score,
			MaxScore:          sub.MaxScore,
			Percent:           scoring.Percent(sub.Score, sub.MaxScore),
			CreatedAt:         sub.CreatedAt,
		})
	}
	return out, nil
}
