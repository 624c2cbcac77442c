package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"quizforge/internal/apperr"
	"quizforge/internal/dto"
	"quizforge/internal/i18n"
	"quizforge/internal/model"
	"quizforge/internal/repository"
	"quizforge/internal/scoring"
)

type QuestionService interface {
	Add(questionnaireID, userID uint, req dto.QuestionSaveDTO) (*dto.QuestionResponseDTO, error)
	Edit(questionID, userID uint, req dto.QuestionSaveDTO) (*dto.QuestionResponseDTO, error)
	Remove(questionID, userID uint) error
	Distribute(questionID, userID uint, points decimal.Decimal) ([]dto.AnswerResponseDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	prefRepo     repository.PreferenceRepository
	db           *gorm.DB
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	prefRepo repository.PreferenceRepository,
	db *gorm.DB,
) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		prefRepo:     prefRepo,
		db:           db,
	}
}

// ownedQuestionnaires is the subquery used to embed the ownership check in
// question mutations.
func ownedQuestionnaires(tx *gorm.DB, userID uint) *gorm.DB {
	return tx.Model(&model.Questionnaire{}).Select("id").Where("user_id = ?", userID)
}

// translatorFor resolves the requester's saved language into a translator.
func translatorFor(prefRepo repository.PreferenceRepository, userID uint) i18n.Translator {
	pref, err := prefRepo.FindByUser(userID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("falling back to default language")
		return i18n.New(model.LanguageFrench)
	}
	return i18n.New(pref.Language)
}

func (s *questionService) Add(questionnaireID, userID uint, req dto.QuestionSaveDTO) (*dto.QuestionResponseDTO, error) {
	built, err := buildQuestionTree([]dto.QuestionSaveDTO{req}, translatorFor(s.prefRepo, userID))
	if err != nil {
		return nil, err
	}
	question := built[0]
	question.QuestionnaireID = questionnaireID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Bumping the count doubles as the atomic owner check.
		res := tx.Model(&model.Questionnaire{}).
			Where("id = ? AND user_id = ?", questionnaireID, userID).
			Update("question_count", gorm.Expr("question_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.Permissionf("questionnaire %d not found or not owned", questionnaireID)
		}

		var next int
		if err := tx.Model(&model.Question{}).
			Where("questionnaire_id = ?", questionnaireID).
			Select("COALESCE(MAX(number), 0) + 1").
			Scan(&next).Error; err != nil {
			return err
		}
		question.Number = next
		return tx.Create(&question).Error
	})
	if err != nil {
		if !errors.Is(err, apperr.ErrPermission) {
			log.Error().Err(err).Uint("questionnaireID", questionnaireID).Msg("Add question: transaction failed")
		}
		return nil, err
	}

	return toQuestionDTO(&question), nil
}

func (s *questionService) Edit(questionID, userID uint, req dto.QuestionSaveDTO) (*dto.QuestionResponseDTO, error) {
	built, err := buildQuestionTree([]dto.QuestionSaveDTO{req}, translatorFor(s.prefRepo, userID))
	if err != nil {
		return nil, err
	}
	replacement := built[0]

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Question{}).
			Where("id = ? AND questionnaire_id IN (?)", questionID, ownedQuestionnaires(tx, userID)).
			Updates(map[string]any{
				"label":       replacement.Label,
				"answer_type": replacement.AnswerType,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.Permissionf("question %d not found or not owned", questionID)
		}

		// The answer set is replaced wholesale. This keeps the TRUE_FALSE
		// pair from drifting and discards old answers when the type switches.
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		for i := range replacement.Answers {
			replacement.Answers[i].QuestionID = questionID
			if err := tx.Create(&replacement.Answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperr.ErrPermission) {
			log.Error().Err(err).Uint("questionID", questionID).Msg("Edit question: transaction failed")
		}
		return nil, err
	}

	updated, err := s.questionRepo.FindByIDWithAnswers(questionID)
	if err != nil {
		return nil, fmt.Errorf("reloading question %d: %w", questionID, err)
	}
	return toQuestionDTO(updated), nil
}

func (s *questionService) Remove(questionID, userID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var question model.Question
		err := tx.Where("id = ? AND questionnaire_id IN (?)", questionID, ownedQuestionnaires(tx, userID)).
			First(&question).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Permissionf("question %d not found or not owned", questionID)
			}
			return err
		}

		if err := tx.Where("question_id = ?", questionID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Question{}, questionID).Error; err != nil {
			return err
		}
		// Numbers stay contiguous after a removal.
		if err := tx.Model(&model.Question{}).
			Where("questionnaire_id = ? AND number > ?", question.QuestionnaireID, question.Number).
			Update("number", gorm.Expr("number - 1")).Error; err != nil {
			return err
		}
		return tx.Model(&model.Questionnaire{}).
			Where("id = ?", question.QuestionnaireID).
			Update("question_count", gorm.Expr("question_count - 1")).Error
	})
	if err != nil && !errors.Is(err, apperr.ErrPermission) {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Remove question: transaction failed")
	}
	return err
}

func (s *questionService) Distribute(questionID, userID uint, points decimal.Decimal) ([]dto.AnswerResponseDTO, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var question model.Question
		err := tx.Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
			Where("id = ? AND questionnaire_id IN (?)", questionID, ownedQuestionnaires(tx, userID)).
			First(&question).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Permissionf("question %d not found or not owned", questionID)
			}
			return err
		}

		distributed, err := scoring.Distribute(question.Answers, points)
		if err != nil {
			return err
		}
		for i := range distributed {
			if err := tx.Model(&model.Answer{}).
				Where("id = ?", distributed[i].ID).
				Update("weight", distributed[i].Weight).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperr.ErrPermission) && !errors.Is(err, apperr.ErrValidation) {
			log.Error().Err(err).Uint("questionID", questionID).Msg("Distribute points: transaction failed")
		}
		return nil, err
	}

	answers, err := s.answerRepo.FindByQuestion(questionID)
	if err != nil {
		return nil, fmt.Errorf("reloading answers for question %d: %w", questionID, err)
	}
	out := make([]dto.AnswerResponseDTO, 0, len(answers))
	for _, a := range answers {
		var ad dto.AnswerResponseDTO
		if err := copier.Copy(&ad, &a); err != nil {
			return nil, fmt.Errorf("preparing response: %w", err)
		}
		out = append(out, ad)
	}
	return out, nil
}

func toQuestionDTO(q *model.Question) *dto.QuestionResponseDTO {
	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, q); err != nil {
		log.Error().Err(err).Uint("questionID", q.ID).Msg("copying question to DTO")
	}
	return &resp
}
