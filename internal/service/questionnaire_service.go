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

type QuestionnaireService interface {
	ListMine(userID uint) ([]dto.QuestionnaireSummaryDTO, error)
	ListPublished(userID uint) ([]dto.QuestionnaireSummaryDTO, error)
	Get(id, userID uint) (*dto.QuestionnaireDetailDTO, error)
	Create(userID uint, req dto.QuestionnaireSaveDTO) (*dto.QuestionnaireDetailDTO, error)
	Update(id, userID uint, req dto.QuestionnaireSaveDTO) (*dto.QuestionnaireDetailDTO, error)
	Delete(id, userID uint) error
	TogglePublish(id, userID uint) error
	Fork(sourceID, userID uint) (uint, error)
}

type questionnaireService struct {
	questionnaireRepo repository.QuestionnaireRepository
	prefRepo          repository.PreferenceRepository
	db                *gorm.DB
}

func NewQuestionnaireService(
	questionnaireRepo repository.QuestionnaireRepository,
	prefRepo repository.PreferenceRepository,
	db *gorm.DB,
) QuestionnaireService {
	return &questionnaireService{
		questionnaireRepo: questionnaireRepo,
		prefRepo:          prefRepo,
		db:                db,
	}
}

func (s *questionnaireService) ListMine(userID uint) ([]dto.QuestionnaireSummaryDTO, error) {
	qs, err := s.questionnaireRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching questionnaires: %w", err)
	}
	return toSummaryDTOs(qs, false), nil
}

func (s *questionnaireService) ListPublished(userID uint) ([]dto.QuestionnaireSummaryDTO, error) {
	qs, err := s.questionnaireRepo.FindPublishedByOthers(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching published questionnaires: %w", err)
	}
	return toSummaryDTOs(qs, true), nil
}

func (s *questionnaireService) Get(id, userID uint) (*dto.QuestionnaireDetailDTO, error) {
	q, err := s.questionnaireRepo.FindByIDFull(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("questionnaire %d", id)
		}
		return nil, fmt.Errorf("fetching questionnaire %d: %w", id, err)
	}
	if !q.Published && q.UserID != userID {
		return nil, apperr.Permissionf("questionnaire %d is not published", id)
	}
	return toDetailDTO(q), nil
}

func (s *questionnaireService) Create(userID uint, req dto.QuestionnaireSaveDTO) (*dto.QuestionnaireDetailDTO, error) {
	questions, err := buildQuestionTree(req.Questions, translatorFor(s.prefRepo, userID))
	if err != nil {
		return nil, err
	}

	q := model.Questionnaire{
		Name:          req.Name,
		ThemeID:       req.ThemeID,
		UserID:        userID,
		Published:     req.Published,
		QuestionCount: len(questions),
		Questions:     questions,
	}

	// gorm creates the nested questions and answers along with the parent.
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&q).Error
	}); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Create questionnaire: transaction failed")
		return nil, fmt.Errorf("creating questionnaire: %w", err)
	}

	return s.Get(q.ID, userID)
}

func (s *questionnaireService) Update(id, userID uint, req dto.QuestionnaireSaveDTO) (*dto.QuestionnaireDetailDTO, error) {
	questions, err := buildQuestionTree(req.Questions, translatorFor(s.prefRepo, userID))
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Ownership is part of the UPDATE itself, not a prior read.
		res := tx.Model(&model.Questionnaire{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]any{
				"name":           req.Name,
				"theme_id":       req.ThemeID,
				"published":      req.Published,
				"question_count": len(questions),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.Permissionf("questionnaire %d not found or not owned", id)
		}

		// Replace the question tree wholesale.
		sub := tx.Model(&model.Question{}).Select("id").Where("questionnaire_id = ?", id)
		if err := tx.Where("question_id IN (?)", sub).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("questionnaire_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuestionnaireID = id
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrPermission) {
			return nil, err
		}
		log.Error().Err(err).Uint("questionnaireID", id).Msg("Update questionnaire: transaction failed")
		return nil, fmt.Errorf("updating questionnaire %d: %w", id, err)
	}

	return s.Get(id, userID)
}

func (s *questionnaireService) Delete(id, userID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&model.Question{}).Select("id").Where("questionnaire_id = ?", id)
		if err := tx.Where("question_id IN (?)", sub).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("questionnaire_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Questionnaire{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.Permissionf("questionnaire %d not found or not owned", id)
		}
		return nil
	})
	if err != nil && !errors.Is(err, apperr.ErrPermission) {
		log.Error().Err(err).Uint("questionnaireID", id).Msg("Delete questionnaire: transaction failed")
	}
	return err
}

func (s *questionnaireService) TogglePublish(id, userID uint) error {
	rows, err := s.questionnaireRepo.TogglePublishedOwned(id, userID)
	if err != nil {
		return fmt.Errorf("toggling publish on questionnaire %d: %w", id, err)
	}
	if rows == 0 {
		return apperr.Permissionf("questionnaire %d not found or not owned", id)
	}
	return nil
}

// Fork deep-copies a published questionnaire, with all its questions and
// answers, into a new unpublished questionnaire owned by the requester. The
// copy runs in a single transaction; any failure rolls everything back and
// surfaces as a ForkFailedError.
func (s *questionnaireService) Fork(sourceID, userID uint) (uint, error) {
	source, err := s.questionnaireRepo.FindByID(sourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFoundf("questionnaire %d", sourceID)
		}
		return 0, fmt.Errorf("fetching questionnaire %d: %w", sourceID, err)
	}
	if !source.Published {
		return 0, apperr.Permissionf("questionnaire %d is not published", sourceID)
	}
	if source.UserID == userID {
		return 0, apperr.Validationf("cannot fork your own questionnaire")
	}

	suffix := translatorFor(s.prefRepo, userID).ForkSuffix()

	var newID uint
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var src model.Questionnaire
		if err := tx.First(&src, sourceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("source questionnaire %d", sourceID)
			}
			return err
		}

		clone := model.Questionnaire{
			Name:          fmt.Sprintf("%s %s", src.Name, suffix),
			ThemeID:       src.ThemeID,
			UserID:        userID,
			Published:     false,
			QuestionCount: src.QuestionCount,
		}
		if err := tx.Create(&clone).Error; err != nil {
			return err
		}

		var questions []model.Question
		if err := tx.Where("questionnaire_id = ?", sourceID).
			Order("number ASC").
			Find(&questions).Error; err != nil {
			return err
		}

		// Old question id -> new question id; lives only for this transaction.
		idMap := make(map[uint]uint, len(questions))
		for _, q := range questions {
			newQuestion := model.Question{
				QuestionnaireID: clone.ID,
				Number:          q.Number,
				Label:           q.Label,
				AnswerType:      q.AnswerType,
			}
			if err := tx.Create(&newQuestion).Error; err != nil {
				return err
			}
			idMap[q.ID] = newQuestion.ID
		}

		for _, q := range questions {
			var answers []model.Answer
			if err := tx.Where("question_id = ?", q.ID).
				Order("id ASC").
				Find(&answers).Error; err != nil {
				return err
			}
			for _, a := range answers {
				newAnswer := model.Answer{
					QuestionID: idMap[q.ID],
					Label:      a.Label,
					IsCorrect:  a.IsCorrect,
					Weight:     a.Weight,
				}
				if err := tx.Create(&newAnswer).Error; err != nil {
					return err
				}
			}
		}

		newID = clone.ID
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("sourceID", sourceID).Uint("userID", userID).Msg("Fork: transaction rolled back")
		return 0, &apperr.ForkFailedError{Err: err}
	}

	log.Info().Uint("sourceID", sourceID).Uint("newID", newID).Uint("userID", userID).Msg("Fork: questionnaire copied")
	return newID, nil
}

// buildQuestionTree converts authored questions into models, numbering them
// 1..N in request order. TRUE_FALSE questions get the canonical localized
// answer pair; MULTIPLE_CHOICE answers default to weight 1 when omitted.
func buildQuestionTree(questions []dto.QuestionSaveDTO, tr i18n.Translator) ([]model.Question, error) {
	out := make([]model.Question, 0, len(questions))
	for i, qd := range questions {
		question := model.Question{
			Number:     i + 1,
			Label:      qd.Label,
			AnswerType: qd.AnswerType,
		}

		switch qd.AnswerType {
		case model.AnswerTypeTrueFalse:
			if qd.CorrectIsTrue == nil {
				return nil, apperr.Validationf("question %d: correct_is_true is required for TRUE_FALSE", i+1)
			}
			weight := decimal.NewFromInt(1)
			if qd.Weight != nil {
				weight = *qd.Weight
			}
			question.Answers = scoring.TrueFalsePair(tr.TrueLabel(), tr.FalseLabel(), *qd.CorrectIsTrue, weight)
		case model.AnswerTypeMultipleChoice:
			for _, ad := range qd.Answers {
				weight := decimal.NewFromInt(1)
				if ad.Weight != nil {
					weight = *ad.Weight
				}
				question.Answers = append(question.Answers, model.Answer{
					Label:     ad.Label,
					IsCorrect: ad.IsCorrect,
					Weight:    weight,
				})
			}
		default:
			return nil, apperr.Validationf("question %d: unknown answer type %q", i+1, qd.AnswerType)
		}
		out = append(out, question)
	}
	return out, nil
}

func toSummaryDTOs(qs []model.Questionnaire, withOwner bool) []dto.QuestionnaireSummaryDTO {
	out := make([]dto.QuestionnaireSummaryDTO, 0, len(qs))
	for _, q := range qs {
		summary := dto.QuestionnaireSummaryDTO{
			ID:            q.ID,
			Name:          q.Name,
			ThemeID:       q.ThemeID,
			ThemeName:     q.Theme.Name,
			UserID:        q.UserID,
			Published:     q.Published,
			QuestionCount: q.QuestionCount,
		}
		if withOwner {
			var owner dto.UserResponse
			if err := copier.Copy(&owner, &q.User); err == nil {
				summary.Owner = &owner
			}
		}
		out = append(out, summary)
	}
	return out
}

func toDetailDTO(q *model.Questionnaire) *dto.QuestionnaireDetailDTO {
	var detail dto.QuestionnaireDetailDTO
	if err := copier.Copy(&detail, q); err != nil {
		log.Error().Err(err).Uint("questionnaireID", q.ID).Msg("copying questionnaire to DTO")
	}
	detail.ThemeName = q.Theme.Name
	return &detail
}
