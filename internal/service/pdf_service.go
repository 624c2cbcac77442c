package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"quizforge/internal/apperr"
	"quizforge/internal/model"
	"quizforge/internal/repository"
)

type PDFService interface {
	// Export renders the questionnaire as a printable PDF. Visibility follows
	// the same rule as reading: the owner always, everyone else only when
	// published.
	Export(questionnaireID, userID uint) ([]byte, string, error)
}

type pdfService struct {
	questionnaireRepo repository.QuestionnaireRepository
}

func NewPDFService(questionnaireRepo repository.QuestionnaireRepository) PDFService {
	return &pdfService{questionnaireRepo: questionnaireRepo}
}

func (s *pdfService) Export(questionnaireID, userID uint) ([]byte, string, error) {
	q, err := s.questionnaireRepo.FindByIDFull(questionnaireID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.NotFoundf("questionnaire %d", questionnaireID)
		}
		return nil, "", fmt.Errorf("fetching questionnaire %d: %w", questionnaireID, err)
	}
	if !q.Published && q.UserID != userID {
		return nil, "", apperr.Permissionf("questionnaire %d is not published", questionnaireID)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(q.Name, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr(q.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 8, tr(q.Theme.Name), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, question := range q.Questions {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("%d. %s", question.Number, question.Label)), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		for _, answer := range question.Answers {
			marker := "[ ]"
			if question.AnswerType == model.AnswerTypeTrueFalse {
				marker = "( )"
			}
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("   %s %s", marker, answer.Label)), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("questionnaire-%d.pdf", q.ID), nil
}
