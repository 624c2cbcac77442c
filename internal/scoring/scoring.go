// Package scoring implements the quiz scoring engine and the authoring
// helpers around answer weights. Everything here is pure: no database, no
// HTTP, just arithmetic over a questionnaire snapshot.
package scoring

import (
	"github.com/shopspring/decimal"

	"quizforge/internal/apperr"
	"quizforge/internal/model"
)

// Selection maps a question id to the set of answer ids the player picked.
// Missing entries mean no selection for that question.
type Selection map[uint][]uint

// Result holds the outcome of scoring one play of a questionnaire.
type Result struct {
	Score    decimal.Decimal
	MaxScore decimal.Decimal
	Percent  int
}

// Calculate computes the achieved score and the maximum achievable score for
// a questionnaire snapshot.
//
// MaxScore sums max(weight, 0) over every answer: negative "penalty" weights
// never raise the ceiling. The raw score sums the weight of every selected
// answer regardless of sign, and the final score is floored at zero. Selected
// ids that do not belong to any question are inert, and IsCorrect plays no
// part in the arithmetic. Never errors.
func Calculate(questions []model.Question, selected Selection) Result {
	score := decimal.Zero
	maxScore := decimal.Zero

	for _, question := range questions {
		picked := make(map[uint]bool, len(selected[question.ID]))
		for _, id := range selected[question.ID] {
			picked[id] = true
		}

		for _, answer := range question.Answers {
			if answer.Weight.IsPositive() {
				maxScore = maxScore.Add(answer.Weight)
			}
			if picked[answer.ID] {
				score = score.Add(answer.Weight)
			}
		}
	}

	if score.IsNegative() {
		score = decimal.Zero
	}

	return Result{
		Score:    score,
		MaxScore: maxScore,
		Percent:  Percent(score, maxScore),
	}
}

// Percent derives the integer percentage, rounded half-up, or 0 when the
// ceiling is not positive.
func Percent(score, maxScore decimal.Decimal) int {
	if !maxScore.IsPositive() {
		return 0
	}
	return int(score.Div(maxScore).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// Distribute sets every correct answer's weight to points and every
// incorrect answer's weight to zero, returning the updated slice. Despite
// the name this is a flat replacement, not a division: each correct answer
// receives the full value.
//
// Fails with a validation error when points is negative or when no answer is
// marked correct; the input is not modified in that case.
func Distribute(answers []model.Answer, points decimal.Decimal) ([]model.Answer, error) {
	if points.IsNegative() {
		return nil, apperr.Validationf("points must not be negative")
	}

	hasCorrect := false
	for _, a := range answers {
		if a.IsCorrect {
			hasCorrect = true
			break
		}
	}
	if !hasCorrect {
		return nil, apperr.Validationf("no correct answer selected")
	}

	out := make([]model.Answer, len(answers))
	copy(out, answers)
	for i := range out {
		if out[i].IsCorrect {
			out[i].Weight = points
		} else {
			out[i].Weight = decimal.Zero
		}
	}
	return out, nil
}

// TrueFalsePair builds the canonical two answers of a TRUE_FALSE question:
// one row per boolean outcome, with the weight concentrated on the correct
// one and zero on the other.
func TrueFalsePair(trueLabel, falseLabel string, correctIsTrue bool, weight decimal.Decimal) []model.Answer {
	trueWeight := decimal.Zero
	falseWeight := decimal.Zero
	if correctIsTrue {
		trueWeight = weight
	} else {
		falseWeight = weight
	}

	return []model.Answer{
		{Label: trueLabel, IsCorrect: correctIsTrue, Weight: trueWeight},
		{Label: falseLabel, IsCorrect: !correctIsTrue, Weight: falseWeight},
	}
}
