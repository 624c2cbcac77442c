// Package i18n provides the handful of localized strings the core logic
// needs (fork suffix, boolean answer labels). Translators are cheap values
// resolved per request from the user's saved language preference; there is
// no process-wide mutable state.
package i18n

import "quizforge/internal/model"

var strings = map[string]map[string]string{
	model.LanguageFrench: {
		"main.fork_suffix":       "(copie)",
		"question.true":          "Vrai",
		"question.false":         "Faux",
		"quiz.empty":             "impossible de jouer un questionnaire vide",
		"error.source_not_found": "questionnaire source introuvable",
	},
	model.LanguageEnglish: {
		"main.fork_suffix":       "(copy)",
		"question.true":          "True",
		"question.false":         "False",
		"quiz.empty":             "cannot play an empty questionnaire",
		"error.source_not_found": "source questionnaire not found",
	},
}

type Translator struct {
	lang string
}

// New returns a translator for the given language code. Unknown codes fall
// back to French, matching the application default.
func New(lang string) Translator {
	if _, ok := strings[lang]; !ok {
		lang = model.LanguageFrench
	}
	return Translator{lang: lang}
}

func (t Translator) Language() string { return t.lang }

func (t Translator) T(key string) string {
	if v, ok := strings[t.lang][key]; ok {
		return v
	}
	return key
}

func (t Translator) ForkSuffix() string { return t.T("main.fork_suffix") }
func (t Translator) TrueLabel() string  { return t.T("question.true") }
func (t Translator) FalseLabel() string { return t.T("question.false") }
