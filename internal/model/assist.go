package model

import "strings"

type Language string

const (
	LanguageArabic  Language = "arabic"
	LanguageEnglish Language = "english"
)

// ParseLanguage maps free-form input to a supported language. Anything that
// is not English falls back to Arabic.
func ParseLanguage(raw string) Language {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "english", "en":
		return LanguageEnglish
	default:
		return LanguageArabic
	}
}

// Name is the human-readable language name used inside prompts.
func (l Language) Name() string {
	if l == LanguageEnglish {
		return "English"
	}
	return "Arabic"
}

// AssistResult is the outcome of one explanation or review call.
type AssistResult struct {
	Success bool   `json:"success"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

func AssistOK(content string) AssistResult {
	return AssistResult{Success: true, Content: content}
}

func AssistFailed(err error) AssistResult {
	return AssistResult{Success: false, Error: err.Error()}
}
