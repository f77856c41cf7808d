package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ensaf/contracts-service/internal/extract"
	"github.com/ensaf/contracts-service/internal/model"
)

const (
	minClauseRunes   = 10
	minContractRunes = 50
)

type Assistant interface {
	ExplainClause(ctx context.Context, text string, lang model.Language) model.AssistResult
	ReviewContract(ctx context.Context, text string, lang model.Language) model.AssistResult
}

type TextExtractor interface {
	ExtractBytes(content []byte, ext string) (string, error)
}

type AssistService struct {
	assistant Assistant
	extractor TextExtractor
	now       func() time.Time
}

type Upload struct {
	Name    string
	Content []byte
}

type ReviewInput struct {
	Text     string
	Language string
	File     *Upload
}

type ReviewResult struct {
	Review     string
	TextLength int
	ReviewedAt time.Time
}

func NewAssistService(assistant Assistant, extractor TextExtractor) *AssistService {
	return &AssistService{assistant: assistant, extractor: extractor, now: time.Now}
}

func (s *AssistService) Explain(ctx context.Context, text, language string) (string, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minClauseRunes {
		return "", fmt.Errorf("%w: يرجى إدخال نص البند", ErrInvalidInput)
	}

	res := s.assistant.ExplainClause(ctx, text, model.ParseLanguage(language))
	if !res.Success {
		return "", fmt.Errorf("%w: %s", ErrAssistant, res.Error)
	}
	return res.Content, nil
}

// Review prefers text extracted from an uploaded file and falls back to
// pasted text when the file yields nothing.
func (s *AssistService) Review(ctx context.Context, input ReviewInput) (*ReviewResult, error) {
	text := input.Text
	if input.File != nil && input.File.Name != "" {
		extracted, err := s.extract(*input.File)
		if err != nil {
			return nil, err
		}
		if extracted != "" {
			text = extracted
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minContractRunes {
		return nil, fmt.Errorf("%w: يرجى إدخال نص العقد أو رفع ملف PDF (50 حرف على الأقل)", ErrInvalidInput)
	}

	res := s.assistant.ReviewContract(ctx, text, model.ParseLanguage(input.Language))
	if !res.Success {
		return nil, fmt.Errorf("%w: %s", ErrAssistant, res.Error)
	}
	return &ReviewResult{
		Review:     res.Content,
		TextLength: utf8.RuneCountInString(text),
		ReviewedAt: s.now(),
	}, nil
}

func (s *AssistService) extract(file Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Name))
	if !extract.Supported(ext) {
		return "", fmt.Errorf("%w: يرجى رفع ملف PDF أو TXT فقط", ErrUnsupportedFile)
	}
	text, err := s.extractor.ExtractBytes(file.Content, ext)
	if err != nil {
		return "", fmt.Errorf("%w: خطأ في قراءة الملف: %v", ErrExtraction, err)
	}
	return strings.TrimSpace(text), nil
}
