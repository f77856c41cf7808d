// Package assistant turns clause and contract text into LLM prompts and
// collects the answers.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ensaf/contracts-service/internal/knowledge"
	"github.com/ensaf/contracts-service/internal/llm"
	"github.com/ensaf/contracts-service/internal/model"
)

type Assistant struct {
	completer llm.Completer
	kb        *knowledge.Base
	log       zerolog.Logger
}

// New accepts a nil knowledge base; prompts then carry no reference material.
func New(completer llm.Completer, kb *knowledge.Base, log zerolog.Logger) *Assistant {
	return &Assistant{completer: completer, kb: kb, log: log}
}

func (a *Assistant) ExplainClause(ctx context.Context, text string, lang model.Language) model.AssistResult {
	return a.complete(ctx, "explain", llm.Request{
		System:      explainSystem(lang, a.kb),
		Prompt:      explainPrompt(text, lang),
		MaxTokens:   explainMaxTokens,
		Temperature: temperature,
	})
}

func (a *Assistant) ReviewContract(ctx context.Context, text string, lang model.Language) model.AssistResult {
	return a.complete(ctx, "review", llm.Request{
		System:      reviewSystem(lang, a.kb),
		Prompt:      reviewPrompt(text, lang),
		MaxTokens:   reviewMaxTokens,
		Temperature: temperature,
	})
}

func (a *Assistant) complete(ctx context.Context, kind string, req llm.Request) (result model.AssistResult) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().Str("kind", kind).Interface("panic", r).Msg("completion panicked")
			result = model.AssistFailed(fmt.Errorf("completion failed: %v", r))
		}
	}()

	if a.completer == nil {
		return model.AssistFailed(llm.ErrMissingAPIKey)
	}
	content, err := a.completer.Complete(ctx, req)
	if err != nil {
		a.log.Warn().Err(err).Str("kind", kind).Msg("completion failed")
		return model.AssistFailed(err)
	}
	if strings.TrimSpace(content) == "" {
		return model.AssistFailed(llm.ErrEmptyCompletion)
	}
	return model.AssistOK(content)
}
