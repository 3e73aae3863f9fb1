// Package tips asks a language model for short coach tips shown next to
// the quiz setup.
package tips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pms-safya/abacus/internal/llm"
)

// ErrNoProvider is returned by Tip when the service has no LLM provider.
var ErrNoProvider = errors.New("tips: no LLM provider configured")

// Service generates coach tips.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tip service. A nil provider is allowed; every tip
// is then the fallback.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type tipOutput struct {
	Tip string `json:"tip"`
}

// Tip returns a tip for topic, or DefaultTopic when topic is blank. On
// any failure it returns Fallback together with the error, so callers
// can always display the string.
func (s *Service) Tip(ctx context.Context, topic string) (string, error) {
	if s == nil || s.provider == nil {
		return Fallback, ErrNoProvider
	}

	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultTopic
	}

	ctx = llm.WithPurpose(ctx, "tip")
	req := llm.Request{
		System: tipSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTipUserMessage(topic)},
		},
		Schema:      TipSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Fallback, fmt.Errorf("tip generation: %w", err)
	}

	var out tipOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Fallback, fmt.Errorf("parse tip response: %w", err)
	}
	tip := strings.TrimSpace(out.Tip)
	if tip == "" {
		return Fallback, fmt.Errorf("parse tip response: empty tip")
	}
	return tip, nil
}
