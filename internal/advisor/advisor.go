// Package advisor forwards budgeting questions to a third-party completion
// service under a fixed financial-advisor instruction.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// providerLabel prefixes upstream error messages shown to users.
const providerLabel = "OpenAI"

// Prompt is one user turn.
type Prompt struct {
	Message        string
	ConversationID string
}

// Reply is the generated answer plus the conversation to continue next turn.
type Reply struct {
	Message        string
	ConversationID string
}

// Request is what a Provider receives: the prompt plus the system instruction.
type Request struct {
	Instructions   string
	Message        string
	ConversationID string
}

// Provider talks to one completion backend.
type Provider interface {
	Complete(ctx context.Context, req Request) (*Reply, error)
}

// ProviderError is returned by providers when the upstream rejected a request.
// ConversationID is set when a conversation was opened before the rejection.
type ProviderError struct {
	Status         int
	Message        string
	ConversationID string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.Status, e.Message)
}

// Servicer defines the contract for the advisor endpoint.
type Servicer interface {
	Ask(ctx context.Context, prompt Prompt) (*Reply, error)
}

// Service validates prompts and relays them to a Provider.
type Service struct {
	provider     Provider
	instructions string
	timeout      time.Duration
}

// NewService creates an advisor over provider. A nil provider yields a
// service that reports the advisor as unavailable.
func NewService(provider Provider, timeout time.Duration) *Service {
	return &Service{
		provider:     provider,
		instructions: Instructions(models.CategoryNames()),
		timeout:      timeout,
	}
}

// Ask forwards prompt upstream. Blank messages are rejected before any call.
func (s *Service) Ask(ctx context.Context, prompt Prompt) (*Reply, error) {
	message := strings.TrimSpace(prompt.Message)
	if message == "" {
		return nil, apperrors.ErrMessageRequired
	}
	if s.provider == nil {
		return nil, apperrors.ErrAdvisorDisabled
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.provider.Complete(ctx, Request{
		Instructions:   s.instructions,
		Message:        message,
		ConversationID: strings.TrimSpace(prompt.ConversationID),
	})
	if err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) {
			logger.Named("advisor").Warnw("provider rejected request",
				"status", perr.Status,
				"message", perr.Message,
				"conversation_id", perr.ConversationID,
			)
			return nil, apperrors.Upstream(providerLabel, perr.Status, perr.Message, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Upstream(providerLabel, http.StatusGatewayTimeout, "request timed out", err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return reply, nil
}

// Instructions renders the fixed advisor instruction for the given categories.
func Instructions(categories []string) string {
	return `You are an AI financial advisor with expertise in personal finance, budgeting, and investment strategies. Your role is to:

1. Provide clear, actionable financial advice tailored to the user's situation
2. Help users understand their spending patterns across these categories: ` + strings.Join(categories, ", ") + `
3. Offer practical budgeting tips and saving strategies
4. Explain financial concepts in simple, easy-to-understand language
5. Be encouraging and supportive while maintaining professional advice
6. Ask clarifying questions when needed to provide better guidance
7. Focus on building healthy financial habits and long-term wealth

Always consider the user's financial literacy level and provide explanations that are accessible to beginners. Be specific with actionable steps rather than generic advice.`
}
