// Package advisor asks an OpenAI chat model for free-text financial advice.
// The text is returned as-is and never feeds back into the numbers.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"financezenn-server/src/logging"
	"financezenn-server/src/models"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrNotConfigured    = errors.New("advice service not configured")
	ErrGenerationFailed = errors.New("advice generation failed")
)

const (
	maxTokens   = 1024
	temperature = 0.7
)

// Returned when the model answers with an empty completion.
const (
	FallbackFinancial  = "Não foi possível gerar insights no momento."
	FallbackDebts      = "Não foi possível gerar plano de quitação no momento."
	FallbackInvestment = "Não foi possível gerar recomendações de investimento no momento."
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Client struct {
	api    *openai.Client
	model  string
	logger *slog.Logger
}

func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{
		api:    openai.NewClientWithConfig(oc),
		model:  model,
		logger: logging.For(logging.ComponentAdvisor),
	}, nil
}

func (c *Client) FinancialAdvice(ctx context.Context, data FinancialData) (string, error) {
	return c.complete(ctx, "financial", FinancialPrompt(data), FallbackFinancial)
}

func (c *Client) DebtPayoffPlan(ctx context.Context, debts []models.Debt) (string, error) {
	return c.complete(ctx, "debts", DebtPayoffPrompt(debts), FallbackDebts)
}

func (c *Client) InvestmentAdvice(ctx context.Context, investments []models.Investment) (string, error) {
	return c.complete(ctx, "investments", InvestmentPrompt(investments), FallbackInvestment)
}

func (c *Client) complete(ctx context.Context, op, prompt, fallback string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to generate advice", logging.FieldOperation, op, logging.FieldError, err)
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		c.logger.WarnContext(ctx, "Empty completion, using fallback", logging.FieldOperation, op)
		return fallback, nil
	}
	return resp.Choices[0].Message.Content, nil
}
