package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

// OpenAIClient implements Reviewer and Matcher against any OpenAI-compatible
// chat-completion endpoint.
type OpenAIClient struct {
	client   *openai.Client
	endpoint string
	model    string
	logger   *zap.Logger
}

// OpenAIConfig holds configuration for creating an OpenAI-compatible client.
type OpenAIConfig struct {
	Endpoint string // Base URL, e.g., "https://api.openai.com/v1"
	Model    string // Model name, e.g., "gpt-4o"
	APIKey   string // Optional for local endpoints
}

// NewOpenAIClient creates a new OpenAI-compatible client.
func NewOpenAIClient(cfg *OpenAIConfig, logger *zap.Logger) (*OpenAIClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.Endpoint, "/")

	return &OpenAIClient{
		client:   openai.NewClientWithConfig(clientConfig),
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		logger:   logger.Named("ai-openai"),
	}, nil
}

func (c *OpenAIClient) complete(ctx context.Context, system, prompt string) (string, error) {
	c.logger.Debug("AI request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		c.logger.Error("AI request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", ClassifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", NewError(ErrorTypeUnknown, "no choices in response", true, nil)
	}

	c.logger.Info("AI request completed",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return resp.Choices[0].Message.Content, nil
}

// ReviewTask implements Reviewer.
func (c *OpenAIClient) ReviewTask(ctx context.Context, task models.Task, startup models.Startup) (*models.Review, error) {
	content, err := c.complete(ctx, reviewSystemPrompt, buildReviewPrompt(task, startup))
	if err != nil {
		return nil, err
	}
	return parseReview(content)
}

// AssessStartup implements Reviewer.
func (c *OpenAIClient) AssessStartup(ctx context.Context, startup models.Startup) (*Assessment, error) {
	content, err := c.complete(ctx, assessmentSystemPrompt, buildAssessmentPrompt(startup))
	if err != nil {
		return nil, err
	}
	return parseAssessment(content)
}

// ScoreCandidates implements Matcher.
func (c *OpenAIClient) ScoreCandidates(ctx context.Context, startup models.Startup, partners []models.PartnerProfile) ([]CandidateScore, error) {
	content, err := c.complete(ctx, matchSystemPrompt, buildMatchPrompt(startup, partners))
	if err != nil {
		return nil, err
	}
	return parseCandidateScores(content)
}

var (
	_ Reviewer = (*OpenAIClient)(nil)
	_ Matcher  = (*OpenAIClient)(nil)
)
