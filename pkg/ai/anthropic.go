package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

// AnthropicClient implements Reviewer and Matcher against the Anthropic
// Messages API.
type AnthropicClient struct {
	client *anthropic.Client
	model  string
	logger *zap.Logger
}

// NewAnthropicClient creates a new Anthropic-backed client.
func NewAnthropicClient(apiKey, model string, logger *zap.Logger) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	return &AnthropicClient{
		client: anthropic.NewClient(apiKey),
		model:  model,
		logger: logger.Named("ai-anthropic"),
	}, nil
}

func (c *AnthropicClient) complete(ctx context.Context, system, prompt string) (string, error) {
	c.logger.Debug("AI request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	start := time.Now()

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		System:    system,
		MaxTokens: 2000,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		c.logger.Error("AI request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", ClassifyError(err)
	}

	text := ""
	for _, content := range resp.Content {
		if content.Text != nil {
			text += *content.Text
		}
	}
	if text == "" {
		return "", NewError(ErrorTypeUnknown, "empty response", true, nil)
	}

	c.logger.Info("AI request completed",
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.Duration("elapsed", time.Since(start)))

	return text, nil
}

// ReviewTask implements Reviewer.
func (c *AnthropicClient) ReviewTask(ctx context.Context, task models.Task, startup models.Startup) (*models.Review, error) {
	content, err := c.complete(ctx, reviewSystemPrompt, buildReviewPrompt(task, startup))
	if err != nil {
		return nil, err
	}
	return parseReview(content)
}

// AssessStartup implements Reviewer.
func (c *AnthropicClient) AssessStartup(ctx context.Context, startup models.Startup) (*Assessment, error) {
	content, err := c.complete(ctx, assessmentSystemPrompt, buildAssessmentPrompt(startup))
	if err != nil {
		return nil, err
	}
	return parseAssessment(content)
}

// ScoreCandidates implements Matcher.
func (c *AnthropicClient) ScoreCandidates(ctx context.Context, startup models.Startup, partners []models.PartnerProfile) ([]CandidateScore, error) {
	content, err := c.complete(ctx, matchSystemPrompt, buildMatchPrompt(startup, partners))
	if err != nil {
		return nil, err
	}
	return parseCandidateScores(content)
}

var (
	_ Reviewer = (*AnthropicClient)(nil)
	_ Matcher  = (*AnthropicClient)(nil)
)
