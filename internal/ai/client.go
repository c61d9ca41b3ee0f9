package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/domain/errors"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
)

// ContentGenerator is the slice of the LLM surface this service needs.
// *openai.LLM from langchaingo satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// Client wraps the decomposition/insight model behind typed operations.
type Client struct {
	model  ContentGenerator
	logger *zap.Logger
}

// NewClient creates a new AI client.
func NewClient(model ContentGenerator, logger *zap.Logger) *Client {
	return &Client{
		model:  model,
		logger: logger,
	}
}

// DecomposeTask asks the model to break the main task into subtask
// suggestions and normalizes the reply into the strict result shape.
// Any transport or shape failure surfaces as a DecompositionServiceError.
func (c *Client) DecomposeTask(ctx context.Context, req *dto.TaskDecompositionRequest) (*dto.TaskDecompositionResult, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, decompositionSystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, buildDecompositionPrompt(req)),
	}

	output, err := c.generate(ctx, messages, llms.WithTemperature(0.2), llms.WithJSONMode())
	if err != nil {
		return nil, errors.NewDecompositionServiceError("request failed", err)
	}

	result, err := NormalizeDecomposition(output, req)
	if err != nil {
		c.logger.Error("Malformed decomposition response",
			zap.String("main_task", req.MainTask),
			zap.Error(err))
		return nil, errors.NewDecompositionServiceError("malformed response", err)
	}

	return result, nil
}

// SuggestPriority asks the model to rank a new task 1-5 against the user's
// existing tasks. Callers fall back to the user-supplied priority on error.
func (c *Client) SuggestPriority(ctx context.Context, task *model.Task, existing []*model.Task) (int, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, prioritySystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, buildPriorityPrompt(task, existing)),
	}

	output, err := c.generate(ctx, messages, llms.WithTemperature(0))
	if err != nil {
		return 0, err
	}

	priority, err := strconv.Atoi(strings.TrimSpace(output))
	if err != nil {
		return 0, fmt.Errorf("non-numeric priority reply %q: %w", output, err)
	}
	return clamp(priority, 1, 5), nil
}

// RecommendNextTask asks the model which open task the user should pick up now.
func (c *Client) RecommendNextTask(ctx context.Context, tasks []*model.Task) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, nextTaskSystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, buildNextTaskPrompt(tasks)),
	}
	return c.generate(ctx, messages, llms.WithTemperature(0.3))
}

// GenerateInsights produces productivity insights from recent completions.
func (c *Client) GenerateInsights(ctx context.Context, completed []*model.Task) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, insightSystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, buildInsightPrompt(completed)),
	}
	return c.generate(ctx, messages, llms.WithTemperature(0.5))
}

func (c *Client) generate(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (string, error) {
	resp, err := c.model.GenerateContent(ctx, messages, options...)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Content, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
