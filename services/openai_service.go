package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"GenAIStudio/config/environment"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

var ErrEmptyCompletion = errors.New("no valid response received")

// CompletionClient turns a fully assembled prompt into generated text.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIService is the CompletionClient backed by the OpenAI chat API.
// It makes exactly one call per prompt: no retries, no streaming.
type OpenAIService struct {
	client      *openai.Client
	model       string
	temperature float32
	log         *zap.Logger
}

func NewOpenAIService(cfg environment.OpenAIConfig, log *zap.Logger) *OpenAIService {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	if log == nil {
		log = zap.NewNop()
	}
	return &OpenAIService{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		log:         log,
	}
}

func (s *OpenAIService) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	s.log.Info("llm.complete.start",
		zap.String("model", s.model),
		zap.Float32("temperature", s.temperature),
		zap.Int("prompt_len", len(prompt)),
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: s.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		s.log.Error("llm.complete.error",
			zap.Error(err),
			zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	s.log.Info("llm.complete.ok",
		zap.String("finish_reason", string(resp.Choices[0].FinishReason)),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return resp.Choices[0].Message.Content, nil
}
