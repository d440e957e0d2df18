package services

import (
	"context"
	"fmt"
	"strings"

	"GenAIStudio/models"
	"GenAIStudio/utils"

	"go.uber.org/zap"
)

const MsgMissingCampaignFields = "Please fill in all required fields."

// AdService produces a marketing strategy for one campaign.
type AdService struct {
	Completion CompletionClient
	log        *zap.Logger
}

func NewAdService(completion CompletionClient, log *zap.Logger) *AdService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdService{Completion: completion, log: log}
}

// GenerateStrategy validates the campaign, builds the prompt and returns the
// model's markdown. Incomplete campaigns never reach the completion client.
func (s *AdService) GenerateStrategy(ctx context.Context, req models.CampaignRequest) (string, error) {
	if isBlank(req.Topic) || isBlank(req.Company) || isBlank(req.Audience) {
		return "", utils.NewWarning(MsgMissingCampaignFields)
	}

	prompt, err := BuildAdStrategyPrompt(req)
	if err != nil {
		return "", err
	}

	s.log.Info("ad.strategy.generate",
		zap.String("company", req.Company),
		zap.String("objective", string(req.Objective)),
	)
	out, err := s.Completion.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate ad strategy: %w", err)
	}
	return out, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
