package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/mindscan-ai/mindscan/backend/internal/config"
)

// Service wraps the chat model behind the generate capability the turn
// orchestrator consumes: given a prompt string, return a reply or fail.
type Service struct {
	cfg   config.AIConfig
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds the chat model from cfg and compiles the request chain.
// The prompt arrives fully built, so the template is a single passthrough
// user message.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{cfg: cfg, chain: runnable}, nil
}

// StreamingEnabled indicates whether SSE streaming output is configured.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// Generate runs one synchronous completion. The reply is returned with
// surrounding whitespace stripped.
func (s *Service) Generate(ctx context.Context, promptText string) (string, error) {
	response, err := s.chain.Invoke(ctx, map[string]any{"prompt": promptText})
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}

	log.Printf("[ai] generated reply, length=%d", len(response.Content))
	return strings.TrimSpace(response.Content), nil
}

// Stream runs one completion as a chunk stream.
func (s *Service) Stream(ctx context.Context, promptText string) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, fmt.Errorf("streaming disabled in configuration")
	}

	stream, err := s.chain.Stream(ctx, map[string]any{"prompt": promptText})
	if err != nil {
		return nil, fmt.Errorf("failed to stream chat chain output: %w", err)
	}

	return stream, nil
}
