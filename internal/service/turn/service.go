// Package turn orchestrates one complete user-message/assistant-reply
// exchange: classify the language, build the persona prompt, call the
// backend, normalize the outcome into the conversation, and record the
// transcript line. A turn never leaves the conversation with an unanswered
// trailing user message.
package turn

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mindscan-ai/mindscan/backend/internal/language"
	chat "github.com/mindscan-ai/mindscan/backend/internal/model/chat"
	"github.com/mindscan-ai/mindscan/backend/internal/prompt"
	chatservice "github.com/mindscan-ai/mindscan/backend/internal/service/chat"
	"github.com/mindscan-ai/mindscan/backend/internal/transcript"
)

// Backend is the text-generation capability. A failed call carries a
// human-readable cause; the orchestrator never assumes anything else about
// latency or semantics.
type Backend interface {
	Generate(ctx context.Context, promptText string) (string, error)
}

var errEmptyMessage = errors.New("empty message")

// Service runs turns against a conversation store and transcript logger.
type Service struct {
	backend    Backend
	store      *chatservice.Service
	transcript *transcript.Logger
}

// NewService wires the orchestrator. All three collaborators are required.
func NewService(backend Backend, store *chatservice.Service, logger *transcript.Logger) *Service {
	return &Service{backend: backend, store: store, transcript: logger}
}

// Result carries the two messages appended by one completed turn.
type Result struct {
	User      chat.Message `json:"user"`
	Assistant chat.Message `json:"assistant"`
	Language  language.Tag `json:"language"`
}

// FailureReply formats a backend or input failure as the user-visible
// assistant reply. The cause is shown verbatim; acceptable for a
// single-user tool.
func FailureReply(cause error) string {
	return fmt.Sprintf("⚠️ Something went wrong: %v", cause)
}

// HandleTurn processes one user message start to finish. Backend failures
// and empty input become normal assistant replies rather than errors; the
// returned error is reserved for an unknown session, which is the HTTP
// layer's concern.
func (s *Service) HandleTurn(ctx context.Context, sessionID, userText string) (Result, error) {
	if _, err := s.store.GetSession(ctx, sessionID); err != nil {
		return Result{}, err
	}

	tag := language.Detect(userText)

	var reply string
	if strings.TrimSpace(userText) == "" {
		reply = FailureReply(errEmptyMessage)
	} else {
		built := prompt.Build(userText, tag)
		text, err := s.backend.Generate(ctx, built)
		if err != nil {
			log.Printf("[turn] backend failure for session=%s: %v", sessionID, err)
			reply = FailureReply(err)
		} else {
			reply = strings.TrimSpace(text)
		}
	}

	return s.Finalize(ctx, sessionID, userText, reply, tag)
}

// Finalize commits a turn whose reply was produced elsewhere (the streaming
// path). Both messages append together and the transcript line is written
// regardless of whether the reply is a success or a failure notice.
func (s *Service) Finalize(ctx context.Context, sessionID, userText, reply string, tag language.Tag) (Result, error) {
	userMsg := chat.Message{Role: chat.RoleUser, Content: userText}
	assistantMsg := chat.Message{Role: chat.RoleAssistant, Content: reply, Language: string(tag)}

	if err := s.store.AppendTurn(ctx, sessionID, &userMsg, &assistantMsg); err != nil {
		return Result{}, err
	}

	if err := s.transcript.LogTurn(userText, reply); err != nil {
		// Best effort: the in-memory conversation is already consistent.
		log.Printf("[turn] transcript append failed: %v", err)
	}

	return Result{User: userMsg, Assistant: assistantMsg, Language: tag}, nil
}
