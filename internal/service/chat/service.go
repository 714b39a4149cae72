package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mindscan-ai/mindscan/backend/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrBrokenTurn      = errors.New("turn must pair a user message with an assistant message")
)

// Service holds conversation state in memory. Conversations grow append-only
// and always alternate user/assistant; the only mutation is AppendTurn, which
// commits both messages of a turn or neither.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	messages map[string][]chat.Message
}

// NewService bootstraps the in-memory conversation store.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]chat.Session),
		messages: make(map[string][]chat.Message),
	}
}

// CreateSession provisions an anonymous session with an empty conversation.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	session := chat.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.messages[session.ID] = make([]chat.Message, 0, 16)
	s.mu.Unlock()

	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// AppendTurn appends one completed user/assistant exchange. IDs and
// timestamps are assigned here so callers only provide role and content.
func (s *Service) AppendTurn(_ context.Context, sessionID string, userMsg, assistantMsg *chat.Message) error {
	if userMsg == nil || assistantMsg == nil ||
		userMsg.Role != chat.RoleUser || assistantMsg.Role != chat.RoleAssistant {
		return ErrBrokenTurn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}

	now := time.Now().UTC()
	userMsg.ID = uuid.NewString()
	userMsg.SessionID = sessionID
	userMsg.CreatedAt = now
	assistantMsg.ID = uuid.NewString()
	assistantMsg.SessionID = sessionID
	assistantMsg.CreatedAt = now

	s.messages[sessionID] = append(s.messages[sessionID], *userMsg, *assistantMsg)
	return nil
}

// History returns a copy of the stored messages for the provided session.
func (s *Service) History(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}
