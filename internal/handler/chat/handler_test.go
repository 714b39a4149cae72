package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	model "github.com/mindscan-ai/mindscan/backend/internal/model/chat"
	chatservice "github.com/mindscan-ai/mindscan/backend/internal/service/chat"
	"github.com/mindscan-ai/mindscan/backend/internal/service/turn"
	"github.com/mindscan-ai/mindscan/backend/internal/transcript"
)

type fixedBackend struct {
	reply string
}

func (b fixedBackend) Generate(context.Context, string) (string, error) {
	return b.reply, nil
}

func setupRouter(t *testing.T) (*chi.Mux, *chatservice.Service) {
	t.Helper()
	chatSvc := chatservice.NewService()
	logger := transcript.New(filepath.Join(t.TempDir(), "chat_history.txt"))
	turnSvc := turn.NewService(fixedBackend{reply: "I'm here with you."}, chatSvc, logger)

	r := chi.NewRouter()
	New(chatSvc, turnSvc).RegisterRoutes(r)
	return r, chatSvc
}

func createSession(t *testing.T, r *chi.Mux) model.Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var session model.Session
	if err := json.Unmarshal(resp.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return session
}

func TestCreateSession(t *testing.T) {
	r, _ := setupRouter(t)
	session := createSession(t, r)
	if session.ID == "" {
		t.Fatal("expected session ID")
	}
}

func TestChatTurn(t *testing.T) {
	r, chatSvc := setupRouter(t)
	session := createSession(t, r)

	body, _ := json.Marshal(map[string]string{
		"sessionId": session.ID,
		"message":   "I feel like nobody understands me.",
	})
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result turn.Result
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Assistant.Content != "I'm here with you." {
		t.Fatalf("unexpected reply: %q", result.Assistant.Content)
	}
	if result.Language != "english" {
		t.Fatalf("unexpected language tag: %s", result.Language)
	}

	history, err := chatSvc.History(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 messages after one turn, got %d", len(history))
	}
}

func TestChatTurnUnknownSession(t *testing.T) {
	r, _ := setupRouter(t)

	body, _ := json.Marshal(map[string]string{
		"sessionId": "missing",
		"message":   "hello",
	})
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestChatTurnMissingSessionID(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hi"}`))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestHistoryUnknownSession(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/history/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
