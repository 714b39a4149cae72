package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/mindscan-ai/mindscan/backend/internal/language"
	"github.com/mindscan-ai/mindscan/backend/internal/prompt"
	aiservice "github.com/mindscan-ai/mindscan/backend/internal/service/ai"
	chatservice "github.com/mindscan-ai/mindscan/backend/internal/service/chat"
	"github.com/mindscan-ai/mindscan/backend/internal/service/turn"
	"github.com/mindscan-ai/mindscan/backend/pkg/utils"
)

// Handler streams assistant replies over Server-Sent Events. The turn is
// still committed and transcribed as a unit once the stream completes, so
// streaming changes delivery, not turn semantics.
type Handler struct {
	aiSvc   *aiservice.Service
	chatSvc *chatservice.Service
	turnSvc *turn.Service
}

// New creates a stream handler.
func New(aiSvc *aiservice.Service, chatSvc *chatservice.Service, turnSvc *turn.Service) *Handler {
	return &Handler{aiSvc: aiSvc, chatSvc: chatSvc, turnSvc: turnSvc}
}

// StreamResponse represents one SSE frame.
type StreamResponse struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Language  string `json:"language,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleStreamRequest runs one turn, emitting delta events while the model
// generates. A backend failure ends the stream with the normalized failure
// reply instead of an aborted turn.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	if _, err := h.chatSvc.GetSession(ctx, sessionID); err != nil {
		h.sendSSEError(w, flusher, err.Error())
		return err
	}

	tag := language.Detect(userMessage)

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "start",
		SessionID: sessionID,
		Language:  string(tag),
	})

	reply, err := h.generateReply(ctx, w, flusher, sessionID, userMessage, tag)
	if err != nil {
		// The failure becomes the assistant reply so the turn still
		// commits as a user/assistant pair.
		reply = turn.FailureReply(err)
		h.sendSSE(w, flusher, StreamResponse{
			Event:     "message",
			SessionID: sessionID,
			Content:   reply,
		})
	}

	result, err := h.turnSvc.Finalize(ctx, sessionID, userMessage, reply, tag)
	if err != nil {
		h.sendSSEError(w, flusher, err.Error())
		return err
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "end",
		SessionID: sessionID,
		Finished:  true,
	})

	log.Printf("[stream] completed turn for session=%s, language=%s", sessionID, result.Language)
	return nil
}

func (h *Handler) generateReply(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, sessionID, userMessage string, tag language.Tag) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", errors.New("empty message")
	}

	built := prompt.Build(userMessage, tag)

	if !h.aiSvc.StreamingEnabled() {
		reply, err := h.aiSvc.Generate(ctx, built)
		if err != nil {
			return "", err
		}
		h.sendSSE(w, flusher, StreamResponse{
			Event:     "message",
			SessionID: sessionID,
			Content:   reply,
		})
		return reply, nil
	}

	stream, err := h.aiSvc.Stream(ctx, built)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return "", recvErr
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" {
			h.sendSSE(w, flusher, StreamResponse{
				Event:     "delta",
				SessionID: sessionID,
				Content:   chunk.Content,
			})
		}
	}

	response, err := schema.ConcatMessages(chunks)
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(response.Content)
	h.sendSSE(w, flusher, StreamResponse{
		Event:     "message",
		SessionID: sessionID,
		Content:   reply,
	})
	return reply, nil
}

func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		log.Printf("failed to marshal SSE response: %v", err)
		return
	}

	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}

func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, errorMsg string) {
	h.sendSSE(w, flusher, StreamResponse{Event: "error", Error: errorMsg})
}
