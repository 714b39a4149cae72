package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chathandler "github.com/mindscan-ai/mindscan/backend/internal/handler/chat"
	"github.com/mindscan-ai/mindscan/backend/internal/handler/meta"
	"github.com/mindscan-ai/mindscan/backend/internal/handler/stream"
	"github.com/mindscan-ai/mindscan/backend/internal/handler/ws"
	middlewarePkg "github.com/mindscan-ai/mindscan/backend/internal/middleware"
	aiservice "github.com/mindscan-ai/mindscan/backend/internal/service/ai"
	chatservice "github.com/mindscan-ai/mindscan/backend/internal/service/chat"
	"github.com/mindscan-ai/mindscan/backend/internal/service/turn"
	"github.com/mindscan-ai/mindscan/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatservice.Service, aiSvc *aiservice.Service, turnSvc *turn.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chathandler.New(chatSvc, turnSvc)
	metaHandler := meta.New()
	wsHandler := ws.New(chatSvc, turnSvc)
	streamHandler := stream.New(aiSvc, chatSvc, turnSvc)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		metaHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)

		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			userMessage := r.URL.Query().Get("message")

			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	return r
}
