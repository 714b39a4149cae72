package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mindscan-ai/mindscan/backend/internal/config"
	"github.com/mindscan-ai/mindscan/backend/internal/handler"
	aiservice "github.com/mindscan-ai/mindscan/backend/internal/service/ai"
	chatservice "github.com/mindscan-ai/mindscan/backend/internal/service/chat"
	"github.com/mindscan-ai/mindscan/backend/internal/service/turn"
	"github.com/mindscan-ai/mindscan/backend/internal/transcript"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// The service is useless without a working chat model, so a
	// configuration failure refuses to start rather than degrade.
	aiSvc, err := aiservice.NewService(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("chat model configuration failed: %v", err)
	}
	log.Printf("chat model configured successfully (provider=%s, model=%s)", cfg.AI.Provider, cfg.AI.Model)

	transcriptLogger := transcript.New(cfg.Transcript.Path)
	log.Printf("transcript store at %s", transcriptLogger.Path())

	chatSvc := chatservice.NewService()
	turnSvc := turn.NewService(aiSvc, chatSvc, transcriptLogger)

	router := handler.NewRouter(chatSvc, aiSvc, turnSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("MindScan backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
