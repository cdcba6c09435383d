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

	"github.com/yuehan/botboard/backend/internal/config"
	"github.com/yuehan/botboard/backend/internal/handler"
	botModel "github.com/yuehan/botboard/backend/internal/model/bot"
	"github.com/yuehan/botboard/backend/internal/model/forum"
	"github.com/yuehan/botboard/backend/internal/service/ai"
	"github.com/yuehan/botboard/backend/internal/service/scheduler"
	"github.com/yuehan/botboard/backend/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Static registries: bot roster, relationship graph, topic catalog.
	botStore := botModel.NewMemoryStore(botModel.Seed())
	relations := botModel.SeedRelations()
	topics := forum.PresetTopics()

	store, err := newStore(ctx, cfg.Forum)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	var aiSvc *ai.Service
	if cfg.AI.Enabled() {
		aiSvc, err = ai.NewService(ctx, botStore, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without content generation - check the Ark environment variables")
		} else {
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, skipping content generation")
	}

	var orchestrator *scheduler.Orchestrator
	if aiSvc != nil {
		orchestrator = scheduler.New(store, botStore, relations, topics, aiSvc)
	}

	router := handler.NewRouter(botStore, store, relations, aiSvc, orchestrator, cfg.Forum.CronSecret)

	startServer(ctx, cfg.Server, router)
}

// newStore selects Postgres when DATABASE_URL is set, memory otherwise.
func newStore(ctx context.Context, cfg config.ForumConfig) (storage.Store, error) {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory storage")
		return storage.NewMemoryStore(), nil
	}

	store, err := storage.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	log.Println("Postgres storage initialized")
	return store, nil
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Botboard backend listening on %s", addr)
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
