package main

import (
	"context"
	_ "embed"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"library-assistant/internal/config"
	"library-assistant/internal/http"
	"library-assistant/internal/intentfile"
	"library-assistant/internal/matcher"
	"library-assistant/internal/service"
	"library-assistant/internal/storage"
)

//go:embed index.html
var indexHTML string

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		books   service.BookSource
		intents service.IntentSource
	)

	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := storage.New(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer func() {
			_ = db.Close()
		}()

		if err := storage.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		slog.Info("Database initialized", "path", cfg.DBPath)

		if cfg.SeedDatabase {
			seeded, err := storage.Seed(ctx, db, storage.DefaultBooks(), storage.DefaultIntents())
			if err != nil {
				log.Fatalf("Failed to seed database: %v", err)
			}
			slog.Info("Database seeded", "books", seeded.Books, "intents", seeded.Intents)
		}

		books = storage.NewBookRepo(db)
		intents = storage.NewIntentRepo(db)
	default:
		store := storage.NewMemoryStore(storage.DefaultBooks(), storage.DefaultIntents())
		books = store
		intents = store
		slog.Info("Using built-in catalog")
	}

	if cfg.IntentsFile != "" {
		intents = intentfile.NewSource(cfg.IntentsFile)
		slog.Info("Intents loaded from file", "path", cfg.IntentsFile)
	}

	engine := matcher.NewEngine(
		matcher.WithThresholds(cfg.Thresholds),
		matcher.WithMaxInputLength(cfg.MaxMessageLength),
	)
	chatService := service.NewChatService(engine, books, intents)
	thresholds := engine.Thresholds()
	slog.Info("Matcher ready",
		"preset", cfg.MatchPreset,
		"title_threshold", thresholds.Title,
		"intent_threshold", thresholds.Intent,
		"max_message_length", cfg.MaxMessageLength,
	)

	if stats, err := chatService.Stats(ctx); err != nil {
		slog.Warn("Library data not available yet", "error", err)
	} else {
		slog.Info("Library data loaded", "books", stats.Books, "intents", stats.Intents)
	}

	if cfg.IntentsFile != "" && cfg.WatchIntents {
		watcher, err := intentfile.NewWatcher(cfg.IntentsFile, func() {
			if err := chatService.Reload(ctx, service.TableIntents); err != nil {
				slog.Error("Failed to reload intents", "error", err)
			}
		})
		if err != nil {
			log.Fatalf("Failed to watch intents file: %v", err)
		}
		defer func() {
			_ = watcher.Close()
		}()
		go watcher.Run(ctx)
	}

	router := http.NewRouter(&http.Deps{
		ChatService: chatService,
		IndexHTML:   indexHTML,
	})

	srv := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	// Start API server
	slog.Info("Starting API server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("API server stopped")
}
