package handlers

import (
	"context"
	"net/http"
	"time"

	"library-assistant/internal/cache"
	"library-assistant/internal/contextutil"
	"library-assistant/internal/service"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	chatService        service.ChatService
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(chatService service.ChatService) *HealthHandler {
	return &HealthHandler{
		chatService:        chatService,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall status: "OK" or "DEGRADED"
	Status  string `json:"status"`
	Message string `json:"message"`

	IntentsCount int `json:"intents_count"`
	BooksCount   int `json:"books_count"`

	Tables []cache.Info `json:"tables,omitempty"`
}

// ServeHTTP reports whether the catalog and intent table can be read.
// Returns 200 OK when both load, 503 Service Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	stats, err := h.chatService.Stats(checkCtx)
	if err != nil {
		logger.WarnContext(ctx, "health check failed", "error", err)
		writeJSON(ctx, w, http.StatusServiceUnavailable, HealthResponse{
			Status:  "DEGRADED",
			Message: "Library data is unavailable",
		})
		return
	}

	writeJSON(ctx, w, http.StatusOK, HealthResponse{
		Status:       "OK",
		Message:      "Library assistant is running",
		IntentsCount: stats.Intents,
		BooksCount:   stats.Books,
		Tables:       stats.Tables,
	})
}
