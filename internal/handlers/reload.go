package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"library-assistant/internal/service"
)

// ReloadHandler drops cached tables so the next request reads the providers again.
type ReloadHandler struct {
	chatService service.ChatService
}

// NewReloadHandler creates a new ReloadHandler.
func NewReloadHandler(chatService service.ChatService) *ReloadHandler {
	return &ReloadHandler{chatService: chatService}
}

// ReloadResponse represents the reload response.
type ReloadResponse struct {
	Reloaded string `json:"reloaded"`
}

// ServeHTTP handles POST /admin/reload/{table}.
func (h *ReloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	table := chi.URLParam(r, "table")
	if table == "" {
		table = service.TableAll
	}

	if err := h.chatService.Reload(ctx, table); err != nil {
		handleServiceError(ctx, w, err, "Failed to reload table")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ReloadResponse{Reloaded: table})
}
