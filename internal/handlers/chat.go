package handlers

import (
	"encoding/json"
	"net/http"

	"library-assistant/internal/contextutil"
	"library-assistant/internal/service"
)

// ChatHandler handles HTTP requests for chat.
//
// GET requests read the message from the msg query parameter and answer with
// response, score and pattern. POST requests read a JSON body and additionally
// report the strategy that produced the reply. Adding format=html to either
// includes the reply rendered as HTML.
type ChatHandler struct {
	chatService service.ChatService
	renderer    *Renderer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService, renderer *Renderer) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		renderer:    renderer,
	}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	Response     string `json:"response"`
	Score        int    `json:"score"`
	Pattern      string `json:"pattern"`
	Strategy     string `json:"strategy,omitempty"`
	ResponseHTML string `json:"response_html,omitempty"`
}

// ServeHTTP handles HTTP requests for chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChatRequest
	switch r.Method {
	case http.MethodGet:
		req.Message = r.URL.Query().Get("msg")
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WarnContext(ctx, "invalid request body", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	default:
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	svcResp, err := h.chatService.Respond(ctx, service.ChatRequest{Message: req.Message})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to process chat request")
		return
	}

	resp := ChatResponse{
		Response: svcResp.Response,
		Score:    svcResp.Score,
		Pattern:  svcResp.Pattern,
	}
	if r.Method == http.MethodPost {
		resp.Strategy = svcResp.Strategy
	}

	if r.URL.Query().Get("format") == "html" && h.renderer != nil {
		html, err := h.renderer.Render(svcResp.Response)
		if err != nil {
			logger.WarnContext(ctx, "failed to render response", "error", err)
		} else {
			resp.ResponseHTML = html
		}
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
