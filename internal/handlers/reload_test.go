package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"library-assistant/internal/service"
	"library-assistant/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func TestReloadHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		table      string
		mockSetup  func(*mocks.MockChatService)
		wantStatus int
	}{
		{
			name:  "books",
			table: "books",
			mockSetup: func(m *mocks.MockChatService) {
				m.EXPECT().Reload(gomock.Any(), "books").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "all",
			table: "all",
			mockSetup: func(m *mocks.MockChatService) {
				m.EXPECT().Reload(gomock.Any(), "all").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "unknown table",
			table: "loans",
			mockSetup: func(m *mocks.MockChatService) {
				m.EXPECT().Reload(gomock.Any(), "loans").
					Return(service.WrapError(service.ErrNotFound, fmt.Sprintf("unknown table %q", "loans")))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockChatService := mocks.NewMockChatService(ctrl)
			tt.mockSetup(mockChatService)

			r := chi.NewRouter()
			r.Method(http.MethodPost, "/admin/reload/{table}", NewReloadHandler(mockChatService))

			req := httptest.NewRequest(http.MethodPost, "/admin/reload/"+tt.table, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got ReloadResponse
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if got.Reloaded != tt.table {
				t.Errorf("reloaded = %q, want %q", got.Reloaded, tt.table)
			}
		})
	}
}

func TestReloadHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewReloadHandler(mocks.NewMockChatService(ctrl))
	req := httptest.NewRequest(http.MethodGet, "/admin/reload/books", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("ServeHTTP() status = %v, want %v", w.Code, http.StatusMethodNotAllowed)
	}
}
