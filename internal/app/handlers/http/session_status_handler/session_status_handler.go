package session_status_handler

import (
	"net/http"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	httpResponse "github.com/IT-Nick/quizbot/pkg/http"
	"github.com/go-chi/chi/v5"
)

// StatusProvider источник счёта сессии
type StatusProvider interface {
	Status(userID string) dto.Status
}

// SessionStatusHandler отдаёт счёт текущей сессии пользователя
type SessionStatusHandler struct {
	quiz StatusProvider
}

// NewSessionStatusHandler создает новый экземпляр обработчика
func NewSessionStatusHandler(quiz StatusProvider) *SessionStatusHandler {
	return &SessionStatusHandler{quiz: quiz}
}

// ServeHTTP метод для обработки запроса
func (h *SessionStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		httpResponse.ErrorResponse(w, http.StatusBadRequest, "userID is required")
		return
	}

	httpResponse.JSONResponse(w, http.StatusOK, h.quiz.Status(userID))
}
