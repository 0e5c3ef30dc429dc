package health_handler

import (
	"net/http"

	httpResponse "github.com/IT-Nick/quizbot/pkg/http"
)

// HealthHandler отвечает на проверку живости
type HealthHandler struct{}

// NewHealthHandler создает новый экземпляр обработчика
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpResponse.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
