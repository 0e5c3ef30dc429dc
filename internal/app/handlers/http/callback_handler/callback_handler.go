package callback_handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	httpResponse "github.com/IT-Nick/quizbot/pkg/http"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// Dispatcher формирует ответ на текст пользователя
type Dispatcher interface {
	Dispatch(ctx context.Context, userID, text string) dto.Reply
}

// CallbackHandler принимает пачку событий (user_id, text) и возвращает ответы на каждое
type CallbackHandler struct {
	dispatcher Dispatcher
}

// NewCallbackHandler создает новый экземпляр обработчика
func NewCallbackHandler(dispatcher Dispatcher) *CallbackHandler {
	return &CallbackHandler{dispatcher: dispatcher}
}

// ServeHTTP метод для обработки запроса
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.CallbackRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request); err != nil {
		httpResponse.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response := dto.CallbackResponse{Status: "ok", Replies: make([]dto.OutboundReply, 0, len(request.Events))}
	for _, ev := range request.Events {
		// события без пользователя пропускаются, как и у мессенджеров
		if strings.TrimSpace(ev.UserID) == "" {
			continue
		}
		reply := h.dispatcher.Dispatch(r.Context(), ev.UserID, ev.Text)
		response.Replies = append(response.Replies, dto.OutboundReply{UserID: ev.UserID, Reply: reply})
	}

	httpResponse.JSONResponse(w, http.StatusOK, response)
}
