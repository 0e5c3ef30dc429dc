package callback_handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
)

type echoDispatcher struct{ calls int }

func (d *echoDispatcher) Dispatch(_ context.Context, userID, text string) dto.Reply {
	d.calls++
	return dto.Reply{Text: userID + ":" + text, QuickReplies: []string{"ヘルプ"}}
}

func TestCallbackHandler(t *testing.T) {
	d := &echoDispatcher{}
	body := `{"events":[{"user_id":"u1","text":"スタート"},{"user_id":"","text":"skip"},{"user_id":"u2","text":"1"}]}`
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
	rec := httptest.NewRecorder()

	NewCallbackHandler(d).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("неожиданный Content-Type %q", ct)
	}

	var resp dto.CallbackResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if resp.Status != "ok" || len(resp.Replies) != 2 || d.calls != 2 {
		t.Fatalf("неожиданный ответ: %+v (вызовов %d)", resp, d.calls)
	}
	if r := resp.Replies[0]; r.UserID != "u1" || r.Text != "u1:スタート" || len(r.QuickReplies) != 1 {
		t.Errorf("неожиданный первый ответ: %+v", r)
	}
}

func TestCallbackHandler_EmptyEvents(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(`{"events":[]}`))
	rec := httptest.NewRecorder()

	NewCallbackHandler(&echoDispatcher{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"replies":[]`) {
		t.Errorf("ожидался пустой список ответов: %s", rec.Body.String())
	}
}

func TestCallbackHandler_BadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(`{"events":`))
	rec := httptest.NewRecorder()

	NewCallbackHandler(&echoDispatcher{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("ожидался статус 400, получен %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid request body") {
		t.Errorf("неожиданное тело ошибки: %s", rec.Body.String())
	}
}
