package dispatcher

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/bank"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/engine"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/service"
)

type stubWeather struct{ query string }

func (w *stubWeather) Reply(_ context.Context, query string) string {
	w.query = query
	return "東京の天気: 気温 20°C / 風速 3 m/s"
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func newDispatcher(t *testing.T, opts ...engine.Option) (*Dispatcher, *stubWeather) {
	t.Helper()
	b, err := bank.New([]model.Question{
		{ID: 1, Prompt: "日本の首都は？", Options: []string{"大阪", "東京", "京都", "名古屋"}, Correct: 2, Explanation: "東京です"},
		{ID: 2, Prompt: "富士山がある県は？", Options: []string{"長野", "山梨", "群馬", "静岡・山梨"}, Correct: 4},
	})
	if err != nil {
		t.Fatalf("bank.New вернул ошибку: %v", err)
	}
	opts = append([]engine.Option{engine.WithShuffler(identity), engine.WithMilestones(2), engine.WithFinalMilestone(false)}, opts...)
	eng := engine.NewEngine(b, engine.NewStore(), opts...)
	w := &stubWeather{}
	return New(service.NewQuizService(eng, nil, nil), w, nil), w
}

func wantReplies(t *testing.T, step string, got []string, want ...string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("%s: подсказки %v, ожидалось %v", step, got, want)
	}
}

func wantContains(t *testing.T, step, text string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(text, p) {
			t.Errorf("%s: текст %q не содержит %q", step, text, p)
		}
	}
}

// TestDispatch_Conversation полный диалог с викториной из двух вопросов.
func TestDispatch_Conversation(t *testing.T) {
	ctx := context.Background()
	d, _ := newDispatcher(t)

	r := d.Dispatch(ctx, "u1", "次")
	wantContains(t, "next без старта", r.Text, "スタート")
	wantReplies(t, "next без старта", r.QuickReplies, "スタート", "ヘルプ")

	r = d.Dispatch(ctx, "u1", "1")
	wantContains(t, "ответ без старта", r.Text, "まだクイズが始まっていません")

	r = d.Dispatch(ctx, "u1", "スタート")
	wantContains(t, "старт", r.Text, "全2問")
	wantReplies(t, "старт", r.QuickReplies, "次", "成績", "リセット", "ヘルプ")

	r = d.Dispatch(ctx, "u1", "次")
	wantContains(t, "вопрос 1", r.Text, "第1問 / 全2問", "日本の首都は？", "2. 東京")
	wantReplies(t, "вопрос 1", r.QuickReplies, "1", "2", "3", "4", "リセット", "ヘルプ")

	r = d.Dispatch(ctx, "u1", "5")
	wantContains(t, "неверный номер", r.Text, "1〜4")
	wantReplies(t, "неверный номер", r.QuickReplies, "1", "2", "3", "4", "リセット", "ヘルプ")

	r = d.Dispatch(ctx, "u1", "①")
	wantContains(t, "неверный ответ", r.Text, "× 不正解", "正解は 2. 東京", "解説: 東京です", "1問中0問正解")
	wantReplies(t, "неверный ответ", r.QuickReplies, "リセット", "ヘルプ")

	r = d.Dispatch(ctx, "u1", "次")
	wantContains(t, "вопрос 2", r.Text, "第2問 / 全2問")

	r = d.Dispatch(ctx, "u1", "４番")
	wantContains(t, "верный ответ", r.Text, "○ 正解", "【2問到達】", "正解率 50.0%", "全問終了")
	wantReplies(t, "верный ответ", r.QuickReplies, "リセット", "ヘルプ")

	r = d.Dispatch(ctx, "u1", "成績")
	wantContains(t, "статус", r.Text, "2問中1問正解", "50.0%")
	wantReplies(t, "статус", r.QuickReplies, "リセット", "ヘルプ")

	r = d.Dispatch(ctx, "u1", "次")
	wantContains(t, "после завершения", r.Text, "すでに終了")

	r = d.Dispatch(ctx, "u1", "1")
	wantContains(t, "ответ после завершения", r.Text, "すでに終了")

	r = d.Dispatch(ctx, "u1", "リセット")
	wantContains(t, "сброс", r.Text, "クイズを開始しました")
	if st := d.quiz.Status("u1"); st.Answered != 0 || st.Finished {
		t.Errorf("после сброса ожидалась новая сессия: %+v", st)
	}
}

func TestDispatch_AutoDeliverFirst(t *testing.T) {
	d, _ := newDispatcher(t, engine.WithAutoDeliverFirst(true))

	r := d.Dispatch(context.Background(), "u1", "/start")
	wantContains(t, "старт", r.Text, "全2問", "第1問 / 全2問")
	wantReplies(t, "старт", r.QuickReplies, "1", "2", "3", "4", "リセット", "ヘルプ")
}

func TestDispatch_Other(t *testing.T) {
	ctx := context.Background()
	d, w := newDispatcher(t)

	r := d.Dispatch(ctx, "u1", "ヘルプ")
	wantContains(t, "помощь", r.Text, "使い方")
	wantReplies(t, "помощь", r.QuickReplies, "スタート", "ヘルプ")

	r = d.Dispatch(ctx, "u1", "成績")
	wantContains(t, "статус без старта", r.Text, "まだクイズが始まっていません")

	r = d.Dispatch(ctx, "u1", "履歴")
	wantContains(t, "история", r.Text, "履歴機能は無効です")

	r = d.Dispatch(ctx, "u1", "名古屋の天気")
	wantContains(t, "погода", r.Text, "天気")
	if w.query != "名古屋の天気" {
		t.Errorf("в сервис погоды передан запрос %q", w.query)
	}

	r = d.Dispatch(ctx, "u1", "こんにちは")
	wantContains(t, "эхо", r.Text, "受け取りました: こんにちは", "使えるコマンド")
	wantReplies(t, "эхо", r.QuickReplies, "スタート", "ヘルプ")

	d.Dispatch(ctx, "u1", "スタート")
	r = d.Dispatch(ctx, "u1", "こんにちは")
	wantReplies(t, "эхо в сессии", r.QuickReplies, "次", "成績", "リセット", "ヘルプ")
}

func TestDispatch_WeatherDisabled(t *testing.T) {
	b, err := bank.Default()
	if err != nil {
		t.Fatalf("bank.Default вернул ошибку: %v", err)
	}
	d := New(service.NewQuizService(engine.NewEngine(b, engine.NewStore()), nil, nil), nil, nil)

	r := d.Dispatch(context.Background(), "u1", "天気")
	wantContains(t, "погода выключена", r.Text, "天気機能は無効です")
}

// TestDispatch_QuickRepliesAreCommands каждая подсказка распознаётся как команда.
func TestDispatch_QuickRepliesAreCommands(t *testing.T) {
	ctx := context.Background()
	d, _ := newDispatcher(t)

	for _, text := range []string{"ヘルプ", "スタート", "次", "1", "次", "2", "成績", "こんにちは"} {
		r := d.Dispatch(ctx, "u1", text)
		for _, q := range r.QuickReplies {
			if k := Classify(q).Kind; k == KindUnknown {
				t.Errorf("подсказка %q после %q не распознаётся", q, text)
			}
		}
	}
}
