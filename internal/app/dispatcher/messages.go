package dispatcher

import (
	"fmt"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
)

const (
	msgNoSession      = "まだクイズが始まっていません。「スタート」と送ってください。"
	msgAlreadyDone    = "クイズはすでに終了しています。「リセット」で最初からやり直せます。"
	msgInvalidChoice  = "回答は1〜4の番号で送ってください。"
	msgNextHint       = "「次」で次の問題へ進みます。"
	msgFinished       = "全問終了です！「リセット」でもう一度挑戦できます。"
	msgHistoryOff     = "履歴機能は無効です。"
	msgHistoryFailed  = "履歴の取得に失敗しました。少し待って再度お試しください。"
	msgWeatherOff     = "天気機能は無効です。"
	msgUnknownCommand = "受け取りました: %s"
)

const helpText = `クイズボットの使い方
スタート / 開始 : クイズを始める
次 : 次の問題を表示
1〜4 : 回答する（①や１番も可）
成績 : 現在の成績を表示
履歴 : これまでの成績を表示
リセット : 最初からやり直す
天気 [都市] : 東京・名古屋・大阪の天気
ヘルプ : この説明を表示`

const tokenList = "使えるコマンド: スタート / 次 / 1〜4 / 成績 / 履歴 / リセット / 天気 / ヘルプ"

func startText(res dto.StartResult) string {
	if res.First != nil {
		return fmt.Sprintf("クイズを開始しました！全%d問です。\n\n%s", res.Total, questionText(*res.First))
	}
	return fmt.Sprintf("クイズを開始しました！全%d問です。「次」で問題を表示します。", res.Total)
}

func questionText(q dto.QuestionView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "第%d問 / 全%d問\n%s\n", q.Ordinal, q.Total, q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "\n%d. %s", i+1, opt)
	}
	fmt.Fprintf(&b, "\n\n%sの番号で答えてください。", strings.Join(q.ValidAnswers, "・"))
	return b.String()
}

func answerText(res dto.AnswerResult) string {
	var b strings.Builder
	if res.IsCorrect {
		b.WriteString("○ 正解！")
	} else {
		fmt.Fprintf(&b, "× 不正解… 正解は %d. %s", res.CorrectOption, res.CorrectText)
	}
	if res.Explanation != "" {
		fmt.Fprintf(&b, "\n解説: %s", res.Explanation)
	}
	fmt.Fprintf(&b, "\n現在の成績: %d問中%d問正解", res.Answered, res.Correct)

	if m := res.Milestone; m != nil {
		label := fmt.Sprintf("%d問到達", m.Threshold)
		if m.Final {
			label = "最終結果"
		}
		fmt.Fprintf(&b, "\n\n【%s】%d問中%d問正解 正解率 %.1f%%", label, m.Answered, m.Correct, m.Rate)
	}

	if res.Finished {
		b.WriteString("\n\n" + msgFinished)
	} else {
		b.WriteString("\n" + msgNextHint)
	}
	return b.String()
}

func statusText(st dto.Status) string {
	if !st.Started {
		return msgNoSession
	}
	s := fmt.Sprintf("成績: %d問中%d問正解（正解率 %.1f%%）／全%d問", st.Answered, st.Correct, st.Rate, st.Total)
	if st.Finished {
		s += "\n" + msgFinished
	}
	return s
}

func historyText(h dto.HistoryView) string {
	if !h.Enabled {
		return msgHistoryOff
	}
	if h.Answered == 0 {
		return "まだ回答の記録がありません。"
	}
	return fmt.Sprintf("これまでの成績: %d問中%d問正解（正解率 %.1f%%）", h.Answered, h.Correct, h.Rate)
}
