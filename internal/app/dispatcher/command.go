package dispatcher

import (
	"strconv"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"golang.org/x/text/unicode/norm"
)

// Kind тип распознанной команды
type Kind int

const (
	KindUnknown Kind = iota
	KindStart
	KindReset
	KindNext
	KindAnswer
	KindStatus
	KindHelp
	KindHistory
	KindWeather
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindReset:
		return "reset"
	case KindNext:
		return "next"
	case KindAnswer:
		return "answer"
	case KindStatus:
		return "status"
	case KindHelp:
		return "help"
	case KindHistory:
		return "history"
	case KindWeather:
		return "weather"
	default:
		return "unknown"
	}
}

// Command результат классификации входящего текста
type Command struct {
	Kind   Kind
	Choice int    // для KindAnswer
	Query  string // для KindWeather
	Text   string // исходный текст для KindUnknown
}

var tokens = map[string]Kind{
	model.StartKey: KindStart, "開始": KindStart, "クイズ": KindStart, "start": KindStart, "/start": KindStart,
	model.ResetKey: KindReset, "最初から": KindReset, "reset": KindReset, "/reset": KindReset,
	model.NextKey: KindNext, "次の問題": KindNext, "つぎ": KindNext, "next": KindNext, "/next": KindNext,
	model.StatusKey: KindStatus, "スコア": KindStatus, "status": KindStatus, "score": KindStatus, "/status": KindStatus,
	model.HelpKey: KindHelp, "使い方": KindHelp, "help": KindHelp, "/help": KindHelp,
	model.HistoryKey: KindHistory, "history": KindHistory, "/history": KindHistory,
}

var kanjiNumerals = map[string]int{"一": 1, "二": 2, "三": 3, "四": 4}

// Classify определяет команду по тексту сообщения.
// Полноширинные и обведённые цифры приводятся к ASCII через NFKC.
func Classify(text string) Command {
	s := strings.ToLower(strings.TrimSpace(norm.NFKC.String(text)))
	if s == "" {
		return Command{Kind: KindUnknown, Text: text}
	}

	if strings.HasPrefix(s, "/") {
		head, rest, _ := strings.Cut(s, " ")
		if at := strings.IndexByte(head, '@'); at >= 0 {
			head = head[:at]
		}
		if head == "/weather" {
			return Command{Kind: KindWeather, Query: strings.TrimSpace(rest)}
		}
		s = head
	}

	if k, ok := tokens[s]; ok {
		return Command{Kind: k}
	}
	if n, ok := parseChoice(s); ok {
		return Command{Kind: KindAnswer, Choice: n}
	}
	if strings.Contains(s, "天気") {
		return Command{Kind: KindWeather, Query: s}
	}
	return Command{Kind: KindUnknown, Text: text}
}

// parseChoice разбирает номер ответа: целое число, допускается суффикс 番, или кандзи 一..四.
// Числа вне 1..4 тоже считаются ответом, их отклоняет движок.
func parseChoice(s string) (int, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(s, "番"))
	if n, ok := kanjiNumerals[s]; ok {
		return n, true
	}
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// переполнение, заведомо недопустимый номер
		return -1, true
	}
	return n, true
}
