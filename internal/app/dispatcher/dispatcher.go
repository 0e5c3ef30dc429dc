package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/engine"
)

// Quiz операции викторины, которые вызывает диспетчер
type Quiz interface {
	StartOrReset(userID string) dto.StartResult
	NextQuestion(userID string) (dto.NextResult, error)
	SubmitAnswer(ctx context.Context, userID string, selected int) (dto.AnswerResult, error)
	Status(userID string) dto.Status
	History(ctx context.Context, userID string) (dto.HistoryView, error)
}

// Weather источник ответов о погоде
type Weather interface {
	Reply(ctx context.Context, query string) string
}

var (
	repliesQuestion = append(slices.Clone(model.AnswerKeys), model.ResetKey, model.HelpKey)
	repliesAnswered = []string{model.ResetKey, model.HelpKey}
	repliesNoQuiz   = []string{model.StartKey, model.HelpKey}
	repliesIdle     = []string{model.NextKey, model.StatusKey, model.ResetKey, model.HelpKey}
)

// Dispatcher превращает входящий текст в команду и формирует ответ пользователю
type Dispatcher struct {
	quiz    Quiz
	weather Weather
	logger  *log.Logger
}

// New создает диспетчер. weather может быть nil, тогда погода отключена.
func New(quiz Quiz, weather Weather, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{quiz: quiz, weather: weather, logger: logger}
}

// Dispatch обрабатывает одно сообщение пользователя. Никогда не возвращает ошибку:
// любые ошибки превращаются в текст подсказки.
func (d *Dispatcher) Dispatch(ctx context.Context, userID, text string) dto.Reply {
	cmd := Classify(text)

	switch cmd.Kind {
	case KindStart, KindReset:
		res := d.quiz.StartOrReset(userID)
		if res.First != nil {
			return reply(startText(res), repliesQuestion)
		}
		return reply(startText(res), repliesIdle)

	case KindNext:
		res, err := d.quiz.NextQuestion(userID)
		if err != nil {
			return d.errorReply(userID, err)
		}
		if res.Completed {
			return reply(msgAlreadyDone, repliesAnswered)
		}
		return reply(questionText(res.Question), repliesQuestion)

	case KindAnswer:
		res, err := d.quiz.SubmitAnswer(ctx, userID, cmd.Choice)
		if err != nil {
			return d.errorReply(userID, err)
		}
		return reply(answerText(res), repliesAnswered)

	case KindStatus:
		st := d.quiz.Status(userID)
		return reply(statusText(st), d.stateReplies(userID))

	case KindHelp:
		return reply(helpText, d.stateReplies(userID))

	case KindHistory:
		h, err := d.quiz.History(ctx, userID)
		if err != nil {
			d.logger.Printf("History of user %s: %v", userID, err)
			return reply(msgHistoryFailed, d.stateReplies(userID))
		}
		return reply(historyText(h), d.stateReplies(userID))

	case KindWeather:
		if d.weather == nil {
			return reply(msgWeatherOff, d.stateReplies(userID))
		}
		return reply(d.weather.Reply(ctx, cmd.Query), d.stateReplies(userID))

	default:
		return reply(fmtUnknown(cmd.Text), d.stateReplies(userID))
	}
}

func (d *Dispatcher) errorReply(userID string, err error) dto.Reply {
	switch {
	case errors.Is(err, engine.ErrNoSession):
		return reply(msgNoSession, repliesNoQuiz)
	case errors.Is(err, engine.ErrAlreadyFinished):
		return reply(msgAlreadyDone, repliesAnswered)
	case errors.Is(err, engine.ErrInvalidChoice):
		return reply(msgInvalidChoice, repliesQuestion)
	default:
		d.logger.Printf("Unexpected quiz error for user %s: %v", userID, err)
		return reply(msgNoSession, repliesNoQuiz)
	}
}

// stateReplies подсказки для команд, не меняющих состояние викторины
func (d *Dispatcher) stateReplies(userID string) []string {
	st := d.quiz.Status(userID)
	switch {
	case !st.Started:
		return repliesNoQuiz
	case st.Finished:
		return repliesAnswered
	default:
		return repliesIdle
	}
}

func reply(text string, quick []string) dto.Reply {
	return dto.Reply{Text: text, QuickReplies: slices.Clone(quick)}
}

func fmtUnknown(text string) string {
	return fmt.Sprintf(msgUnknownCommand, text) + "\n" + tokenList
}
