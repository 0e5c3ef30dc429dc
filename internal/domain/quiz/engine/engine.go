package engine

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/bank"
	"github.com/google/uuid"
)

type config struct {
	total             int // 0 означает весь банк
	milestones        []int
	milestoneOnFinish bool
	autoDeliverFirst  bool
	shuffle           func(n int) []int
	now               func() time.Time
	newID             func() string
}

// Option настройка движка
type Option func(*config)

// WithTotal ограничивает сессию первыми n вопросами перемешанного порядка
func WithTotal(n int) Option { return func(c *config) { c.total = n } }

// WithMilestones задаёт рубежи, на которых к ответу прикладывается промежуточный итог
func WithMilestones(thresholds ...int) Option {
	return func(c *config) { c.milestones = normalizeMilestones(thresholds) }
}

// WithFinalMilestone включает итог на последнем вопросе сессии
func WithFinalMilestone(enabled bool) Option { return func(c *config) { c.milestoneOnFinish = enabled } }

// WithAutoDeliverFirst сразу выдаёт первый вопрос при запуске или сбросе
func WithAutoDeliverFirst(enabled bool) Option { return func(c *config) { c.autoDeliverFirst = enabled } }

// WithShuffler подменяет генератор перестановок, используется в тестах
func WithShuffler(shuffle func(n int) []int) Option { return func(c *config) { c.shuffle = shuffle } }

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option { return func(c *config) { c.now = now } }

// WithIDGenerator подменяет генератор идентификаторов сессий
func WithIDGenerator(newID func() string) Option { return func(c *config) { c.newID = newID } }

// Engine ведёт викторину для каждого пользователя: выбирает вопросы, проверяет ответы, считает итоги.
// Не выполняет ввода-вывода, все операции ограничены по времени и не блокируются надолго.
type Engine struct {
	bank  *bank.Bank
	store *Store
	cfg   config
}

// NewEngine создаёт движок поверх банка вопросов и хранилища сессий
func NewEngine(b *bank.Bank, store *Store, opts ...Option) *Engine {
	cfg := config{
		milestones:        []int{10, 25},
		milestoneOnFinish: true,
		shuffle:           rand.Perm,
		now:               time.Now,
		newID:             uuid.NewString,
	}
	for _, o := range opts {
		o(&cfg)
	}

	return &Engine{bank: b, store: store, cfg: cfg}
}

// Store возвращает хранилище сессий движка
func (e *Engine) Store() *Store {
	return e.store
}

// Now текущее время по часам движка
func (e *Engine) Now() time.Time {
	return e.cfg.now()
}

// StartOrReset создаёт новую сессию со свежим порядком вопросов, заменяя предыдущую
func (e *Engine) StartOrReset(userID string) dto.StartResult {
	en := e.store.acquire(userID, true)
	defer en.mu.Unlock()

	n := e.bank.Len()
	order := e.cfg.shuffle(n)
	if len(order) != n {
		panic(fmt.Sprintf("quiz shuffler returned %d indices for %d questions", len(order), n))
	}
	if e.cfg.total > 0 && e.cfg.total < n {
		order = order[:e.cfg.total]
	}

	now := e.cfg.now()
	s := &Session{
		ID:        e.cfg.newID(),
		Order:     order,
		StartedAt: now,
		LastSeen:  now,
	}
	en.session = s

	res := dto.StartResult{SessionID: s.ID, Total: s.Total()}
	if e.cfg.autoDeliverFirst {
		v := e.view(s)
		res.First = &v
	}
	return res
}

// NextQuestion показывает текущий вопрос, не сдвигая курсор.
// Повторный вызов без ответа возвращает тот же вопрос.
func (e *Engine) NextQuestion(userID string) (dto.NextResult, error) {
	en, s := e.lock(userID)
	if s == nil {
		return dto.NextResult{}, ErrNoSession
	}
	defer en.mu.Unlock()

	s.LastSeen = e.cfg.now()
	if s.Finished {
		return dto.NextResult{Completed: true, Status: statusOf(s)}, nil
	}
	return dto.NextResult{Question: e.view(s), Status: statusOf(s)}, nil
}

// SubmitAnswer проверяет ответ на текущий вопрос и сдвигает сессию на следующий
func (e *Engine) SubmitAnswer(userID string, selected int) (dto.AnswerResult, error) {
	en, s := e.lock(userID)
	if s == nil {
		return dto.AnswerResult{}, ErrNoSession
	}
	defer en.mu.Unlock()

	s.LastSeen = e.cfg.now()
	if s.Finished {
		return dto.AnswerResult{}, ErrAlreadyFinished
	}
	if selected < 1 || selected > model.OptionsCount {
		return dto.AnswerResult{}, fmt.Errorf("%w: got %d", ErrInvalidChoice, selected)
	}

	q := e.current(s)
	isCorrect := selected == q.Correct

	s.Answered++
	if isCorrect {
		s.Correct++
	}
	s.Cursor++
	s.Finished = s.Answered == s.Total()
	s.mustBeConsistent()

	res := dto.AnswerResult{
		SessionID:     s.ID,
		QuestionID:    q.ID,
		Selected:      selected,
		IsCorrect:     isCorrect,
		CorrectOption: q.Correct,
		CorrectText:   q.CorrectText(),
		Explanation:   q.Explanation,
		Answered:      s.Answered,
		Correct:       s.Correct,
		Total:         s.Total(),
		Finished:      s.Finished,
	}
	if threshold, final, ok := e.milestone(s.Answered, s.Total()); ok {
		res.Milestone = &dto.MilestoneSummary{
			Threshold: threshold,
			Answered:  s.Answered,
			Correct:   s.Correct,
			Rate:      model.Rate(s.Correct, s.Answered),
			Final:     final,
		}
	}
	return res, nil
}

// Status возвращает счёт пользователя, ничего не изменяя
func (e *Engine) Status(userID string) dto.Status {
	en, s := e.lock(userID)
	if s == nil {
		return dto.Status{}
	}
	defer en.mu.Unlock()

	return statusOf(s)
}

// lock захватывает сессию пользователя. Если сессии нет, ничего не захвачено.
func (e *Engine) lock(userID string) (*entry, *Session) {
	en := e.store.acquire(userID, false)
	if en == nil {
		return nil, nil
	}
	if en.session == nil {
		en.mu.Unlock()
		return nil, nil
	}
	return en, en.session
}

func (e *Engine) current(s *Session) model.Question {
	s.mustBeConsistent()
	if s.Cursor >= s.Total() {
		panic(fmt.Sprintf("quiz session %s: no current question at cursor %d", s.ID, s.Cursor))
	}
	return e.bank.At(s.Order[s.Cursor])
}

func (e *Engine) view(s *Session) dto.QuestionView {
	q := e.current(s)
	return dto.QuestionView{
		SessionID:    s.ID,
		QuestionID:   q.ID,
		Ordinal:      s.Answered + 1,
		Total:        s.Total(),
		Prompt:       q.Prompt,
		Options:      slices.Clone(q.Options),
		ValidAnswers: slices.Clone(model.AnswerKeys),
	}
}

// milestone определяет, пересёк ли ответ рубеж. Число ответов строго растёт,
// поэтому каждый рубеж срабатывает в сессии не больше одного раза.
func (e *Engine) milestone(answered, total int) (threshold int, final bool, ok bool) {
	final = e.cfg.milestoneOnFinish && answered == total
	if final {
		return answered, true, true
	}
	if answered <= total && slices.Contains(e.cfg.milestones, answered) {
		return answered, false, true
	}
	return 0, false, false
}

func statusOf(s *Session) dto.Status {
	return dto.Status{
		Started:  true,
		Answered: s.Answered,
		Correct:  s.Correct,
		Total:    s.Total(),
		Rate:     model.Rate(s.Correct, s.Answered),
		Finished: s.Finished,
	}
}

func normalizeMilestones(thresholds []int) []int {
	out := make([]int, 0, len(thresholds))
	for _, t := range thresholds {
		if t > 0 {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
