package service

import (
	"context"
	"fmt"
	"log"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/engine"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/repository"
)

// QuizService связывает движок викторины с журналом ответов
type QuizService struct {
	engine  *engine.Engine
	answers repository.AnswerRepository
	logger  *log.Logger
}

// NewQuizService создает новый экземпляр QuizService. Если answers == nil, журнал не ведётся.
func NewQuizService(eng *engine.Engine, answers repository.AnswerRepository, logger *log.Logger) *QuizService {
	if answers == nil {
		answers = repository.NopAnswerRepository{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &QuizService{engine: eng, answers: answers, logger: logger}
}

// StartOrReset начинает викторину заново
func (s *QuizService) StartOrReset(userID string) dto.StartResult {
	return s.engine.StartOrReset(userID)
}

// NextQuestion показывает текущий вопрос
func (s *QuizService) NextQuestion(userID string) (dto.NextResult, error) {
	return s.engine.NextQuestion(userID)
}

// SubmitAnswer принимает ответ и записывает его в журнал.
// Ошибка журнала только логируется и не влияет на результат.
func (s *QuizService) SubmitAnswer(ctx context.Context, userID string, selected int) (dto.AnswerResult, error) {
	res, err := s.engine.SubmitAnswer(userID, selected)
	if err != nil {
		return dto.AnswerResult{}, err
	}

	rec := model.AnswerRecord{
		UserID:     userID,
		SessionID:  res.SessionID,
		QuestionID: res.QuestionID,
		Selected:   res.Selected,
		IsCorrect:  res.IsCorrect,
		AnsweredAt: s.engine.Now(),
	}
	if err := s.answers.SaveAnswer(ctx, rec); err != nil {
		s.logger.Printf("Failed to save answer of user %s: %v", userID, err)
	}
	return res, nil
}

// Status возвращает счёт текущей сессии
func (s *QuizService) Status(userID string) dto.Status {
	return s.engine.Status(userID)
}

// HistoryEnabled сообщает, ведётся ли журнал ответов
func (s *QuizService) HistoryEnabled() bool {
	_, nop := s.answers.(repository.NopAnswerRepository)
	return !nop
}

// History возвращает статистику пользователя за всё время
func (s *QuizService) History(ctx context.Context, userID string) (dto.HistoryView, error) {
	if !s.HistoryEnabled() {
		return dto.HistoryView{}, nil
	}
	stats, err := s.answers.GetUserStats(ctx, userID)
	if err != nil {
		return dto.HistoryView{}, fmt.Errorf("failed to get history: %w", err)
	}
	return dto.HistoryView{
		Enabled:  true,
		Answered: stats.Answered,
		Correct:  stats.Correct,
		Rate:     stats.Rate(),
	}, nil
}
