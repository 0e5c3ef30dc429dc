package repository

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// AnswerRepository журнал ответов пользователей
type AnswerRepository interface {
	SaveAnswer(ctx context.Context, rec model.AnswerRecord) error
	GetUserStats(ctx context.Context, userID string) (model.UserStats, error)
}

// NopAnswerRepository используется, когда база данных не настроена
type NopAnswerRepository struct{}

func (NopAnswerRepository) SaveAnswer(context.Context, model.AnswerRecord) error { return nil }

func (NopAnswerRepository) GetUserStats(context.Context, string) (model.UserStats, error) {
	return model.UserStats{}, nil
}
