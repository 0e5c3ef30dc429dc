package repository

import (
	"context"
	"fmt"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS quiz_answers (
    id          BIGSERIAL PRIMARY KEY,
    user_id     TEXT NOT NULL,
    session_id  TEXT NOT NULL,
    question_id INTEGER NOT NULL,
    selected    INTEGER NOT NULL,
    is_correct  BOOLEAN NOT NULL,
    answered_at TIMESTAMPTZ NOT NULL
)`

// PgAnswerRepository реализация журнала ответов на PostgreSQL
type PgAnswerRepository struct {
	db *pgxpool.Pool
}

// NewPgAnswerRepository создает репозиторий и таблицу quiz_answers, если её ещё нет
func NewPgAnswerRepository(ctx context.Context, db *pgxpool.Pool) (*PgAnswerRepository, error) {
	if _, err := db.Exec(ctx, schemaPostgres); err != nil {
		return nil, fmt.Errorf("failed to create quiz_answers table: %w", err)
	}
	return &PgAnswerRepository{db: db}, nil
}

// SaveAnswer сохраняет ответ пользователя
func (r *PgAnswerRepository) SaveAnswer(ctx context.Context, rec model.AnswerRecord) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO quiz_answers (user_id, session_id, question_id, selected, is_correct, answered_at) VALUES ($1, $2, $3, $4, $5, $6)",
		rec.UserID, rec.SessionID, rec.QuestionID, rec.Selected, rec.IsCorrect, rec.AnsweredAt)
	if err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}
	return nil
}

// GetUserStats считает ответы пользователя за всё время
func (r *PgAnswerRepository) GetUserStats(ctx context.Context, userID string) (model.UserStats, error) {
	var stats model.UserStats
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*), COUNT(*) FILTER (WHERE is_correct) FROM quiz_answers WHERE user_id=$1", userID).
		Scan(&stats.Answered, &stats.Correct)
	if err != nil {
		return model.UserStats{}, fmt.Errorf("failed to get user stats: %w", err)
	}
	return stats, nil
}
