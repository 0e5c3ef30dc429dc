package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	_ "modernc.org/sqlite" // driver: sqlite
)

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS quiz_answers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  session_id TEXT NOT NULL,
  question_id INTEGER NOT NULL,
  selected INTEGER NOT NULL,
  is_correct INTEGER NOT NULL,
  answered_at INTEGER NOT NULL
)`

// SQLiteAnswerRepository реализация журнала ответов на SQLite
type SQLiteAnswerRepository struct {
	db *sql.DB
}

// OpenSQLite открывает файл базы и создает таблицу quiz_answers
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteAnswerRepository, error) {
	const op = "repository.OpenSQLite"

	if dsn == "" {
		dsn = "file:quizbot.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}
	if _, err := db.ExecContext(ctx, schemaSQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to create quiz_answers table: %w", op, err)
	}
	return &SQLiteAnswerRepository{db: db}, nil
}

// Close закрывает соединение с базой
func (r *SQLiteAnswerRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteAnswerRepository) SaveAnswer(ctx context.Context, rec model.AnswerRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO quiz_answers (user_id, session_id, question_id, selected, is_correct, answered_at) VALUES (?, ?, ?, ?, ?, ?)",
		rec.UserID, rec.SessionID, rec.QuestionID, rec.Selected, rec.IsCorrect, rec.AnsweredAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}
	return nil
}

func (r *SQLiteAnswerRepository) GetUserStats(ctx context.Context, userID string) (model.UserStats, error) {
	var stats model.UserStats
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(is_correct), 0) FROM quiz_answers WHERE user_id = ?", userID).
		Scan(&stats.Answered, &stats.Correct)
	if err != nil {
		return model.UserStats{}, fmt.Errorf("failed to get user stats: %w", err)
	}
	return stats, nil
}
