package app

import (
	"context"
	"fmt"
	"log"

	"github.com/IT-Nick/quizbot/internal/domain/quiz/repository"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDatabase устанавливает подключение к базе данных PostgreSQL
func InitDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	const op = "app.InitDatabase"

	connConfig, err := pgxpool.ParseConfig(cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	log.Println("Database connected successfully!")
	return db, nil
}

// initAnswerRepository выбирает журнал ответов по database.driver
func (app *App) initAnswerRepository(ctx context.Context) (repository.AnswerRepository, error) {
	const op = "app.initAnswerRepository"

	switch app.config.Database.Driver {
	case config.DriverPostgres:
		db, err := InitDatabase(ctx, app.config)
		if err != nil {
			return nil, err
		}
		app.db = db
		repo, err := repository.NewPgAnswerRepository(ctx, db)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return repo, nil

	case config.DriverSQLite:
		repo, err := repository.OpenSQLite(ctx, app.config.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.sqlite = repo
		log.Println("SQLite answer log opened")
		return repo, nil

	default:
		return repository.NopAnswerRepository{}, nil
	}
}
