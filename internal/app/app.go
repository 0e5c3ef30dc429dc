package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/IT-Nick/quizbot/internal/app/dispatcher"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/callback_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/health_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/session_status_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/message_handler"
	"github.com/IT-Nick/quizbot/internal/app/middleware"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/bank"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/engine"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/repository"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	weatherClient "github.com/IT-Nick/quizbot/internal/domain/weather/client"
	weatherService "github.com/IT-Nick/quizbot/internal/domain/weather/service"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
	"gopkg.in/telebot.v4"
)

const shutdownTimeout = 10 * time.Second

type Services struct {
	quizService    *quizService.QuizService
	weatherService *weatherService.WeatherService
	dispatcher     *dispatcher.Dispatcher
}

type App struct {
	config *config.Config
	logger *log.Logger
	bot    *telebot.Bot
	db     *pgxpool.Pool
	sqlite *repository.SQLiteAnswerRepository
	server *http.Server
	store  *engine.Store
	engine *engine.Engine

	Services
}

// NewApp загружает конфигурацию из файла и собирает приложение
func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}
	return New(context.Background(), configImpl)
}

// New собирает приложение по готовой конфигурации
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: log.New(os.Stdout, "[bot] ", log.LstdFlags),
	}

	if err := app.initServices(ctx); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices(ctx context.Context) error {
	questions, err := bank.Load(app.config.Quiz.BankPath)
	if err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}

	answers, err := app.initAnswerRepository(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize answer log: %w", err)
	}

	app.store = engine.NewStore()
	app.engine = engine.NewEngine(questions, app.store,
		engine.WithTotal(app.config.Quiz.Total),
		engine.WithMilestones(app.config.Quiz.Milestones...),
		engine.WithFinalMilestone(app.config.Quiz.FinalMilestone),
		engine.WithAutoDeliverFirst(app.config.Quiz.AutoDeliverFirst),
	)
	app.quizService = quizService.NewQuizService(app.engine, answers, app.logger)

	var weather dispatcher.Weather
	if app.config.Weather.Enabled {
		app.weatherService = weatherService.NewWeatherService(
			weatherClient.NewClient(app.config.Weather.BaseURL, app.config.Weather.Timeout), app.logger)
		weather = app.weatherService
	}
	app.dispatcher = dispatcher.New(app.quizService, weather, app.logger)

	app.logger.Printf("Question bank loaded: %d questions", questions.Len())
	return nil
}

// initTelegram создаёт бота и регистрирует обработчики
func (app *App) initTelegram() error {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: NewPoller(app.config),
		OnError: func(err error, c telebot.Context) {
			app.logger.Printf("Telegram handler error: %v", err)
		},
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	app.bootstrapHandlersTelegram()
	return nil
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	if app.config.Debug {
		app.bot.Use(middleware.Logger(app.logger))
		app.bot.Use(middleware.DebugUserActions(app.logger, app.quizService.Status))
	}
	app.bot.Use(middleware.Recover(func(err error, c telebot.Context) {
		app.logger.Printf("Recovered from panic: %v", err)
	}))

	handler := message_handler.NewMessageHandler(app.dispatcher, app.config.Weather.Timeout+5*time.Second, app.logger).GetHandlerFunc()
	app.bot.Handle("/start", handler)
	app.bot.Handle(telebot.OnText, handler)
}

// Router HTTP маршруты приложения
func (app *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID, chiMiddleware.RealIP, chiMiddleware.Recoverer)
	if app.config.Debug {
		r.Use(chiMiddleware.Logger)
	}
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Method(http.MethodGet, "/health", health_handler.NewHealthHandler())
	r.Method(http.MethodPost, "/callback", callback_handler.NewCallbackHandler(app.dispatcher))
	r.Method(http.MethodGet, "/sessions/{userID}", session_status_handler.NewSessionStatusHandler(app.quizService))
	return r
}

// ListenAndServeTelegram запускает бота и останавливает его при отмене контекста
func (app *App) ListenAndServeTelegram(ctx context.Context) error {
	if err := app.initTelegram(); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		app.logger.Printf("Запуск бота в режиме %s...", app.config.TelegramBot.Mode)
		app.bot.Start()
		close(done)
	}()

	<-ctx.Done()
	app.bot.Stop()
	<-done
	return nil
}

// ListenAndServeHTTP запускает HTTP сервер и останавливает его при отмене контекста
func (app *App) ListenAndServeHTTP(ctx context.Context) error {
	app.server = &http.Server{
		Addr:              app.config.HTTPAddr(),
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Printf("HTTP server listening on %s", app.server.Addr)
		errCh <- app.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.server.Shutdown(shutdownCtx)
	}
}

// ListenAndServe запускает Telegram бота, HTTP сервер и очистку сессий до отмены контекста
func (app *App) ListenAndServe(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if app.config.TelegramBot.Mode != config.ModeDisabled {
		g.Go(func() error {
			if err := app.ListenAndServeTelegram(ctx); err != nil {
				return fmt.Errorf("failed to start Telegram bot: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		if err := app.ListenAndServeHTTP(ctx); err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		app.store.Janitor(ctx, app.config.Quiz.SessionTTL, app.config.Quiz.JanitorInterval, app.engine.Now)
		return nil
	})

	err := g.Wait()
	app.Close()
	return err
}

// Close освобождает соединения с базами данных
func (app *App) Close() {
	if app.db != nil {
		app.db.Close()
		app.db = nil
	}
	if app.sqlite != nil {
		if err := app.sqlite.Close(); err != nil {
			app.logger.Printf("Failed to close SQLite: %v", err)
		}
		app.sqlite = nil
	}
}
