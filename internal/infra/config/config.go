package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ModePolling  = "polling"
	ModeWebhook  = "webhook"
	ModeDisabled = "disabled"

	DriverNone     = "none"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	TelegramBot struct {
		Token       string        `yaml:"token"`
		Mode        string        `yaml:"mode"` // polling, webhook или disabled
		WebhookURL  string        `yaml:"webhook_url"`
		ListenAddr  string        `yaml:"listen_addr"`
		PollTimeout time.Duration `yaml:"poll_timeout"`
	} `yaml:"telegram_bot"`
	Database struct {
		Driver   string `yaml:"driver"` // none, postgres или sqlite
		DSN      string `yaml:"dsn"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
	} `yaml:"database"`
	Quiz struct {
		BankPath         string        `yaml:"bank_path"`
		Total            int           `yaml:"total"` // 0 означает весь банк
		Milestones       []int         `yaml:"milestones"`
		FinalMilestone   bool          `yaml:"final_milestone"`
		AutoDeliverFirst bool          `yaml:"auto_deliver_first"`
		SessionTTL       time.Duration `yaml:"session_ttl"` // 0 отключает вытеснение
		JanitorInterval  time.Duration `yaml:"janitor_interval"`
	} `yaml:"quiz"`
	Weather struct {
		Enabled bool          `yaml:"enabled"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"weather"`
	Debug bool `yaml:"debug"`
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = "8080"
	cfg.TelegramBot.Mode = ModePolling
	cfg.TelegramBot.ListenAddr = ":8443"
	cfg.TelegramBot.PollTimeout = 10 * time.Second
	cfg.Database.Driver = DriverNone
	cfg.Quiz.Milestones = []int{10, 25}
	cfg.Quiz.FinalMilestone = true
	cfg.Quiz.JanitorInterval = time.Minute
	cfg.Weather.Enabled = true
	cfg.Weather.Timeout = 10 * time.Second
	return cfg
}

// LoadConfig читает YAML-файл поверх значений по умолчанию, затем применяет переменные окружения
// (в том числе из файла .env, если он есть). Пустое имя файла означает только окружение.
func LoadConfig(filename string) (*Config, error) {
	const op = "config.LoadConfig"

	_ = godotenv.Load()

	cfg := Default()
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		defer func(f *os.File) {
			err := f.Close()
			if err != nil {
				fmt.Println("f.Close() failed ", err)
			}
		}(f)

		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to decode %s: %w", op, filename, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.TelegramBot.Token = v
	}
	if v := os.Getenv("BOT_MODE"); v != "" {
		c.TelegramBot.Mode = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		c.TelegramBot.WebhookURL = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("QUIZ_BANK_PATH"); v != "" {
		c.Quiz.BankPath = v
	}
	if v := os.Getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DEBUG value %q: %w", v, err)
		}
		c.Debug = debug
	}
	return nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	switch c.TelegramBot.Mode {
	case ModePolling, ModeDisabled:
	case ModeWebhook:
		if c.TelegramBot.WebhookURL == "" {
			errs = append(errs, errors.New("webhook mode requires telegram_bot.webhook_url"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown telegram_bot.mode %q", c.TelegramBot.Mode))
	}
	if c.TelegramBot.Mode != ModeDisabled && c.TelegramBot.Token == "" {
		errs = append(errs, errors.New("telegram_bot.token is required (or TELEGRAM_BOT_TOKEN)"))
	}

	switch c.Database.Driver {
	case DriverNone, DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown database.driver %q", c.Database.Driver))
	}

	if c.Quiz.Total < 0 {
		errs = append(errs, fmt.Errorf("quiz.total must not be negative, got %d", c.Quiz.Total))
	}
	for _, m := range c.Quiz.Milestones {
		if m <= 0 {
			errs = append(errs, fmt.Errorf("quiz.milestones must be positive, got %d", m))
		}
	}
	if c.Quiz.SessionTTL < 0 {
		errs = append(errs, errors.New("quiz.session_ttl must not be negative"))
	}

	return errors.Join(errs...)
}

// PostgresDSN строка подключения к PostgreSQL. Явный dsn важнее отдельных полей.
func (c *Config) PostgresDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// HTTPAddr адрес HTTP сервера
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
