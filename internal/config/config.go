package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Vocabulary sources.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Session store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string     `mapstructure:"env"` // current application environment (local, dev, production)
	TelegramAPIToken string     `mapstructure:"-"`   // Telegram API token loaded from environment
	Vocabulary       Vocabulary `mapstructure:"vocabulary"`
	Quiz             Quiz       `mapstructure:"quiz"`
	HTTP             HTTP       `mapstructure:"http"`
	Session          Session    `mapstructure:"session"`
	Redis            Redis      `mapstructure:"redis"`
	DB               DB         `mapstructure:"database"`
}

// Vocabulary selects where the vocabulary tables are loaded from.
type Vocabulary struct {
	Source string `mapstructure:"source"` // "file" or "postgres"
	Path   string `mapstructure:"path"`   // JSON file used by the file source and by imports
}

// Quiz contains question generation parameters.
type Quiz struct {
	NumChoices int   `mapstructure:"num_choices"`
	Seed       int64 `mapstructure:"seed"` // 0 seeds from the clock
}

// HTTP contains the browser API settings.
type HTTP struct {
	Addr         string   `mapstructure:"addr"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Session contains session store settings.
type Session struct {
	Store string        `mapstructure:"store"` // "memory" or "redis"
	TTL   time.Duration `mapstructure:"ttl"`
}

// Redis contains the connection parameters of the redis session store.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int32         `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from an optional .env file, config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("vocabulary.source", SourceFile)
	v.SetDefault("vocabulary.path", "assets/data/vocabulary.json")
	v.SetDefault("quiz.num_choices", 4)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("session.store", StoreMemory)
	v.SetDefault("session.ttl", "2h")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30m")
}

func (c *Config) validate() error {
	if c.Quiz.NumChoices < 2 {
		return fmt.Errorf("%w: quiz.num_choices must be at least 2, got %d", ErrInvalidConfig, c.Quiz.NumChoices)
	}

	switch c.Vocabulary.Source {
	case SourceFile:
		if c.Vocabulary.Path == "" {
			return fmt.Errorf("%w: vocabulary.path is empty", ErrInvalidConfig)
		}
	case SourcePostgres:
		if c.DB.URL == "" {
			return ErrMissingEnvironmentVariables
		}
	default:
		return fmt.Errorf("%w: unknown vocabulary.source %q", ErrInvalidConfig, c.Vocabulary.Source)
	}

	switch c.Session.Store {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("%w: unknown session.store %q", ErrInvalidConfig, c.Session.Store)
	}

	return nil
}

// RequireTelegram reports whether the bot token is set.
func (c *Config) RequireTelegram() error {
	if c.TelegramAPIToken == "" {
		return ErrMissingEnvironmentVariables
	}
	return nil
}
