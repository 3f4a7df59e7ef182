package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
	TitleLock TitleLockConfig
	RabbitMQ  RabbitMQConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	// URL comes from DB_CONNECTION_STRING and wins over everything else.
	URL string
	// Local is the LOCAL_POSTGRES_CONNECTION_STRING config entry.
	Local    string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type TitleLockConfig struct {
	Enabled bool
	Marker  string
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// ConnectionString resolves the store DSN: the environment variable first,
// then the named config entry, then the discrete DB_* settings.
func (c DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Local != "" {
		return c.Local
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// LoadConfig reads the optional env file at path and overlays the process
// environment on top of it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_NAME", "movie-catalog")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("MOVIE_TITLE_LOCK_ENABLED", true)
	v.SetDefault("MOVIE_TITLE_LOCK_MARKER", "F#")
	v.SetDefault("MOVIE_EVENTS_EXCHANGE", "movies")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DB_CONNECTION_STRING"),
			Local:    v.GetString("LOCAL_POSTGRES_CONNECTION_STRING"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		RateLimit: RateLimitConfig{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
		TitleLock: TitleLockConfig{
			Enabled: v.GetBool("MOVIE_TITLE_LOCK_ENABLED"),
			Marker:  v.GetString("MOVIE_TITLE_LOCK_MARKER"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("MOVIE_EVENTS_EXCHANGE"),
		},
	}

	return config, nil
}
