package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Seismic  SeismicConfig
	Geocoder GeocoderConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
	// AnalysisTimeout - общий дедлайн одного анализа площадки
	AnalysisTimeout time.Duration
	// SessionIdleTTL - сколько хранится выбор сессии без обращений
	SessionIdleTTL time.Duration
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	AnalysisTTL time.Duration
	GeocodeTTL  time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	BatchSize         int
	Concurrency       int
	// ClaimMinIdle - через сколько неподтверждённая заявка забирается повторно
	ClaimMinIdle time.Duration
}

// SeismicConfig - параметры источника землетрясений (USGS FDSN)
type SeismicConfig struct {
	BaseURL      string
	RadiusKm     float64
	MinMagnitude float64
	Limit        int
	Timeout      time.Duration
	UserAgent    string
}

// GeocoderConfig - параметры геокодера (Nominatim)
type GeocoderConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	UserAgent         string
	Email             string
}

// Load читает конфигурацию из .env (если файл есть) и переменных окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - то же, что Load, но с явным путём к файлу
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("API_HOST"),
			Port:            v.GetInt("API_PORT"),
			Env:             v.GetString("API_ENV"),
			AnalysisTimeout: time.Duration(v.GetInt("API_ANALYSIS_TIMEOUT")) * time.Second,
			SessionIdleTTL:  time.Duration(v.GetInt("API_SESSION_IDLE_TTL")) * time.Second,
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DB_ENABLED"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			AnalysisTTL: time.Duration(v.GetInt("ANALYSIS_CACHE_TTL")) * time.Second,
			GeocodeTTL:  time.Duration(v.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
			Concurrency:       v.GetInt("WORKER_CONCURRENCY"),
			ClaimMinIdle:      time.Duration(v.GetInt("WORKER_CLAIM_MIN_IDLE")) * time.Second,
		},
		Seismic: SeismicConfig{
			BaseURL:      strings.TrimRight(v.GetString("SEISMIC_BASE_URL"), "/"),
			RadiusKm:     v.GetFloat64("SEISMIC_RADIUS_KM"),
			MinMagnitude: v.GetFloat64("SEISMIC_MIN_MAGNITUDE"),
			Limit:        v.GetInt("SEISMIC_LIMIT"),
			Timeout:      time.Duration(v.GetInt("SEISMIC_TIMEOUT")) * time.Second,
			UserAgent:    v.GetString("SEISMIC_USER_AGENT"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:           strings.TrimRight(v.GetString("GEOCODER_BASE_URL"), "/"),
			Timeout:           time.Duration(v.GetInt("GEOCODER_TIMEOUT")) * time.Second,
			RequestsPerSecond: v.GetFloat64("GEOCODER_RPS"),
			UserAgent:         v.GetString("GEOCODER_USER_AGENT"),
			Email:             v.GetString("GEOCODER_EMAIL"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_ANALYSIS_TIMEOUT", 15)
	v.SetDefault("API_SESSION_IDLE_TTL", 1800)

	v.SetDefault("DB_ENABLED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 3600)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 600)

	v.SetDefault("REDIS_ENABLED", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("ANALYSIS_CACHE_TTL", 3600)
	v.SetDefault("GEOCODE_CACHE_TTL", 86400)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_CONSUMER_GROUP", "site-analysis-workers")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
	v.SetDefault("WORKER_BATCH_SIZE", 10)
	v.SetDefault("WORKER_CONCURRENCY", 4)
	v.SetDefault("WORKER_CLAIM_MIN_IDLE", 60)

	v.SetDefault("SEISMIC_BASE_URL", "https://earthquake.usgs.gov")
	v.SetDefault("SEISMIC_RADIUS_KM", 500)
	v.SetDefault("SEISMIC_MIN_MAGNITUDE", 3.0)
	v.SetDefault("SEISMIC_LIMIT", 100)
	v.SetDefault("SEISMIC_TIMEOUT", 8)
	v.SetDefault("SEISMIC_USER_AGENT", "bridge-site-analyzer/1.0")

	v.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("GEOCODER_TIMEOUT", 10)
	v.SetDefault("GEOCODER_RPS", 1)
	v.SetDefault("GEOCODER_USER_AGENT", "bridge-site-analyzer/1.0")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
