package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Messaging  MessagingConfig
	Assignment AssignmentConfig
	Admin      AdminConfig
	Tracing    TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret string
}

type MessagingConfig struct {
	NatsURL           string
	RedisURL          string
	WorkerEventsTopic string
}

type AssignmentConfig struct {
	SweepInterval  time.Duration
	SweepBatchSize int
}

type AdminConfig struct {
	AbuseReportCacheTTL time.Duration
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
		},
		Messaging: MessagingConfig{
			NatsURL:           getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379"),
			WorkerEventsTopic: getEnv("WORKER_EVENTS_TOPIC", "worker.available"),
		},
		Assignment: AssignmentConfig{
			SweepInterval:  getEnvAsDuration("ASSIGNMENT_SWEEP_INTERVAL", time.Minute),
			SweepBatchSize: getEnvAsInt("ASSIGNMENT_SWEEP_BATCH_SIZE", 50),
		},
		Admin: AdminConfig{
			AbuseReportCacheTTL: getEnvAsDuration("ABUSE_REPORT_CACHE_TTL", 5*time.Minute),
		},
		Tracing: TracingConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "motoservice-backend"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("90s", "5m").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}
