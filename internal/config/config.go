package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"campusride/internal/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	App       *AppConfig       `yaml:"app"`
	Logging   *LoggingConfig   `yaml:"logging"`
	Redis     *RedisConfig     `yaml:"redis"`
	WebSocket *WebSocketConfig `yaml:"websocket"`
	Realtime  *RealtimeConfig  `yaml:"realtime"`
	Security  *SecurityConfig  `yaml:"security"`
}

type AppConfig struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Environment     string        `yaml:"environment"`
	Port            int           `yaml:"port"`
	Host            string        `yaml:"host"`
	Debug           bool          `yaml:"debug"`
	Currency        string        `yaml:"currency"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	Caller bool   `yaml:"caller"`
}

type SecurityConfig struct {
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	TrustedProxies     []string `yaml:"trusted_proxies"`
}

// RealtimeConfig sizes the in-process change bus and the dashboard cache.
type RealtimeConfig struct {
	SubscriberBuffer int           `yaml:"subscriber_buffer"`
	DashboardTTL     time.Duration `yaml:"dashboard_ttl"`
}

// Load reads an optional .env file (files listed in ENV_FILE, or ./.env),
// then builds the configuration from the environment.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	config := &Config{
		App:       loadAppConfig(),
		Logging:   loadLoggingConfig(),
		Redis:     loadRedisConfig(),
		WebSocket: loadWebSocketConfig(),
		Realtime:  loadRealtimeConfig(),
		Security:  loadSecurityConfig(),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadDotEnv() error {
	files := getEnvAsSlice("ENV_FILE", nil)
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	// Variables already set in the process win over the file
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.App.Port)
	}
	if c.Realtime.SubscriberBuffer <= 0 {
		return fmt.Errorf("invalid REALTIME_SUBSCRIBER_BUFFER %d", c.Realtime.SubscriberBuffer)
	}
	if c.Redis.Enabled && c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required when REDIS_ENABLED is set")
	}
	return nil
}

func (c *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:            getEnv("APP_NAME", utils.AppName),
		Version:         getEnv("APP_VERSION", utils.AppVersion),
		Environment:     getEnv("APP_ENV", "development"),
		Port:            getEnvAsInt("APP_PORT", 8080),
		Host:            getEnv("APP_HOST", "0.0.0.0"),
		Debug:           getEnvAsBool("APP_DEBUG", true),
		Currency:        getEnv("APP_CURRENCY", utils.DefaultCurrency),
		ShutdownTimeout: getEnvAsDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
		Output: getEnv("LOG_OUTPUT", "stdout"),
		Caller: getEnvAsBool("LOG_CALLER", false),
	}
}

func loadSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
	}
}

func loadRealtimeConfig() *RealtimeConfig {
	return &RealtimeConfig{
		SubscriberBuffer: getEnvAsInt("REALTIME_SUBSCRIBER_BUFFER", utils.DefaultSubscriberBuffer),
		DashboardTTL:     getEnvAsDuration("DASHBOARD_CACHE_TTL", 10*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
