package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	AdminEmail          string
	AdminPassword       string
	DeleteEventPassword string
	SessionTTL          time.Duration
}

// MailConfig SMTP-SSL 寄送 QR code 用；Address 為空時視為未設定
type MailConfig struct {
	Host     string
	Port     int
	Address  string
	Password string
	Sender   string
}

func LoadConfig() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		Server:   ServerConfig{Port: getEnv("PORT", "8080")},
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Auth:     GetAuthConfig(),
		Mail:     GetMailConfig(),
	}
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Auth: AuthConfig{
			AdminEmail:          "admin@hackpass.test",
			AdminPassword:       "changeme",
			DeleteEventPassword: "delete-secret",
			SessionTTL:          time.Hour,
		},
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetAuthConfig() AuthConfig {
	ttlHours, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "12"))
	if err != nil {
		panic(err)
	}

	return AuthConfig{
		AdminEmail:          getEnv("ADMIN_EMAIL", "admin@hackpass.dev"),
		AdminPassword:       getEnv("ADMIN_PASSWORD", "changeme"),
		DeleteEventPassword: getEnv("DELETE_EVENT_PASSWORD", ""),
		SessionTTL:          time.Duration(ttlHours) * time.Hour,
	}
}

func GetMailConfig() MailConfig {
	port, err := strconv.Atoi(getEnv("EMAIL_SMTP_PORT", "465"))
	if err != nil {
		panic(err)
	}

	return MailConfig{
		Host:     getEnv("EMAIL_SMTP_HOST", "smtp.gmail.com"),
		Port:     port,
		Address:  getEnv("EMAIL_ADDRESS", ""),
		Password: getEnv("EMAIL_APP_PASSWORD", ""),
		Sender:   getEnv("EMAIL_SENDER_NAME", "HackPass"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
