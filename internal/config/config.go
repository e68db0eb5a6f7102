package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"chorechart/internal/core/domain"
)

type Config struct {
	Port string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	SessionSecret   string
	SessionDuration time.Duration

	WeekStartDay    domain.WeekStartDay
	DefaultTimezone *time.Location
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	weekStart, err := domain.ParseWeekStartDay(getEnv("WEEK_START_DAY", "sunday"))
	if err != nil {
		zap.L().Warn("Invalid WEEK_START_DAY, falling back to sunday", zap.Error(err))
		weekStart = domain.WeekStartSunday
	}

	tzName := getEnv("DEFAULT_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		zap.L().Warn("Invalid DEFAULT_TIMEZONE, falling back to UTC", zap.String("tz", tzName))
		loc = time.UTC
	}

	sessionHours := 12
	if raw := os.Getenv("SESSION_DURATION_HOURS"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &sessionHours); err != nil || sessionHours <= 0 {
			zap.L().Warn("Invalid SESSION_DURATION_HOURS, falling back to 12", zap.String("value", raw))
			sessionHours = 12
		}
	}

	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &redisDB); err != nil {
			redisDB = 0
		}
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		DbHost:     getEnv("DB_HOST", "localhost"),
		DbPort:     getEnv("DB_PORT", "5432"),
		DbUser:     getEnv("DB_USER", "chorechart_user"),
		DbPassword: getEnv("DB_PASSWORD", "secret"),
		DbName:     getEnv("DB_NAME", "chorechart_db"),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		SessionSecret:   getEnv("SESSION_SECRET", "chorechart-dev-secret"),
		SessionDuration: time.Duration(sessionHours) * time.Hour,

		WeekStartDay:    weekStart,
		DefaultTimezone: loc,
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DbUser, c.DbPassword, c.DbHost, c.DbPort, c.DbName)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
