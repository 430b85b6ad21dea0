package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hrms-backend/pkg/workweek"
)

type Config struct {
	ServerAddr  string
	DatabaseURL string
	JWTSecret   string

	// Shift configuration used by the aggregation engine.
	ShiftWindow          workweek.ShiftWindow
	ShiftGraceMinutes    int
	StandardShiftMinutes int

	// Optional admin alert mirror over Telegram. Disabled when the token is
	// empty.
	TelegramToken    string
	AdminAlertChatID int64
}

// Load reads .env (when present) and the environment into a Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %s", err)
	}

	cfg := &Config{}

	cfg.ServerAddr = getEnv("SERVER_ADDR", ":8080")

	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		logrus.Fatal("could not get database url")
	}

	cfg.JWTSecret = getEnv("JWT_SECRET", "")
	if cfg.JWTSecret == "" {
		logrus.Fatal("could not get jwt secret")
	}

	window, err := workweek.ParseShiftWindow(getEnv("SHIFT_WINDOW", "09:00-18:00"))
	if err != nil {
		logrus.Fatalf("invalid SHIFT_WINDOW: %s", err)
	}
	cfg.ShiftWindow = window

	cfg.ShiftGraceMinutes = int(getEnvAsInt("SHIFT_GRACE_MINUTES", 15))
	cfg.StandardShiftMinutes = int(getEnvAsInt("STANDARD_SHIFT_MINUTES", 480))

	cfg.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	cfg.AdminAlertChatID = getEnvAsInt("ADMIN_ALERT_CHAT_ID", 0)

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
