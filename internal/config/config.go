package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramBotToken string
	PublicURL        string // если задан — бот работает через вебхук
	Port             string
	DatabasePath     string
}

// Load читает конфигурацию из переменных окружения.
// .env подхватывается, если лежит рядом — удобно при локальном запуске.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("не задана переменная окружения BOT_TOKEN")
	}

	cfg := &Config{
		TelegramBotToken: token,
		PublicURL:        os.Getenv("PUBLIC_URL"),
		Port:             getEnv("PORT", "8080"),
		DatabasePath:     getEnv("DATABASE_PATH", "calorie.db"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
