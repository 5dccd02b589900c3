package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ityshenko/calorie-bot-new/internal/bot"
	"github.com/ityshenko/calorie-bot-new/internal/config"
	"github.com/ityshenko/calorie-bot-new/internal/database"
	"github.com/ityshenko/calorie-bot-new/internal/health"
	"github.com/ityshenko/calorie-bot-new/pkg/logger"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	// Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Не удалось загрузить конфигурацию", zap.Error(err))
	}

	// Открытие базы данных и применение схемы
	db, err := database.New(cfg.DatabasePath, log)
	if err != nil {
		log.Fatal("Не удалось открыть базу данных", zap.Error(err))
	}
	defer db.Close() // Закрыть соединение с БД при завершении

	engine := bot.NewEngine(db, log)

	b, err := bot.New(cfg.TelegramBotToken, engine, log)
	if err != nil {
		log.Fatal("Не удалось создать бота", zap.Error(err))
	}

	// HTTP-сервер живости; при вебхуке он же принимает обновления.
	// Сервер поднимается до регистрации вебхука в Telegram, иначе
	// первые обновления придут в ещё не слушающий порт.
	healthSrv := health.New(log)
	healthSrv.Start(cfg.Port)

	updates, err := b.Updates(cfg.PublicURL, healthSrv.Mux())
	if err != nil {
		log.Fatal("Не удалось подписаться на обновления", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Бот запущен")
	b.Run(ctx, updates)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := healthSrv.Stop(shutdownCtx); err != nil {
		log.Error("Ошибка остановки HTTP-сервера", zap.Error(err))
	}
	log.Info("Бот остановлен")
}
