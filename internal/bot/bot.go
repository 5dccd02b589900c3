package bot

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ityshenko/calorie-bot-new/internal/metrics"
)

// Bot связывает Telegram-транспорт с движком диалога
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *Engine
	log    *zap.Logger
	// очереди обновлений по пользователям: ходы одного пользователя
	// обрабатываются строго в порядке прихода
	mu      sync.Mutex
	pending map[int64][]tgbotapi.Update
	process func(tgbotapi.Update)
}

// New создает нового бота
func New(token string, engine *Engine, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	logger.Info("Авторизован в Telegram", zap.String("username", api.Self.UserName))

	b := &Bot{
		api:     api,
		engine:  engine,
		log:     logger,
		pending: make(map[int64][]tgbotapi.Update),
	}
	b.process = b.handleUpdate
	return b, nil
}

// Updates возвращает канал обновлений. Если задан публичный адрес,
// Telegram шлёт обновления вебхуком на общий HTTP-сервер; иначе
// бот сам опрашивает API (long polling).
func (b *Bot) Updates(publicURL string, mux *http.ServeMux) (tgbotapi.UpdatesChannel, error) {
	if publicURL == "" {
		// на случай, если предыдущий запуск оставил вебхук
		if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			b.log.Warn("Не удалось удалить вебхук", zap.Error(err))
		}

		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60

		b.log.Info("Запускаем long polling")
		return b.api.GetUpdatesChan(u), nil
	}

	// обработчик вешается на mux до регистрации вебхука в Telegram,
	// чтобы первые обновления не попали на ещё пустой маршрут
	updates := make(chan tgbotapi.Update, b.api.Buffer)
	mux.HandleFunc("/"+b.api.Token, func(w http.ResponseWriter, r *http.Request) {
		update, err := b.api.HandleUpdate(r)
		if err != nil {
			b.log.Warn("Некорректное обновление от вебхука", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		updates <- *update
	})

	wh, err := tgbotapi.NewWebhook(fmt.Sprintf("https://%s/%s", publicURL, b.api.Token))
	if err != nil {
		return nil, fmt.Errorf("ошибка конфигурации вебхука: %w", err)
	}
	if _, err := b.api.Request(wh); err != nil {
		return nil, fmt.Errorf("не удалось установить вебхук: %w", err)
	}

	b.log.Info("Вебхук установлен", zap.String("url", publicURL))
	return updates, nil
}

// Run обрабатывает обновления до отмены контекста.
// Ходы разных пользователей идут параллельно; обновления одного
// пользователя встают в его очередь и обрабатываются по порядку.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			b.dispatch(update)
		}
	}
}

// dispatch ставит обновление в очередь пользователя. Пока для
// пользователя есть работающий обработчик, новый не запускается —
// наличие ключа в pending и означает живой обработчик.
func (b *Bot) dispatch(update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	userID := update.Message.From.ID

	b.mu.Lock()
	queue, running := b.pending[userID]
	b.pending[userID] = append(queue, update)
	b.mu.Unlock()

	if !running {
		go b.drain(userID)
	}
}

// drain обрабатывает очередь одного пользователя до опустошения
func (b *Bot) drain(userID int64) {
	for {
		b.mu.Lock()
		queue := b.pending[userID]
		if len(queue) == 0 {
			delete(b.pending, userID)
			b.mu.Unlock()
			return
		}
		update := queue[0]
		b.pending[userID] = queue[1:]
		b.mu.Unlock()

		b.process(update)
	}
}

// handleUpdate обрабатывает одно входящее обновление
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	msg := update.Message
	userID := msg.From.ID

	var reply Reply
	if msg.IsCommand() {
		reply = b.engine.Command(userID, msg.Command())
	} else {
		reply = b.engine.Message(userID, msg.Text)
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply.Text)
	if len(reply.Keyboard) > 0 {
		out.ReplyMarkup = replyKeyboard(reply.Keyboard)
	} else {
		out.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	if _, err := b.api.Send(out); err != nil {
		b.log.Error("Не удалось отправить ответ", zap.Int64("user_id", userID), zap.Error(err))
		metrics.UpdatesTotal.WithLabelValues("send_error").Inc()
		return
	}
	metrics.UpdatesTotal.WithLabelValues("ok").Inc()
}

// replyKeyboard превращает ряды подсказок в Telegram-клавиатуру
func replyKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	var keyboardRows [][]tgbotapi.KeyboardButton
	for _, row := range rows {
		var buttons []tgbotapi.KeyboardButton
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		keyboardRows = append(keyboardRows, buttons)
	}
	return tgbotapi.NewReplyKeyboard(keyboardRows...)
}
