package bot

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ityshenko/calorie-bot-new/internal/database"
	"github.com/ityshenko/calorie-bot-new/pkg/catalog"
	"github.com/ityshenko/calorie-bot-new/pkg/locales"
	"github.com/ityshenko/calorie-bot-new/pkg/models"
)

// Store — операции хранилища, которые нужны диалогу.
// Конкретная реализация передаётся при создании Engine.
type Store interface {
	UpsertUser(userID int64, weight, height float64, age int, gender models.Gender) int
	GetUser(userID int64) *models.UserProfile
	RecordMeal(userID int64, food string, grams int) (int, error)
	TodayTotal(userID int64) int
	Goal(userID int64) int
	MonthStats(userID int64) []models.DayTotal
}

// Reply — единственный ответ на входящее сообщение.
// Keyboard — ряды кнопок-подсказок; nil убирает клавиатуру.
type Reply struct {
	Text     string
	Keyboard [][]string
}

// maxStatDays — сколько последних дней месяца показывать в статистике
const maxStatDays = 7

// Engine ведёт диалог: входящий текст плюс текущее состояние
// пользователя дают переход, ответ и не больше одной записи в хранилище.
type Engine struct {
	store    Store
	log      *zap.Logger
	sessions *sessions
}

func NewEngine(store Store, logger *zap.Logger) *Engine {
	return &Engine{
		store:    store,
		log:      logger,
		sessions: newSessions(),
	}
}

// Command обрабатывает /start, /help и /cancel.
// Неизвестные команды идут обычным текстом в Message.
func (e *Engine) Command(userID int64, name string) Reply {
	l := locales.Get()
	sess := e.sessions.get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch name {
	case "start":
		if e.store.GetUser(userID) != nil {
			sess.state = models.StateMainMenu
			return Reply{Text: l.MainMenu.Text, Keyboard: mainMenuKeyboard()}
		}
		sess.reset(models.StateAwaitWeight)
		return Reply{Text: l.Onboarding.WeightPrompt}
	case "help":
		return Reply{Text: l.Common.Help, Keyboard: startKeyboard()}
	case "cancel":
		// анкета не трогается, сбрасывается только сессия
		sess.reset(models.StateIdle)
		return Reply{Text: l.Common.Cancel, Keyboard: startKeyboard()}
	default:
		e.log.Debug("Неизвестная команда", zap.Int64("user_id", userID), zap.String("command", name))
		return e.message(sess, userID, "/"+name)
	}
}

// Message обрабатывает обычный текст по текущему состоянию диалога
func (e *Engine) Message(userID int64, text string) Reply {
	sess := e.sessions.get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return e.message(sess, userID, text)
}

// message выполняет один шаг автомата. Сессия уже заблокирована:
// ходы одного пользователя обрабатываются строго по одному.
func (e *Engine) message(sess *session, userID int64, text string) Reply {
	l := locales.Get()

	switch sess.state {
	case models.StateAwaitWeight:
		weight, ok := parseWeight(text)
		if !ok {
			return Reply{Text: l.Onboarding.WeightInvalid}
		}
		sess.weight = weight
		sess.state = models.StateAwaitHeight
		return Reply{Text: l.Onboarding.HeightPrompt}

	case models.StateAwaitHeight:
		height, ok := parseHeight(text)
		if !ok {
			return Reply{Text: l.Onboarding.HeightInvalid}
		}
		sess.height = height
		sess.state = models.StateAwaitAge
		return Reply{Text: l.Onboarding.AgePrompt}

	case models.StateAwaitAge:
		age, ok := parseAge(text)
		if !ok {
			return Reply{Text: l.Onboarding.AgeInvalid}
		}
		sess.age = age
		sess.state = models.StateAwaitGender
		return Reply{Text: l.Onboarding.GenderPrompt, Keyboard: genderKeyboard()}

	case models.StateAwaitGender:
		gender, ok := matchGender(text)
		if !ok {
			return Reply{Text: l.Onboarding.GenderInvalid, Keyboard: genderKeyboard()}
		}
		goal := e.store.UpsertUser(userID, sess.weight, sess.height, sess.age, gender)
		sess.state = models.StateMainMenu
		return Reply{Text: fmt.Sprintf(l.Onboarding.Saved, goal), Keyboard: mainMenuKeyboard()}

	case models.StateMainMenu:
		return e.handleMainMenu(sess, userID, text)

	case models.StateAwaitFood:
		name := strings.ToLower(strings.TrimSpace(text))
		if _, ok := catalog.Lookup(name); !ok {
			return Reply{Text: l.AddFood.Unknown}
		}
		sess.food = name
		sess.state = models.StateAwaitGrams
		return Reply{Text: l.AddFood.GramsPrompt}

	case models.StateAwaitGrams:
		return e.handleGrams(sess, userID, text)

	default: // StateIdle
		return Reply{Text: l.Common.Idle, Keyboard: startKeyboard()}
	}
}

func (e *Engine) handleMainMenu(sess *session, userID int64, text string) Reply {
	l := locales.Get()

	switch strings.ToLower(strings.TrimSpace(text)) {
	case strings.ToLower(l.MainMenu.Buttons.AddFood):
		sess.state = models.StateAwaitFood
		listing := strings.Join(catalog.Names(), ", ")
		return Reply{Text: fmt.Sprintf(l.AddFood.Choose, listing)}

	case strings.ToLower(l.MainMenu.Buttons.Stats):
		return Reply{Text: e.statsText(userID), Keyboard: mainMenuKeyboard()}

	case strings.ToLower(l.MainMenu.Buttons.EditProfile):
		// повторное прохождение анкеты; старая строка будет перезаписана
		sess.reset(models.StateAwaitWeight)
		return Reply{Text: l.Onboarding.WeightPrompt}

	default:
		return Reply{Text: l.MainMenu.Unknown, Keyboard: mainMenuKeyboard()}
	}
}

func (e *Engine) handleGrams(sess *session, userID int64, text string) Reply {
	l := locales.Get()

	grams, ok := parseGrams(text)
	if !ok {
		return Reply{Text: l.AddFood.GramsInvalid}
	}

	calories, err := e.store.RecordMeal(userID, sess.food, grams)
	if err != nil {
		// продукт уже проверен по справочнику, так что сюда попадают
		// только сбои самой записи (например, кончилось место на диске)
		if !errors.Is(err, database.ErrUnknownFood) {
			e.log.Warn("Запись приёма пищи не удалась", zap.Int64("user_id", userID), zap.Error(err))
		}
		sess.state = models.StateAwaitFood
		return Reply{Text: l.AddFood.SaveFailed}
	}

	total := e.store.TodayTotal(userID)
	goal := e.store.Goal(userID)
	food := sess.food

	sess.state = models.StateMainMenu
	sess.food = ""
	return Reply{
		Text:     fmt.Sprintf(l.AddFood.Saved, food, grams, calories, total, goal),
		Keyboard: mainMenuKeyboard(),
	}
}

// statsText собирает сводку: итог за сегодня, норма, остаток и
// до семи последних дней текущего месяца.
func (e *Engine) statsText(userID int64) string {
	l := locales.Get()

	total := e.store.TodayTotal(userID)
	goal := e.store.Goal(userID)
	remaining := goal - total
	if remaining < 0 {
		remaining = 0
	}

	lines := []string{fmt.Sprintf(l.Stats.Header, total, goal, remaining)}

	stats := e.store.MonthStats(userID)
	if len(stats) == 0 {
		lines = append(lines, l.Stats.Empty)
		return strings.Join(lines, "\n")
	}
	if len(stats) > maxStatDays {
		stats = stats[len(stats)-maxStatDays:]
	}

	lines = append(lines, "", l.Stats.MonthTitle)
	for _, day := range stats {
		lines = append(lines, fmt.Sprintf(l.Stats.DayLine, day.Date, day.Total))
	}

	return strings.Join(lines, "\n")
}

// matchGender сопоставляет ввод с локализованными названиями пола
func matchGender(text string) (models.Gender, bool) {
	l := locales.Get()

	switch strings.ToLower(strings.TrimSpace(text)) {
	case strings.ToLower(l.Gender.Male):
		return models.GenderMale, true
	case strings.ToLower(l.Gender.Female):
		return models.GenderFemale, true
	}
	return "", false
}
