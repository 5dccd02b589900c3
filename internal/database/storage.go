package database

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ityshenko/calorie-bot-new/internal/metrics"
	"github.com/ityshenko/calorie-bot-new/pkg/catalog"
	"github.com/ityshenko/calorie-bot-new/pkg/models"
)

// ErrUnknownFood возвращается, когда продукта нет в справочнике.
// Запись при этом не создаётся.
var ErrUnknownFood = errors.New("неизвестный продукт")

const dateLayout = "2006-01-02"

// UpsertUser сохраняет анкету, пересчитывая дневную норму.
// Существующая строка пользователя заменяется целиком. Ошибки хранилища
// не доходят до диалога: логируются, наружу уходит норма по умолчанию.
func (db *DB) UpsertUser(userID int64, weight, height float64, age int, gender models.Gender) int {
	goal := models.DailyGoal(weight, height, age, gender)

	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO users (user_id, weight, height, age, gender, daily_goal) VALUES (?, ?, ?, ?, ?, ?)`,
		userID, weight, height, age, string(gender), goal,
	)
	if err != nil {
		db.log.Error("Не удалось сохранить анкету", zap.Int64("user_id", userID), zap.Error(err))
		metrics.StoreErrorsTotal.WithLabelValues("upsert_user").Inc()
		return models.DefaultDailyGoal
	}

	return goal
}

// GetUser возвращает анкету пользователя или nil, если её нет
// (или хранилище недоступно — тогда ошибка только логируется).
func (db *DB) GetUser(userID int64) *models.UserProfile {
	row := db.conn.QueryRow(
		`SELECT user_id, weight, height, age, gender, daily_goal FROM users WHERE user_id = ?`,
		userID,
	)

	var p models.UserProfile
	var gender string
	err := row.Scan(&p.UserID, &p.Weight, &p.Height, &p.Age, &gender, &p.DailyGoal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		db.log.Error("Не удалось прочитать анкету", zap.Int64("user_id", userID), zap.Error(err))
		metrics.StoreErrorsTotal.WithLabelValues("get_user").Inc()
		return nil
	}

	p.Gender = models.Gender(gender)
	return &p
}

// RecordMeal записывает приём пищи. Калории считаются от справочного
// значения на 100 г с усечением вниз.
func (db *DB) RecordMeal(userID int64, food string, grams int) (int, error) {
	kcalPer100g, ok := catalog.Lookup(food)
	if !ok {
		return 0, ErrUnknownFood
	}

	calories := kcalPer100g * grams / 100
	date := db.now().Format(dateLayout)

	_, err := db.conn.Exec(
		`INSERT INTO meals (user_id, food, calories, grams, date) VALUES (?, ?, ?, ?, ?)`,
		userID, food, calories, grams, date,
	)
	if err != nil {
		db.log.Error("Не удалось записать приём пищи", zap.Int64("user_id", userID), zap.String("food", food), zap.Error(err))
		metrics.StoreErrorsTotal.WithLabelValues("record_meal").Inc()
		return 0, fmt.Errorf("не удалось записать приём пищи: %w", err)
	}

	return calories, nil
}

// TodayTotal возвращает сумму калорий за сегодняшний день.
// Считается каждый раз заново, без кеширования.
func (db *DB) TodayTotal(userID int64) int {
	date := db.now().Format(dateLayout)

	var total int
	err := db.conn.QueryRow(
		`SELECT COALESCE(SUM(calories), 0) FROM meals WHERE user_id = ? AND date = ?`,
		userID, date,
	).Scan(&total)
	if err != nil {
		db.log.Error("Не удалось посчитать калории за день", zap.Int64("user_id", userID), zap.Error(err))
		metrics.StoreErrorsTotal.WithLabelValues("today_total").Inc()
		return 0
	}

	return total
}

// Goal возвращает дневную норму пользователя, либо норму по умолчанию,
// если анкеты нет или хранилище недоступно.
func (db *DB) Goal(userID int64) int {
	var goal int
	err := db.conn.QueryRow(
		`SELECT daily_goal FROM users WHERE user_id = ?`, userID,
	).Scan(&goal)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultDailyGoal
	}
	if err != nil {
		db.log.Error("Не удалось прочитать дневную норму", zap.Int64("user_id", userID), zap.Error(err))
		metrics.StoreErrorsTotal.WithLabelValues("goal").Inc()
		return models.DefaultDailyGoal
	}

	return goal
}

// MonthStats возвращает суммы калорий по дням текущего месяца
// в порядке возрастания дат.
func (db *DB) MonthStats(userID int64) []models.DayTotal {
	monthPrefix := db.now().Format("2006-01") + "-%"

	rows, err := db.conn.Query(
		`SELECT date, SUM(calories) FROM meals WHERE user_id = ? AND date LIKE ? GROUP BY date ORDER BY date ASC`,
		userID, monthPrefix,
	)
	if err != nil {
		db.log.Error("Не удалось получить статистику за месяц", zap.Int64("user_id", userID), zap.Error(err))
		metrics.StoreErrorsTotal.WithLabelValues("month_stats").Inc()
		return nil
	}
	defer rows.Close()

	var stats []models.DayTotal
	for rows.Next() {
		var day models.DayTotal
		if err := rows.Scan(&day.Date, &day.Total); err != nil {
			db.log.Error("Не удалось прочитать строку статистики", zap.Int64("user_id", userID), zap.Error(err))
			metrics.StoreErrorsTotal.WithLabelValues("month_stats").Inc()
			return nil
		}
		stats = append(stats, day)
	}
	if err := rows.Err(); err != nil {
		db.log.Error("Ошибка обхода статистики", zap.Int64("user_id", userID), zap.Error(err))
		metrics.StoreErrorsTotal.WithLabelValues("month_stats").Inc()
		return nil
	}

	return stats
}
