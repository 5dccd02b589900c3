package bot

import (
	"strconv"
	"strings"
)

// Числовой ввод валидируется явно: неразобранное или выходящее
// за диапазон значение — это повод переспросить, а не ошибка.

func parseFloatIn(text string, min, max float64) (float64, bool) {
	text = strings.Replace(strings.TrimSpace(text), ",", ".", 1)
	v, err := strconv.ParseFloat(text, 64)
	// ParseFloat принимает и "nan", сравнения с NaN всегда ложны —
	// поэтому проверяется попадание в диапазон, а не выход за него
	if err != nil || !(v >= min && v <= max) {
		return 0, false
	}
	return v, true
}

func parseIntIn(text string, min, max int) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}

func parseWeight(text string) (float64, bool) { return parseFloatIn(text, 20, 300) }
func parseHeight(text string) (float64, bool) { return parseFloatIn(text, 50, 250) }
func parseAge(text string) (int, bool)        { return parseIntIn(text, 10, 120) }
func parseGrams(text string) (int, bool)      { return parseIntIn(text, 1, 5000) }
