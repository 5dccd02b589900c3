package catalog

import (
	_ "embed"
	"encoding/json"
	"log"
	"sort"
	"strings"
)

//go:embed catalog.json
var catalogJSON []byte

// foods — статический справочник: название продукта -> ккал на 100 г.
// Фиксируется на этапе сборки, пользователем не расширяется.
var foods map[string]int

func init() {
	if err := json.Unmarshal(catalogJSON, &foods); err != nil {
		log.Fatalf("Не удалось распарсить catalog.json: %v", err)
	}
}

// Lookup ищет продукт по названию без учёта регистра и пробелов по краям.
func Lookup(name string) (kcalPer100g int, ok bool) {
	kcalPer100g, ok = foods[strings.ToLower(strings.TrimSpace(name))]
	return kcalPer100g, ok
}

// Names возвращает названия всех продуктов в алфавитном порядке —
// для стабильного вывода списка в меню.
func Names() []string {
	names := make([]string, 0, len(foods))
	for name := range foods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
