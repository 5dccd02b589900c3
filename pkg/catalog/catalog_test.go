package catalog

import (
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKcal int
		wantOK   bool
	}{
		{"точное совпадение", "курица", 165, true},
		{"верхний регистр", "КУРИЦА", 165, true},
		{"пробелы по краям", "  гречка  ", 110, true},
		{"неизвестный продукт", "пицца", 0, false},
		{"пустая строка", "", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kcal, ok := Lookup(tc.input)
			if ok != tc.wantOK || kcal != tc.wantKcal {
				t.Fatalf("Lookup(%q) = (%d, %v), ожидалось (%d, %v)", tc.input, kcal, ok, tc.wantKcal, tc.wantOK)
			}
		})
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("справочник пуст")
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("названия не отсортированы: %v", names)
	}
	for _, name := range names {
		kcal, ok := Lookup(name)
		if !ok || kcal <= 0 {
			t.Fatalf("продукт %q: kcal=%d, ok=%v", name, kcal, ok)
		}
	}
}
