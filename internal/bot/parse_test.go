package bot

import "testing"

func TestParseWeight(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"70", 70, true},
		{"70.5", 70.5, true},
		{"70,5", 70.5, true}, // запятая как десятичный разделитель
		{" 20 ", 20, true},
		{"300", 300, true},
		{"5", 0, false},
		{"400", 0, false},
		{"семьдесят", 0, false},
		{"", 0, false},
		// ParseFloat разбирает эти строки, но значения вне диапазона
		{"nan", 0, false},
		{"NaN", 0, false},
		{"+inf", 0, false},
		{"-inf", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseWeight(tc.input)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("parseWeight(%q) = (%v, %v), ожидалось (%v, %v)", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"25", 25, true},
		{"10", 10, true},
		{"120", 120, true},
		{"9", 0, false},
		{"121", 0, false},
		{"25.5", 0, false}, // возраст — только целое
		{"abc", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseAge(tc.input)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("parseAge(%q) = (%v, %v), ожидалось (%v, %v)", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseGrams(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"150", 150, true},
		{"1", 1, true},
		{"5000", 5000, true},
		{"0", 0, false},
		{"5001", 0, false},
		{"-10", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseGrams(tc.input)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("parseGrams(%q) = (%v, %v), ожидалось (%v, %v)", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}
