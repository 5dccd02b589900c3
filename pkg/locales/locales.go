package locales

import (
	_ "embed"
	"encoding/json"
	"log"
)

//go:embed locales.json
var localesJSON []byte

// Locales содержит все текстовые строки из locales.json
type Locales struct {
	Onboarding Onboarding `json:"onboarding"`
	Gender     Gender     `json:"gender"`
	MainMenu   MainMenu   `json:"main_menu"`
	AddFood    AddFood    `json:"add_food"`
	Stats      Stats      `json:"stats"`
	Common     Common     `json:"common"`
}

type Onboarding struct {
	WeightPrompt  string `json:"weight_prompt"`
	WeightInvalid string `json:"weight_invalid"`
	HeightPrompt  string `json:"height_prompt"`
	HeightInvalid string `json:"height_invalid"`
	AgePrompt     string `json:"age_prompt"`
	AgeInvalid    string `json:"age_invalid"`
	GenderPrompt  string `json:"gender_prompt"`
	GenderInvalid string `json:"gender_invalid"`
	Saved         string `json:"saved"`
}

type Gender struct {
	Male   string `json:"male"`
	Female string `json:"female"`
}

type MainMenu struct {
	Text    string `json:"text"`
	Unknown string `json:"unknown"`
	Buttons struct {
		AddFood     string `json:"add_food"`
		Stats       string `json:"stats"`
		EditProfile string `json:"edit_profile"`
	} `json:"buttons"`
}

type AddFood struct {
	Choose       string `json:"choose"`
	Unknown      string `json:"unknown"`
	GramsPrompt  string `json:"grams_prompt"`
	GramsInvalid string `json:"grams_invalid"`
	Saved        string `json:"saved"`
	SaveFailed   string `json:"save_failed"`
}

type Stats struct {
	Header     string `json:"header"`
	MonthTitle string `json:"month_title"`
	DayLine    string `json:"day_line"`
	Empty      string `json:"empty"`
}

type Common struct {
	Help   string `json:"help"`
	Cancel string `json:"cancel"`
	Idle   string `json:"idle"`
}

var L *Locales

func init() {
	L = &Locales{}
	if err := json.Unmarshal(localesJSON, L); err != nil {
		log.Fatalf("Не удалось распарсить locales.json: %v", err)
	}
}

// Get возвращает указатель на локали
func Get() *Locales {
	return L
}
