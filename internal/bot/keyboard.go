package bot

import "github.com/ityshenko/calorie-bot-new/pkg/locales"

// Наборы кнопок-подсказок фиксированы: главное меню, выбор пола и /start.

func mainMenuKeyboard() [][]string {
	l := locales.Get()
	return [][]string{
		{l.MainMenu.Buttons.AddFood, l.MainMenu.Buttons.Stats},
		{l.MainMenu.Buttons.EditProfile},
	}
}

func genderKeyboard() [][]string {
	l := locales.Get()
	return [][]string{
		{l.Gender.Male, l.Gender.Female},
	}
}

func startKeyboard() [][]string {
	return [][]string{{"/start"}}
}
