package models

// Gender — пол пользователя, влияет на формулу расчёта нормы
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// UserProfile представляет анкету пользователя с рассчитанной дневной нормой
type UserProfile struct {
	UserID    int64
	Weight    float64 // кг
	Height    float64 // см
	Age       int
	Gender    Gender
	DailyGoal int // ккал в день
}

// MealEntry представляет один записанный приём пищи
type MealEntry struct {
	ID       int64
	UserID   int64
	Food     string
	Calories int
	Grams    int
	Date     string // YYYY-MM-DD, локальное время сервера
}

// DayTotal — суммарные калории за один календарный день
type DayTotal struct {
	Date  string
	Total int
}

// State — шаг диалога, на котором находится пользователь.
// Закрытое перечисление вместо строковых меток состояний.
type State int

const (
	StateIdle State = iota // вне диалога, ждём /start
	StateAwaitWeight
	StateAwaitHeight
	StateAwaitAge
	StateAwaitGender
	StateMainMenu
	StateAwaitFood
	StateAwaitGrams
)

// DefaultDailyGoal возвращается, когда анкеты нет или хранилище недоступно
const DefaultDailyGoal = 2000

// DailyGoal считает дневную норму по формуле Миффлина-Сан Жеора
// с коэффициентом активности 1.2. Скобка усекается до целого ДО
// умножения на коэффициент — этот порядок нужно сохранять.
func DailyGoal(weight, height float64, age int, gender Gender) int {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(float64(int(bmr)) * 1.2)
}
