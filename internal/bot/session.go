package bot

import (
	"sync"

	"github.com/ityshenko/calorie-bot-new/pkg/models"
)

// session хранит шаг диалога и черновые данные многошаговых сценариев.
// Живёт только в памяти, на время самого диалога.
type session struct {
	mu sync.Mutex

	state  models.State
	weight float64
	height float64
	age    int
	food   string // выбранный продукт в сценарии добавления еды
}

// reset сбрасывает черновые данные перед новым прохождением анкеты
func (s *session) reset(state models.State) {
	s.state = state
	s.weight = 0
	s.height = 0
	s.age = 0
	s.food = ""
}

// sessions — потокобезопасное хранилище сессий по идентификатору пользователя
type sessions struct {
	mu sync.Mutex
	m  map[int64]*session
}

func newSessions() *sessions {
	return &sessions{m: make(map[int64]*session)}
}

// get возвращает сессию пользователя, создавая её при первом обращении
func (s *sessions) get(userID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[userID]
	if !ok {
		sess = &session{state: models.StateIdle}
		s.m[userID] = sess
	}
	return sess
}
