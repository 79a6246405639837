package exam

import (
	"sync"
	"time"

	"github.com/musa111-bot/maugli/questions"
)

// State — этап, на котором находится сессия пользователя.
type State string

const (
	// StateAwaitingName — пользователь прошёл проверку кулдауна и должен ввести имя.
	StateAwaitingName State = "awaiting_name"
	// StateTesting — пользователь отвечает на вопросы экзамена.
	StateTesting State = "testing"
)

// Session представляет данные одной экзаменационной сессии.
// На каждого пользователя существует не более одной сессии; завершённая сессия
// удаляется из хранилища сразу после вычисления вердикта.
type Session struct {
	UserID    int64
	Name      string
	State     State
	Current   int // индекс текущего вопроса
	Score     int // количество правильных ответов
	Questions []questions.Question
	StartedAt time.Time
}

// Store определяет интерфейс хранилища сессий.
type Store interface {
	Get(userID int64) (Session, bool)
	Set(userID int64, s Session) error
	Delete(userID int64) error
}

// MemoryStore — in-memory реализация Store.
// Состояние живёт только в памяти процесса: после перезапуска все сессии теряются.
type MemoryStore struct {
	data map[int64]Session
	mu   sync.RWMutex
}

// NewMemoryStore создаёт новый MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[int64]Session)}
}

func (m *MemoryStore) Get(userID int64) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.data[userID]
	return s, ok
}

// Set сохраняет сессию, перезаписывая существующую (последний старт побеждает).
func (m *MemoryStore) Set(userID int64, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[userID] = s
	return nil
}

// Delete удаляет сессию. Удаление несуществующей сессии не является ошибкой.
func (m *MemoryStore) Delete(userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, userID)
	return nil
}
