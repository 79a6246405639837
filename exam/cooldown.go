package exam

import (
	"sync"
	"time"
)

// Cooldowns хранит для каждого пользователя момент, раньше которого нельзя
// начать новый экзамен. Записи не истекают сами по себе: запись с прошедшим
// временем просто считается неактуальной и удаляется при следующей проверке.
type Cooldowns struct {
	until map[int64]time.Time
	mu    sync.Mutex
}

// NewCooldowns создаёт пустой реестр кулдаунов.
func NewCooldowns() *Cooldowns {
	return &Cooldowns{until: make(map[int64]time.Time)}
}

// Remaining возвращает, сколько осталось ждать до следующей попытки.
// Ноль означает, что пользователь может начинать экзамен.
func (c *Cooldowns) Remaining(userID int64, now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	until, ok := c.until[userID]
	if !ok {
		return 0
	}
	if !now.Before(until) {
		delete(c.until, userID)
		return 0
	}
	return until.Sub(now)
}

// Set безусловно записывает для пользователя момент следующей доступной попытки.
func (c *Cooldowns) Set(userID int64, until time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.until[userID] = until
}
