package exam

import "testing"

// TestMemoryStore проверяет базовый жизненный цикл сессии в хранилище.
func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Get(1); ok {
		t.Error("Пустое хранилище не должно возвращать сессию")
	}

	if err := store.Set(1, Session{UserID: 1, State: StateAwaitingName}); err != nil {
		t.Fatalf("Set вернул ошибку: %v", err)
	}
	s, ok := store.Get(1)
	if !ok || s.State != StateAwaitingName {
		t.Errorf("Ожидалась сессия в состоянии %q, получено %+v, ok=%v", StateAwaitingName, s, ok)
	}

	// Повторный Set перезаписывает сессию: последний старт побеждает.
	if err := store.Set(1, Session{UserID: 1, State: StateTesting, Score: 3}); err != nil {
		t.Fatalf("Set вернул ошибку: %v", err)
	}
	s, _ = store.Get(1)
	if s.State != StateTesting || s.Score != 3 {
		t.Errorf("Ожидалась перезаписанная сессия, получено %+v", s)
	}

	if err := store.Delete(1); err != nil {
		t.Fatalf("Delete вернул ошибку: %v", err)
	}
	if _, ok := store.Get(1); ok {
		t.Error("Сессия должна быть удалена")
	}

	// Удаление отсутствующей сессии — не ошибка.
	if err := store.Delete(1); err != nil {
		t.Errorf("Повторный Delete вернул ошибку: %v", err)
	}
}
