package exam

import (
	"testing"
	"time"
)

// TestCooldowns_Boundaries проверяет границы кулдауна: за минуту до истечения
// попытка заблокирована, после истечения — доступна.
func TestCooldowns_Boundaries(t *testing.T) {
	c := NewCooldowns()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.Set(42, base.Add(2*time.Hour))

	if rem := c.Remaining(42, base.Add(119*time.Minute)); rem != time.Minute {
		t.Errorf("За минуту до истечения ожидалось Remaining=1m, получено %v", rem)
	}
	if rem := c.Remaining(42, base.Add(2*time.Hour)); rem != 0 {
		t.Errorf("В момент истечения ожидалось Remaining=0, получено %v", rem)
	}

	c.Set(42, base.Add(2*time.Hour))
	if rem := c.Remaining(42, base.Add(2*time.Hour+time.Second)); rem != 0 {
		t.Errorf("Через секунду после истечения ожидалось Remaining=0, получено %v", rem)
	}
}

// TestCooldowns_UnknownUser проверяет, что пользователь без записи не заблокирован.
func TestCooldowns_UnknownUser(t *testing.T) {
	c := NewCooldowns()
	if rem := c.Remaining(1, time.Now()); rem != 0 {
		t.Errorf("Для пользователя без записи ожидалось Remaining=0, получено %v", rem)
	}
}

// TestCooldowns_ExpiredEntryRemoved проверяет, что просроченная запись
// удаляется при проверке.
func TestCooldowns_ExpiredEntryRemoved(t *testing.T) {
	c := NewCooldowns()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.Set(7, base.Add(time.Hour))

	if rem := c.Remaining(7, base.Add(2*time.Hour)); rem != 0 {
		t.Fatalf("Ожидалось Remaining=0, получено %v", rem)
	}
	if _, ok := c.until[7]; ok {
		t.Error("Просроченная запись должна удаляться при проверке")
	}
}

// TestCooldowns_Overwrite проверяет, что Set безусловно перезаписывает запись.
func TestCooldowns_Overwrite(t *testing.T) {
	c := NewCooldowns()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.Set(9, base.Add(time.Hour))
	c.Set(9, base.Add(3*time.Hour))

	if rem := c.Remaining(9, base); rem != 3*time.Hour {
		t.Errorf("Ожидалось Remaining=3h после перезаписи, получено %v", rem)
	}
}
