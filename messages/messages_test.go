package messages

import (
	"testing"
	"time"
)

// TestFormatRemaining проверяет форматирование оставшегося времени кулдауна.
func TestFormatRemaining(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{2 * time.Hour, "2 ч. 0 мин."},
		{119 * time.Minute, "1 ч. 59 мин."},
		{61 * time.Second, "0 ч. 1 мин."},
		{0, "0 ч. 0 мин."},
		{-time.Minute, "0 ч. 0 мин."},
	}
	for _, tc := range cases {
		if got := FormatRemaining(tc.d); got != tc.want {
			t.Errorf("FormatRemaining(%v) = %q, ожидалось %q", tc.d, got, tc.want)
		}
	}
}

// TestStatus проверяет текст вердикта.
func TestStatus(t *testing.T) {
	if got := Status(true); got != StatusPassed {
		t.Errorf("Status(true) = %q", got)
	}
	if got := Status(false); got != StatusFailed {
		t.Errorf("Status(false) = %q", got)
	}
}
