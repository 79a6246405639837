package messages

import (
	"fmt"
	"time"
)

// Тексты сообщений бота. Форматирование HTML, как и в остальных сообщениях бота.
const (
	WelcomeFmt = "🔸 <b>Добро пожаловать на экзамен Маугли!</b>\n" +
		"🧪 Вы пройдёте %d вопросов по кальянам, табакам и обслуживанию.\n" +
		"⏱️ У вас <b>%d минут</b>.\n\n" +
		"✍️ Введите <b>своё имя</b>, чтобы начать:"

	CooldownFmt   = "❗ Повторная попытка будет доступна через: %s"
	RetryWaitFmt  = "⏳ Осталось: %s"
	NameThanksFmt = "Спасибо, %s. Начнём экзамен!"
	QuestionFmt   = "❓ <b>Вопрос %d:</b> %s"

	SessionExpired = "Сессия истекла. Напишите /start заново."
	StartHint      = "Чтобы начать экзамен, отправьте команду /start."

	ResultFmt = "✅ Экзамен завершён!\n\n" +
		"👤 Имя: <b>%s</b>\n" +
		"📊 Результат: <b>%d / %d</b>\n" +
		"📌 Статус: <b>%s</b>"

	RetryPrompt   = "Хотите пройти заново?"
	RetryTitleFmt = "🔁 Пройти заново (через %d часа)"

	StatusPassed = "✅ Сдал"
	StatusFailed = "❌ Не сдал"

	ReportFmt = "🧪 Экзамен (%s):\n👤 %s\n📝 Результат: %d/%d\n📌 Статус: %s"
)

// Status возвращает текстовый статус вердикта.
func Status(passed bool) string {
	if passed {
		return StatusPassed
	}
	return StatusFailed
}

// FormatRemaining форматирует оставшееся время кулдауна в виде «Ч ч. М мин.».
// Минуты округляются вниз, как и часы.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%d ч. %d мин.", hours, minutes)
}
