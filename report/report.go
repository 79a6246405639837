package report

import (
	"fmt"
	"time"

	"github.com/musa111-bot/maugli/exam"
	"github.com/musa111-bot/maugli/messages"
	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// Reporter отправляет сводку по каждому завершённому экзамену в отчётный канал.
// Отправка выполняется по принципу fire-and-forget: ошибка доставки логируется
// и никогда не влияет на выдачу вердикта пользователю.
type Reporter struct {
	bot  *tele.Bot
	chat tele.ChatID
	loc  *time.Location
	log  zerolog.Logger
}

// NewReporter создаёт Reporter для указанного канала.
// При chatID == 0 отчёты выключены и возвращается nil; методы nil-Reporter безопасны.
func NewReporter(bot *tele.Bot, chatID int64, loc *time.Location, log zerolog.Logger) *Reporter {
	if chatID == 0 {
		return nil
	}
	return &Reporter{
		bot:  bot,
		chat: tele.ChatID(chatID),
		loc:  loc,
		log:  log,
	}
}

// Send отправляет в отчётный канал одну сводку: время завершения в настроенном
// часовом поясе, имя, результат и статус.
func (r *Reporter) Send(res exam.Result) {
	if r == nil {
		return
	}
	timestamp := res.FinishedAt.In(r.loc).Format("02.01.2006 15:04")
	text := fmt.Sprintf(messages.ReportFmt, timestamp, res.Name, res.Score, res.Total, messages.Status(res.Passed))
	if _, err := r.bot.Send(r.chat, text); err != nil {
		r.log.Warn().Err(err).Int64("user_id", res.UserID).Msg("не удалось отправить отчёт в канал")
	}
}
