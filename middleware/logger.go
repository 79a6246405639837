package middleware

import (
	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// Logger возвращает middleware, логирующее входящие обновления Telegram.
// Для текстовых сообщений логируется текст, для callback'ов — их данные.
func Logger(log zerolog.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			ev := log.Debug()
			if sender := c.Sender(); sender != nil {
				ev = ev.Int64("user_id", sender.ID)
			}
			if msg := c.Message(); msg != nil && c.Callback() == nil {
				ev = ev.Str("text", msg.Text)
			}
			if cb := c.Callback(); cb != nil {
				ev = ev.Str("callback", cb.Data)
			}
			ev.Msg("входящее обновление")
			return next(c)
		}
	}
}
