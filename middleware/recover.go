package middleware

import (
	"errors"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// Recover возвращает middleware, которое перехватывает панику, возникшую в обработчике,
// логирует её и превращает в обычную ошибку, чтобы бот продолжил обрабатывать обновления.
func Recover(log zerolog.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = errors.New("unknown panic")
					}
					log.Error().Err(e).Msg("обработчик завершился паникой")
					err = e
				}
			}()
			return next(c)
		}
	}
}
