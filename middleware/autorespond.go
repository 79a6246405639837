package middleware

import (
	tele "gopkg.in/telebot.v4"
)

// AutoRespond возвращает middleware, которое автоматически отвечает на callback-запросы
// после выполнения обработчика, чтобы у пользователя не «крутился» индикатор загрузки.
func AutoRespond() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Callback() != nil {
				defer func() {
					_ = c.Respond()
				}()
			}
			return next(c)
		}
	}
}
