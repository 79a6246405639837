package poller

import (
	"github.com/musa111-bot/maugli/config"
	tele "gopkg.in/telebot.v4"
)

// NewPoller создаёт Poller в зависимости от режима работы бота.
// В режиме "webhook" Telegram сам доставляет обновления на WebhookURL,
// иначе используется лонгпуллинг с настроенным интервалом.
func NewPoller(cfg *config.Config) tele.Poller {
	if cfg.Mode == "webhook" {
		return &tele.Webhook{
			Listen: cfg.ListenAddr,
			Endpoint: &tele.WebhookEndpoint{
				PublicURL: cfg.WebhookURL,
			},
		}
	}
	return &tele.LongPoller{Timeout: cfg.PollInterval}
}
