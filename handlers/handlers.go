/*
MIT License

Copyright (c) 2025 Первый Бит

Данная лицензия разрешает использование, копирование, изменение, слияние, публикацию, распространение,
лицензирование и/или продажу копий программного обеспечения при соблюдении следующих условий:

В вышеуказанном уведомлении об авторских правах и данном уведомлении о разрешении должны быть включены все копии
или значимые части программного обеспечения.

ПРОГРАММНОЕ ОБЕСПЕЧЕНИЕ ПРЕДОСТАВЛЯЕТСЯ "КАК ЕСТЬ", БЕЗ ГАРАНТИЙ ЛЮБОГО РОДА, ЯВНЫХ ИЛИ ПОДРАЗУМЕВАЕМЫХ,
ВКЛЮЧАЯ, НО НЕ ОГРАНИЧИВАЯСЬ, ГАРАНТИЯМИ КОММЕРЧЕСКОЙ ПРИГОДНОСТИ, СООТВЕТСТВИЯ ДЛЯ ОПРЕДЕЛЕННОЙ ЦЕЛИ И
НЕНАРУШЕНИЯ ПРАВ. НИ В КОЕМ СЛУЧАЕ АВТОРЫ ИЛИ ПРАВООБЛАДАТЕЛИ НЕ НЕСУТ ОТВЕТСТВЕННОСТИ ПО ИСКАМ,
УСЛОВИЯМ, ДАМГЕ или другим обязательствам, возникающим из, или в связи с использованием, или иным образом
связанным с данным программным обеспечением.
*/

package handlers

import (
	"github.com/musa111-bot/maugli/config"
	"github.com/musa111-bot/maugli/exam"
	"github.com/musa111-bot/maugli/report"
	"github.com/musa111-bot/maugli/storage"
	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// Handler связывает Telegram-обновления с ядром экзамена.
// Все зависимости передаются через конструктор; reporter и results могут быть nil,
// тогда соответствующие побочные эффекты просто не выполняются.
type Handler struct {
	bot      *tele.Bot
	cfg      *config.Config
	engine   *exam.Engine
	reporter *report.Reporter
	results  *storage.ResultStore
	log      zerolog.Logger
}

// New создаёт Handler.
func New(bot *tele.Bot, cfg *config.Config, engine *exam.Engine, reporter *report.Reporter, results *storage.ResultStore, log zerolog.Logger) *Handler {
	return &Handler{
		bot:      bot,
		cfg:      cfg,
		engine:   engine,
		reporter: reporter,
		results:  results,
		log:      log,
	}
}

// Register регистрирует обработчики команд и callback'ов бота.
func (h *Handler) Register() {
	// Команда /start: проверка кулдауна и приглашение ввести имя.
	h.bot.Handle("/start", h.handleStart)

	// Текстовое сообщение: имя пользователя, если сессия его ожидает.
	h.bot.Handle(tele.OnText, h.handleName)

	// Inline-кнопка с вариантом ответа на текущий вопрос.
	h.bot.Handle(&tele.InlineButton{Unique: "answer"}, h.handleAnswer)

	// Inline-кнопка пересдачи после завершения экзамена.
	h.bot.Handle(&tele.InlineButton{Unique: "retry_exam"}, h.handleRetry)
}
