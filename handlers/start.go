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
	"fmt"
	"time"

	"github.com/musa111-bot/maugli/messages"
	tele "gopkg.in/telebot.v4"
)

// handleStart обрабатывает команду /start.
// При активном кулдауне пользователь получает уведомление с оставшимся временем,
// иначе — приветствие и приглашение ввести имя. Новый /start во время
// незавершённого экзамена начинает попытку заново.
func (h *Handler) handleStart(c tele.Context) error {
	res, err := h.engine.Begin(c.Sender().ID, time.Now())
	if err != nil {
		return err
	}
	if res.Blocked {
		notice := fmt.Sprintf(messages.CooldownFmt, messages.FormatRemaining(res.Remaining))
		return c.Send(notice, tele.ModeHTML)
	}
	return c.Send(h.welcomeText(), tele.ModeHTML)
}

// handleRetry обрабатывает кнопку пересдачи. Проверка кулдауна та же, что и у
// /start, но при блокировке показывается всплывающее уведомление, а при
// доступности старое сообщение с кнопкой удаляется.
func (h *Handler) handleRetry(c tele.Context) error {
	res, err := h.engine.Begin(c.Sender().ID, time.Now())
	if err != nil {
		return err
	}
	if res.Blocked {
		return c.Respond(&tele.CallbackResponse{
			Text:      fmt.Sprintf(messages.RetryWaitFmt, messages.FormatRemaining(res.Remaining)),
			ShowAlert: true,
		})
	}
	_ = c.Delete()
	return c.Send(h.welcomeText(), tele.ModeHTML)
}

func (h *Handler) welcomeText() string {
	return fmt.Sprintf(messages.WelcomeFmt, h.engine.Total(), int(h.cfg.ExamDuration.Minutes()))
}
