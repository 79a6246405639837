package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/musa111-bot/maugli/exam"
	"github.com/musa111-bot/maugli/messages"
	tele "gopkg.in/telebot.v4"
)

// handleName обрабатывает текстовое сообщение с именем пользователя.
// Если сессия не ожидает имени, пользователю отправляется подсказка про /start.
func (h *Handler) handleName(c tele.Context) error {
	prompt, err := h.engine.SubmitName(c.Sender().ID, c.Text())
	if errors.Is(err, exam.ErrNoSession) {
		return c.Send(messages.StartHint)
	}
	if err != nil {
		return err
	}
	name := strings.TrimSpace(c.Text())
	if err := c.Send(fmt.Sprintf(messages.NameThanksFmt, name)); err != nil {
		return err
	}
	return h.sendQuestion(c, prompt)
}

// handleAnswer обрабатывает выбор варианта ответа.
// Данные callback'а имеют вид "answer_<вопрос>_<вариант>".
func (h *Handler) handleAnswer(c tele.Context) error {
	data := c.Callback().Data
	parts := strings.Split(data, "_")
	if len(parts) != 3 {
		return nil
	}
	qIndex, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	option, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil
	}

	outcome, err := h.engine.Answer(c.Sender().ID, qIndex, option, time.Now())
	switch {
	case errors.Is(err, exam.ErrNoSession):
		return c.Respond(&tele.CallbackResponse{Text: messages.SessionExpired})
	case errors.Is(err, exam.ErrStaleQuestion), errors.Is(err, exam.ErrBadOption):
		// Повторное нажатие или нажатие в старом сообщении: молча игнорируем.
		return nil
	case err != nil:
		return err
	}

	if !outcome.Finished {
		return h.sendQuestion(c, outcome.Next)
	}
	return h.finishExam(c, outcome.Result)
}

// sendQuestion отправляет пользователю вопрос с вариантами ответов,
// каждый вариант — отдельной inline-кнопкой в своей строке.
func (h *Handler) sendQuestion(c tele.Context, p exam.Prompt) error {
	rm := &tele.ReplyMarkup{}
	rows := make([][]tele.InlineButton, 0, len(p.Question.Options))
	for i, opt := range p.Question.Options {
		rows = append(rows, []tele.InlineButton{{
			Unique: "answer",
			Text:   opt,
			Data:   fmt.Sprintf("answer_%d_%d", p.Index, i),
		}})
	}
	rm.InlineKeyboard = rows
	return c.Send(fmt.Sprintf(messages.QuestionFmt, p.Index+1, p.Question.Text), rm, tele.ModeHTML)
}

// finishExam показывает вердикт, предлагает пересдачу и запускает побочные
// эффекты: отчёт в канал и запись в архив. К этому моменту кулдаун уже
// установлен, а сессия удалена, поэтому ошибки доставки отчёта или архива
// никак не влияют на пользователя.
func (h *Handler) finishExam(c tele.Context, res exam.Result) error {
	text := fmt.Sprintf(messages.ResultFmt, res.Name, res.Score, res.Total, messages.Status(res.Passed))
	if err := c.Send(text, tele.ModeHTML); err != nil {
		return err
	}

	rm := &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{{{
		Unique: "retry_exam",
		Text:   fmt.Sprintf(messages.RetryTitleFmt, int(h.cfg.Cooldown.Hours())),
		Data:   "retry",
	}}}}
	if err := c.Send(messages.RetryPrompt, rm); err != nil {
		return err
	}

	go h.reporter.Send(res)
	if h.results != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := h.results.Save(ctx, res); err != nil {
				h.log.Warn().Err(err).Int64("user_id", res.UserID).Msg("не удалось записать результат в архив")
			}
		}()
	}
	return nil
}
