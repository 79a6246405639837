package exam

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/musa111-bot/maugli/questions"
	"github.com/rs/zerolog"
)

var (
	// ErrNoSession возвращается, когда событие приходит от пользователя без активной сессии.
	ErrNoSession = errors.New("нет активной экзаменационной сессии")
	// ErrStaleQuestion возвращается, когда ответ относится не к текущему вопросу
	// (повторное нажатие кнопки или нажатие в старом сообщении).
	ErrStaleQuestion = errors.New("ответ относится не к текущему вопросу")
	// ErrBadOption возвращается при индексе варианта вне диапазона текущего вопроса.
	ErrBadOption = errors.New("индекс варианта ответа вне диапазона")
)

// Params задаёт параметры экзамена.
type Params struct {
	Questions int           // количество вопросов в экзамене
	PassScore int           // минимальный балл для сдачи
	Cooldown  time.Duration // пауза между попытками
}

// BeginResult — результат запроса на старт или пересдачу.
type BeginResult struct {
	Blocked   bool
	Remaining time.Duration // сколько осталось ждать, если Blocked
}

// Prompt описывает вопрос, который нужно показать пользователю.
type Prompt struct {
	Index    int // порядковый номер вопроса, с нуля
	Total    int
	Question questions.Question
}

// Result — итог завершённого экзамена.
type Result struct {
	UserID     int64
	Name       string
	Score      int
	Total      int
	Passed     bool
	FinishedAt time.Time
	RetryAfter time.Time
}

// AnswerOutcome — результат обработки ответа: либо следующий вопрос, либо итог экзамена.
type AnswerOutcome struct {
	Finished bool
	Next     Prompt // заполнен, если !Finished
	Result   Result // заполнен, если Finished
}

// Engine управляет жизненным циклом экзаменационных сессий: проверяет кулдаун,
// создаёт и продвигает сессии, подсчитывает баллы и вычисляет вердикт.
// События одного пользователя обрабатываются строго последовательно,
// чтобы два быстрых нажатия не испортили счёт и индекс вопроса.
type Engine struct {
	store     Store
	cooldowns *Cooldowns
	bank      *questions.Bank
	params    Params
	log       zerolog.Logger

	mu     sync.Mutex
	byUser map[int64]*sync.Mutex
}

// NewEngine создаёт Engine и проверяет параметры: банк должен содержать достаточно
// вопросов для выборки. Нехватка вопросов — ошибка запуска, а не времени выполнения.
func NewEngine(store Store, cooldowns *Cooldowns, bank *questions.Bank, params Params, log zerolog.Logger) (*Engine, error) {
	if params.Questions <= 0 {
		return nil, fmt.Errorf("количество вопросов должно быть положительным, получено %d", params.Questions)
	}
	if params.PassScore <= 0 || params.PassScore > params.Questions {
		return nil, fmt.Errorf("проходной балл %d вне диапазона 1..%d", params.PassScore, params.Questions)
	}
	if bank.Size() < params.Questions {
		return nil, fmt.Errorf("в банке %d вопросов, для экзамена нужно %d", bank.Size(), params.Questions)
	}
	return &Engine{
		store:     store,
		cooldowns: cooldowns,
		bank:      bank,
		params:    params,
		log:       log,
		byUser:    make(map[int64]*sync.Mutex),
	}, nil
}

// Total возвращает количество вопросов в экзамене.
func (e *Engine) Total() int {
	return e.params.Questions
}

// userLock возвращает мьютекс, сериализующий события конкретного пользователя.
func (e *Engine) userLock(userID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, ok := e.byUser[userID]
	if !ok {
		m = &sync.Mutex{}
		e.byUser[userID] = m
	}
	return m
}

// Begin обрабатывает запрос на старт экзамена (команда /start или кнопка пересдачи).
// При активном кулдауне возвращает оставшееся время ожидания. Иначе создаёт сессию
// в состоянии ожидания имени, перезаписывая существующую: новый старт означает,
// что прежняя незавершённая попытка брошена.
func (e *Engine) Begin(userID int64, now time.Time) (BeginResult, error) {
	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if remaining := e.cooldowns.Remaining(userID, now); remaining > 0 {
		return BeginResult{Blocked: true, Remaining: remaining}, nil
	}
	s := Session{
		UserID:    userID,
		State:     StateAwaitingName,
		StartedAt: now,
	}
	if err := e.store.Set(userID, s); err != nil {
		return BeginResult{}, fmt.Errorf("не удалось сохранить сессию: %w", err)
	}
	return BeginResult{}, nil
}

// SubmitName принимает имя пользователя, выбирает случайный набор вопросов
// и переводит сессию в состояние тестирования. Возвращает первый вопрос.
func (e *Engine) SubmitName(userID int64, name string) (Prompt, error) {
	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	s, ok := e.store.Get(userID)
	if !ok || s.State != StateAwaitingName {
		return Prompt{}, ErrNoSession
	}
	qs, err := e.bank.Sample(e.params.Questions)
	if err != nil {
		return Prompt{}, fmt.Errorf("не удалось выбрать вопросы: %w", err)
	}
	s.Name = strings.TrimSpace(name)
	s.State = StateTesting
	s.Current = 0
	s.Score = 0
	s.Questions = qs
	if err := e.store.Set(userID, s); err != nil {
		return Prompt{}, fmt.Errorf("не удалось сохранить сессию: %w", err)
	}
	return Prompt{Index: 0, Total: len(qs), Question: qs[0]}, nil
}

// Answer обрабатывает выбор варианта ответа на вопрос questionIndex.
// Ответ засчитывается только для текущего вопроса сессии; устаревшие и
// некорректные ответы отклоняются без изменения состояния.
// Когда отвечен последний вопрос, Engine вычисляет вердикт, устанавливает
// кулдаун и удаляет сессию — всё до возврата результата, поэтому повторное
// событие того же пользователя уже не найдёт сессию.
func (e *Engine) Answer(userID int64, questionIndex, option int, now time.Time) (AnswerOutcome, error) {
	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	s, ok := e.store.Get(userID)
	if !ok || s.State != StateTesting {
		return AnswerOutcome{}, ErrNoSession
	}
	if questionIndex != s.Current {
		return AnswerOutcome{}, ErrStaleQuestion
	}
	q := s.Questions[s.Current]
	if option < 0 || option >= len(q.Options) {
		return AnswerOutcome{}, ErrBadOption
	}

	if option == q.Correct {
		s.Score++
	}
	s.Current++

	if s.Current < len(s.Questions) {
		if err := e.store.Set(userID, s); err != nil {
			return AnswerOutcome{}, fmt.Errorf("не удалось сохранить сессию: %w", err)
		}
		return AnswerOutcome{
			Next: Prompt{Index: s.Current, Total: len(s.Questions), Question: s.Questions[s.Current]},
		}, nil
	}

	result := Result{
		UserID:     userID,
		Name:       s.Name,
		Score:      s.Score,
		Total:      len(s.Questions),
		Passed:     s.Score >= e.params.PassScore,
		FinishedAt: now,
		RetryAfter: now.Add(e.params.Cooldown),
	}
	e.cooldowns.Set(userID, result.RetryAfter)
	if err := e.store.Delete(userID); err != nil {
		return AnswerOutcome{}, fmt.Errorf("не удалось удалить сессию: %w", err)
	}
	e.log.Info().
		Int64("user_id", userID).
		Str("name", result.Name).
		Int("score", result.Score).
		Int("total", result.Total).
		Bool("passed", result.Passed).
		Msg("экзамен завершён")
	return AnswerOutcome{Finished: true, Result: result}, nil
}
