package questions

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// Question описывает один экзаменационный вопрос.
// Correct хранит индекс правильного варианта в Options; он вычисляется один раз
// при загрузке банка, чтобы не искать правильный ответ по тексту на каждом ответе.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"answers"`
	Correct int      `json:"-"`
}

// record — сырая запись из JSON-файла, где правильный ответ задан текстом.
type record struct {
	Text    string   `json:"question"`
	Options []string `json:"answers"`
	Correct string   `json:"correct"`
}

// Bank хранит полный набор вопросов. После загрузки банк не изменяется,
// поэтому чтение из него безопасно из нескольких горутин.
type Bank struct {
	questions []Question
}

// NewBank загружает вопросы из указанного JSON-файла и валидирует каждую запись:
// непустой текст, минимум два варианта, уникальность вариантов и наличие
// правильного ответа среди вариантов.
func NewBank(filename string) (*Bank, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл с вопросами: %w", err)
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("не удалось разобрать JSON: %w", err)
	}
	return newBank(records)
}

func newBank(records []record) (*Bank, error) {
	qs := make([]Question, 0, len(records))
	for i, r := range records {
		q, err := r.build()
		if err != nil {
			return nil, fmt.Errorf("вопрос #%d: %w", i+1, err)
		}
		qs = append(qs, q)
	}
	return &Bank{questions: qs}, nil
}

// build проверяет запись и вычисляет индекс правильного варианта.
func (r record) build() (Question, error) {
	if r.Text == "" {
		return Question{}, fmt.Errorf("пустой текст вопроса")
	}
	if len(r.Options) < 2 {
		return Question{}, fmt.Errorf("нужно минимум два варианта ответа, получено %d", len(r.Options))
	}
	correct := -1
	seen := make(map[string]bool, len(r.Options))
	for i, opt := range r.Options {
		if seen[opt] {
			return Question{}, fmt.Errorf("вариант %q повторяется", opt)
		}
		seen[opt] = true
		if opt == r.Correct {
			correct = i
		}
	}
	if correct < 0 {
		return Question{}, fmt.Errorf("правильный ответ %q отсутствует среди вариантов", r.Correct)
	}
	return Question{Text: r.Text, Options: r.Options, Correct: correct}, nil
}

// Size возвращает количество вопросов в банке.
func (b *Bank) Size() int {
	return len(b.questions)
}

// Sample возвращает n различных вопросов, выбранных равновероятно без повторений.
// Возвращает ошибку, если в банке меньше n вопросов.
func (b *Bank) Sample(n int) ([]Question, error) {
	if n > len(b.questions) {
		return nil, fmt.Errorf("в банке %d вопросов, запрошено %d", len(b.questions), n)
	}
	idx := rand.Perm(len(b.questions))
	result := make([]Question, n)
	for i := 0; i < n; i++ {
		result[i] = b.questions[idx[i]]
	}
	return result, nil
}
