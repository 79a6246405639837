package questions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeBankFile записывает записи в временный JSON-файл и возвращает путь к нему.
func writeBankFile(t *testing.T, records []record) string {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("Ошибка маршалинга JSON: %v", err)
	}
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Ошибка записи временного файла: %v", err)
	}
	return path
}

func testRecords(n int) []record {
	records := make([]record, n)
	for i := range records {
		records[i] = record{
			Text:    fmt.Sprintf("Вопрос %d", i+1),
			Options: []string{"Да", "Нет", "Не уверен"},
			Correct: "Нет",
		}
	}
	return records
}

// TestNewBank_FileLoad проверяет загрузку банка из файла и то, что индекс
// правильного варианта вычисляется при загрузке.
func TestNewBank_FileLoad(t *testing.T) {
	path := writeBankFile(t, testRecords(3))

	bank, err := NewBank(path)
	if err != nil {
		t.Fatalf("NewBank вернул ошибку: %v", err)
	}
	if bank.Size() != 3 {
		t.Errorf("Ожидалось 3 вопроса, получено %d", bank.Size())
	}
	for _, q := range bank.questions {
		if q.Correct != 1 {
			t.Errorf("Вопрос %q: ожидался индекс правильного ответа 1, получен %d", q.Text, q.Correct)
		}
	}
}

// TestNewBank_CorrectMissing проверяет, что запись с правильным ответом,
// отсутствующим среди вариантов, отклоняется при загрузке.
func TestNewBank_CorrectMissing(t *testing.T) {
	records := testRecords(2)
	records[1].Correct = "Может быть"
	path := writeBankFile(t, records)

	if _, err := NewBank(path); err == nil {
		t.Error("Ожидалась ошибка для правильного ответа вне вариантов, получен nil")
	}
}

// TestNewBank_DuplicateOptions проверяет, что повторяющиеся варианты ответа
// отклоняются: при дубликатах индекс правильного ответа был бы неоднозначен.
func TestNewBank_DuplicateOptions(t *testing.T) {
	records := testRecords(1)
	records[0].Options = []string{"Да", "Нет", "Да"}
	records[0].Correct = "Да"
	path := writeBankFile(t, records)

	if _, err := NewBank(path); err == nil {
		t.Error("Ожидалась ошибка для повторяющихся вариантов, получен nil")
	}
}

// TestNewBank_TooFewOptions проверяет минимальное число вариантов.
func TestNewBank_TooFewOptions(t *testing.T) {
	records := testRecords(1)
	records[0].Options = []string{"Нет"}
	path := writeBankFile(t, records)

	if _, err := NewBank(path); err == nil {
		t.Error("Ожидалась ошибка для вопроса с одним вариантом, получен nil")
	}
}

// TestSample_Distinct проверяет, что выборка из 15 вопросов не содержит повторов.
func TestSample_Distinct(t *testing.T) {
	bank, err := newBank(testRecords(20))
	if err != nil {
		t.Fatalf("newBank вернул ошибку: %v", err)
	}

	sample, err := bank.Sample(15)
	if err != nil {
		t.Fatalf("Sample вернул ошибку: %v", err)
	}
	if len(sample) != 15 {
		t.Fatalf("Ожидалось 15 вопросов, получено %d", len(sample))
	}

	seen := make(map[string]bool)
	for _, q := range sample {
		if seen[q.Text] {
			t.Errorf("Вопрос %q повторяется в выборке", q.Text)
		}
		seen[q.Text] = true
	}
}

// TestSample_TooMany проверяет ошибку при запросе большем, чем размер банка.
func TestSample_TooMany(t *testing.T) {
	bank, err := newBank(testRecords(10))
	if err != nil {
		t.Fatalf("newBank вернул ошибку: %v", err)
	}
	if _, err := bank.Sample(15); err == nil {
		t.Error("Ожидалась ошибка при выборке 15 из 10, получен nil")
	}
}
