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

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит параметры конфигурации приложения.
// Значения загружаются из необязательного YAML-файла и переменных окружения;
// переменные окружения имеют приоритет над файлом.
type Config struct {
	Token        string        // Telegram-бот токен, обязательный параметр.
	Mode         string        // Режим работы: "webhook" или "polling".
	WebhookURL   string        // Публичный URL для вебхуков (используется, если Mode == "webhook").
	ListenAddr   string        // Адрес и порт для прослушивания входящих запросов вебхука.
	PollInterval time.Duration // Интервал лонгпуллинга (используется, если Mode == "polling").
	Debug        bool          // Флаг отладочного режима; при true логируются входящие обновления.

	ReportChatID  int64  // Канал для отчётов о завершённых экзаменах; 0 — отчёты выключены.
	DatabaseURL   string // DSN Postgres для архива результатов; пустая строка — архив выключен.
	QuestionsFile string // Путь к JSON-файлу с вопросами.

	ExamQuestions int           // Количество вопросов в экзамене.
	PassScore     int           // Минимальный балл для сдачи экзамена.
	Cooldown      time.Duration // Пауза между попытками одного пользователя.
	ExamDuration  time.Duration // Время на экзамен; сообщается пользователю, сервером не контролируется.

	Timezone  string // Часовой пояс для отчётов, например "Asia/Bishkek".
	LogLevel  string // Уровень логирования: trace..panic.
	LogFormat string // Формат логов: "pretty" или "json".
}

// fileConfig — структура необязательного YAML-файла конфигурации.
type fileConfig struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	TelegramBot struct {
		Token        string `yaml:"token"`
		Mode         string `yaml:"mode"`
		WebhookURL   string `yaml:"webhook_url"`
		PollInterval int    `yaml:"poll_interval"`
	} `yaml:"telegram_bot"`
	Report struct {
		ChatID int64 `yaml:"chat_id"`
	} `yaml:"report"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Exam struct {
		QuestionsFile   string `yaml:"questions_file"`
		Questions       int    `yaml:"questions"`
		PassScore       int    `yaml:"pass_score"`
		CooldownMinutes int    `yaml:"cooldown_minutes"`
		DurationMinutes int    `yaml:"duration_minutes"`
	} `yaml:"exam"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Timezone string `yaml:"timezone"`
}

// LoadConfig загружает конфигурацию. Порядок: значения по умолчанию,
// затем YAML-файл из CONFIG_PATH (если задан), затем переменные окружения
// (включая файл .env, если он существует).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Mode:          "polling",
		ListenAddr:    ":8443",
		PollInterval:  2 * time.Second,
		QuestionsFile: "data/questions.json",
		ExamQuestions: 15,
		PassScore:     12,
		Cooldown:      2 * time.Hour,
		ExamDuration:  5 * time.Minute,
		Timezone:      "Asia/Bishkek",
		LogLevel:      "info",
		LogFormat:     "pretty",
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("не удалось загрузить конфигурацию из %s: %w", path, err)
		}
	}
	cfg.applyEnv()

	if cfg.Token == "" {
		return nil, fmt.Errorf("переменная TELEGRAM_BOT_TOKEN не задана")
	}
	if cfg.Mode == "webhook" && cfg.WebhookURL == "" {
		return nil, fmt.Errorf("в режиме webhook переменная WEBHOOK_URL должна быть задана")
	}
	if cfg.PassScore <= 0 || cfg.PassScore > cfg.ExamQuestions {
		return nil, fmt.Errorf("проходной балл %d вне диапазона 1..%d", cfg.PassScore, cfg.ExamQuestions)
	}
	return cfg, nil
}

// applyFile накладывает значения из YAML-файла поверх значений по умолчанию.
func (c *Config) applyFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var fc fileConfig
	if err := yaml.NewDecoder(f).Decode(&fc); err != nil {
		return err
	}
	setString(&c.Token, fc.TelegramBot.Token)
	setString(&c.Mode, fc.TelegramBot.Mode)
	setString(&c.WebhookURL, fc.TelegramBot.WebhookURL)
	setString(&c.ListenAddr, fc.Server.ListenAddr)
	if fc.TelegramBot.PollInterval > 0 {
		c.PollInterval = time.Duration(fc.TelegramBot.PollInterval) * time.Second
	}
	if fc.Report.ChatID != 0 {
		c.ReportChatID = fc.Report.ChatID
	}
	setString(&c.DatabaseURL, fc.Database.URL)
	setString(&c.QuestionsFile, fc.Exam.QuestionsFile)
	if fc.Exam.Questions > 0 {
		c.ExamQuestions = fc.Exam.Questions
	}
	if fc.Exam.PassScore > 0 {
		c.PassScore = fc.Exam.PassScore
	}
	if fc.Exam.CooldownMinutes > 0 {
		c.Cooldown = time.Duration(fc.Exam.CooldownMinutes) * time.Minute
	}
	if fc.Exam.DurationMinutes > 0 {
		c.ExamDuration = time.Duration(fc.Exam.DurationMinutes) * time.Minute
	}
	setString(&c.LogLevel, fc.Logging.Level)
	setString(&c.LogFormat, fc.Logging.Format)
	setString(&c.Timezone, fc.Timezone)
	return nil
}

// applyEnv накладывает переменные окружения поверх текущих значений.
func (c *Config) applyEnv() {
	setString(&c.Token, os.Getenv("TELEGRAM_BOT_TOKEN"))
	setString(&c.Mode, os.Getenv("BOT_MODE"))
	setString(&c.WebhookURL, os.Getenv("WEBHOOK_URL"))
	setString(&c.ListenAddr, os.Getenv("LISTEN_ADDR"))
	if n, ok := envInt("POLL_INTERVAL"); ok {
		c.PollInterval = time.Duration(n) * time.Second
	}
	if v := os.Getenv("DEBUG"); v == "true" || v == "1" {
		c.Debug = true
	}
	if v := os.Getenv("REPORT_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.ReportChatID = id
		}
	}
	setString(&c.DatabaseURL, os.Getenv("DATABASE_URL"))
	setString(&c.QuestionsFile, os.Getenv("QUESTIONS_FILE"))
	if n, ok := envInt("EXAM_QUESTIONS"); ok {
		c.ExamQuestions = n
	}
	if n, ok := envInt("EXAM_PASS_SCORE"); ok {
		c.PassScore = n
	}
	if n, ok := envInt("EXAM_COOLDOWN"); ok {
		c.Cooldown = time.Duration(n) * time.Minute
	}
	if n, ok := envInt("EXAM_DURATION"); ok {
		c.ExamDuration = time.Duration(n) * time.Minute
	}
	setString(&c.Timezone, os.Getenv("TIMEZONE"))
	setString(&c.LogLevel, os.Getenv("LOG_LEVEL"))
	setString(&c.LogFormat, os.Getenv("LOG_FORMAT"))
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
