package main

import (
	"context"
	"log"
	"time"

	"github.com/musa111-bot/maugli/config"
	"github.com/musa111-bot/maugli/exam"
	"github.com/musa111-bot/maugli/handlers"
	"github.com/musa111-bot/maugli/logger"
	"github.com/musa111-bot/maugli/middleware"
	"github.com/musa111-bot/maugli/poller"
	"github.com/musa111-bot/maugli/questions"
	"github.com/musa111-bot/maugli/report"
	"github.com/musa111-bot/maugli/storage"
	tele "gopkg.in/telebot.v4"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logg := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logg.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("неизвестный часовой пояс")
	}

	bank, err := questions.NewBank(cfg.QuestionsFile)
	if err != nil {
		logg.Fatal().Err(err).Str("file", cfg.QuestionsFile).Msg("не удалось загрузить вопросы")
	}

	engine, err := exam.NewEngine(exam.NewMemoryStore(), exam.NewCooldowns(), bank, exam.Params{
		Questions: cfg.ExamQuestions,
		PassScore: cfg.PassScore,
		Cooldown:  cfg.Cooldown,
	}, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("не удалось создать движок экзамена")
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Poller: poller.NewPoller(cfg),
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("не удалось создать бота")
	}

	// Регистрируем цепочку middleware. В режиме отладки дополнительно
	// логируются все входящие обновления.
	if cfg.Debug {
		bot.Use(middleware.Logger(logg))
	}
	bot.Use(
		middleware.AutoRespond(),
		middleware.Recover(logg),
	)

	// Архив результатов включается только при заданном DATABASE_URL.
	var results *storage.ResultStore
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := storage.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			cancel()
			logg.Fatal().Err(err).Msg("не удалось подключиться к базе данных")
		}
		defer pool.Close()
		results, err = storage.NewResultStore(ctx, pool)
		cancel()
		if err != nil {
			logg.Fatal().Err(err).Msg("не удалось инициализировать архив результатов")
		}
		logg.Info().Msg("архив результатов включён")
	}

	reporter := report.NewReporter(bot, cfg.ReportChatID, loc, logg)

	handlers.New(bot, cfg, engine, reporter, results, logg).Register()

	logg.Info().
		Str("mode", cfg.Mode).
		Int("questions_in_bank", bank.Size()).
		Int("exam_questions", cfg.ExamQuestions).
		Bool("report_enabled", cfg.ReportChatID != 0).
		Msg("бот запускается")
	bot.Start()
}
