package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup настраивает глобальный уровень zerolog и возвращает логгер приложения.
//   - level: уровень логирования (trace, debug, info, warn, error, fatal, panic)
//   - format: "json" для продакшена, "pretty" для читаемого вывода при разработке
func Setup(level, format string) zerolog.Logger {
	var writer io.Writer = os.Stdout
	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(writer).With().Timestamp().Logger()
}
