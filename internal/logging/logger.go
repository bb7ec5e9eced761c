package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New monta o logger da aplicação. JSON em stdout por padrão;
// LOG_FORMAT=console liga a saída legível para desenvolvimento.
func New(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		lvl = parsed
	}

	var out = os.Stdout
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "barberclub-booking-api").
		Logger()

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	return logger
}
