package logger

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New returns the process logger. It starts at info; ApplyLevel adjusts the
// global level once configuration has loaded.
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()
}

// ApplyLevel sets the process-wide log level from LOG_LEVEL. Unknown values
// keep the info default.
func ApplyLevel(log zerolog.Logger, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("log_level", level).Msg("unknown log level, keeping info")
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

var Module = fx.Provide(New)
