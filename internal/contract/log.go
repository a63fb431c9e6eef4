package contract

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger routes the global logger to stderr. Only warnings and above are
// shown unless debug is set.
func InitLogger(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	log.Error().Err(err).Msg(msg)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	log.Warn().Err(err).Msg(msg)
}

// LogDebug logs a debug message with optional key/value fields.
func LogDebug(msg string, fields map[string]any) {
	log.Debug().Fields(fields).Msg(msg)
}
