package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

type LogMode string

const (
	LogModePretty LogMode = "pretty"
	LogModeDebug  LogMode = "debug"
	LogModeInfo   LogMode = "info"
	LogModeProd   LogMode = "prod"
	LogModeTest   LogMode = "test"
)

var log zerolog.Logger

// Init configures the global logger in pretty mode.
func Init() {
	InitWithMode(LogModePretty)
}

// InitWithMode configures the global logger. All log output goes to stderr:
// stdout carries the result protocol and must stay clean.
func InitWithMode(mode LogMode) {
	zerolog.TimeFieldFormat = time.RFC3339

	switch mode {
	case LogModeDebug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log = consoleLogger()
	case LogModeInfo:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log = consoleLogger()
	case LogModeProd:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	case LogModeTest:
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log = zerolog.Nop()
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log = consoleLogger()
	}

	zerolog.DefaultContextLogger = &log
}

func consoleLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// Get returns the logger instance
func Get() zerolog.Logger {
	return log
}

// WithComponent returns a logger tagged with a component name
func WithComponent(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
