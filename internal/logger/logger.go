package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/chepyr/taskboard/internal/config"
)

func init() {
	zerolog.TimestampFieldName = "timestamp"
	// levels are set per logger
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

// NewDefault returns the JSON logger used until the config has been read.
func NewDefault() zerolog.Logger {
	return newLogger(os.Stdout).Level(zerolog.InfoLevel)
}

// New returns the application logger for env. local gets a human readable
// console writer.
func New(env string) (zerolog.Logger, error) {
	return newForEnv(env, os.Stdout)
}

func newForEnv(env string, out io.Writer) (zerolog.Logger, error) {
	switch env {
	case config.EnvDev:
		return newLogger(out).Level(zerolog.DebugLevel), nil
	case config.EnvProd:
		return newLogger(out).Level(zerolog.InfoLevel), nil
	case config.EnvLocal:
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		return newLogger(consoleWriter).Level(zerolog.TraceLevel), nil
	default:
		return zerolog.Nop(), fmt.Errorf("unknown env: %s", env)
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()
}
