// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var levelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
}

// ParseLevel maps a case-insensitive level name to a zerolog level,
// falling back to info for unknown names.
func ParseLevel(level string) zerolog.Level {
	if l, ok := levelMatches[strings.ToUpper(level)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// Setup points the global logger at stderr, human-readable when stderr is
// a terminal, and sets the global level.
func Setup(level string) {
	SetupWriter(os.Stderr, isTerminalAttached(os.Stderr), level)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, console bool, level string) {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(ParseLevel(level))
}

func isTerminalAttached(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}
