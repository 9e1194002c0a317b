package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the process logger: human-readable console output on stderr,
// plus a rotating file when path is non-empty.
func New(path string) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	var w io.Writer = console
	if path != "" {
		w = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	return zerolog.New(w).With().Timestamp().Logger()
}
