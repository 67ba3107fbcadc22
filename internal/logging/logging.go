package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New는 w에 사람이 읽는 형식으로 쓰는 logger를 생성한다.
// verbose가 아니면 경고 이상만 출력한다.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}

	logger := zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
	if verbose {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Component는 component 필드가 붙은 하위 logger를 반환한다.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
