package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gormLogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = time.Second

// gormWriter feeds GORM's log lines into zerolog.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// NewGorm returns a GORM logger that writes slow queries and errors through
// log. Missing records are expected results for this service and are not
// logged.
func NewGorm(log zerolog.Logger) gormLogger.Interface {
	level := gormLogger.Warn
	if log.GetLevel() <= zerolog.DebugLevel {
		level = gormLogger.Info
	}

	return gormLogger.New(
		gormWriter{log: log.With().Str("component", "gorm").Logger()},
		gormLogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
