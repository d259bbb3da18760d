package sceneedit

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "sceneedit",
})

// SetLogger replaces the package logger. Sessions created afterwards log
// through it.
func SetLogger(l *log.Logger) {
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}
