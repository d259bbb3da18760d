package sceneedit

import (
	"time"

	"github.com/charmbracelet/log"
)

// frameStats holds per-frame hit-test metrics.
// Only populated when Session.debug is true.
type frameStats struct {
	tested      int
	hits        int
	selected    int
	hitTestTime time.Duration
}

// SetDebugMode enables per-frame hit-test logging. Enabling it lowers the
// session logger to debug level; disabling it restores info level.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.settings.Debug = enabled
	if enabled {
		s.log.SetLevel(log.DebugLevel)
	} else {
		s.log.SetLevel(log.InfoLevel)
	}
}

// debugLog reports hit-test counts and timing for the current frame.
func (s *Session) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	s.log.Debug("hit test",
		"tested", stats.tested,
		"hits", stats.hits,
		"selected", stats.selected,
		"elapsed", stats.hitTestTime,
	)
}
