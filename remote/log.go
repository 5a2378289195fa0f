package remote

import (
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// log is this package's own package-level swappable logger, kept separate
// from the root package's logger so the two packages don't share state.
var (
	logMu sync.RWMutex
	log   = stumpy.L.New()
)

// SetLogger replaces the package-level logger used for registry lookup
// failures (an inbound frame naming an unregistered id); decode failures are
// returned, not logged. Pass nil to restore the default stumpy-backed logger.
func SetLogger(l *logiface.Logger[*stumpy.Event]) {
	logMu.Lock()
	defer logMu.Unlock()
	if l == nil {
		l = stumpy.L.New()
	}
	log = l
}

func getLogger() *logiface.Logger[*stumpy.Event] {
	logMu.RLock()
	defer logMu.RUnlock()
	return log
}
